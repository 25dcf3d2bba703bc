package requirements

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/wonny/sbc-solver/internal/contracts"
)

// Config holds the defaults applied to absent or null requirement fields
type Config struct {
	Players   int
	Chemistry int
	Rating    int
	Budget    float64

	// MaxPlayers is the largest squad size accepted
	MaxPlayers int
}

// DefaultMaxPlayers covers a starting eleven plus a full bench
const DefaultMaxPlayers = 23

// DefaultConfig returns the documented defaults
func DefaultConfig() Config {
	return Config{
		Players:   11,
		Chemistry: 100,
		Rating:    75,
		Budget:    50000,

		MaxPlayers: DefaultMaxPlayers,
	}
}

// Normalizer implements contracts.RequirementNormalizer
// ⭐ SSOT: requirement defaults and validation live here only
type Normalizer struct {
	config Config
}

// NewNormalizer creates a normalizer with the given defaults
func NewNormalizer(config Config) *Normalizer {
	return &Normalizer{config: config}
}

// Normalize validates raw and fills every optional field.
//
// raw must be a record. The players and chemistry keys must be present even though a
// null value for either is later replaced by its default.
func (n *Normalizer) Normalize(raw any) (*contracts.NormalizedRequirements, error) {
	fields, ok := asRecord(raw)
	if !ok {
		return nil, &contracts.InvalidRequirementsError{Message: "requirements must be an object"}
	}

	for _, key := range []string{contracts.KeyPlayers, contracts.KeyChemistry} {
		if _, present := fields[key]; !present {
			return nil, &contracts.InvalidRequirementsError{Field: key, Message: "required"}
		}
	}

	reqs := &contracts.NormalizedRequirements{}
	var err error

	if reqs.Players, err = intField(fields, contracts.KeyPlayers, n.config.Players); err != nil {
		return nil, err
	}
	if reqs.Players <= 0 {
		return nil, invalid(contracts.KeyPlayers, "must be > 0")
	}
	if reqs.Players > n.config.MaxPlayers {
		return nil, invalid(contracts.KeyPlayers, fmt.Sprintf("must be <= %d", n.config.MaxPlayers))
	}

	if reqs.MinChemistry, err = intField(fields, contracts.KeyChemistry, n.config.Chemistry); err != nil {
		return nil, err
	}
	if reqs.MinChemistry < 0 || reqs.MinChemistry > 100 {
		return nil, invalid(contracts.KeyChemistry, "must be in [0, 100]")
	}

	if reqs.MinRating, err = intField(fields, contracts.KeyRating, n.config.Rating); err != nil {
		return nil, err
	}
	if reqs.MinRating < 0 {
		return nil, invalid(contracts.KeyRating, "must be >= 0")
	}

	if reqs.Budget, err = floatField(fields, contracts.KeyBudget, n.config.Budget); err != nil {
		return nil, err
	}
	if reqs.Budget <= 0 {
		return nil, invalid(contracts.KeyBudget, "must be > 0")
	}

	if reqs.Leagues, err = stringSetField(fields, contracts.KeyLeagues); err != nil {
		return nil, err
	}
	if reqs.Nations, err = stringSetField(fields, contracts.KeyNations); err != nil {
		return nil, err
	}
	if reqs.Clubs, err = stringSetField(fields, contracts.KeyClubs); err != nil {
		return nil, err
	}
	if reqs.Rarities, err = rarityField(fields); err != nil {
		return nil, err
	}

	limits := []struct {
		key string
		dst **int
	}{
		{contracts.KeyMaxSameLeague, &reqs.MaxSameLeague},
		{contracts.KeyMaxSameNation, &reqs.MaxSameNation},
		{contracts.KeyMaxSameClub, &reqs.MaxSameClub},
		{contracts.KeyMinLeagues, &reqs.MinLeagues},
		{contracts.KeyMinNations, &reqs.MinNations},
	}
	for _, l := range limits {
		if *l.dst, err = limitField(fields, l.key); err != nil {
			return nil, err
		}
	}

	if v, ok := fields[contracts.KeyFormation]; ok && v != nil {
		name, isString := v.(string)
		if !isString {
			return nil, invalid(contracts.KeyFormation, "must be a string")
		}
		reqs.Formation = strings.TrimSpace(name)
	}

	return reqs, nil
}

func invalid(field, message string) error {
	return &contracts.InvalidRequirementsError{Field: field, Message: message}
}

// asRecord accepts the record shapes produced by JSON/YAML decoding and presets
func asRecord(raw any) (map[string]any, bool) {
	switch v := raw.(type) {
	case contracts.RawRequirements:
		return v, v != nil
	case map[string]any:
		return v, v != nil
	default:
		return nil, false
	}
}

func intField(fields map[string]any, key string, def int) (int, error) {
	v, ok := fields[key]
	if !ok || v == nil {
		return def, nil
	}

	f, err := toNumber(v)
	if err != nil {
		return 0, invalid(key, err.Error())
	}
	if f != math.Trunc(f) {
		return 0, invalid(key, "must be an integer")
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, invalid(key, "out of range")
	}
	return int(f), nil
}

func floatField(fields map[string]any, key string, def float64) (float64, error) {
	v, ok := fields[key]
	if !ok || v == nil {
		return def, nil
	}

	f, err := toNumber(v)
	if err != nil {
		return 0, invalid(key, err.Error())
	}
	return f, nil
}

func limitField(fields map[string]any, key string) (*int, error) {
	if v, ok := fields[key]; !ok || v == nil {
		return nil, nil
	}

	n, err := intField(fields, key, 0)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, invalid(key, "must be > 0")
	}
	return &n, nil
}

func toNumber(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float32:
		return float64(n), nil
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, fmt.Errorf("must be a finite number")
		}
		return n, nil
	case json.Number:
		return n.Float64()
	default:
		return 0, fmt.Errorf("must be a number, got %T", v)
	}
}

func stringSetField(fields map[string]any, key string) ([]string, error) {
	v, ok := fields[key]
	if !ok || v == nil {
		return []string{}, nil
	}

	var values []string
	switch s := v.(type) {
	case string:
		values = []string{s}
	case []string:
		values = s
	case []any:
		for _, item := range s {
			str, isString := item.(string)
			if !isString {
				return nil, invalid(key, fmt.Sprintf("must contain strings, got %T", item))
			}
			values = append(values, str)
		}
	default:
		return nil, invalid(key, fmt.Sprintf("must be a string or a list of strings, got %T", v))
	}

	// Keep first-seen order: the builder always picks the first element.
	set := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, s := range values {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		set = append(set, s)
	}
	return set, nil
}

func rarityField(fields map[string]any) ([]contracts.Rarity, error) {
	key := contracts.KeyRarity
	if _, ok := fields[key]; !ok {
		key = contracts.KeyRarities
	}

	names, err := stringSetField(fields, key)
	if err != nil {
		return nil, err
	}

	rarities := make([]contracts.Rarity, 0, len(names))
	for _, name := range names {
		r, err := contracts.ParseRarity(name)
		if err != nil {
			return nil, invalid(key, err.Error())
		}
		if !slices.Contains(rarities, r) {
			rarities = append(rarities, r)
		}
	}
	return rarities, nil
}
