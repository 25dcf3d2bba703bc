package solver

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/wonny/sbc-solver/internal/contracts"
)

//go:embed presets.yaml
var embeddedPresets []byte

// Preset is a named literal requirements record
type Preset struct {
	Name        string   `yaml:"name" json:"name" validate:"required"`
	Description string   `yaml:"description" json:"description"`
	Players     int      `yaml:"players" json:"players" validate:"gt=0"`
	Chemistry   int      `yaml:"chemistry" json:"chemistry" validate:"gte=0,lte=100"`
	Rating      int      `yaml:"rating" json:"rating" validate:"gte=0"`
	Budget      float64  `yaml:"budget" json:"budget" validate:"gt=0"`
	Leagues     []string `yaml:"leagues,omitempty" json:"leagues,omitempty" validate:"dive,required"`
	Nations     []string `yaml:"nations,omitempty" json:"nations,omitempty" validate:"dive,required"`
	Clubs       []string `yaml:"clubs,omitempty" json:"clubs,omitempty" validate:"dive,required"`
	Rarity      []string `yaml:"rarity,omitempty" json:"rarity,omitempty" validate:"dive,oneof=bronze silver gold"`
	Formation   string   `yaml:"formation,omitempty" json:"formation,omitempty"`
}

// Raw converts the preset into the record shape accepted by Solve.
// A fresh map is returned on every call.
func (p Preset) Raw() contracts.RawRequirements {
	raw := contracts.RawRequirements{
		contracts.KeyPlayers:   p.Players,
		contracts.KeyChemistry: p.Chemistry,
		contracts.KeyRating:    p.Rating,
		contracts.KeyBudget:    p.Budget,
	}
	if len(p.Leagues) > 0 {
		raw[contracts.KeyLeagues] = append([]string(nil), p.Leagues...)
	}
	if len(p.Nations) > 0 {
		raw[contracts.KeyNations] = append([]string(nil), p.Nations...)
	}
	if len(p.Clubs) > 0 {
		raw[contracts.KeyClubs] = append([]string(nil), p.Clubs...)
	}
	if len(p.Rarity) > 0 {
		raw[contracts.KeyRarity] = append([]string(nil), p.Rarity...)
	}
	if p.Formation != "" {
		raw[contracts.KeyFormation] = p.Formation
	}
	return raw
}

// Catalog is an ordered, read-only set of presets
type Catalog struct {
	presets []Preset
	byName  map[string]int
}

type catalogFile struct {
	Presets []Preset `yaml:"presets" validate:"required,min=1,dive"`
}

// DefaultCatalog returns the embedded preset catalog
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(embeddedPresets)
}

// LoadCatalog reads a preset catalog from a YAML file
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a YAML preset catalog.
// Unknown fields are rejected so typos fail fast.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode presets: %w", err)
	}

	// Rarity names are case-insensitive, as in requirements records.
	for i := range file.Presets {
		for j, r := range file.Presets[i].Rarity {
			file.Presets[i].Rarity[j] = strings.ToLower(strings.TrimSpace(r))
		}
	}

	if err := validator.New().Struct(file); err != nil {
		return nil, fmt.Errorf("validate presets: %w", err)
	}

	c := &Catalog{
		presets: file.Presets,
		byName:  make(map[string]int, len(file.Presets)),
	}
	for i, p := range file.Presets {
		if _, dup := c.byName[p.Name]; dup {
			return nil, fmt.Errorf("validate presets: duplicate preset %q", p.Name)
		}
		c.byName[p.Name] = i
	}
	return c, nil
}

// Lookup finds a preset by name
func (c *Catalog) Lookup(name string) (Preset, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Preset{}, false
	}
	return c.presets[i], true
}

// Presets returns all presets in file order
func (c *Catalog) Presets() []Preset {
	return append([]Preset(nil), c.presets...)
}

// Names returns preset names in file order
func (c *Catalog) Names() []string {
	names := make([]string, len(c.presets))
	for i, p := range c.presets {
		names[i] = p.Name
	}
	return names
}
