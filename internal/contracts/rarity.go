package contracts

import (
	"fmt"
	"strings"
)

// Rarity is the card tier of a player
type Rarity uint8

const (
	RarityBronze Rarity = iota + 1
	RaritySilver
	RarityGold
)

var rarityNames = map[Rarity]string{
	RarityBronze: "bronze",
	RaritySilver: "silver",
	RarityGold:   "gold",
}

// AllRarities returns every rarity from lowest to highest tier
func AllRarities() []Rarity {
	return []Rarity{RarityBronze, RaritySilver, RarityGold}
}

// ParseRarity parses a rarity name (case-insensitive)
func ParseRarity(s string) (Rarity, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for r, n := range rarityNames {
		if n == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown rarity %q", s)
}

// String returns the lowercase rarity name
func (r Rarity) String() string {
	if n, ok := rarityNames[r]; ok {
		return n
	}
	return fmt.Sprintf("rarity(%d)", uint8(r))
}

// IsValid reports whether r is a known rarity
func (r Rarity) IsValid() bool {
	_, ok := rarityNames[r]
	return ok
}

// MarshalText implements encoding.TextMarshaler
func (r Rarity) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("invalid rarity %d", uint8(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (r *Rarity) UnmarshalText(text []byte) error {
	parsed, err := ParseRarity(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
