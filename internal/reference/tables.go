package reference

import (
	"slices"

	"github.com/wonny/sbc-solver/internal/contracts"
)

// RatingBounds is the documented rating range of a rarity tier
type RatingBounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// RarityTier describes one rarity for reference listings
type RarityTier struct {
	Rarity   contracts.Rarity `json:"rarity"`
	Bounds   RatingBounds     `json:"bounds"`
	BaseCost float64          `json:"baseCost"`
}

// Tables is the static reference data shared by every solve
// ⭐ SSOT: built once at startup, read-only afterwards (no setters, accessors copy)
type Tables struct {
	leagues []string
	nations []string
	clubs   []string

	defaultLeague string
	defaultNation string
	defaultClub   string

	rarityBounds       map[contracts.Rarity]RatingBounds
	rarityBaseCost     map[contracts.Rarity]float64
	positionMultiplier map[contracts.Position]float64
}

// Default returns the built-in reference tables
func Default() *Tables {
	return &Tables{
		leagues: []string{
			"Premier League",
			"LaLiga EA SPORTS",
			"Bundesliga",
			"Serie A TIM",
			"Ligue 1 Uber Eats",
		},
		nations: []string{
			"England",
			"Spain",
			"Germany",
			"Italy",
			"France",
			"Brazil",
			"Argentina",
		},
		clubs: []string{
			"Manchester City",
			"Real Madrid",
			"FC Bayern München",
			"Inter",
			"Paris SG",
		},

		defaultLeague: "Premier League",
		defaultNation: "England",
		defaultClub:   "Manchester City",

		// Documented tier ranges. Rarity inference in the squad builder uses its own
		// thresholds (85 / 75) and does not read these.
		rarityBounds: map[contracts.Rarity]RatingBounds{
			contracts.RarityBronze: {Min: 45, Max: 64},
			contracts.RaritySilver: {Min: 65, Max: 74},
			contracts.RarityGold:   {Min: 75, Max: 99},
		},

		rarityBaseCost: map[contracts.Rarity]float64{
			contracts.RarityBronze: 150,
			contracts.RaritySilver: 400,
			contracts.RarityGold:   800,
		},

		positionMultiplier: map[contracts.Position]float64{
			contracts.PositionGK:  1.2,
			contracts.PositionST:  1.3,
			contracts.PositionCAM: 1.2,
			contracts.PositionCM:  1.1,
			contracts.PositionCB:  1.0,
			contracts.PositionLB:  1.0,
			contracts.PositionRB:  1.0,
		},
	}
}

// Leagues returns the known leagues
func (t *Tables) Leagues() []string {
	return slices.Clone(t.leagues)
}

// Nations returns the known nations
func (t *Tables) Nations() []string {
	return slices.Clone(t.nations)
}

// Clubs returns the known clubs
func (t *Tables) Clubs() []string {
	return slices.Clone(t.clubs)
}

// DefaultLeague is the fallback league before any player is placed
func (t *Tables) DefaultLeague() string {
	return t.defaultLeague
}

// DefaultNation is the fallback nation before any player is placed
func (t *Tables) DefaultNation() string {
	return t.defaultNation
}

// DefaultClub is the club used whenever no club constraint is given
func (t *Tables) DefaultClub() string {
	return t.defaultClub
}

// Bounds returns the documented rating range for a rarity
func (t *Tables) Bounds(r contracts.Rarity) (RatingBounds, bool) {
	b, ok := t.rarityBounds[r]
	return b, ok
}

// Tiers lists every rarity from lowest to highest with its bounds and base cost
func (t *Tables) Tiers() []RarityTier {
	tiers := make([]RarityTier, 0, len(t.rarityBounds))
	for _, r := range contracts.AllRarities() {
		b, ok := t.Bounds(r)
		if !ok {
			continue
		}
		tiers = append(tiers, RarityTier{Rarity: r, Bounds: b, BaseCost: t.BaseCost(r)})
	}
	return tiers
}

// BaseCost returns the base price of a rarity tier (0 for unknown tiers)
func (t *Tables) BaseCost(r contracts.Rarity) float64 {
	return t.rarityBaseCost[r]
}

// PositionMultiplier returns the cost multiplier for a position (1.0 when unlisted)
func (t *Tables) PositionMultiplier(p contracts.Position) float64 {
	if m, ok := t.positionMultiplier[p]; ok {
		return m
	}
	return 1.0
}
