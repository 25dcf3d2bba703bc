package contracts

// RawRequirements is a partially populated requirements record as supplied by a caller
// (decoded JSON/YAML, a preset, or text extracted from a challenge page).
//
// Recognised keys: players, chemistry, rating, budget, leagues, nations, clubs,
// rarity (alias rarities), maxSameLeague, maxSameNation, maxSameClub, minLeagues,
// minNations, formation.
type RawRequirements map[string]any

// Requirement keys
const (
	KeyPlayers       = "players"
	KeyChemistry     = "chemistry"
	KeyRating        = "rating"
	KeyBudget        = "budget"
	KeyLeagues       = "leagues"
	KeyNations       = "nations"
	KeyClubs         = "clubs"
	KeyRarity        = "rarity"
	KeyRarities      = "rarities"
	KeyMaxSameLeague = "maxSameLeague"
	KeyMaxSameNation = "maxSameNation"
	KeyMaxSameClub   = "maxSameClub"
	KeyMinLeagues    = "minLeagues"
	KeyMinNations    = "minNations"
	KeyFormation     = "formation"
)

// NormalizedRequirements is a fully resolved requirements record
// ⭐ Created once per solve and never mutated afterwards
type NormalizedRequirements struct {
	Players      int     `json:"players"`
	MinChemistry int     `json:"minChemistry"`
	MinRating    int     `json:"minRating"`
	Budget       float64 `json:"budget"`

	// Categorical constraints (empty = unconstrained)
	Leagues  []string `json:"leagues"`
	Nations  []string `json:"nations"`
	Clubs    []string `json:"clubs"`
	Rarities []Rarity `json:"rarities"`

	// Distribution limits (nil = no limit)
	MaxSameLeague *int `json:"maxSameLeague,omitempty"`
	MaxSameNation *int `json:"maxSameNation,omitempty"`
	MaxSameClub   *int `json:"maxSameClub,omitempty"`
	MinLeagues    *int `json:"minLeagues,omitempty"`
	MinNations    *int `json:"minNations,omitempty"`

	Formation string `json:"formation,omitempty"` // "" = default formation
}

// HasLeagueConstraint reports whether the league set is constrained
func (r *NormalizedRequirements) HasLeagueConstraint() bool {
	return len(r.Leagues) > 0
}

// HasNationConstraint reports whether the nation set is constrained
func (r *NormalizedRequirements) HasNationConstraint() bool {
	return len(r.Nations) > 0
}

// HasClubConstraint reports whether the club set is constrained
func (r *NormalizedRequirements) HasClubConstraint() bool {
	return len(r.Clubs) > 0
}

// HasRarityConstraint reports whether the rarity set is constrained
func (r *NormalizedRequirements) HasRarityConstraint() bool {
	return len(r.Rarities) > 0
}
