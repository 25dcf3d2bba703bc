package contracts

// Player is a synthesized candidate filling one squad slot
// ⭐ Owned by exactly one Squad; never shared across solutions
type Player struct {
	Position  Position `json:"position"`
	Rating    int      `json:"rating"`
	League    string   `json:"league"`
	Nation    string   `json:"nation"`
	Club      string   `json:"club"`
	Rarity    Rarity   `json:"rarity"`
	Cost      int      `json:"cost"`
	Chemistry int      `json:"chemistry"` // 0 ~ 10, set after assembly
}

// Formation is an ordered list of slot positions
type Formation struct {
	Name           string     `json:"name"`
	Positions      []Position `json:"positions"`
	ChemistryBonus float64    `json:"chemistryBonus"`
}

// Size returns the number of slots
func (f Formation) Size() int {
	return len(f.Positions)
}

// Squad is the solution body
type Squad struct {
	Players        []Player  `json:"players"`
	TotalCost      int       `json:"totalCost"`
	TotalChemistry int       `json:"totalChemistry"`
	TotalRating    int       `json:"totalRating"`
	Formation      Formation `json:"formation"`
	Strategies     []string  `json:"strategies"`
	Warnings       []string  `json:"warnings"`
}

// Count returns the number of players
func (s *Squad) Count() int {
	return len(s.Players)
}

// CountBy counts players per attribute value
func (s *Squad) CountBy(attr func(Player) string) map[string]int {
	counts := make(map[string]int)
	for _, p := range s.Players {
		counts[attr(p)]++
	}
	return counts
}

// Attribute accessors used with CountBy
var (
	PlayerLeague = func(p Player) string { return p.League }
	PlayerNation = func(p Player) string { return p.Nation }
	PlayerClub   = func(p Player) string { return p.Club }
)

// CheckResult is the outcome of validating a squad against its requirements
type CheckResult struct {
	Chemistry bool `json:"chemistry"`
	Rating    bool `json:"rating"`
	Budget    bool `json:"budget"`
	Size      bool `json:"size"`
	Satisfied bool `json:"satisfied"`

	// Informational only; does not affect Satisfied
	Distribution []LimitCheck `json:"distribution,omitempty"`
}

// LimitCheck reports one optional distribution limit
type LimitCheck struct {
	Name   string `json:"name"`
	Limit  int    `json:"limit"`
	Actual int    `json:"actual"`
	OK     bool   `json:"ok"`
}

// SolutionResult is what public entry points hand back to callers
// On success the squad fields are inlined; on failure only error/success are set.
type SolutionResult struct {
	*Squad
	Check   *CheckResult `json:"check,omitempty"`
	Error   string       `json:"error,omitempty"`
	Success bool         `json:"success"`
}

// Failure builds a failed result from err
func Failure(err error) SolutionResult {
	return SolutionResult{Error: err.Error(), Success: false}
}
