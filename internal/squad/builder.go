package squad

import (
	"math"

	"github.com/wonny/sbc-solver/internal/contracts"
	"github.com/wonny/sbc-solver/internal/reference"
	"github.com/wonny/sbc-solver/pkg/logger"
)

// Rarity inference thresholds for unconstrained slots.
// Independent from the tier bounds in the reference tables.
const (
	goldRatingThreshold   = 85
	silverRatingThreshold = 75

	// ratingFloorMargin keeps compensation from pushing later slots below minRating-5
	ratingFloorMargin = 5
)

// Builder implements contracts.SquadBuilder: a greedy single pass over the formation
// ⭐ SSOT: squad construction logic lives here only
type Builder struct {
	tables *reference.Tables
	logger *logger.Logger
}

// NewBuilder creates a new squad builder
func NewBuilder(tables *reference.Tables, log *logger.Logger) *Builder {
	return &Builder{
		tables: tables,
		logger: log,
	}
}

// Build constructs, scores and validates a squad for reqs
func (b *Builder) Build(reqs *contracts.NormalizedRequirements) (*contracts.Squad, contracts.CheckResult) {
	formation := SelectFormation(reqs)

	// 1. Fill every slot in formation order
	players := make([]contracts.Player, 0, formation.Size())
	for _, pos := range formation.Positions {
		player := b.FillSlot(pos, reqs, players)
		players = append(players, player)

		b.logger.WithFields(map[string]interface{}{
			"slot":     len(players),
			"position": pos.String(),
			"rating":   player.Rating,
			"rarity":   player.Rarity.String(),
			"cost":     player.Cost,
		}).Debug("Slot filled")
	}

	// 2. Aggregate
	squad := &contracts.Squad{
		Players:    players,
		Formation:  formation,
		Strategies: []string{},
		Warnings:   []string{},
	}
	squad.TotalChemistry = ComputeChemistry(squad.Players)
	squad.TotalRating = ComputeRating(squad.Players)
	squad.TotalCost = TotalCost(squad.Players)

	// 3. Validate and advise
	check := CheckRequirements(squad, reqs)
	AttachAdvisory(squad, reqs, check)

	b.logger.WithFields(map[string]interface{}{
		"formation":       formation.Name,
		"players":         squad.Count(),
		"total_cost":      squad.TotalCost,
		"total_chemistry": squad.TotalChemistry,
		"total_rating":    squad.TotalRating,
		"satisfied":       check.Satisfied,
	}).Info("Squad built")

	return squad, check
}

// FillSlot synthesizes the candidate for one slot.
// Pure function of its arguments: squadSoFar is only read.
func (b *Builder) FillSlot(pos contracts.Position, reqs *contracts.NormalizedRequirements, squadSoFar []contracts.Player) contracts.Player {
	player := contracts.Player{
		Position: pos,
		Rating:   RequiredRating(reqs, squadSoFar),
	}

	if reqs.HasLeagueConstraint() {
		player.League = reqs.Leagues[0]
	} else {
		player.League = mostCommon(squadSoFar, contracts.PlayerLeague, b.tables.DefaultLeague())
	}

	if reqs.HasNationConstraint() {
		player.Nation = reqs.Nations[0]
	} else {
		player.Nation = mostCommon(squadSoFar, contracts.PlayerNation, b.tables.DefaultNation())
	}

	// Club never follows the squad majority.
	if reqs.HasClubConstraint() {
		player.Club = reqs.Clubs[0]
	} else {
		player.Club = b.tables.DefaultClub()
	}

	if reqs.HasRarityConstraint() {
		player.Rarity = reqs.Rarities[0]
	} else {
		player.Rarity = InferRarity(player.Rating)
	}

	player.Cost = b.EstimateCost(player)
	return player
}

// RequiredRating returns the rating the next slot needs to keep the squad mean at
// reqs.MinRating, never below MinRating-5.
func RequiredRating(reqs *contracts.NormalizedRequirements, squadSoFar []contracts.Player) int {
	if len(squadSoFar) == 0 {
		return reqs.MinRating
	}

	remaining := reqs.Players - len(squadSoFar)
	if remaining <= 0 {
		return reqs.MinRating
	}

	sum := 0
	for _, p := range squadSoFar {
		sum += p.Rating
	}

	needed := int(math.Ceil(float64(reqs.MinRating*reqs.Players-sum) / float64(remaining)))
	return max(reqs.MinRating-ratingFloorMargin, needed)
}

// InferRarity maps a rating to a rarity tier for unconstrained slots
func InferRarity(rating int) contracts.Rarity {
	switch {
	case rating >= goldRatingThreshold:
		return contracts.RarityGold
	case rating >= silverRatingThreshold:
		return contracts.RaritySilver
	default:
		return contracts.RarityBronze
	}
}

// mostCommon returns the attribute value shared by most players so far.
// Ties go to the value that appears first in the squad; an empty squad yields fallback.
func mostCommon(players []contracts.Player, attr func(contracts.Player) string, fallback string) string {
	if len(players) == 0 {
		return fallback
	}

	counts := make(map[string]int)
	order := make([]string, 0, len(players))
	for _, p := range players {
		v := attr(p)
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	best := order[0]
	for _, v := range order[1:] {
		if counts[v] > counts[best] {
			best = v
		}
	}
	return best
}
