package squad

import (
	"math"

	"github.com/wonny/sbc-solver/internal/contracts"
)

// Chemistry weights
const (
	maxPlayerChemistry = 10
	positionChemistry  = 10 // every slot is filled in position

	leagueLinkBonus = 2
	leagueLinkCap   = 8
	nationLinkBonus = 1
	nationLinkCap   = 6
	clubLinkBonus   = 3
	clubLinkCap     = 12
)

// EstimateCost prices a synthesized player:
// base[rarity] * max(1, (rating-70)/10) * positionMultiplier, rounded.
func (b *Builder) EstimateCost(p contracts.Player) int {
	ratingFactor := math.Max(1, float64(p.Rating-70)/10)
	cost := b.tables.BaseCost(p.Rarity) * ratingFactor * b.tables.PositionMultiplier(p.Position)
	return int(math.Round(cost))
}

// linkCounts holds how many players share each league, nation and club
type linkCounts struct {
	leagues map[string]int
	nations map[string]int
	clubs   map[string]int
}

func countLinks(players []contracts.Player) linkCounts {
	squad := &contracts.Squad{Players: players}
	return linkCounts{
		leagues: squad.CountBy(contracts.PlayerLeague),
		nations: squad.CountBy(contracts.PlayerNation),
		clubs:   squad.CountBy(contracts.PlayerClub),
	}
}

// score rates p against every other player; the counts include p itself.
// Link bonuses are added before the clamp, so the position term alone already
// reaches the cap.
func (c linkCounts) score(p contracts.Player) int {
	sameLeague := c.leagues[p.League] - 1
	sameNation := c.nations[p.Nation] - 1
	sameClub := c.clubs[p.Club] - 1

	chem := positionChemistry +
		min(sameLeague*leagueLinkBonus, leagueLinkCap) +
		min(sameNation*nationLinkBonus, nationLinkCap) +
		min(sameClub*clubLinkBonus, clubLinkCap)

	return max(0, min(chem, maxPlayerChemistry))
}

// PlayerChemistry scores players[i] against the rest of the squad
func PlayerChemistry(players []contracts.Player, i int) int {
	return countLinks(players).score(players[i])
}

// ComputeChemistry sets every player's chemistry and returns the squad total.
// Link counts are gathered once, so the cost is linear in squad size.
func ComputeChemistry(players []contracts.Player) int {
	counts := countLinks(players)

	total := 0
	for i := range players {
		players[i].Chemistry = counts.score(players[i])
		total += players[i].Chemistry
	}
	return total
}

// ComputeRating returns the mean rating rounded half up (0 for an empty squad)
func ComputeRating(players []contracts.Player) int {
	if len(players) == 0 {
		return 0
	}

	sum := 0
	for _, p := range players {
		sum += p.Rating
	}
	return int(math.Floor(float64(sum)/float64(len(players)) + 0.5))
}

// TotalCost sums player costs
func TotalCost(players []contracts.Player) int {
	total := 0
	for _, p := range players {
		total += p.Cost
	}
	return total
}
