package squad

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wonny/sbc-solver/internal/contracts"
)

func TestEstimateCost(t *testing.T) {
	b := newTestBuilder()

	tests := []struct {
		name   string
		player contracts.Player
		want   int
	}{
		{"bronze CB at 60", contracts.Player{Position: contracts.PositionCB, Rating: 60, Rarity: contracts.RarityBronze}, 150},
		{"silver ST at 70", contracts.Player{Position: contracts.PositionST, Rating: 70, Rarity: contracts.RaritySilver}, 520},
		{"silver ST at 90", contracts.Player{Position: contracts.PositionST, Rating: 90, Rarity: contracts.RaritySilver}, 1040},
		{"gold CM at 85", contracts.Player{Position: contracts.PositionCM, Rating: 85, Rarity: contracts.RarityGold}, 1320},
		{"gold CAM at 88", contracts.Player{Position: contracts.PositionCAM, Rating: 88, Rarity: contracts.RarityGold}, 1728},
		{"gold GK at 83", contracts.Player{Position: contracts.PositionGK, Rating: 83, Rarity: contracts.RarityGold}, 1248},
		{"silver LW unlisted multiplier", contracts.Player{Position: contracts.PositionLW, Rating: 81, Rarity: contracts.RaritySilver}, 440},
		{"silver SUB", contracts.Player{Position: contracts.PositionSUB, Rating: 75, Rarity: contracts.RaritySilver}, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.EstimateCost(tt.player))
		})
	}
}

func TestEstimateCost_MonotonicInRating(t *testing.T) {
	b := newTestBuilder()

	for _, rarity := range contracts.AllRarities() {
		for _, pos := range []contracts.Position{contracts.PositionGK, contracts.PositionST, contracts.PositionCM, contracts.PositionRW} {
			prev := 0
			for rating := 40; rating <= 99; rating++ {
				cost := b.EstimateCost(contracts.Player{Position: pos, Rating: rating, Rarity: rarity})
				assert.GreaterOrEqual(t, cost, prev, "rarity=%s pos=%s rating=%d", rarity, pos, rating)
				prev = cost
			}
		}
	}
}

func TestComputeChemistry_SinglePlayer(t *testing.T) {
	players := []contracts.Player{{League: "Bundesliga", Nation: "Germany", Club: "Inter"}}

	assert.Equal(t, 10, ComputeChemistry(players))
	assert.Equal(t, 10, players[0].Chemistry)
}

func TestComputeChemistry_ClampedPerPlayer(t *testing.T) {
	// Identical links would add up to 10+8+6+12 before the clamp.
	players := make([]contracts.Player, 11)
	for i := range players {
		players[i] = contracts.Player{League: "Premier League", Nation: "England", Club: "Manchester City"}
	}

	total := ComputeChemistry(players)

	assert.Equal(t, 110, total)
	for _, p := range players {
		assert.Equal(t, 10, p.Chemistry)
	}
}

func TestComputeChemistry_NoLinks(t *testing.T) {
	players := []contracts.Player{
		{League: "A", Nation: "X", Club: "1"},
		{League: "B", Nation: "Y", Club: "2"},
		{League: "C", Nation: "Z", Club: "3"},
	}

	assert.Equal(t, 30, ComputeChemistry(players))
	assert.Equal(t, 10, PlayerChemistry(players, 1))
}

func TestComputeChemistry_Empty(t *testing.T) {
	assert.Equal(t, 0, ComputeChemistry(nil))
}

func TestComputeRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    int
	}{
		{"empty", nil, 0},
		{"single", []int{83}, 83},
		{"half rounds up", []int{70, 71}, 71},
		{"rounds down", []int{70, 70, 71}, 70},
		{"rounds up", []int{70, 71, 71}, 71},
		{"exact", []int{80, 82, 84}, 82},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			players := make([]contracts.Player, len(tt.ratings))
			for i, r := range tt.ratings {
				players[i].Rating = r
			}
			assert.Equal(t, tt.want, ComputeRating(players))
		})
	}
}

func TestTotalCost(t *testing.T) {
	players := []contracts.Player{{Cost: 480}, {Cost: 400}, {Cost: 520}}
	assert.Equal(t, 1400, TotalCost(players))
}

func TestCountLinks(t *testing.T) {
	players := []contracts.Player{
		{League: "Premier League", Nation: "England", Club: "Arsenal"},
		{League: "Premier League", Nation: "France", Club: "Arsenal"},
		{League: "LaLiga", Nation: "France", Club: "Real Madrid"},
	}

	counts := countLinks(players)

	assert.Equal(t, map[string]int{"Premier League": 2, "LaLiga": 1}, counts.leagues)
	assert.Equal(t, map[string]int{"England": 1, "France": 2}, counts.nations)
	assert.Equal(t, map[string]int{"Arsenal": 2, "Real Madrid": 1}, counts.clubs)
}

func TestComputeChemistry_LargeSquadIsLinear(t *testing.T) {
	// A pairwise scan of this squad would take billions of comparisons.
	players := make([]contracts.Player, 100000)
	for i := range players {
		players[i] = contracts.Player{League: "Premier League", Nation: "England", Club: "Manchester City"}
	}

	start := time.Now()
	total := ComputeChemistry(players)

	assert.Equal(t, 1000000, total)
	assert.Less(t, time.Since(start), 5*time.Second)
}
