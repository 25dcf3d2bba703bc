package squad

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/sbc-solver/internal/contracts"
)

func boundarySquad() (*contracts.Squad, *contracts.NormalizedRequirements) {
	squad := &contracts.Squad{
		Players:        make([]contracts.Player, 11),
		TotalChemistry: 95,
		TotalRating:    70,
		TotalCost:      8000,
	}
	reqs := &contracts.NormalizedRequirements{Players: 11, MinChemistry: 95, MinRating: 70, Budget: 8000}
	return squad, reqs
}

func TestCheckRequirements_AllAtBoundary(t *testing.T) {
	squad, reqs := boundarySquad()

	check := CheckRequirements(squad, reqs)

	assert.True(t, check.Chemistry)
	assert.True(t, check.Rating)
	assert.True(t, check.Budget)
	assert.True(t, check.Size)
	assert.True(t, check.Satisfied)
	assert.Empty(t, check.Distribution)
}

func TestCheckRequirements_EachFieldFlipsSatisfied(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*contracts.Squad)
		field  func(contracts.CheckResult) bool
	}{
		{"chemistry", func(s *contracts.Squad) { s.TotalChemistry = 94 }, func(c contracts.CheckResult) bool { return c.Chemistry }},
		{"rating", func(s *contracts.Squad) { s.TotalRating = 69 }, func(c contracts.CheckResult) bool { return c.Rating }},
		{"budget", func(s *contracts.Squad) { s.TotalCost = 8001 }, func(c contracts.CheckResult) bool { return c.Budget }},
		{"size", func(s *contracts.Squad) { s.Players = s.Players[:10] }, func(c contracts.CheckResult) bool { return c.Size }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			squad, reqs := boundarySquad()
			tt.mutate(squad)

			check := CheckRequirements(squad, reqs)

			assert.False(t, tt.field(check))
			assert.False(t, check.Satisfied)
		})
	}
}

func TestCheckRequirements_DistributionIsInformational(t *testing.T) {
	maxLeague, minNations := 5, 2
	squad := &contracts.Squad{Players: []contracts.Player{
		{League: "Premier League", Nation: "England"},
		{League: "Premier League", Nation: "England"},
	}, TotalChemistry: 20, TotalRating: 75, TotalCost: 800}
	reqs := &contracts.NormalizedRequirements{
		Players: 2, MinChemistry: 0, MinRating: 75, Budget: 1000,
		MaxSameLeague: &maxLeague,
		MinNations:    &minNations,
	}

	check := CheckRequirements(squad, reqs)

	assert.True(t, check.Satisfied)
	require.Len(t, check.Distribution, 2)
	assert.Equal(t, contracts.LimitCheck{Name: "max same league", Limit: 5, Actual: 2, OK: true}, check.Distribution[0])
	assert.Equal(t, contracts.LimitCheck{Name: "min nations", Limit: 2, Actual: 1, OK: false}, check.Distribution[1])
}

func TestAttachAdvisory(t *testing.T) {
	t.Run("satisfied squad gets only the fixed tips", func(t *testing.T) {
		squad, reqs := boundarySquad()
		AttachAdvisory(squad, reqs, CheckRequirements(squad, reqs))

		assert.Equal(t, baseStrategies, squad.Strategies)
		assert.Empty(t, squad.Warnings)
	})

	t.Run("over budget", func(t *testing.T) {
		squad, reqs := boundarySquad()
		squad.TotalCost = 9000
		AttachAdvisory(squad, reqs, CheckRequirements(squad, reqs))

		require.Len(t, squad.Warnings, 1)
		assert.Contains(t, squad.Warnings[0], "9000")
		assert.Equal(t, costReductionTip, squad.Strategies[3])
	})

	t.Run("under chemistry", func(t *testing.T) {
		squad, reqs := boundarySquad()
		squad.TotalChemistry = 50
		AttachAdvisory(squad, reqs, CheckRequirements(squad, reqs))

		require.Len(t, squad.Warnings, 1)
		assert.True(t, strings.HasPrefix(squad.Warnings[0], "Chemistry too low"))
		assert.Equal(t, chemistryTip, squad.Strategies[3])
	})

	t.Run("both plus a distribution limit", func(t *testing.T) {
		limit := 1
		squad, reqs := boundarySquad()
		squad.Players = []contracts.Player{{Club: "Inter"}, {Club: "Inter"}}
		reqs.Players = 2
		reqs.MaxSameClub = &limit
		squad.TotalCost = 9000
		squad.TotalChemistry = 10
		AttachAdvisory(squad, reqs, CheckRequirements(squad, reqs))

		assert.Len(t, squad.Strategies, 5)
		require.Len(t, squad.Warnings, 3)
		assert.Contains(t, squad.Warnings[2], "max same club")
	})
}
