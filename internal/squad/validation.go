package squad

import (
	"fmt"

	"github.com/wonny/sbc-solver/internal/contracts"
)

// Strategy tips attached to every solution
var baseStrategies = []string{
	"Use loyal players: a player who has played for your club gains extra chemistry",
	"Apply position change cards instead of buying new players for out-of-position slots",
	"Buy fodder during off-peak market hours and after new promos when prices dip",
}

const (
	costReductionTip = "Reduce cost by swapping the most expensive players for cheaper same-league alternatives"
	chemistryTip     = "Improve chemistry by grouping players from the same league, nation and club"
)

// CheckRequirements evaluates a built squad.
// Satisfied is the conjunction of the chemistry, rating, budget and size checks;
// distribution limits are reported but do not affect it.
func CheckRequirements(squad *contracts.Squad, reqs *contracts.NormalizedRequirements) contracts.CheckResult {
	check := contracts.CheckResult{
		Chemistry: squad.TotalChemistry >= reqs.MinChemistry,
		Rating:    squad.TotalRating >= reqs.MinRating,
		Budget:    float64(squad.TotalCost) <= reqs.Budget,
		Size:      squad.Count() == reqs.Players,
	}
	check.Satisfied = check.Chemistry && check.Rating && check.Budget && check.Size
	check.Distribution = checkDistribution(squad, reqs)
	return check
}

func checkDistribution(squad *contracts.Squad, reqs *contracts.NormalizedRequirements) []contracts.LimitCheck {
	var checks []contracts.LimitCheck

	maxLimits := []struct {
		name  string
		limit *int
		attr  func(contracts.Player) string
	}{
		{"max same league", reqs.MaxSameLeague, contracts.PlayerLeague},
		{"max same nation", reqs.MaxSameNation, contracts.PlayerNation},
		{"max same club", reqs.MaxSameClub, contracts.PlayerClub},
	}
	for _, l := range maxLimits {
		if l.limit == nil {
			continue
		}
		largest := 0
		for _, n := range squad.CountBy(l.attr) {
			largest = max(largest, n)
		}
		checks = append(checks, contracts.LimitCheck{Name: l.name, Limit: *l.limit, Actual: largest, OK: largest <= *l.limit})
	}

	minLimits := []struct {
		name  string
		limit *int
		attr  func(contracts.Player) string
	}{
		{"min leagues", reqs.MinLeagues, contracts.PlayerLeague},
		{"min nations", reqs.MinNations, contracts.PlayerNation},
	}
	for _, l := range minLimits {
		if l.limit == nil {
			continue
		}
		distinct := len(squad.CountBy(l.attr))
		checks = append(checks, contracts.LimitCheck{Name: l.name, Limit: *l.limit, Actual: distinct, OK: distinct >= *l.limit})
	}

	return checks
}

// AttachAdvisory appends strategy tips and warnings to squad only
func AttachAdvisory(squad *contracts.Squad, reqs *contracts.NormalizedRequirements, check contracts.CheckResult) {
	squad.Strategies = append(squad.Strategies, baseStrategies...)

	if !check.Budget {
		squad.Warnings = append(squad.Warnings,
			fmt.Sprintf("Budget exceeded: total cost %d is over the budget of %.0f", squad.TotalCost, reqs.Budget))
		squad.Strategies = append(squad.Strategies, costReductionTip)
	}

	if !check.Chemistry {
		squad.Warnings = append(squad.Warnings,
			fmt.Sprintf("Chemistry too low: %d is below the required %d", squad.TotalChemistry, reqs.MinChemistry))
		squad.Strategies = append(squad.Strategies, chemistryTip)
	}

	for _, l := range check.Distribution {
		if !l.OK {
			squad.Warnings = append(squad.Warnings,
				fmt.Sprintf("Distribution limit not met: %s is %d (limit %d)", l.Name, l.Actual, l.Limit))
		}
	}
}
