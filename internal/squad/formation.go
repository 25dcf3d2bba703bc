package squad

import (
	"slices"

	"github.com/wonny/sbc-solver/internal/contracts"
)

// DefaultFormationName is used when requirements name no (or an unknown) formation
const DefaultFormationName = "4-3-3"

var formationCatalog = map[string]contracts.Formation{
	"4-3-3": {
		Name: "4-3-3",
		Positions: []contracts.Position{
			contracts.PositionGK,
			contracts.PositionLB, contracts.PositionCB, contracts.PositionCB, contracts.PositionRB,
			contracts.PositionCM, contracts.PositionCM, contracts.PositionCM,
			contracts.PositionLW, contracts.PositionST, contracts.PositionRW,
		},
		ChemistryBonus: 1.0,
	},
	"4-4-2": {
		Name: "4-4-2",
		Positions: []contracts.Position{
			contracts.PositionGK,
			contracts.PositionLB, contracts.PositionCB, contracts.PositionCB, contracts.PositionRB,
			contracts.PositionLM, contracts.PositionCM, contracts.PositionCM, contracts.PositionRM,
			contracts.PositionST, contracts.PositionST,
		},
		ChemistryBonus: 1.0,
	},
}

// FormationNames lists the catalog in a stable order
func FormationNames() []string {
	names := make([]string, 0, len(formationCatalog))
	for name := range formationCatalog {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// SelectFormation picks the formation for a solve.
// The result depends only on reqs.Formation and reqs.Players: smaller squads take the
// first N slots, larger squads are padded with SUB.
func SelectFormation(reqs *contracts.NormalizedRequirements) contracts.Formation {
	base, ok := formationCatalog[reqs.Formation]
	if !ok {
		base = formationCatalog[DefaultFormationName]
	}

	positions := make([]contracts.Position, reqs.Players)
	for i := range positions {
		if i < len(base.Positions) {
			positions[i] = base.Positions[i]
		} else {
			positions[i] = contracts.PositionSUB
		}
	}

	return contracts.Formation{
		Name:           base.Name,
		Positions:      positions,
		ChemistryBonus: base.ChemistryBonus,
	}
}
