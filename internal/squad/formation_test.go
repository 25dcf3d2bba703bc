package squad

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wonny/sbc-solver/internal/contracts"
)

func positions(labels ...string) []contracts.Position {
	out := make([]contracts.Position, len(labels))
	for i, l := range labels {
		p, err := contracts.ParsePosition(l)
		if err != nil {
			panic(err)
		}
		out[i] = p
	}
	return out
}

func TestSelectFormation(t *testing.T) {
	tests := []struct {
		name      string
		reqs      contracts.NormalizedRequirements
		wantName  string
		wantSlots []contracts.Position
	}{
		{
			name:      "default eleven",
			reqs:      contracts.NormalizedRequirements{Players: 11},
			wantName:  "4-3-3",
			wantSlots: positions("GK", "LB", "CB", "CB", "RB", "CM", "CM", "CM", "LW", "ST", "RW"),
		},
		{
			name:      "short squad takes leading slots",
			reqs:      contracts.NormalizedRequirements{Players: 3},
			wantName:  "4-3-3",
			wantSlots: positions("GK", "LB", "CB"),
		},
		{
			name:      "long squad padded with substitutes",
			reqs:      contracts.NormalizedRequirements{Players: 13},
			wantName:  "4-3-3",
			wantSlots: positions("GK", "LB", "CB", "CB", "RB", "CM", "CM", "CM", "LW", "ST", "RW", "SUB", "SUB"),
		},
		{
			name:      "named formation",
			reqs:      contracts.NormalizedRequirements{Players: 11, Formation: "4-4-2"},
			wantName:  "4-4-2",
			wantSlots: positions("GK", "LB", "CB", "CB", "RB", "LM", "CM", "CM", "RM", "ST", "ST"),
		},
		{
			name:      "unknown formation falls back",
			reqs:      contracts.NormalizedRequirements{Players: 1, Formation: "5-3-2"},
			wantName:  "4-3-3",
			wantSlots: positions("GK"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectFormation(&tt.reqs)
			if got.Name != tt.wantName {
				t.Errorf("Name = %s, want %s", got.Name, tt.wantName)
			}
			if diff := cmp.Diff(tt.wantSlots, got.Positions); diff != "" {
				t.Errorf("Positions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSelectFormation_Deterministic(t *testing.T) {
	reqs := &contracts.NormalizedRequirements{Players: 11}

	first := SelectFormation(reqs)
	first.Positions[0] = contracts.PositionST // must not leak into the catalog

	if diff := cmp.Diff(SelectFormation(reqs), SelectFormation(reqs)); diff != "" {
		t.Errorf("formation not deterministic:\n%s", diff)
	}
	if SelectFormation(reqs).Positions[0] != contracts.PositionGK {
		t.Error("catalog was mutated through a returned formation")
	}
}

func TestFormationNames(t *testing.T) {
	if diff := cmp.Diff([]string{"4-3-3", "4-4-2"}, FormationNames()); diff != "" {
		t.Errorf("FormationNames mismatch:\n%s", diff)
	}
}
