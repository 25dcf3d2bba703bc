package solver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/sbc-solver/internal/contracts"
	"github.com/wonny/sbc-solver/pkg/logger"
)

func TestDefaultCatalog(t *testing.T) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"daily_bronze", "daily_silver", "daily_gold", "82_plus_pick", "84_plus_upgrade"},
		catalog.Names())

	silver, ok := catalog.Lookup("daily_silver")
	require.True(t, ok)
	assert.Equal(t, 11, silver.Players)
	assert.Equal(t, 95, silver.Chemistry)
	assert.Equal(t, 70, silver.Rating)
	assert.Equal(t, 8000.0, silver.Budget)
	assert.Equal(t, []string{"silver"}, silver.Rarity)

	_, ok = catalog.Lookup("weekly_icon")
	assert.False(t, ok)
}

func TestPreset_Raw(t *testing.T) {
	p := Preset{Name: "x", Players: 11, Chemistry: 95, Rating: 70, Budget: 8000, Rarity: []string{"silver"}, Formation: "4-4-2"}

	raw := p.Raw()

	assert.Equal(t, contracts.RawRequirements{
		"players":   11,
		"chemistry": 95,
		"rating":    70,
		"budget":    8000.0,
		"rarity":    []string{"silver"},
		"formation": "4-4-2",
	}, raw)

	raw["rarity"].([]string)[0] = "gold"
	assert.Equal(t, "silver", p.Rarity[0])
}

func TestParseCatalog_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown field", "presets:\n  - name: a\n    players: 11\n    chemistry: 1\n    budget: 1\n    colour: red\n"},
		{"zero players", "presets:\n  - name: a\n    players: 0\n    chemistry: 1\n    budget: 1\n"},
		{"chemistry out of range", "presets:\n  - name: a\n    players: 11\n    chemistry: 120\n    budget: 1\n"},
		{"bad rarity", "presets:\n  - name: a\n    players: 11\n    chemistry: 1\n    budget: 1\n    rarity: [icon]\n"},
		{"duplicate", "presets:\n  - {name: a, players: 1, chemistry: 1, budget: 1}\n  - {name: a, players: 1, chemistry: 1, budget: 1}\n"},
		{"empty", "presets: []\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParseCatalog_RarityIsCaseInsensitive(t *testing.T) {
	c, err := ParseCatalog([]byte("presets:\n  - name: gold_upgrade\n    players: 11\n    chemistry: 80\n    budget: 9000\n    rarity: [Gold, \" SILVER \"]\n"))
	require.NoError(t, err)

	p, ok := c.Lookup("gold_upgrade")
	require.True(t, ok)
	assert.Equal(t, []string{"gold", "silver"}, p.Rarity)

	s := NewDefault(c, logger.Nop())
	result := s.QuickSolve("gold_upgrade")
	require.NotNil(t, result.Squad)
	assert.Equal(t, contracts.RarityGold, result.Players[0].Rarity)
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	content := "presets:\n  - name: weekend_league\n    players: 5\n    chemistry: 40\n    rating: 80\n    budget: 20000\n    leagues: [Bundesliga]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)

	p, ok := catalog.Lookup("weekend_league")
	require.True(t, ok)
	assert.Equal(t, []string{"Bundesliga"}, p.Leagues)

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
