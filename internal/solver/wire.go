package solver

import (
	"fmt"

	"github.com/wonny/sbc-solver/internal/reference"
	"github.com/wonny/sbc-solver/internal/requirements"
	"github.com/wonny/sbc-solver/internal/squad"
	"github.com/wonny/sbc-solver/pkg/config"
	"github.com/wonny/sbc-solver/pkg/logger"
)

// NewFromConfig wires a solver with the default reference tables and the preset
// catalog selected by cfg
func NewFromConfig(cfg *config.Config, log *logger.Logger) (*Solver, error) {
	catalog, err := DefaultCatalog()
	if cfg.Solver.PresetsFile != "" {
		catalog, err = LoadCatalog(cfg.Solver.PresetsFile)
	}
	if err != nil {
		return nil, fmt.Errorf("load preset catalog: %w", err)
	}

	normalizerCfg := requirements.DefaultConfig()
	normalizerCfg.MaxPlayers = cfg.Solver.MaxPlayers

	return newBuiltin(normalizerCfg, catalog, log), nil
}

// NewDefault wires a solver from the built-in components and default limits
func NewDefault(catalog *Catalog, log *logger.Logger) *Solver {
	return newBuiltin(requirements.DefaultConfig(), catalog, log)
}

func newBuiltin(normalizerCfg requirements.Config, catalog *Catalog, log *logger.Logger) *Solver {
	tables := reference.Default()

	s := New(
		requirements.NewNormalizer(normalizerCfg),
		squad.NewBuilder(tables, log),
		catalog,
		log,
	)
	s.tables = tables
	return s
}
