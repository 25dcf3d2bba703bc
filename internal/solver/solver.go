package solver

import (
	"fmt"

	"github.com/wonny/sbc-solver/internal/contracts"
	"github.com/wonny/sbc-solver/internal/reference"
	"github.com/wonny/sbc-solver/internal/squad"
	"github.com/wonny/sbc-solver/pkg/logger"
)

// Solver is the public entry point of the squad engine.
// Solve and QuickSolve never return errors: every failure becomes a result with
// Success=false and an error message.
// ⭐ SSOT: the error → result boundary lives here only
type Solver struct {
	normalizer contracts.RequirementNormalizer
	builder    contracts.SquadBuilder
	catalog    *Catalog
	tables     *reference.Tables
	logger     *logger.Logger
}

// ReferenceData is the static data a solve draws on
type ReferenceData struct {
	Leagues    []string               `json:"leagues"`
	Nations    []string               `json:"nations"`
	Clubs      []string               `json:"clubs"`
	Rarities   []reference.RarityTier `json:"rarities"`
	Formations []string               `json:"formations"`
}

// New creates a new solver
func New(normalizer contracts.RequirementNormalizer, builder contracts.SquadBuilder, catalog *Catalog, log *logger.Logger) *Solver {
	return &Solver{
		normalizer: normalizer,
		builder:    builder,
		catalog:    catalog,
		tables:     reference.Default(),
		logger:     log,
	}
}

// Catalog returns the preset catalog
func (s *Solver) Catalog() *Catalog {
	return s.catalog
}

// Reference returns the leagues, nations, clubs, rarity tiers and formations in use
func (s *Solver) Reference() ReferenceData {
	return ReferenceData{
		Leagues:    s.tables.Leagues(),
		Nations:    s.tables.Nations(),
		Clubs:      s.tables.Clubs(),
		Rarities:   s.tables.Tiers(),
		Formations: squad.FormationNames(),
	}
}

// Solve normalizes raw, builds a squad and reports whether it meets the requirements
func (s *Solver) Solve(raw any) (result contracts.SolutionResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.WithField("panic", r).Error("Solve panicked")
			result = contracts.Failure(fmt.Errorf("solve failed: %v", r))
		}
	}()

	reqs, err := s.normalizer.Normalize(raw)
	if err != nil {
		s.logger.WithError(err).Warn("Requirements rejected")
		return contracts.Failure(err)
	}

	squad, check := s.builder.Build(reqs)

	return contracts.SolutionResult{
		Squad:   squad,
		Check:   &check,
		Success: check.Satisfied,
	}
}

// QuickSolve solves a named preset
func (s *Solver) QuickSolve(name string) contracts.SolutionResult {
	preset, ok := s.catalog.Lookup(name)
	if !ok {
		err := &contracts.UnknownPresetError{Name: name}
		s.logger.WithField("preset", name).Warn("Unknown preset")
		return contracts.Failure(err)
	}

	s.logger.WithField("preset", name).Debug("Quick solve")
	return s.Solve(preset.Raw())
}
