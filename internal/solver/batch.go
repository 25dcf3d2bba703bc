package solver

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/wonny/sbc-solver/internal/contracts"
)

// maxBatchConcurrency bounds concurrent quick solves
const maxBatchConcurrency = 4

// BatchEntry is one preset's result in a batch
type BatchEntry struct {
	Preset string                   `json:"preset"`
	Result contracts.SolutionResult `json:"result"`
}

// SolveBatch quick-solves every name concurrently and returns entries in input order.
// Solves share no mutable state; the only error is context cancellation.
func (s *Solver) SolveBatch(ctx context.Context, names []string) ([]BatchEntry, error) {
	entries := make([]BatchEntry, len(names))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxBatchConcurrency)

	for i, name := range names {
		if err := gCtx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			// each goroutine writes only its own index
			entries[i] = BatchEntry{Preset: name, Result: s.QuickSolve(name)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.logger.WithField("presets", len(names)).Info("Batch solved")
	return entries, nil
}
