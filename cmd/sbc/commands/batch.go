package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch [preset...]",
	Short: "Solve several presets concurrently",
	Long: `Solves the given presets (all presets when none are given) concurrently.

Example:
  go run ./cmd/sbc batch
  go run ./cmd/sbc batch daily_silver daily_gold --pretty`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	_, _, s, err := bootstrap()
	if err != nil {
		return err
	}

	names := args
	if len(names) == 0 {
		names = s.Catalog().Names()
	}

	entries, err := s.SolveBatch(cmd.Context(), names)
	if err != nil {
		return fmt.Errorf("batch solve: %w", err)
	}

	if !pretty {
		return printJSON(entries)
	}

	PrintDoubleSeparator()
	fmt.Printf("  %-18s %8s %9s %6s  %s\n", "PRESET", "COST", "CHEMISTRY", "RATING", "RESULT")
	PrintSeparator()
	for _, e := range entries {
		if e.Result.Squad == nil {
			fmt.Printf("  %-18s %s\n", e.Preset, e.Result.Error)
			continue
		}
		fmt.Printf("  %-18s %8d %9d %6d  %s\n",
			e.Preset, e.Result.TotalCost, e.Result.TotalChemistry, e.Result.TotalRating, outcome(e.Result.Success))
	}
	PrintDoubleSeparator()
	return nil
}
