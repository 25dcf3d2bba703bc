package commands

import (
	"github.com/spf13/cobra"
)

// quickCmd represents the quick command
var quickCmd = &cobra.Command{
	Use:   "quick <preset>",
	Short: "Solve a named preset",
	Long: `Solves one of the preset challenges.

Example:
  go run ./cmd/sbc quick daily_silver
  go run ./cmd/sbc quick 84_plus_upgrade --pretty`,
	Args: cobra.ExactArgs(1),
	RunE: runQuick,
}

func init() {
	rootCmd.AddCommand(quickCmd)
}

func runQuick(cmd *cobra.Command, args []string) error {
	_, _, s, err := bootstrap()
	if err != nil {
		return err
	}

	return printResult(s.QuickSolve(args[0]))
}
