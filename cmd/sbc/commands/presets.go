package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// presetsCmd represents the presets command
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List quick-solve presets",
	RunE:  runPresets,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(cmd *cobra.Command, args []string) error {
	_, _, s, err := bootstrap()
	if err != nil {
		return err
	}

	presets := s.Catalog().Presets()
	if !pretty {
		return printJSON(presets)
	}

	PrintDoubleSeparator()
	fmt.Printf("  %-18s %7s %9s %6s %8s  %s\n", "NAME", "PLAYERS", "CHEMISTRY", "RATING", "BUDGET", "RARITY")
	PrintSeparator()
	for _, p := range presets {
		rarity := strings.Join(p.Rarity, ",")
		if rarity == "" {
			rarity = "-"
		}
		fmt.Printf("  %-18s %7d %9d %6d %8.0f  %s\n", p.Name, p.Players, p.Chemistry, p.Rating, p.Budget, rarity)
	}
	PrintSeparator()
	fmt.Printf("  Formations: %s\n", strings.Join(s.Reference().Formations, ", "))
	PrintDoubleSeparator()
	return nil
}
