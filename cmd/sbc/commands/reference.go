package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// referenceCmd represents the reference command
var referenceCmd = &cobra.Command{
	Use:   "reference",
	Short: "Show leagues, nations, clubs, rarity tiers and formations",
	RunE:  runReference,
}

func init() {
	rootCmd.AddCommand(referenceCmd)
}

func runReference(cmd *cobra.Command, args []string) error {
	_, _, s, err := bootstrap()
	if err != nil {
		return err
	}

	ref := s.Reference()
	if !pretty {
		return printJSON(ref)
	}

	PrintDoubleSeparator()
	fmt.Printf("  Leagues    : %s\n", strings.Join(ref.Leagues, ", "))
	fmt.Printf("  Nations    : %s\n", strings.Join(ref.Nations, ", "))
	fmt.Printf("  Clubs      : %s\n", strings.Join(ref.Clubs, ", "))
	fmt.Printf("  Formations : %s\n", strings.Join(ref.Formations, ", "))
	PrintSeparator()
	fmt.Printf("  %-7s %9s %9s\n", "RARITY", "RATINGS", "BASE COST")
	for _, tier := range ref.Rarities {
		fmt.Printf("  %-7s %4d - %2d %9.0f\n", tier.Rarity, tier.Bounds.Min, tier.Bounds.Max, tier.BaseCost)
	}
	PrintDoubleSeparator()
	return nil
}
