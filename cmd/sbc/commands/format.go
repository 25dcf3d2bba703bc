package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/wonny/sbc-solver/internal/contracts"
)

// ═══════════════════════════════════════════════════════════
// Common output helpers shared by every command
// ═══════════════════════════════════════════════════════════

// printResult prints a solution as JSON (or a table with --pretty).
// A result carrying an error also fails the command.
func printResult(result contracts.SolutionResult) error {
	if pretty {
		PrintSolution(result)
	} else if err := printJSON(result); err != nil {
		return err
	}

	if result.Error != "" {
		return errors.New(result.Error)
	}
	return nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintSolution prints a human-readable solution
func PrintSolution(result contracts.SolutionResult) {
	if result.Squad == nil {
		PrintWarning(result.Error)
		return
	}

	fmt.Println()
	PrintDoubleSeparator()
	fmt.Printf("  Formation : %s\n", result.Formation.Name)
	PrintSeparator()
	fmt.Printf("  %-4s %6s  %-7s %-20s %-12s %-20s %6s %4s\n", "POS", "RATING", "RARITY", "LEAGUE", "NATION", "CLUB", "COST", "CHEM")
	for _, p := range result.Players {
		fmt.Printf("  %-4s %6d  %-7s %-20s %-12s %-20s %6d %4d\n",
			p.Position, p.Rating, p.Rarity, p.League, p.Nation, p.Club, p.Cost, p.Chemistry)
	}
	PrintSeparator()
	fmt.Printf("  Total cost      : %d\n", result.TotalCost)
	fmt.Printf("  Total chemistry : %d\n", result.TotalChemistry)
	fmt.Printf("  Squad rating    : %d\n", result.TotalRating)
	fmt.Printf("  Result          : %s\n", outcome(result.Success))

	if len(result.Warnings) > 0 {
		PrintSeparator()
		for _, w := range result.Warnings {
			fmt.Printf("  ⚠️  %s\n", w)
		}
	}

	PrintSeparator()
	for _, s := range result.Strategies {
		fmt.Printf("  💡 %s\n", s)
	}
	PrintDoubleSeparator()
}

func outcome(success bool) string {
	if success {
		return "✅ requirements met"
	}
	return "❌ requirements not met"
}

// PrintSeparator prints a visual separator
func PrintSeparator() {
	fmt.Println(strings.Repeat("─", 59))
}

// PrintDoubleSeparator prints a double-line separator
func PrintDoubleSeparator() {
	fmt.Println(strings.Repeat("═", 59))
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Println()
	fmt.Printf("⚠️  %s\n", message)
	fmt.Println()
}
