package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wonny/sbc-solver/internal/contracts"
	"github.com/wonny/sbc-solver/internal/squad"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a requirements record",
	Long: `Builds a squad for the given requirements.

Requirements come from --file (JSON or YAML) or from flags.

Example:
  go run ./cmd/sbc solve --file requirements.json
  go run ./cmd/sbc solve --players 11 --chemistry 95 --rating 70 --budget 8000 --rarity silver
  go run ./cmd/sbc solve --players 11 --chemistry 80 --league "Premier League" --formation 4-4-2`,
	RunE: runSolve,
}

var (
	solveFile      string
	solvePlayers   int
	solveChemistry int
	solveRating    int
	solveBudget    float64
	solveLeagues   []string
	solveNations   []string
	solveClubs     []string
	solveRarities  []string
	solveFormation string
)

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", "requirements file (.json, .yaml, .yml)")
	solveCmd.Flags().IntVar(&solvePlayers, "players", 11, "squad size")
	solveCmd.Flags().IntVar(&solveChemistry, "chemistry", 100, "minimum chemistry")
	solveCmd.Flags().IntVar(&solveRating, "rating", 75, "minimum squad rating")
	solveCmd.Flags().Float64Var(&solveBudget, "budget", 50000, "maximum total cost")
	solveCmd.Flags().StringSliceVar(&solveLeagues, "league", nil, "allowed leagues")
	solveCmd.Flags().StringSliceVar(&solveNations, "nation", nil, "allowed nations")
	solveCmd.Flags().StringSliceVar(&solveClubs, "club", nil, "allowed clubs")
	solveCmd.Flags().StringSliceVar(&solveRarities, "rarity", nil, "allowed rarities (bronze, silver, gold)")
	solveCmd.Flags().StringVar(&solveFormation, "formation", "",
		fmt.Sprintf("formation name (%s)", strings.Join(squad.FormationNames(), ", ")))
}

func runSolve(cmd *cobra.Command, args []string) error {
	_, _, s, err := bootstrap()
	if err != nil {
		return err
	}

	var raw any
	if solveFile != "" {
		raw, err = readRequirementsFile(solveFile)
		if err != nil {
			return err
		}
	} else {
		raw = requirementsFromFlags(cmd)
	}

	return printResult(s.Solve(raw))
}

// requirementsFromFlags always carries players and chemistry; optional keys only
// when the flag was set
func requirementsFromFlags(cmd *cobra.Command) contracts.RawRequirements {
	raw := contracts.RawRequirements{
		contracts.KeyPlayers:   solvePlayers,
		contracts.KeyChemistry: solveChemistry,
	}

	flags := cmd.Flags()
	if flags.Changed("rating") {
		raw[contracts.KeyRating] = solveRating
	}
	if flags.Changed("budget") {
		raw[contracts.KeyBudget] = solveBudget
	}
	if len(solveLeagues) > 0 {
		raw[contracts.KeyLeagues] = solveLeagues
	}
	if len(solveNations) > 0 {
		raw[contracts.KeyNations] = solveNations
	}
	if len(solveClubs) > 0 {
		raw[contracts.KeyClubs] = solveClubs
	}
	if len(solveRarities) > 0 {
		raw[contracts.KeyRarity] = solveRarities
	}
	if solveFormation != "" {
		raw[contracts.KeyFormation] = solveFormation
	}
	return raw
}

// readRequirementsFile decodes a JSON or YAML requirements file without imposing a
// shape; the normalizer decides what is valid
func readRequirementsFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read requirements: %w", err)
	}

	var raw any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("decode requirements: %w", err)
	}

	return raw, nil
}
