package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/sbc-solver/internal/solver"
	"github.com/wonny/sbc-solver/pkg/config"
	"github.com/wonny/sbc-solver/pkg/logger"
)

var (
	// Global flags
	verbose bool
	pretty  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sbc",
	Short: "SBC solver - squad building challenge helper",
	Long: `SBC Solver CLI

Builds a candidate squad for a squad building challenge from its requirements
(size, chemistry, rating, budget, league/nation/club/rarity constraints) and
reports cost, chemistry, rating and advice.

Usage:
  go run ./cmd/sbc [command]

Examples:
  go run ./cmd/sbc quick daily_silver
  go run ./cmd/sbc solve --players 11 --chemistry 95 --rating 70 --budget 8000 --rarity silver
  go run ./cmd/sbc parse challenge.html
  go run ./cmd/sbc api`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "print a table instead of JSON")
}

// bootstrap loads config and wires the logger and solver shared by all commands
func bootstrap() (*config.Config, *logger.Logger, *solver.Solver, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	log := logger.New(cfg)

	s, err := solver.NewFromConfig(cfg, log)
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, log, s, nil
}
