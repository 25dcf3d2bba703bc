package commands

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wonny/sbc-solver/internal/requirements"
	"github.com/wonny/sbc-solver/pkg/httputil"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse [challenge.html]",
	Short: "Extract requirements from a challenge page",
	Long: `Reads a challenge page (saved file or --url), extracts its requirements and solves them.

Example:
  go run ./cmd/sbc parse challenge.html
  go run ./cmd/sbc parse --url https://example.com/sbc/daily-silver
  go run ./cmd/sbc parse challenge.html --only-requirements`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

var (
	parseURL              string
	parseOnlyRequirements bool
)

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVar(&parseURL, "url", "", "download the challenge page from this URL")
	parseCmd.Flags().BoolVar(&parseOnlyRequirements, "only-requirements", false, "print the extracted requirements without solving")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, log, s, err := bootstrap()
	if err != nil {
		return err
	}

	var page io.Reader
	switch {
	case parseURL != "" && len(args) == 0:
		body, err := httputil.New(cfg, log).FetchPage(cmd.Context(), parseURL)
		if err != nil {
			return err
		}
		page = bytes.NewReader(body)
	case parseURL == "" && len(args) == 1:
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open challenge page: %w", err)
		}
		defer f.Close()
		page = f
	default:
		return fmt.Errorf("give either a file or --url")
	}

	raw, err := requirements.ParseChallengeHTML(page)
	if err != nil {
		return err
	}

	log.WithField("requirements", raw).Debug("Challenge requirements extracted")

	if parseOnlyRequirements {
		return printJSON(raw)
	}
	return printResult(s.Solve(raw))
}
