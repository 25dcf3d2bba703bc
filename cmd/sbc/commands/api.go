package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/sbc-solver/internal/api"
	"github.com/wonny/sbc-solver/internal/api/handlers"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the API server",
	Long: `Starts the REST API server.

Endpoints:
  GET  /health                - Health check
  GET  /api/presets           - Preset catalog
  POST /api/solve             - Solve a JSON requirements record
  GET  /api/solve/{preset}    - Solve a preset
  POST /api/challenge/parse   - Extract requirements from challenge HTML and solve

Example:
  go run ./cmd/sbc api
  go run ./cmd/sbc api --port 8080`,
	RunE: runAPIServer,
}

var apiPort string

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (default $PORT or 8089)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	cfg, log, s, err := bootstrap()
	if err != nil {
		return err
	}

	if apiPort != "" {
		cfg.Port = apiPort
	}

	log.WithFields(map[string]interface{}{
		"port":    cfg.Port,
		"env":     cfg.Env,
		"presets": len(s.Catalog().Names()),
	}).Info("Initializing API server")

	router := api.NewRouter(handlers.NewSolveHandler(s, log), cfg, log)
	server := api.New(cfg, log, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	fmt.Printf("\n✅ Server running on http://localhost:%s\n", cfg.Port)
	fmt.Println("\nPress Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
