package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/wonny/sbc-solver/internal/api/handlers"
	"github.com/wonny/sbc-solver/pkg/config"
	"github.com/wonny/sbc-solver/pkg/logger"
)

// NewRouter creates and configures the HTTP router
// ⭐ SSOT: routing is configured here only
func NewRouter(solveHandler *handlers.SolveHandler, cfg *config.Config, log *logger.Logger) http.Handler {
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/presets", solveHandler.ListPresets).Methods("GET")
	api.HandleFunc("/reference", solveHandler.Reference).Methods("GET")
	api.HandleFunc("/solve", solveHandler.Solve).Methods("POST")
	api.HandleFunc("/solve/{preset}", solveHandler.QuickSolve).Methods("GET")
	api.HandleFunc("/challenge/parse", solveHandler.ParseChallenge).Methods("POST")

	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)

	// Outermost first
	r.Use(requestIDMiddleware)
	r.Use(recoveryMiddleware(log))
	r.Use(loggingMiddleware(log))
	api.Use(rateLimitMiddleware(limiter, log))

	return r
}

// healthCheckHandler returns server health status
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"service": "sbc-solver-api",
	})
}
