package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wonny/sbc-solver/internal/contracts"
	"github.com/wonny/sbc-solver/internal/requirements"
	"github.com/wonny/sbc-solver/internal/solver"
	"github.com/wonny/sbc-solver/pkg/logger"
)

// maxBodyBytes bounds request bodies (requirements JSON or challenge HTML)
const maxBodyBytes = 1 << 20

// SolveHandler handles solve API endpoints
// ⭐ SSOT: solve API handlers live in this struct only
type SolveHandler struct {
	solver *solver.Solver
	logger *logger.Logger
}

// NewSolveHandler creates a new solve handler
func NewSolveHandler(s *solver.Solver, log *logger.Logger) *SolveHandler {
	return &SolveHandler{
		solver: s,
		logger: log,
	}
}

// ListPresets returns the quick-solve catalog
// GET /api/presets
func (h *SolveHandler) ListPresets(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"presets":    h.solver.Catalog().Presets(),
		"formations": h.solver.Reference().Formations,
	})
}

// Reference returns the static data solves draw on
// GET /api/reference
func (h *SolveHandler) Reference(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.solver.Reference())
}

// Solve solves a requirements record from the JSON body.
// Unsatisfied squads are still 200: success=false is part of the result.
// POST /api/solve
func (h *SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	var raw any
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		respondError(w, http.StatusBadRequest, "request body must be JSON")
		return
	}

	respondJSON(w, http.StatusOK, h.solver.Solve(raw))
}

// QuickSolve solves a named preset
// GET /api/solve/{preset}
func (h *SolveHandler) QuickSolve(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["preset"]

	if _, ok := h.solver.Catalog().Lookup(name); !ok {
		respondJSON(w, http.StatusNotFound, contracts.Failure(&contracts.UnknownPresetError{Name: name}))
		return
	}

	respondJSON(w, http.StatusOK, h.solver.QuickSolve(name))
}

// ParseChallenge extracts requirements from a challenge page and solves them
// POST /api/challenge/parse
func (h *SolveHandler) ParseChallenge(w http.ResponseWriter, r *http.Request) {
	raw, err := requirements.ParseChallengeHTML(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		h.logger.WithError(err).Warn("Failed to parse challenge page")
		respondError(w, http.StatusBadRequest, "failed to parse challenge page")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"requirements": raw,
		"solution":     h.solver.Solve(raw),
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"error":   message,
		"success": false,
	})
}
