package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fortuna/courtside/internal/leaderboard"
	"github.com/fortuna/courtside/internal/service"
	"github.com/fortuna/courtside/internal/store"
)

// LeaderboardProvider is the service surface the handlers read
type LeaderboardProvider interface {
	Season() string
	Leaderboard(ctx context.Context, q leaderboard.Query) (leaderboard.Result, error)
	Teams(ctx context.Context) ([]service.TeamSummary, error)
	Metrics(mode leaderboard.Mode) []leaderboard.Metric
}

// HealthCheck reports whether one dependency is reachable
type HealthCheck func(ctx context.Context) error

// Handler contains dependencies for HTTP handlers
type Handler struct {
	boards LeaderboardProvider
	checks map[string]HealthCheck
	log    *logrus.Entry
}

// NewHandler creates a new handler
func NewHandler(boards LeaderboardProvider, checks map[string]HealthCheck, log *logrus.Entry) *Handler {
	return &Handler{boards: boards, checks: checks, log: log}
}

// HealthCheck runs every dependency check and reports 503 if any fails
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	status := http.StatusOK
	deps := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			deps[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		deps[name] = "ok"
	}

	state := "healthy"
	if status != http.StatusOK {
		state = "degraded"
	}
	respondJSON(w, status, map[string]interface{}{
		"status":       state,
		"service":      "courtside",
		"season":       h.boards.Season(),
		"dependencies": deps,
	})
}

// GetLeaderboard handles GET /api/v1/leaderboard
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	h.serveLeaderboard(w, r, "")
}

// GetPlayerLeaderboard handles GET /api/v1/leaderboard/players
func (h *Handler) GetPlayerLeaderboard(w http.ResponseWriter, r *http.Request) {
	h.serveLeaderboard(w, r, leaderboard.ModePlayers)
}

// GetTeamLeaderboard handles GET /api/v1/leaderboard/teams
func (h *Handler) GetTeamLeaderboard(w http.ResponseWriter, r *http.Request) {
	h.serveLeaderboard(w, r, leaderboard.ModeTeams)
}

func (h *Handler) serveLeaderboard(w http.ResponseWriter, r *http.Request, mode leaderboard.Mode) {
	q, err := parseQuery(r.URL.Query(), mode)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid leaderboard query", err)
		return
	}

	result, err := h.boards.Leaderboard(r.Context(), q)
	if err != nil {
		h.respondServiceError(w, "Failed to compute leaderboard", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"season": h.boards.Season(),
		"query":  q,
		"count":  result.Len(),
		"result": result,
	})
}

// GetTeams handles GET /api/v1/teams
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.boards.Teams(r.Context())
	if err != nil {
		h.respondServiceError(w, "Failed to fetch teams", err)
		return
	}

	respondJSON(w, http.StatusOK, teams)
}

// GetMetrics handles GET /api/v1/metrics?mode=
func (h *Handler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	mode, err := leaderboard.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid mode", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"mode":    mode,
		"metrics": h.boards.Metrics(mode),
	})
}

func (h *Handler) respondServiceError(w http.ResponseWriter, message string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, message, err)
		return
	}
	h.log.WithError(err).Error("❌ " + message)
	respondError(w, http.StatusInternalServerError, message, err)
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}
	if err != nil {
		response["details"] = err.Error()
	}

	respondJSON(w, status, response)
}
