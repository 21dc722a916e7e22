package rest

import (
	"context"
	"net/http"
)

// Refresher runs the snapshot refresh on demand
type Refresher interface {
	Refresh(ctx context.Context) (bool, error)
	GetStatus() map[string]interface{}
}

// RefreshHandler exposes the orchestrator to operators
type RefreshHandler struct {
	refresher Refresher
}

// NewRefreshHandler wires the REST layer to the orchestrator
func NewRefreshHandler(refresher Refresher) *RefreshHandler {
	return &RefreshHandler{refresher: refresher}
}

// HandleRefresh handles POST /api/v1/refresh
func (h *RefreshHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	changed, err := h.refresher.Refresh(r.Context())
	if err != nil {
		respondError(w, http.StatusBadGateway, "Refresh failed", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"changed": changed,
		"status":  h.refresher.GetStatus(),
	})
}

// HandleRefreshStatus handles GET /api/v1/refresh/status
func (h *RefreshHandler) HandleRefreshStatus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.refresher.GetStatus())
}
