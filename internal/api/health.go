package api

import (
	"net/http"

	"github.com/ashureev/founder-compass/internal/store"
	"github.com/go-chi/chi/v5"
)

// HealthHandler reports service health including collaborator status.
type HealthHandler struct {
	repo             store.Repository
	generatorEnabled bool
}

// NewHealthHandler creates a health handler.
func NewHealthHandler(repo store.Repository, generatorEnabled bool) *HealthHandler {
	return &HealthHandler{repo: repo, generatorEnabled: generatorEnabled}
}

// RegisterHealth registers the detailed health route.
func (h *HealthHandler) RegisterHealth(r chi.Router) {
	r.Get("/api/health", h.Health)
}

// Health reports database reachability and whether the external generator
// is wired. A down generator is reported, not treated as unhealthy: the
// interview keeps working on the fallback.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	dbStatus := "up"
	status := http.StatusOK
	if err := h.repo.Ping(r.Context()); err != nil {
		dbStatus = "down"
		status = http.StatusServiceUnavailable
	}

	JSON(w, status, map[string]interface{}{
		"status":    dbStatus,
		"database":  dbStatus,
		"generator": h.generatorEnabled,
	})
}
