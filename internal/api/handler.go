// Package api provides HTTP handlers for the interview API.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ashureev/founder-compass/internal/interview"
	"github.com/ashureev/founder-compass/internal/scraper"
	"github.com/ashureev/founder-compass/internal/store"
)

// maxRequestBodySize is the maximum allowed request body size (1MB).
const maxRequestBodySize = 1 << 20

// Handler provides common handler dependencies.
type Handler struct {
	repo    store.Repository
	engine  *interview.Engine
	scraper *scraper.Scraper // nil when scraping is disabled
}

// NewHandler creates a new Handler with common dependencies.
func NewHandler(repo store.Repository, engine *interview.Engine, sc *scraper.Scraper) *Handler {
	return &Handler{repo: repo, engine: engine, scraper: sc}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// decode reads a bounded JSON request body into v.
func decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	return json.NewDecoder(r.Body).Decode(v)
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
