package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/ashureev/founder-compass/internal/domain"
	"github.com/ashureev/founder-compass/internal/identity"
	"github.com/ashureev/founder-compass/internal/interview"
	"github.com/ashureev/founder-compass/internal/profile"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// startRequest opens a new interview. The website is optional seed data.
type startRequest struct {
	WebsiteURL string `json:"websiteUrl,omitempty"`
}

// turnRequest carries one user turn. Message or OptionKey must be set;
// when only an option was clicked its key becomes the utterance.
type turnRequest struct {
	InterviewID string `json:"interviewId"`
	Message     string `json:"message"`
	OptionKey   string `json:"optionKey,omitempty"`
}

// sessionResponse pairs the full session snapshot with the turn reply.
type sessionResponse struct {
	Session domain.Session      `json:"session"`
	Reply   interview.TurnReply `json:"reply"`
}

// RegisterRoutes registers the interview routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/interview/start", h.Start)
		r.Post("/interview/turn", h.Turn)
		r.Get("/interviews", h.List)
		r.Route("/interview/{id}", func(r chi.Router) {
			r.Get("/", h.Get)
			r.Get("/report", h.GetReport)
			r.Delete("/", h.Delete)
		})
	})
}

// Start creates an empty session, optionally seeds the profile from the
// stakeholder's website, and returns the opening message.
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	if userID == "" {
		Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req startRequest
	// The start body is optional; an empty or absent body is fine.
	_ = decode(w, r, &req)

	session := domain.NewSession(uuid.NewString(), nowUTC())

	if h.scraper != nil && strings.TrimSpace(req.WebsiteURL) != "" {
		facts, err := h.scraper.Fetch(r.Context(), req.WebsiteURL)
		if err != nil {
			// Scraped facts are optional seed data, never required.
			slog.Info("website scrape skipped", "interview_id", session.InterviewID, "error", err)
		} else {
			session.Profile = profile.ApplyUpdates(session.Profile, facts.AsUpdates())
		}
	}

	session, reply := h.engine.Open(r.Context(), session)

	if err := h.repo.UpsertSession(r.Context(), userID, session); err != nil {
		slog.Error("failed to persist new session", "interview_id", session.InterviewID, "error", err)
		Error(w, http.StatusInternalServerError, "failed to save interview")
		return
	}

	JSON(w, http.StatusCreated, sessionResponse{Session: session, Reply: reply})
}

// Turn runs one full interview turn.
func (h *Handler) Turn(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	if userID == "" {
		Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req turnRequest
	if err := decode(w, r, &req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		message = strings.TrimSpace(req.OptionKey)
	}
	if req.InterviewID == "" || message == "" {
		Error(w, http.StatusBadRequest, "interviewId and message are required")
		return
	}

	session, err := h.repo.GetSession(r.Context(), userID, req.InterviewID)
	if err != nil {
		slog.Error("failed to load session", "interview_id", req.InterviewID, "error", err)
		Error(w, http.StatusInternalServerError, "failed to load interview")
		return
	}
	if session == nil {
		Error(w, http.StatusNotFound, "interview not found")
		return
	}

	updated, reply := h.engine.Turn(r.Context(), *session, message)

	if err := h.repo.UpsertSession(r.Context(), userID, updated); err != nil {
		slog.Error("failed to persist session", "interview_id", updated.InterviewID, "error", err)
		Error(w, http.StatusInternalServerError, "failed to save interview")
		return
	}

	JSON(w, http.StatusOK, sessionResponse{Session: updated, Reply: reply})
}

// Get returns the current session snapshot.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	JSON(w, http.StatusOK, session)
}

// GetReport returns the structured report inputs for the narrative step.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	session, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	JSON(w, http.StatusOK, h.engine.Report(*session))
}

// Delete forgets an interview.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	if userID == "" {
		Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id := chi.URLParam(r, "id")
	if err := h.repo.DeleteSession(r.Context(), userID, id); err != nil {
		slog.Error("failed to delete session", "interview_id", id, "error", err)
		Error(w, http.StatusInternalServerError, "failed to delete interview")
		return
	}
	JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// List returns the caller's interviews, most recent first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	if userID == "" {
		Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	sessions, err := h.repo.ListSessions(r.Context(), userID)
	if err != nil {
		slog.Error("failed to list sessions", "user_id", userID, "error", err)
		Error(w, http.StatusInternalServerError, "failed to list interviews")
		return
	}
	if sessions == nil {
		sessions = []domain.Session{}
	}
	JSON(w, http.StatusOK, sessions)
}

func (h *Handler) loadSession(w http.ResponseWriter, r *http.Request) (*domain.Session, bool) {
	userID := identity.UserIDFromContext(r.Context())
	if userID == "" {
		Error(w, http.StatusUnauthorized, "unauthorized")
		return nil, false
	}

	id := chi.URLParam(r, "id")
	session, err := h.repo.GetSession(r.Context(), userID, id)
	if err != nil {
		slog.Error("failed to load session", "interview_id", id, "error", err)
		Error(w, http.StatusInternalServerError, "failed to load interview")
		return nil, false
	}
	if session == nil {
		Error(w, http.StatusNotFound, "interview not found")
		return nil, false
	}
	return session, true
}
