package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ashureev/founder-compass/internal/domain"
	"github.com/ashureev/founder-compass/internal/identity"
	"github.com/ashureev/founder-compass/internal/interview"
	"github.com/coder/websocket"
)

// wsTurnTimeout bounds one turn over the socket, generator call included.
const wsTurnTimeout = 60 * time.Second

// wsMessage is an inbound WebSocket frame.
type wsMessage struct {
	Type      string `json:"type"` // "turn"
	Message   string `json:"message,omitempty"`
	OptionKey string `json:"optionKey,omitempty"`
}

// wsReply is an outbound WebSocket frame. Error frames keep the socket
// open; the client may retry.
type wsReply struct {
	Type    string               `json:"type"` // "reply" or "error"
	Session *domain.Session      `json:"session,omitempty"`
	Reply   *interview.TurnReply `json:"reply,omitempty"`
	Error   string               `json:"error,omitempty"`
}

// WSHandler drives an interview over a WebSocket. Each inbound turn frame
// goes through the same engine path as the REST turn endpoint.
type WSHandler struct {
	base          *Handler
	allowedOrigin string
	isDev         bool
}

// NewWSHandler creates a WebSocket interview handler.
func NewWSHandler(base *Handler, allowedOrigin string, isDev bool) *WSHandler {
	return &WSHandler{base: base, allowedOrigin: allowedOrigin, isDev: isDev}
}

// ServeHTTP upgrades the connection and serves turn frames until the
// client disconnects.
func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	if userID == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	interviewID := identity.InterviewIDFromRequest(r)
	if interviewID == "" {
		http.Error(w, "interview_id required", http.StatusBadRequest)
		return
	}

	if !h.checkOrigin(r) {
		http.Error(w, "origin not allowed", http.StatusForbidden)
		return
	}

	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		slog.Error("failed to accept WebSocket", "error", err, "interview_id", interviewID)
		return
	}
	defer func() {
		_ = ws.Close(websocket.StatusNormalClosure, "interview channel closed")
	}()

	slog.Info("WebSocket interview channel open", "interview_id", interviewID)

	ctx := r.Context()
	for {
		var msg wsMessage
		if err := readJSON(ctx, ws, &msg); err != nil {
			return
		}
		if msg.Type != "turn" {
			h.send(ctx, ws, wsReply{Type: "error", Error: "unknown frame type"})
			continue
		}

		message := strings.TrimSpace(msg.Message)
		if message == "" {
			message = strings.TrimSpace(msg.OptionKey)
		}
		if message == "" {
			h.send(ctx, ws, wsReply{Type: "error", Error: "empty turn"})
			continue
		}

		h.send(ctx, ws, h.runTurn(ctx, userID, interviewID, message))
	}
}

func (h *WSHandler) runTurn(ctx context.Context, userID, interviewID, message string) wsReply {
	turnCtx, cancel := context.WithTimeout(ctx, wsTurnTimeout)
	defer cancel()

	session, err := h.base.repo.GetSession(turnCtx, userID, interviewID)
	if err != nil {
		slog.Error("failed to load session", "interview_id", interviewID, "error", err)
		return wsReply{Type: "error", Error: "failed to load interview"}
	}
	if session == nil {
		return wsReply{Type: "error", Error: "interview not found"}
	}

	updated, reply := h.base.engine.Turn(turnCtx, *session, message)

	if err := h.base.repo.UpsertSession(turnCtx, userID, updated); err != nil {
		slog.Error("failed to persist session", "interview_id", interviewID, "error", err)
		return wsReply{Type: "error", Error: "failed to save interview"}
	}

	return wsReply{Type: "reply", Session: &updated, Reply: &reply}
}

func (h *WSHandler) send(ctx context.Context, ws *websocket.Conn, reply wsReply) {
	data, err := json.Marshal(reply)
	if err != nil {
		return
	}
	if err := ws.Write(ctx, websocket.MessageText, data); err != nil {
		slog.Debug("WebSocket write error", "error", err)
	}
}

func readJSON(ctx context.Context, ws *websocket.Conn, v interface{}) error {
	_, data, err := ws.Read(ctx)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// checkOrigin mirrors the CORS policy for the upgrade request: in dev any
// origin is accepted, otherwise only the configured frontend.
func (h *WSHandler) checkOrigin(r *http.Request) bool {
	if h.isDev || h.allowedOrigin == "" {
		return true
	}
	origin := r.Header.Get("Origin")
	return origin == "" || strings.HasPrefix(origin, h.allowedOrigin)
}
