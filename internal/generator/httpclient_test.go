package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ashureev/founder-compass/internal/domain"
)

func newTestService(t *testing.T, turn http.HandlerFunc) *Client {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("POST /v1/turn", turn)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client, err := NewClient(DefaultClientConfig(srv.URL), nil)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestNewClientFailsWhenUnreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	if _, err := NewClient(DefaultClientConfig(srv.URL), nil); err == nil {
		t.Fatal("expected error for unreachable service")
	}
}

func TestNewClientRejectsEmptyBaseURL(t *testing.T) {
	t.Parallel()

	if _, err := NewClient(DefaultClientConfig(""), nil); err == nil {
		t.Fatal("expected error for empty base URL")
	}
}

func TestClientNextTurn(t *testing.T) {
	t.Parallel()

	var gotReq TurnRequest
	client := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(TurnResult{
			Message: "What is your monthly revenue?",
			Options: []Option{{Key: "share", Label: "I'll share numbers"}, {Key: "skip", Label: "Skip"}},
			Updates: map[string]any{"businessModel": "B2B SaaS"},
		})
	})

	res, err := client.NextTurn(context.Background(), TurnRequest{
		InterviewID: "itv-1",
		Phase:       domain.PhaseCompany,
		UserMessage: "we sell software",
	})
	if err != nil {
		t.Fatalf("NextTurn: %v", err)
	}
	if res.Message != "What is your monthly revenue?" {
		t.Fatalf("message = %q", res.Message)
	}
	if res.Updates["businessModel"] != "B2B SaaS" {
		t.Fatalf("updates = %+v", res.Updates)
	}
	if gotReq.InterviewID != "itv-1" || gotReq.Phase != domain.PhaseCompany {
		t.Fatalf("service saw request %+v", gotReq)
	}
}

func TestClientNextTurnEmptyMessage(t *testing.T) {
	t.Parallel()

	client := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(TurnResult{Message: "   "})
	})

	if _, err := client.NextTurn(context.Background(), TurnRequest{}); err == nil {
		t.Fatal("expected error for blank message")
	}
}

func TestClientNextTurnServerError(t *testing.T) {
	t.Parallel()

	client := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	if _, err := client.NextTurn(context.Background(), TurnRequest{}); err == nil {
		t.Fatal("expected error for 500 response")
	}
}
