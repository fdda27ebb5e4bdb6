package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/ashureev/founder-compass/internal/domain"
)

func newTestStore(t *testing.T) Repository {
	t.Helper()

	repo, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func testSession(id string, updated time.Time) domain.Session {
	s := domain.NewSession(id, updated)
	s.Phase = domain.PhaseCompany
	s.PhaseTurns = 2
	s.TotalTurns = 3
	s.Confidence = 17
	s.Profile.BusinessModel = "B2B SaaS"
	s.Profile.Tools = []string{"HubSpot", "Notion"}
	s.AppendUser("we sell software")
	s.AppendAssistant("Tell me more.")
	return s
}

func TestSessionRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	want := testSession("itv-1", now)
	if err := repo.UpsertSession(ctx, "user-a", want); err != nil {
		t.Fatalf("UpsertSession: %v", err)
	}

	got, err := repo.GetSession(ctx, "user-a", "itv-1")
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if got == nil {
		t.Fatal("session not found after upsert")
	}
	if got.Phase != domain.PhaseCompany || got.Confidence != 17 {
		t.Fatalf("got %+v", got)
	}
	if len(got.Transcript) != 2 || got.Transcript[0].Role != domain.RoleUser {
		t.Fatalf("transcript = %+v", got.Transcript)
	}
	if got.Profile.BusinessModel != "B2B SaaS" || len(got.Profile.Tools) != 2 {
		t.Fatalf("profile = %+v", got.Profile)
	}
}

func TestGetSessionMissing(t *testing.T) {
	t.Parallel()

	repo := newTestStore(t)
	got, err := repo.GetSession(context.Background(), "user-a", "absent")
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if got != nil {
		t.Fatalf("got %+v, want nil for missing session", got)
	}
}

func TestUpsertReplacesExisting(t *testing.T) {
	t.Parallel()

	repo := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	s := testSession("itv-1", now)
	if err := repo.UpsertSession(ctx, "user-a", s); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	s.Phase = domain.PhaseGTM
	s.Confidence = 42
	s.UpdatedAt = now.Add(time.Minute)
	if err := repo.UpsertSession(ctx, "user-a", s); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := repo.GetSession(ctx, "user-a", "itv-1")
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if got.Phase != domain.PhaseGTM || got.Confidence != 42 {
		t.Fatalf("got %+v, want replaced session", got)
	}
}

func TestSessionsAreScopedToOwner(t *testing.T) {
	t.Parallel()

	repo := newTestStore(t)
	ctx := context.Background()

	if err := repo.UpsertSession(ctx, "user-a", testSession("itv-1", time.Now())); err != nil {
		t.Fatalf("UpsertSession: %v", err)
	}

	got, err := repo.GetSession(ctx, "user-b", "itv-1")
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if got != nil {
		t.Fatal("session leaked across owners")
	}
}

func TestDeleteSessionIdempotent(t *testing.T) {
	t.Parallel()

	repo := newTestStore(t)
	ctx := context.Background()

	if err := repo.UpsertSession(ctx, "user-a", testSession("itv-1", time.Now())); err != nil {
		t.Fatalf("UpsertSession: %v", err)
	}
	if err := repo.DeleteSession(ctx, "user-a", "itv-1"); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}
	if got, _ := repo.GetSession(ctx, "user-a", "itv-1"); got != nil {
		t.Fatal("session still present after delete")
	}
	// Deleting again is a no-op, not an error.
	if err := repo.DeleteSession(ctx, "user-a", "itv-1"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestListSessionsOrderedByUpdate(t *testing.T) {
	t.Parallel()

	repo := newTestStore(t)
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Second)

	for i, id := range []string{"old", "mid", "new"} {
		s := testSession(id, base)
		s.UpdatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := repo.UpsertSession(ctx, "user-a", s); err != nil {
			t.Fatalf("UpsertSession %s: %v", id, err)
		}
	}
	if err := repo.UpsertSession(ctx, "user-b", testSession("other", base)); err != nil {
		t.Fatalf("UpsertSession other: %v", err)
	}

	sessions, err := repo.ListSessions(ctx, "user-a")
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("got %d sessions, want 3", len(sessions))
	}
	want := []string{"new", "mid", "old"}
	for i, id := range want {
		if sessions[i].InterviewID != id {
			t.Fatalf("sessions[%d] = %s, want %s", i, sessions[i].InterviewID, id)
		}
	}
}

func TestCleanupExpired(t *testing.T) {
	t.Parallel()

	repo := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	stale := testSession("stale", now)
	stale.UpdatedAt = now.Add(-48 * time.Hour)
	fresh := testSession("fresh", now)

	if err := repo.UpsertSession(ctx, "user-a", stale); err != nil {
		t.Fatalf("upsert stale: %v", err)
	}
	if err := repo.UpsertSession(ctx, "user-a", fresh); err != nil {
		t.Fatalf("upsert fresh: %v", err)
	}

	n, err := repo.CleanupExpired(ctx, 24*time.Hour)
	if err != nil {
		t.Fatalf("CleanupExpired: %v", err)
	}
	if n != 1 {
		t.Fatalf("removed %d sessions, want 1", n)
	}
	if got, _ := repo.GetSession(ctx, "user-a", "stale"); got != nil {
		t.Fatal("stale session survived cleanup")
	}
	if got, _ := repo.GetSession(ctx, "user-a", "fresh"); got == nil {
		t.Fatal("fresh session removed by cleanup")
	}
}

func TestPing(t *testing.T) {
	t.Parallel()

	repo := newTestStore(t)
	if err := repo.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}
