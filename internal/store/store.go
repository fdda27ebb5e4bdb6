// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"
	"time"

	"github.com/ashureev/founder-compass/internal/domain"
)

// Repository persists interview sessions. The session value is stored
// whole: this layer never interprets or mutates it, so the JSON shape
// round-trips losslessly between turns.
type Repository interface {
	// GetSession retrieves a session by owner and interview id.
	// Returns (nil, nil) when no such session exists.
	GetSession(ctx context.Context, userID, interviewID string) (*domain.Session, error)

	// UpsertSession creates or replaces the stored session for its owner.
	UpsertSession(ctx context.Context, userID string, session domain.Session) error

	// DeleteSession removes a session. Deleting a missing session is not
	// an error.
	DeleteSession(ctx context.Context, userID, interviewID string) error

	// ListSessions returns the owner's sessions, most recently updated
	// first.
	ListSessions(ctx context.Context, userID string) ([]domain.Session, error)

	// CleanupExpired removes sessions not updated within ttl and reports
	// how many were removed.
	CleanupExpired(ctx context.Context, ttl time.Duration) (int64, error)

	// Ping verifies database connectivity.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close() error
}
