package ports

import (
	"context"

	"github.com/campusops/student-api/internal/core/domain"
)

// SessionStore holds per-visitor session state keyed by an opaque id.
// Sessions expire a fixed TTL after their last write; every mutating call
// refreshes the clock.
type SessionStore interface {
	// Find loads a session by id, returning domain.ErrSessionNotFound when
	// the id is unknown or expired.
	Find(ctx context.Context, id string) (*domain.Session, error)
	// Save persists the session's identity and profile state and refreshes
	// its TTL. Counters are managed solely through the increment operations.
	Save(ctx context.Context, s *domain.Session) error
	// IncrementVisited and IncrementViewCount bump their counter atomically
	// and return the new value. Both create the session lazily when it does
	// not exist yet.
	IncrementVisited(ctx context.Context, id string) (int64, error)
	IncrementViewCount(ctx context.Context, id string) (int64, error)
	// Delete removes the session. Deleting an absent session is not an error.
	Delete(ctx context.Context, id string) error
}
