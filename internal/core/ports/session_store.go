package ports

import (
	"context"
	"time"

	"github.com/clinicops/directory-admin/internal/core/domain"
)

// SessionStore persists server-side session state keyed by session ID.
type SessionStore interface {
	// Save stores the session with the given time-to-live.
	Save(ctx context.Context, session *domain.Session, ttl time.Duration) error

	// Find returns the session with the given ID, or domain.ErrNoSession
	// when it does not exist (or has expired out of the store).
	Find(ctx context.Context, id string) (*domain.Session, error)

	// Delete removes the session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error
}
