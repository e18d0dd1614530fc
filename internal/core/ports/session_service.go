package ports

import (
	"context"

	"github.com/clinicops/directory-admin/internal/core/domain"
)

// SessionService owns the sign-in/sign-out lifecycle and session lookup.
type SessionService interface {
	// SignIn authenticates against the identity service and creates a
	// server-side session on success.
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)

	// SignOut revokes the access token remotely and deletes the local
	// session. The local session is deleted even when revocation fails.
	SignOut(ctx context.Context, session *domain.Session) error

	// Current resolves a session ID to its live session. Returns
	// domain.ErrNoSession when the session is absent or its token expired.
	Current(ctx context.Context, sessionID string) (*domain.Session, error)
}
