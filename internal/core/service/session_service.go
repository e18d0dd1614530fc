package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clinicops/directory-admin/internal/api/metrics"
	"github.com/clinicops/directory-admin/internal/core/domain"
	"github.com/clinicops/directory-admin/internal/core/ports"
)

// SessionService implements sign-in, sign-out, and session resolution on top
// of the external identity service and a server-side session store.
type SessionService struct {
	identity ports.IdentityClient
	store    ports.SessionStore
	audit    ports.AuditRecorder
	ttl      time.Duration
	logger   zerolog.Logger
}

func NewSessionService(identity ports.IdentityClient, store ports.SessionStore, audit ports.AuditRecorder, ttl time.Duration, logger zerolog.Logger) *SessionService {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &SessionService{identity: identity, store: store, audit: audit, ttl: ttl, logger: logger}
}

func (s *SessionService) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	identity, token, err := s.identity.SignInWithPassword(ctx, email, password)
	if err != nil {
		metrics.SignInsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}

	now := time.Now().UTC()
	session := &domain.Session{
		ID:          uuid.NewString(),
		UserID:      identity.ID,
		Email:       identity.Email,
		AccessToken: token.AccessToken,
		ExpiresAt:   tokenExpiry(token),
		CreatedAt:   now,
	}

	ttl := s.ttl
	if !session.ExpiresAt.IsZero() {
		if until := session.ExpiresAt.Sub(now); until < ttl {
			ttl = until
		}
	}

	if err := s.store.Save(ctx, session, ttl); err != nil {
		return nil, err
	}

	metrics.SignInsTotal.WithLabelValues("success").Inc()
	s.audit.Record(domain.AuditEntry{
		Actor:    session.Email,
		Action:   domain.AuditUserSignedIn,
		TargetID: session.UserID,
	})
	s.logger.Info().Str("user_id", session.UserID).Msg("operator signed in")

	return session, nil
}

// SignOut deletes the local session first so a failed remote revocation can
// never leave the operator signed in.
func (s *SessionService) SignOut(ctx context.Context, session *domain.Session) error {
	if session == nil {
		return nil
	}

	if err := s.store.Delete(ctx, session.ID); err != nil {
		s.logger.Error().Err(err).Str("session_id", session.ID).Msg("failed to delete session")
	}

	s.audit.Record(domain.AuditEntry{
		Actor:    session.Email,
		Action:   domain.AuditUserSignedOut,
		TargetID: session.UserID,
	})

	if err := s.identity.SignOut(ctx, session.AccessToken); err != nil {
		return err
	}
	return nil
}

func (s *SessionService) Current(ctx context.Context, sessionID string) (*domain.Session, error) {
	if sessionID == "" {
		return nil, domain.ErrNoSession
	}

	session, err := s.store.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Expired(time.Now().UTC()) {
		_ = s.store.Delete(ctx, session.ID)
		return nil, domain.ErrNoSession
	}

	return session, nil
}

// tokenExpiry prefers the expiry the identity service reported; when absent it
// falls back to the access token's exp claim. The token is not verified here:
// signature validation is the identity service's job, the claim is only used
// to avoid holding sessions for dead tokens.
func tokenExpiry(token *ports.Token) time.Time {
	if !token.ExpiresAt.IsZero() {
		return token.ExpiresAt
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token.AccessToken, claims); err != nil {
		return time.Time{}
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time.UTC()
}
