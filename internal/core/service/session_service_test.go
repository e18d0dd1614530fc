package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/clinicops/directory-admin/internal/core/domain"
	"github.com/clinicops/directory-admin/internal/core/ports"
)

func newSessionService(idc *stubIdentityClient, store *stubSessionStore, rec *stubRecorder) *SessionService {
	return NewSessionService(idc, store, rec, time.Hour, zerolog.Nop())
}

func TestSessionService_SignIn_Success(t *testing.T) {
	idc := &stubIdentityClient{
		signInFn: func(_ context.Context, email, password string) (*ports.Identity, *ports.Token, error) {
			if email != "admin@clinic.example" || password != "pw123456" {
				t.Fatalf("unexpected credentials: %s %s", email, password)
			}
			return &ports.Identity{ID: "op1", Email: email},
				&ports.Token{AccessToken: "tok", ExpiresAt: time.Now().Add(time.Hour)},
				nil
		},
	}
	store := newStubSessionStore()
	rec := &stubRecorder{}

	session, err := newSessionService(idc, store, rec).SignIn(context.Background(), "admin@clinic.example", "pw123456")
	if err != nil {
		t.Fatalf("SignIn returned error: %v", err)
	}
	if session.ID == "" {
		t.Fatalf("expected generated session ID")
	}
	if session.UserID != "op1" || session.AccessToken != "tok" {
		t.Fatalf("unexpected session: %+v", session)
	}

	if _, err := store.Find(context.Background(), session.ID); err != nil {
		t.Fatalf("session not persisted: %v", err)
	}

	entries := rec.recorded()
	if len(entries) != 1 || entries[0].Action != domain.AuditUserSignedIn {
		t.Fatalf("unexpected audit entries: %+v", entries)
	}
}

func TestSessionService_SignIn_TTLBoundedByTokenExpiry(t *testing.T) {
	idc := &stubIdentityClient{
		signInFn: func(context.Context, string, string) (*ports.Identity, *ports.Token, error) {
			return &ports.Identity{ID: "op1", Email: "a@b.c"},
				&ports.Token{AccessToken: "tok", ExpiresAt: time.Now().Add(10 * time.Minute)},
				nil
		},
	}
	store := newStubSessionStore()

	if _, err := newSessionService(idc, store, &stubRecorder{}).SignIn(context.Background(), "a@b.c", "pw123456"); err != nil {
		t.Fatalf("SignIn returned error: %v", err)
	}
	if store.lastTTL > 10*time.Minute {
		t.Fatalf("session TTL %v outlives token expiry", store.lastTTL)
	}
}

func TestSessionService_SignIn_Failure(t *testing.T) {
	remote := &domain.RemoteError{Op: "sign in", StatusCode: 400, Message: "Invalid login credentials"}
	idc := &stubIdentityClient{
		signInFn: func(context.Context, string, string) (*ports.Identity, *ports.Token, error) {
			return nil, nil, remote
		},
	}
	store := newStubSessionStore()

	_, err := newSessionService(idc, store, &stubRecorder{}).SignIn(context.Background(), "a@b.c", "wrong")
	if !errors.Is(err, remote) {
		t.Fatalf("expected remote error, got %v", err)
	}
	if len(store.sessions) != 0 {
		t.Fatalf("no session should be stored on failure")
	}
}

func TestSessionService_Current_Missing(t *testing.T) {
	svc := newSessionService(&stubIdentityClient{}, newStubSessionStore(), &stubRecorder{})

	if _, err := svc.Current(context.Background(), "ghost"); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
	if _, err := svc.Current(context.Background(), ""); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession for empty id, got %v", err)
	}
}

func TestSessionService_Current_ExpiredTokenEndsSession(t *testing.T) {
	store := newStubSessionStore()
	_ = store.Save(context.Background(), &domain.Session{
		ID:          "s1",
		UserID:      "op1",
		AccessToken: "tok",
		ExpiresAt:   time.Now().Add(-time.Minute),
	}, time.Hour)

	svc := newSessionService(&stubIdentityClient{}, store, &stubRecorder{})
	if _, err := svc.Current(context.Background(), "s1"); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession for expired token, got %v", err)
	}
	if _, ok := store.sessions["s1"]; ok {
		t.Fatalf("expired session should be deleted from the store")
	}
}

func TestSessionService_SignOut_DeletesLocalSessionEvenOnRemoteFailure(t *testing.T) {
	store := newStubSessionStore()
	session := &domain.Session{ID: "s1", UserID: "op1", Email: "a@b.c", AccessToken: "tok"}
	_ = store.Save(context.Background(), session, time.Hour)

	idc := &stubIdentityClient{
		signOutFn: func(context.Context, string) error {
			return &domain.RemoteError{Op: "sign out", StatusCode: 500}
		},
	}
	rec := &stubRecorder{}

	err := newSessionService(idc, store, rec).SignOut(context.Background(), session)
	if err == nil {
		t.Fatalf("expected remote sign-out error to surface")
	}
	if _, ok := store.sessions["s1"]; ok {
		t.Fatalf("local session must be deleted despite remote failure")
	}

	entries := rec.recorded()
	if len(entries) != 1 || entries[0].Action != domain.AuditUserSignedOut {
		t.Fatalf("unexpected audit entries: %+v", entries)
	}
}

func TestTokenExpiry_FallsBackToJWTClaim(t *testing.T) {
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "op1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("remote-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	got := tokenExpiry(&ports.Token{AccessToken: signed})
	if !got.Equal(exp.UTC()) {
		t.Fatalf("expected %v, got %v", exp.UTC(), got)
	}
}

func TestTokenExpiry_ZeroForOpaqueToken(t *testing.T) {
	if got := tokenExpiry(&ports.Token{AccessToken: "not-a-jwt"}); !got.IsZero() {
		t.Fatalf("expected zero expiry, got %v", got)
	}
}
