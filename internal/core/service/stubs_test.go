package service

import (
	"context"
	"sync"
	"time"

	"github.com/clinicops/directory-admin/internal/core/domain"
	"github.com/clinicops/directory-admin/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs for the external service, session store, and audit recorder
// ---------------------------------------------------------------------------

type stubIdentityClient struct {
	signUpFn  func(ctx context.Context, email, password string) (*ports.Identity, error)
	signInFn  func(ctx context.Context, email, password string) (*ports.Identity, *ports.Token, error)
	signOutFn func(ctx context.Context, accessToken string) error

	signUpCalls  int
	signOutCalls int
}

func (s *stubIdentityClient) SignUp(ctx context.Context, email, password string) (*ports.Identity, error) {
	s.signUpCalls++
	return s.signUpFn(ctx, email, password)
}

func (s *stubIdentityClient) SignInWithPassword(ctx context.Context, email, password string) (*ports.Identity, *ports.Token, error) {
	return s.signInFn(ctx, email, password)
}

func (s *stubIdentityClient) SignOut(ctx context.Context, accessToken string) error {
	s.signOutCalls++
	if s.signOutFn != nil {
		return s.signOutFn(ctx, accessToken)
	}
	return nil
}

type stubDirectoryClient struct {
	listFn   func(ctx context.Context, accessToken string) ([]domain.UserRecord, error)
	updateFn func(ctx context.Context, accessToken, id string, update ports.ProfileUpdate) error

	listCalls   int
	updateCalls int
	lastUpdate  ports.ProfileUpdate
	lastID      string
}

func (s *stubDirectoryClient) ListUsers(ctx context.Context, accessToken string) ([]domain.UserRecord, error) {
	s.listCalls++
	return s.listFn(ctx, accessToken)
}

func (s *stubDirectoryClient) UpdateUser(ctx context.Context, accessToken, id string, update ports.ProfileUpdate) error {
	s.updateCalls++
	s.lastID = id
	s.lastUpdate = update
	if s.updateFn != nil {
		return s.updateFn(ctx, accessToken, id, update)
	}
	return nil
}

type stubSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
	saveErr  error
	lastTTL  time.Duration
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *stubSessionStore) Save(_ context.Context, session *domain.Session, ttl time.Duration) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *session
	s.sessions[session.ID] = &clone
	s.lastTTL = ttl
	return nil
}

func (s *stubSessionStore) Find(_ context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrNoSession
	}
	clone := *session
	return &clone, nil
}

func (s *stubSessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

type stubRecorder struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func (r *stubRecorder) Record(entry domain.AuditEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

func (r *stubRecorder) recorded() []domain.AuditEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.AuditEntry(nil), r.entries...)
}
