package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicops/directory-admin/internal/core/domain"
)

func TestDirectoryService_LoadUsers_PreservesServiceOrder(t *testing.T) {
	t1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	dir := &stubDirectoryClient{
		listFn: func(_ context.Context, accessToken string) ([]domain.UserRecord, error) {
			if accessToken != "tok" {
				t.Fatalf("access token not forwarded: %q", accessToken)
			}
			// Most recent first, as requested from the service.
			return []domain.UserRecord{
				{ID: "u2", CreatedAt: t2},
				{ID: "u1", CreatedAt: t1},
			}, nil
		},
	}

	svc := NewDirectoryService(dir, zerolog.Nop())
	users, err := svc.LoadUsers(context.Background(), "tok")
	if err != nil {
		t.Fatalf("LoadUsers returned error: %v", err)
	}
	if len(users) != 2 || users[0].ID != "u2" || users[1].ID != "u1" {
		t.Fatalf("ordering not preserved: %+v", users)
	}
}

func TestDirectoryService_LoadUsers_Failure(t *testing.T) {
	remote := &domain.RemoteError{Op: "list users", StatusCode: 500}
	dir := &stubDirectoryClient{
		listFn: func(context.Context, string) ([]domain.UserRecord, error) {
			return nil, remote
		},
	}

	svc := NewDirectoryService(dir, zerolog.Nop())
	users, err := svc.LoadUsers(context.Background(), "tok")
	if !errors.Is(err, remote) {
		t.Fatalf("expected remote error, got %v", err)
	}
	if users != nil {
		t.Fatalf("expected nil users on failure, got %+v", users)
	}
}

func TestDirectoryService_SearchUsers_FetchesOnceAndFilters(t *testing.T) {
	dir := &stubDirectoryClient{
		listFn: func(context.Context, string) ([]domain.UserRecord, error) {
			return []domain.UserRecord{
				{ID: "u1", Email: "alice@north.example", OfficeName: "North Clinic"},
				{ID: "u2", Email: "bob@south.example", OfficeName: "South Clinic"},
			}, nil
		},
	}

	svc := NewDirectoryService(dir, zerolog.Nop())
	users, err := svc.SearchUsers(context.Background(), "tok", "north")
	if err != nil {
		t.Fatalf("SearchUsers returned error: %v", err)
	}
	if len(users) != 1 || users[0].ID != "u1" {
		t.Fatalf("unexpected result: %+v", users)
	}
	if dir.listCalls != 1 {
		t.Fatalf("expected exactly one fetch, got %d", dir.listCalls)
	}
}
