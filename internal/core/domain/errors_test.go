package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessage_UsesRemoteMessage(t *testing.T) {
	err := &RemoteError{Op: "signup", StatusCode: 422, Message: "User already registered"}
	if got := ErrorMessage(err, "Failed to create user"); got != "User already registered" {
		t.Fatalf("expected upstream message, got %q", got)
	}
}

func TestErrorMessage_FallsBackWhenMessageEmpty(t *testing.T) {
	err := &RemoteError{Op: "list users", StatusCode: 500}
	if got := ErrorMessage(err, "Failed to fetch users"); got != "Failed to fetch users" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestErrorMessage_FallsBackForPlainErrors(t *testing.T) {
	if got := ErrorMessage(errors.New("boom"), "Failed to fetch users"); got != "Failed to fetch users" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestErrorMessage_UnwrapsWrappedRemoteError(t *testing.T) {
	err := fmt.Errorf("create: %w", &RemoteError{Op: "update user", StatusCode: 502, Message: "network error"})
	if got := ErrorMessage(err, "Failed to create user"); got != "network error" {
		t.Fatalf("expected wrapped upstream message, got %q", got)
	}
}
