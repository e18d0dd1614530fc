package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSession signals that no active session exists. It is a routing
	// decision (redirect to sign-in), not a failure condition.
	ErrNoSession = errors.New("no active session")

	// ErrInvalidRole is returned when a role is not in the closed enumeration.
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidInput is returned when create-user input fails validation
	// before any network call is made.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIdentityMissing is returned when the identity service reports
	// success but yields no created identity.
	ErrIdentityMissing = errors.New("identity service returned no user")
)

// RemoteError carries a failure reported by the identity-and-directory
// service. Message is the upstream human-readable message when the service
// provided one.
type RemoteError struct {
	Op         string // e.g. "signup", "list users"
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("identity service: %s failed with status %d", e.Op, e.StatusCode)
}

// ErrorMessage extracts the user-facing message for err: the upstream message
// when the service provided one, else the operation-specific fallback.
func ErrorMessage(err error, fallback string) string {
	var re *RemoteError
	if errors.As(err, &re) && re.Message != "" {
		return re.Message
	}
	return fallback
}
