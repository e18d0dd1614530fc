package ports

import (
	"context"
	"time"

	"github.com/clinicops/directory-admin/internal/core/domain"
)

// Identity is the minimal view of an identity-service account this
// application needs.
type Identity struct {
	ID    string
	Email string
}

// Token is an access token issued by the identity service together with its
// expiry. ExpiresAt may be zero when the service omits it.
type Token struct {
	AccessToken string
	ExpiresAt   time.Time
}

// ProfileUpdate holds the directory fields patched onto a user record after
// its identity has been created.
type ProfileUpdate struct {
	FirstName         string      `json:"first_name"`
	LastName          string      `json:"last_name"`
	Role              domain.Role `json:"role"`
	OfficeName        string      `json:"office_name"`
	PhoneNumber       string      `json:"phone_number"`
	OfficePhoneNumber string      `json:"office_phone_number"`
}

// IdentityClient talks to the external identity service's auth API.
// All authentication logic (password storage, token issuance, the post-signup
// directory trigger) lives on the remote side.
type IdentityClient interface {
	// SignUp registers a new identity. The identity service's trigger
	// creates the matching directory record as a side effect.
	SignUp(ctx context.Context, email, password string) (*Identity, error)

	// SignInWithPassword performs a password-grant sign-in and returns the
	// identity plus its access token.
	SignInWithPassword(ctx context.Context, email, password string) (*Identity, *Token, error)

	// SignOut revokes the access token on the identity service.
	SignOut(ctx context.Context, accessToken string) error
}

// DirectoryClient reads and patches records in the external user directory.
type DirectoryClient interface {
	// ListUsers fetches all directory records ordered by creation time
	// descending (most recent first).
	ListUsers(ctx context.Context, accessToken string) ([]domain.UserRecord, error)

	// UpdateUser patches the profile fields of the record with the given id.
	// It never creates records; the identity service owns creation.
	UpdateUser(ctx context.Context, accessToken, id string, update ProfileUpdate) error
}
