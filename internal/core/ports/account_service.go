package ports

import (
	"context"

	"github.com/clinicops/directory-admin/internal/core/domain"
)

// CreateUserInput carries all fields of the add-user form.
type CreateUserInput struct {
	Email             string
	Password          string
	FirstName         string
	LastName          string
	Role              domain.Role
	OfficeName        string
	PhoneNumber       string
	OfficePhoneNumber string
}

// AccountService creates directory users via the two-phase flow: register an
// identity, then patch the directory record the identity service's trigger
// created for it. The operator's session authorises the directory patch and
// identifies the actor in the audit trail.
type AccountService interface {
	CreateUser(ctx context.Context, operator *domain.Session, input CreateUserInput) error
}
