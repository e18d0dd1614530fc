package service

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/rs/zerolog"

	"github.com/clinicops/directory-admin/internal/api/metrics"
	"github.com/clinicops/directory-admin/internal/core/domain"
	"github.com/clinicops/directory-admin/internal/core/ports"
)

const minPasswordLength = 6

// AccountService implements the two-phase create-user flow: register an
// identity with the external identity service, then patch the directory
// record its post-signup trigger created. There is no compensating rollback:
// a failure in phase two leaves an identity with empty profile fields.
type AccountService struct {
	identity  ports.IdentityClient
	directory ports.DirectoryClient
	audit     ports.AuditRecorder
	logger    zerolog.Logger
}

func NewAccountService(identity ports.IdentityClient, directory ports.DirectoryClient, audit ports.AuditRecorder, logger zerolog.Logger) *AccountService {
	return &AccountService{identity: identity, directory: directory, audit: audit, logger: logger}
}

func (s *AccountService) CreateUser(ctx context.Context, operator *domain.Session, input ports.CreateUserInput) error {
	if err := validateCreateUser(input); err != nil {
		metrics.UserCreateFailuresTotal.WithLabelValues("validate").Inc()
		return err
	}

	// Phase one: register the identity. Failure here touches nothing.
	identity, err := s.identity.SignUp(ctx, input.Email, input.Password)
	if err != nil {
		metrics.UserCreateFailuresTotal.WithLabelValues("signup").Inc()
		s.logger.Error().Err(err).Str("email", input.Email).Msg("identity registration failed")
		return err
	}
	if identity == nil || identity.ID == "" {
		metrics.UserCreateFailuresTotal.WithLabelValues("signup").Inc()
		return domain.ErrIdentityMissing
	}

	// Phase two: patch the directory record keyed by the new identity's id.
	err = s.directory.UpdateUser(ctx, operator.AccessToken, identity.ID, ports.ProfileUpdate{
		FirstName:         input.FirstName,
		LastName:          input.LastName,
		Role:              input.Role,
		OfficeName:        input.OfficeName,
		PhoneNumber:       input.PhoneNumber,
		OfficePhoneNumber: input.OfficePhoneNumber,
	})
	if err != nil {
		metrics.UserCreateFailuresTotal.WithLabelValues("profile").Inc()
		s.logger.Error().Err(err).
			Str("user_id", identity.ID).
			Msg("profile update failed after identity creation; identity left with empty profile")
		return err
	}

	metrics.UsersCreatedTotal.WithLabelValues(string(input.Role)).Inc()
	s.audit.Record(domain.AuditEntry{
		Actor:    operator.Email,
		Action:   domain.AuditUserCreated,
		TargetID: identity.ID,
		Detail: map[string]string{
			"email": input.Email,
			"role":  string(input.Role),
		},
	})
	s.logger.Info().Str("user_id", identity.ID).Str("role", string(input.Role)).Msg("user created")

	return nil
}

// validateCreateUser enforces the form constraints before any network call:
// every field present, syntactically valid email, password of at least six
// characters, role inside the closed enumeration.
func validateCreateUser(input ports.CreateUserInput) error {
	required := map[string]string{
		"email":               input.Email,
		"password":            input.Password,
		"first_name":          input.FirstName,
		"last_name":           input.LastName,
		"office_name":         input.OfficeName,
		"phone_number":        input.PhoneNumber,
		"office_phone_number": input.OfficePhoneNumber,
	}
	for field, value := range required {
		if value == "" {
			return fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, field)
		}
	}

	if _, err := mail.ParseAddress(input.Email); err != nil {
		return fmt.Errorf("%w: email must be a valid email address", domain.ErrInvalidInput)
	}
	if len(input.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLength)
	}
	if !input.Role.Valid() {
		return domain.ErrInvalidRole
	}
	return nil
}
