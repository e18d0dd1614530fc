package handler

import (
	"github.com/clinicops/directory-admin/internal/core/domain"
	"github.com/clinicops/directory-admin/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx JSON responses.
type errorResponse struct {
	Error string `json:"error"`
}

type loginRequest struct {
	Email    string `form:"email"    json:"email"    validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required"`
}

// createUserRequest carries the add-user form. The same shape is accepted as
// JSON on the API. Role membership in the closed enumeration is checked with
// domain.ParseRole rather than a tag, because "CLINICAL SPECIALIST" contains
// a space.
type createUserRequest struct {
	Email             string `form:"email"               json:"email"               validate:"required,email"`
	Password          string `form:"password"            json:"password"            validate:"required,min=6"`
	FirstName         string `form:"first_name"          json:"first_name"          validate:"required"`
	LastName          string `form:"last_name"           json:"last_name"           validate:"required"`
	Role              string `form:"role"                json:"role"                validate:"required"`
	OfficeName        string `form:"office_name"         json:"office_name"         validate:"required"`
	PhoneNumber       string `form:"phone_number"        json:"phone_number"        validate:"required"`
	OfficePhoneNumber string `form:"office_phone_number" json:"office_phone_number" validate:"required"`
}

func (r createUserRequest) toInput(role domain.Role) ports.CreateUserInput {
	return ports.CreateUserInput{
		Email:             r.Email,
		Password:          r.Password,
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		Role:              role,
		OfficeName:        r.OfficeName,
		PhoneNumber:       r.PhoneNumber,
		OfficePhoneNumber: r.OfficePhoneNumber,
	}
}

type usersResponse struct {
	Users []domain.UserRecord `json:"users"`
	Count int                 `json:"count"`
}

type createUserResponse struct {
	Status string `json:"status"`
}

type auditResponse struct {
	Entries []domain.AuditEntry `json:"entries"`
}
