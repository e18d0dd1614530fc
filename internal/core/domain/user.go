package domain

import "time"

// Role is the closed set of practice roles a directory user can hold.
// Values match the directory service's role column verbatim, including the
// space in "CLINICAL SPECIALIST".
type Role string

const (
	RoleDoctor             Role = "DOCTOR"
	RolePT                 Role = "PT"
	RoleTrainer            Role = "TRAINER"
	RoleAdmin              Role = "ADMIN"
	RoleCoach              Role = "COACH"
	RoleAthlete            Role = "ATHLETE"
	RolePatient            Role = "PATIENT"
	RoleClinicalSpecialist Role = "CLINICAL SPECIALIST"
)

// DefaultRole is pre-selected on the add-user form.
const DefaultRole = RoleDoctor

// Roles returns all valid roles in display order.
func Roles() []Role {
	return []Role{
		RoleDoctor,
		RolePT,
		RoleTrainer,
		RoleAdmin,
		RoleCoach,
		RoleAthlete,
		RolePatient,
		RoleClinicalSpecialist,
	}
}

// ParseRole validates a raw role string against the closed enumeration.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles() {
		if string(r) == s {
			return r, nil
		}
	}
	return "", ErrInvalidRole
}

// Valid reports whether the role is a member of the closed enumeration.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// UserRecord is one entry in the externally-owned user directory. Records are
// created by the identity service's post-signup trigger; this application
// only reads them and patches profile fields, never inserts or deletes.
type UserRecord struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Role              Role      `json:"role"`
	OfficeName        string    `json:"office_name"`
	PhoneNumber       string    `json:"phone_number,omitempty"`
	OfficePhoneNumber string    `json:"office_phone_number,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}
