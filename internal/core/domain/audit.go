package domain

import "time"

// Audit actions recorded by this application.
const (
	AuditUserSignedIn  = "user.signed_in"
	AuditUserSignedOut = "user.signed_out"
	AuditUserCreated   = "user.created"
)

// AuditEntry is one append-only record of an administrative action. The audit
// trail is local to this application; it never touches the externally-owned
// user directory.
type AuditEntry struct {
	ID        string            `json:"id"`
	Actor     string            `json:"actor"` // email of the signed-in operator
	Action    string            `json:"action"`
	TargetID  string            `json:"target_id,omitempty"`
	Detail    map[string]string `json:"detail,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
