package ports

import (
	"context"

	"github.com/clinicops/directory-admin/internal/core/domain"
)

// AuditRepository persists the local append-only audit trail.
type AuditRepository interface {
	Append(ctx context.Context, entry *domain.AuditEntry) error
	Recent(ctx context.Context, limit int64) ([]domain.AuditEntry, error)
}

// AuditRecorder accepts audit entries for asynchronous, best-effort
// persistence. Record must not block the caller's request path and must
// never surface persistence failures to it.
type AuditRecorder interface {
	Record(entry domain.AuditEntry)
}
