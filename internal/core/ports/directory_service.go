package ports

import (
	"context"

	"github.com/clinicops/directory-admin/internal/core/domain"
)

// DirectoryService loads the user directory for display.
type DirectoryService interface {
	// LoadUsers fetches the full directory, most recent first. Runs once per
	// page render; search input never re-triggers it.
	LoadUsers(ctx context.Context, accessToken string) ([]domain.UserRecord, error)

	// SearchUsers loads the directory and derives the subset matching query.
	SearchUsers(ctx context.Context, accessToken, query string) ([]domain.UserRecord, error)
}
