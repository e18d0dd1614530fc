package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicops/directory-admin/internal/api/metrics"
	"github.com/clinicops/directory-admin/internal/core/domain"
	"github.com/clinicops/directory-admin/internal/core/ports"
)

// DirectoryService loads the user directory from the external service.
type DirectoryService struct {
	directory ports.DirectoryClient
	logger    zerolog.Logger
}

func NewDirectoryService(directory ports.DirectoryClient, logger zerolog.Logger) *DirectoryService {
	return &DirectoryService{directory: directory, logger: logger}
}

// LoadUsers fetches the full directory, most recent first. The ordering is
// requested from the service; results are passed through untouched.
func (s *DirectoryService) LoadUsers(ctx context.Context, accessToken string) ([]domain.UserRecord, error) {
	start := time.Now()
	users, err := s.directory.ListUsers(ctx, accessToken)
	if err != nil {
		metrics.DirectoryFetchDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		s.logger.Error().Err(err).Msg("failed to fetch users")
		return nil, err
	}

	metrics.DirectoryFetchDuration.WithLabelValues("success").Observe(time.Since(start).Seconds())
	return users, nil
}

// SearchUsers loads the directory once and derives the matching subset.
func (s *DirectoryService) SearchUsers(ctx context.Context, accessToken, query string) ([]domain.UserRecord, error) {
	users, err := s.LoadUsers(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	return domain.FilterUsers(users, query), nil
}
