package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-portal/internal/backend"
	"github.com/spec-kit/helpdesk-portal/internal/domain"
)

// UserService exposes account listings and lookups.
type UserService struct {
	api    backend.API
	logger *zap.Logger
}

// NewUserService constructs the service.
func NewUserService(api backend.API, logger *zap.Logger) *UserService {
	return &UserService{api: api, logger: logger}
}

// CompanyUsers lists accounts under a tenant. This is a primary fetch
// for the admin screen, so failures propagate.
func (s *UserService) CompanyUsers(ctx context.Context, clientID int) ([]domain.User, error) {
	return s.api.CompanyUsers(ctx, clientID)
}

// ResolveName resolves a single user's display name.
func (s *UserService) ResolveName(ctx context.Context, id int) (string, error) {
	user, err := s.api.UserByID(ctx, id)
	if err != nil {
		return "", err
	}
	return user.DisplayName(), nil
}
