package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-portal/internal/backend"
	"github.com/spec-kit/helpdesk-portal/internal/domain"
	"github.com/spec-kit/helpdesk-portal/internal/session"
	apperrors "github.com/spec-kit/helpdesk-portal/pkg/util/errorutil"
)

// Portal mismatch messages. The credentials were valid; the account
// just belongs to the other sign-in surface.
const (
	UserPortalMismatchMessage = "This account cannot sign in to the user portal. Please use the technician portal."
	TechPortalMismatchMessage = "This account cannot sign in to the technician portal. Please use the user portal."
)

// AuthService exchanges credentials with the backend and enforces the
// portal/role guard before a token is ever stored.
type AuthService struct {
	api     backend.API
	decoder *session.Decoder
	logger  *zap.Logger
}

// NewAuthService constructs the service.
func NewAuthService(api backend.API, decoder *session.Decoder, logger *zap.Logger) *AuthService {
	return &AuthService{api: api, decoder: decoder, logger: logger}
}

// Login performs the credential exchange and decodes the issued token.
// A role that does not belong to the requested portal is rejected here,
// before anything is stored.
func (s *AuthService) Login(ctx context.Context, email, password string, portal domain.Portal) (string, *session.Claims, error) {
	token, err := s.api.Login(ctx, email, password)
	if err != nil {
		if apperrors.IsUnauthorized(err) {
			return "", nil, apperrors.NewUnauthorized("invalid email or password")
		}
		return "", nil, err
	}

	claims, err := s.decoder.Decode(token)
	if err != nil {
		s.logger.Warn("issued token undecodable", zap.Error(err))
		return "", nil, apperrors.NewUpstreamSchemaError("issued token undecodable", nil)
	}

	if !claims.Role.AllowedOn(portal) {
		message := TechPortalMismatchMessage
		if portal == domain.PortalUser {
			message = UserPortalMismatchMessage
		}
		return "", nil, apperrors.NewPortalMismatch(message)
	}

	return token, claims, nil
}
