package service

import (
	"context"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-portal/internal/domain"
	"github.com/spec-kit/helpdesk-portal/internal/session"
	apperrors "github.com/spec-kit/helpdesk-portal/pkg/util/errorutil"
)

func signedToken(t *testing.T, role domain.Role, expiresIn time.Duration) string {
	t.Helper()
	claims := &session.Claims{
		UserID:   7,
		Email:    "someone@example.com",
		Role:     role,
		ClientID: 2,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func newAuthService(api *apiStub) *AuthService {
	return NewAuthService(api, session.NewDecoder(""), zap.NewNop())
}

func TestLoginReturnsClaimsForMatchingPortal(t *testing.T) {
	issued := signedToken(t, domain.RoleUser, time.Hour)
	svc := newAuthService(&apiStub{
		login: func(_ context.Context, email, password string) (string, error) {
			assert.Equal(t, "someone@example.com", email)
			assert.Equal(t, "pw", password)
			return issued, nil
		},
	})

	token, claims, err := svc.Login(context.Background(), "someone@example.com", "pw", domain.PortalUser)

	require.NoError(t, err)
	assert.Equal(t, issued, token)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, domain.RoleUser, claims.Role)
}

func TestLoginRejectsPortalMismatch(t *testing.T) {
	tests := []struct {
		name    string
		role    domain.Role
		portal  domain.Portal
		message string
	}{
		{
			name:    "technician on user portal",
			role:    domain.RoleTechnician,
			portal:  domain.PortalUser,
			message: UserPortalMismatchMessage,
		},
		{
			name:    "admin on user portal",
			role:    domain.RoleAdmin,
			portal:  domain.PortalUser,
			message: UserPortalMismatchMessage,
		},
		{
			name:    "end user on technician portal",
			role:    domain.RoleUser,
			portal:  domain.PortalTech,
			message: TechPortalMismatchMessage,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := newAuthService(&apiStub{
				login: func(context.Context, string, string) (string, error) {
					return signedToken(t, tc.role, time.Hour), nil
				},
			})

			token, claims, err := svc.Login(context.Background(), "someone@example.com", "pw", tc.portal)

			require.Error(t, err)
			assert.Empty(t, token)
			assert.Nil(t, claims)
			de := apperrors.ToDomainError(err)
			assert.Equal(t, "PORTAL_MISMATCH", de.Code)
			assert.Equal(t, tc.message, de.Message)
		})
	}
}

func TestLoginMapsRejectedCredentials(t *testing.T) {
	svc := newAuthService(&apiStub{
		login: func(context.Context, string, string) (string, error) {
			return "", apperrors.NewUnauthorized("session rejected by helpdesk API")
		},
	})

	_, _, err := svc.Login(context.Background(), "someone@example.com", "wrong", domain.PortalUser)

	require.Error(t, err)
	de := apperrors.ToDomainError(err)
	assert.Equal(t, "UNAUTHORIZED", de.Code)
	assert.Equal(t, "invalid email or password", de.Message)
}

func TestLoginFailsLoudlyOnUndecodableToken(t *testing.T) {
	svc := newAuthService(&apiStub{
		login: func(context.Context, string, string) (string, error) {
			return "not-a-jwt", nil
		},
	})

	_, _, err := svc.Login(context.Background(), "someone@example.com", "pw", domain.PortalUser)

	require.Error(t, err)
	assert.Equal(t, "UPSTREAM_SCHEMA", apperrors.ToDomainError(err).Code)
}
