package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-portal/internal/api/dto"
	"github.com/spec-kit/helpdesk-portal/internal/domain"
	"github.com/spec-kit/helpdesk-portal/internal/service"
	"github.com/spec-kit/helpdesk-portal/internal/session"
	apperrors "github.com/spec-kit/helpdesk-portal/pkg/util/errorutil"
)

// AuthHandler exposes login, logout and session inspection.
type AuthHandler struct {
	auth     *service.AuthService
	provider *session.Provider
	cookie   string
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, provider *session.Provider, cookieName string) *AuthHandler {
	return &AuthHandler{auth: authService, provider: provider, cookie: cookieName}
}

// LoginPage handles GET /portal/login. Authenticated callers never
// reach this; the session middleware redirects them to their dashboard.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": fiber.Map{
		"portals": []string{string(domain.PortalUser), string(domain.PortalTech)},
	}})
}

// Login handles POST /portal/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}
	portal := domain.Portal(req.Portal)
	if portal != domain.PortalUser && portal != domain.PortalTech {
		return apperrors.NewValidationError("portal must be \"user\" or \"tech\"", nil)
	}

	token, claims, err := h.auth.Login(c.UserContext(), req.Email, req.Password, portal)
	if err != nil {
		return err
	}

	ref, identity, err := h.provider.Establish(c.UserContext(), token)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookie,
		Value:    ref,
		Expires:  identity.ExpiresAt,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return c.JSON(fiber.Map{"data": dto.LoginResponse{
		Identity:   identityView(identity),
		RedirectTo: claims.Role.DashboardPath(),
	}})
}

// Logout handles POST /portal/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if ref := c.Cookies(h.cookie); ref != "" {
		h.provider.Clear(c.UserContext(), ref)
	}
	c.ClearCookie(h.cookie)
	return c.JSON(fiber.Map{"data": fiber.Map{"state": session.StateUnauthenticated.String()}})
}

// Session handles GET /portal/session.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	sess := session.FromContext(c)
	resp := dto.SessionResponse{State: sess.State.String()}
	if sess.State == session.StateAuthenticated {
		view := identityView(sess.Identity)
		resp.Identity = &view
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"data": resp})
}
