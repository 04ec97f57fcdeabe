package session

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-portal/internal/backend"
	"github.com/spec-kit/helpdesk-portal/internal/domain"
	apperrors "github.com/spec-kit/helpdesk-portal/pkg/util/errorutil"
)

const sessionLocalKey = "portal_session"

// LoginPath is where unauthenticated page requests are redirected.
const LoginPath = "/portal/login"

// Middleware gates routes on session state and performs the role-based
// redirects.
type Middleware struct {
	provider   *Provider
	cookieName string
}

// NewMiddleware constructs the session middleware.
func NewMiddleware(provider *Provider, cookieName string) *Middleware {
	return &Middleware{provider: provider, cookieName: cookieName}
}

// CookieName exposes the configured cookie name for handlers that set
// or clear it.
func (m *Middleware) CookieName() string {
	return m.cookieName
}

// LoadSession resolves the session cookie on every request and, when
// authenticated, attaches the bearer token for outgoing backend calls.
func (m *Middleware) LoadSession(c *fiber.Ctx) error {
	ref := c.Cookies(m.cookieName)
	sess := m.provider.Resolve(c.UserContext(), ref)
	c.Locals(sessionLocalKey, sess)

	if sess.State == StateAuthenticated {
		ctx := backend.WithBearer(c.UserContext(), sess.Token)
		ctx = WithRef(ctx, ref)
		c.SetUserContext(ctx)
	} else if ref != "" {
		// Stale cookie with no valid session behind it.
		c.ClearCookie(m.cookieName)
	}
	return c.Next()
}

// FromContext retrieves the resolved session for the request.
func FromContext(c *fiber.Ctx) Session {
	if sess, ok := c.Locals(sessionLocalKey).(Session); ok {
		return sess
	}
	return Session{State: StateUnauthenticated}
}

// RequireRole gates a route group. Unauthenticated page loads redirect
// to the login route; mutations get a 401 envelope. An empty role list
// allows any authenticated caller.
func (m *Middleware) RequireRole(roles ...domain.Role) fiber.Handler {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		sess := FromContext(c)
		if sess.State != StateAuthenticated {
			if c.Method() == http.MethodGet {
				return c.Redirect(LoginPath, http.StatusFound)
			}
			return apperrors.NewUnauthorized("authentication required")
		}
		if len(allowed) > 0 {
			if _, ok := allowed[sess.Identity.Role]; !ok {
				return apperrors.NewForbidden("insufficient role")
			}
		}
		return c.Next()
	}
}

// RedirectAuthenticated sends already signed-in callers landing on a
// login route to the dashboard matching their role.
func (m *Middleware) RedirectAuthenticated(c *fiber.Ctx) error {
	sess := FromContext(c)
	if sess.State == StateAuthenticated {
		return c.Redirect(sess.Identity.Role.DashboardPath(), http.StatusFound)
	}
	return c.Next()
}
