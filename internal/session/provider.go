package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-portal/internal/domain"
)

// State is the authentication state of a request.
type State int

const (
	StateUnauthenticated State = iota
	StateAuthenticating
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Identity is the decoded token identity.
type Identity struct {
	UserID    int
	Email     string
	Role      domain.Role
	ClientID  int
	ExpiresAt time.Time
}

// Session is the resolved per-request authentication state.
type Session struct {
	State    State
	Identity *Identity
	Token    string
}

type refKeyType int

const refKey refKeyType = 0

// WithRef attaches the session reference so the 401 interceptor can
// clear the stored token.
func WithRef(ctx context.Context, ref string) context.Context {
	return context.WithValue(ctx, refKey, ref)
}

// RefFromContext extracts the session reference, if any.
func RefFromContext(ctx context.Context) (string, bool) {
	ref, ok := ctx.Value(refKey).(string)
	return ref, ok && ref != ""
}

// Provider resolves, establishes and clears sessions. It owns the
// transition rules: a stored token with a valid expiry yields
// Authenticated(role); anything else collapses to Unauthenticated and
// clears the store.
type Provider struct {
	decoder *Decoder
	store   TokenStore
	logger  *zap.Logger
}

// NewProvider constructs the provider.
func NewProvider(decoder *Decoder, store TokenStore, logger *zap.Logger) *Provider {
	return &Provider{decoder: decoder, store: store, logger: logger}
}

// Resolve turns a cookie reference into a session. Never errors; a
// broken or expired token simply resolves to Unauthenticated.
func (p *Provider) Resolve(ctx context.Context, ref string) Session {
	if ref == "" {
		return Session{State: StateUnauthenticated}
	}
	token, err := p.store.Load(ctx, ref)
	if err != nil {
		if err != ErrNoSession {
			p.logger.Warn("session load failed", zap.Error(err))
		}
		return Session{State: StateUnauthenticated}
	}
	claims, err := p.decoder.Decode(token)
	if err != nil {
		// Expired or malformed token on resolve clears the store.
		if delErr := p.store.Delete(ctx, ref); delErr != nil {
			p.logger.Warn("session clear failed", zap.Error(delErr))
		}
		return Session{State: StateUnauthenticated}
	}
	identity := claims.Identity()
	return Session{State: StateAuthenticated, Identity: &identity, Token: token}
}

// Establish stores a freshly issued token and returns the cookie
// reference plus the decoded identity.
func (p *Provider) Establish(ctx context.Context, token string) (string, *Identity, error) {
	claims, err := p.decoder.Decode(token)
	if err != nil {
		return "", nil, err
	}
	identity := claims.Identity()
	ttl := time.Until(identity.ExpiresAt)
	ref, err := p.store.Save(ctx, token, ttl)
	if err != nil {
		return "", nil, err
	}
	return ref, &identity, nil
}

// Clear removes the stored token for the reference.
func (p *Provider) Clear(ctx context.Context, ref string) {
	if ref == "" {
		return
	}
	if err := p.store.Delete(ctx, ref); err != nil {
		p.logger.Warn("session clear failed", zap.Error(err))
	}
}

// UnauthorizedHook returns the callback the backend client runs on any
// 401 response: the stored token is dropped so the next request starts
// Unauthenticated.
func (p *Provider) UnauthorizedHook() func(ctx context.Context) {
	return func(ctx context.Context) {
		if ref, ok := RefFromContext(ctx); ok {
			p.Clear(ctx, ref)
		}
	}
}
