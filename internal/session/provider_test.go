package session

import (
	"context"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-portal/internal/domain"
)

type fakeStore struct {
	tokens  map[string]string
	deleted []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{tokens: map[string]string{}}
}

func (s *fakeStore) Save(_ context.Context, token string, _ time.Duration) (string, error) {
	ref := "ref-" + token[:8]
	s.tokens[ref] = token
	return ref, nil
}

func (s *fakeStore) Load(_ context.Context, ref string) (string, error) {
	token, ok := s.tokens[ref]
	if !ok {
		return "", ErrNoSession
	}
	return token, nil
}

func (s *fakeStore) Delete(_ context.Context, ref string) error {
	delete(s.tokens, ref)
	s.deleted = append(s.deleted, ref)
	return nil
}

func issueToken(t *testing.T, secret string, role domain.Role, expiresIn time.Duration) string {
	t.Helper()
	claims := &Claims{
		UserID:   7,
		Email:    "someone@example.com",
		Role:     role,
		ClientID: 2,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestEstablishThenResolveRoundtrip(t *testing.T) {
	store := newFakeStore()
	provider := NewProvider(NewDecoder(""), store, zap.NewNop())
	token := issueToken(t, "whatever", domain.RoleTechnician, time.Hour)

	ref, identity, err := provider.Establish(context.Background(), token)
	require.NoError(t, err)
	require.NotEmpty(t, ref)
	assert.Equal(t, 7, identity.UserID)
	assert.Equal(t, domain.RoleTechnician, identity.Role)

	sess := provider.Resolve(context.Background(), ref)
	require.Equal(t, StateAuthenticated, sess.State)
	assert.Equal(t, token, sess.Token)
	assert.Equal(t, 7, sess.Identity.UserID)
	assert.Equal(t, 2, sess.Identity.ClientID)
}

func TestResolveExpiredTokenClearsStore(t *testing.T) {
	store := newFakeStore()
	provider := NewProvider(NewDecoder(""), store, zap.NewNop())
	token := issueToken(t, "whatever", domain.RoleUser, -time.Minute)

	ref, err := store.Save(context.Background(), token, time.Hour)
	require.NoError(t, err)

	sess := provider.Resolve(context.Background(), ref)

	assert.Equal(t, StateUnauthenticated, sess.State)
	assert.Nil(t, sess.Identity)
	assert.Contains(t, store.deleted, ref)
	assert.NotContains(t, store.tokens, ref)
}

func TestResolveMissingOrEmptyRef(t *testing.T) {
	provider := NewProvider(NewDecoder(""), newFakeStore(), zap.NewNop())

	assert.Equal(t, StateUnauthenticated, provider.Resolve(context.Background(), "").State)
	assert.Equal(t, StateUnauthenticated, provider.Resolve(context.Background(), "ref-unknown").State)
}

func TestDecoderVerifiesSignatureWhenSecretSet(t *testing.T) {
	decoder := NewDecoder("right-secret")

	_, err := decoder.Decode(issueToken(t, "wrong-secret", domain.RoleUser, time.Hour))
	assert.Error(t, err)

	claims, err := decoder.Decode(issueToken(t, "right-secret", domain.RoleUser, time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
}

func TestDecoderUnverifiedStillChecksExpiry(t *testing.T) {
	decoder := NewDecoder("")

	_, err := decoder.Decode(issueToken(t, "any", domain.RoleUser, -time.Minute))
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestUnauthorizedHookClearsReferencedSession(t *testing.T) {
	store := newFakeStore()
	provider := NewProvider(NewDecoder(""), store, zap.NewNop())
	token := issueToken(t, "whatever", domain.RoleUser, time.Hour)

	ref, _, err := provider.Establish(context.Background(), token)
	require.NoError(t, err)

	hook := provider.UnauthorizedHook()
	hook(WithRef(context.Background(), ref))

	assert.NotContains(t, store.tokens, ref)

	// Without a reference in context the hook is a no-op.
	hook(context.Background())
}
