package session

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/helpdesk-portal/internal/domain"
)

// Claims is the payload carried by backend-issued bearer tokens.
type Claims struct {
	UserID   int         `json:"id"`
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
	ClientID int         `json:"client"`
	jwt.RegisteredClaims
}

// Identity converts decoded claims into a session identity.
func (c *Claims) Identity() Identity {
	identity := Identity{
		UserID:   c.UserID,
		Email:    c.Email,
		Role:     c.Role,
		ClientID: c.ClientID,
	}
	if c.ExpiresAt != nil {
		identity.ExpiresAt = c.ExpiresAt.Time
	}
	return identity
}

// Decoder extracts claims from bearer tokens. The portal does not issue
// tokens; when a shared secret is configured the signature is verified,
// otherwise claims are extracted unverified and only the expiry is
// checked locally.
type Decoder struct {
	secret []byte
}

// NewDecoder builds a decoder. An empty secret disables verification.
func NewDecoder(secret string) *Decoder {
	d := &Decoder{}
	if secret != "" {
		d.secret = []byte(secret)
	}
	return d
}

// Decode parses and validates the token, returning its claims.
func (d *Decoder) Decode(tokenStr string) (*Claims, error) {
	if len(d.secret) > 0 {
		parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwt.SigningMethodHS256 {
				return nil, errors.New("unexpected signing method")
			}
			return d.secret, nil
		})
		if err != nil {
			return nil, err
		}
		claims, ok := parsed.Claims.(*Claims)
		if !ok || !parsed.Valid {
			return nil, errors.New("invalid token claims")
		}
		return claims, nil
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(tokenStr, &Claims{})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		return nil, jwt.ErrTokenExpired
	}
	return claims, nil
}
