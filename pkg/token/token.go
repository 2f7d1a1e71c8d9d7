// Package token issues and verifies the bearer tokens used by the API.
//
// Tokens are HS256-signed JWTs carrying the subject (email), the role,
// and an absolute expiry. There is no server-side revocation state:
// expiry is the only lifecycle bound, and rotating the signing key
// invalidates every outstanding token.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the token lifetime applied when none is configured.
const DefaultTTL = 7 * 24 * time.Hour

// ErrInvalidToken is returned by Verify for any unusable token:
// bad signature, wrong algorithm, expired, or missing subject.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the verified identity carried by a token.
type Claims struct {
	Subject string
	Role    string
}

// Manager signs and verifies tokens with a process-wide symmetric key.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager returns a Manager signing with secret. A non-positive ttl
// falls back to DefaultTTL.
func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue mints a signed token binding subject and role, expiring at
// now + TTL.
func (m *Manager) Issue(subject, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"exp":  time.Now().Add(m.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify parses and validates a token. It never partially trusts a
// token: any failure collapses to ErrInvalidToken.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		return nil, ErrInvalidToken
	}
	role, _ := claims["role"].(string)

	return &Claims{Subject: subject, Role: role}, nil
}
