// Package token issues and verifies the signed bearer credentials shared by
// every service. It is pure signature work: session liveness is checked
// elsewhere, against the session store.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature,
// tampered payload, wrong algorithm, expiry. Callers never learn which.
var ErrInvalidToken = errors.New("invalid token")

// DefaultTTL matches the platform-wide bearer token lifetime.
const DefaultTTL = 7 * 24 * time.Hour

// Claims is the signed payload embedded in a bearer token.
type Claims struct {
	Username  string `json:"username"`
	Role      string `json:"role"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Codec signs and verifies claims with a symmetric secret. The same secret
// must be configured on every service instance.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec constructs a Codec. A non-positive ttl falls back to DefaultTTL.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for the given identity and session. Issued-at is now,
// expiry is now plus the configured ttl.
func (c *Codec) Issue(subjectID, username, role, sessionID string) (string, error) {
	now := c.now()
	claims := Claims{
		Username:  username,
		Role:      role,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify checks signature integrity and expiry and returns the embedded
// claims. Any failure maps to ErrInvalidToken; a payload is never partially
// trusted.
func (c *Codec) Verify(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	parsed, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(*jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
