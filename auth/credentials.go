// Package auth hashes passwords and issues and verifies session tokens.
package auth

import (
	"errors"
	"fmt"
	"time"

	"restaurant-management-api/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidToken is returned for tokens that are malformed, badly signed or expired.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the token payload: who the principal is and which kind.
type Claims struct {
	PrincipalID uint        `json:"principalId"`
	Role        models.Role `json:"role"`
	jwt.RegisteredClaims
}

type Credentials struct {
	secret []byte
	ttl    time.Duration
	cost   int
	now    func() time.Time
}

func NewCredentials(secret []byte, ttl time.Duration, cost int) *Credentials {
	return &Credentials{secret: secret, ttl: ttl, cost: cost, now: time.Now}
}

// WithClock returns a copy that reads time from now. Used by tests.
func (c *Credentials) WithClock(now func() time.Time) *Credentials {
	cp := *c
	cp.now = now
	return &cp
}

// TTL is how long issued tokens stay valid.
func (c *Credentials) TTL() time.Duration { return c.ttl }

// Hash returns the bcrypt digest of password.
func (c *Credentials) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), c.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches digest.
func (c *Credentials) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// IssueToken signs a token for the principal that expires after the configured TTL.
func (c *Credentials) IssueToken(principalID uint, role models.Role) (string, error) {
	now := c.now()
	claims := Claims{
		PrincipalID: principalID,
		Role:        role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// VerifyToken checks signature, algorithm and expiry and returns the claims.
func (c *Credentials) VerifyToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.PrincipalID == 0 || claims.Role == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
