// Package jwtmw provides session token issuance and verification plus the gin
// middleware that gates protected routes.
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failure kinds. The auth gate collapses all of them into one
// generic 401; the distinction exists for diagnostics and tests.
var (
	// ErrTokenMalformed is returned when the token cannot be parsed at all.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrTokenSignature is returned when the signature does not match the
	// configured secret, including tokens whose payload was altered.
	ErrTokenSignature = errors.New("token signature is invalid")

	// ErrTokenExpired is returned when the token is past its expiry.
	ErrTokenExpired = errors.New("token has expired")
)

// DefaultTokenTTL is the expiry horizon used when no TTL is configured.
const DefaultTokenTTL = 72 * time.Hour

// Claims is the identity a verified token resolves to.
type Claims struct {
	UserID uint
	Email  string
}

// Issuer creates signed HS256 session tokens. The signing secret and expiry
// horizon are fixed at construction; issuance never reads ambient state.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates an Issuer with the given secret and token TTL.
// A non-positive TTL falls back to DefaultTokenTTL.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue generates a signed token carrying the user's identity, issued-at and
// expiry as standard claims.
func (i *Issuer) Issue(userID uint, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(i.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verifier checks token signatures and expiry against an injected secret.
// Verification is a pure computation with no shared state.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a Verifier for tokens signed with the given secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify parses and validates a token string and returns the claims it
// carries. Failures are reported as ErrTokenMalformed, ErrTokenSignature or
// ErrTokenExpired. Only HMAC signing methods are accepted.
func (v *Verifier) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
			return nil, ErrTokenSignature
		default:
			return nil, ErrTokenMalformed
		}
	}
	if !token.Valid {
		return nil, ErrTokenSignature
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenMalformed
	}
	sub, ok := claims["sub"].(float64) // JWT numbers decode as float64
	if !ok {
		return nil, ErrTokenMalformed
	}
	email, _ := claims["email"].(string)

	return &Claims{UserID: uint(sub), Email: email}, nil
}
