package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNotJWT is returned when a bearer token is opaque or malformed. The
	// API is free to issue opaque tokens, so callers treat this as "no
	// claims available" rather than a failure.
	ErrNotJWT  = errors.New("jwtx: token is not a parseable jwt")
	ErrExpired = errors.New("jwtx: token expired")
)

// Claims are the fields the client reads out of an access token. Only
// registered claims are relied upon; Name and Role are informational.
type Claims struct {
	jwt.RegisteredClaims

	Name string `json:"name,omitempty"`
	Role string `json:"role,omitempty"`
}

// Peek decodes the token's claims WITHOUT verifying its signature. The
// client holds no verification keys; the server remains the authority and
// these claims are only used for display and logging.
func Peek(token string) (*Claims, error) {
	var claims Claims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return nil, ErrNotJWT
	}
	return &claims, nil
}

// ExpiresIn returns the time left until exp relative to now. ok is false
// when the token carries no exp claim.
func (c *Claims) ExpiresIn(now time.Time) (left time.Duration, ok bool) {
	if c.ExpiresAt == nil {
		return 0, false
	}
	return c.ExpiresAt.Sub(now), true
}

// ValidateExpiryWithLeeway adds a small grace period for clock skew.
func (c *Claims) ValidateExpiryWithLeeway(now time.Time, leeway time.Duration) error {
	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}
	return nil
}
