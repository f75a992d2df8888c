package investsdk

import (
	"github.com/aussiebroadwan/topfive/pkg/jwtx"
)

// Session is an authenticated view of the API bound to one bearer token.
// The token is static for the session's lifetime; there is no refresh flow.
// A Session is immutable and safe for concurrent use.
type Session struct {
	client *SDKClient
	token  string
}

// Token returns the bearer token.
func (s *Session) Token() string {
	return s.token
}

// Claims decodes the token's claims without verifying them. Opaque tokens
// return jwtx.ErrNotJWT.
func (s *Session) Claims() (*jwtx.Claims, error) {
	return jwtx.Peek(s.token)
}
