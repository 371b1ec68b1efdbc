// internal/session/session.go
package session

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	HeaderAuthorization = "Authorization"
	HeaderRole          = "user"
)

var ErrExpired = errors.New("session token has expired")

// Session carries the caller's bearer token and role. It is passed explicitly to
// every API call that needs it.
type Session struct {
	Token string
	Role  string
	// Origin tells callers without credentials apart, e.g. by client address.
	Origin string
}

func New(token, role string) *Session {
	return &Session{Token: token, Role: role}
}

func (s *Session) Empty() bool {
	return s == nil || (s.Token == "" && s.Role == "")
}

// AnonymousKey identifies callers without a session.
const AnonymousKey = "anonymous"

// Key identifies the session for per-admin state such as drafts without
// holding on to the raw token.
func (s *Session) Key() string {
	if s.Empty() {
		if s == nil || s.Origin == "" {
			return AnonymousKey
		}
		return AnonymousKey + ":" + s.Origin
	}
	sum := sha256.Sum256([]byte(s.Role + "\x00" + s.Token))
	return hex.EncodeToString(sum[:8])
}

// Headers returns the request headers the shop API expects for authorized calls.
func (s *Session) Headers() map[string]string {
	headers := make(map[string]string, 2)
	if s.Empty() {
		return headers
	}
	if s.Token != "" {
		headers[HeaderAuthorization] = "Bearer " + s.Token
	}
	if s.Role != "" {
		headers[HeaderRole] = s.Role
	}
	return headers
}

// ExpiresAt reads the exp claim without verifying the signature; the shop API
// is the one that validates tokens. ok is false when the token is not a JWT or
// carries no expiry.
func (s *Session) ExpiresAt() (exp time.Time, ok bool) {
	if s.Empty() || s.Token == "" {
		return time.Time{}, false
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// Check fails fast on tokens that are already expired so the caller does not
// round-trip to the shop API just to get a 401.
func (s *Session) Check(now time.Time) error {
	if exp, ok := s.ExpiresAt(); ok && !now.Before(exp) {
		return ErrExpired
	}
	return nil
}
