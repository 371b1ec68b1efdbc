// internal/session/session_test.go
package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
		Subject:   "admin-1",
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestHeaders(t *testing.T) {
	s := New("abc", "admin")

	assert.Equal(t, map[string]string{
		"Authorization": "Bearer abc",
		"user":          "admin",
	}, s.Headers())
}

func TestHeadersEmptySession(t *testing.T) {
	var s *Session
	assert.True(t, s.Empty())
	assert.Empty(t, s.Headers())
	assert.Empty(t, New("", "").Headers())
}

func TestCheckExpiry(t *testing.T) {
	now := time.Now()

	live := New(signedToken(t, now.Add(time.Hour)), "admin")
	assert.NoError(t, live.Check(now))

	expired := New(signedToken(t, now.Add(-time.Minute)), "admin")
	assert.ErrorIs(t, expired.Check(now), ErrExpired)
}

func TestCheckOpaqueToken(t *testing.T) {
	s := New("not-a-jwt", "admin")

	_, ok := s.ExpiresAt()
	assert.False(t, ok)
	assert.NoError(t, s.Check(time.Now()))
}

func TestKey(t *testing.T) {
	var none *Session
	assert.Equal(t, AnonymousKey, none.Key())

	a := New("tok-a", "admin")
	assert.Equal(t, a.Key(), New("tok-a", "admin").Key())
	assert.NotEqual(t, a.Key(), New("tok-b", "admin").Key())
	assert.NotContains(t, a.Key(), "tok-a")

	assert.NotEqual(t, (&Session{Origin: "10.0.0.1"}).Key(), (&Session{Origin: "10.0.0.2"}).Key())
	assert.Equal(t, AnonymousKey, (&Session{}).Key())

	withOrigin := New("tok-a", "admin")
	withOrigin.Origin = "10.0.0.1"
	assert.Equal(t, a.Key(), withOrigin.Key())
}
