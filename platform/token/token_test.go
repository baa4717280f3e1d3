package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test"))
	require.NoError(t, err)
	return s
}

func TestDecode(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := sign(t, jwt.MapClaims{
		"sub":                "user-1",
		"preferred_username": "alice",
		"exp":                exp.Unix(),
	})

	for _, in := range []string{raw, "Bearer " + raw, "  " + raw + " ", "Bearer  " + raw, "Bearer " + raw + " extra"} {
		c, err := Decode(in)
		require.NoError(t, err, in)
		assert.Equal(t, "user-1", c.Subject)
		assert.Equal(t, "alice", c.Username)
		assert.True(t, c.ExpiresAt.Equal(exp))
		assert.False(t, c.Expired(time.Now()))
	}
}

func TestDecodeMalformed(t *testing.T) {
	for _, in := range []string{"", "  ", "Bearer ", "not-a-token", "a.b.c", "Bearer not-a-token " + sign(t, jwt.MapClaims{"sub": "u"})} {
		_, err := Decode(in)
		assert.ErrorIs(t, err, ErrMalformed, in)
	}
}

func TestExpired(t *testing.T) {
	now := time.Now()

	expired, err := Decode(sign(t, jwt.MapClaims{"sub": "u", "exp": now.Add(-time.Minute).Unix()}))
	require.NoError(t, err)
	assert.True(t, expired.Expired(now))

	forever, err := Decode(sign(t, jwt.MapClaims{"sub": "u"}))
	require.NoError(t, err)
	assert.True(t, forever.ExpiresAt.IsZero())
	assert.False(t, forever.Expired(now.Add(100*365*24*time.Hour)))
}
