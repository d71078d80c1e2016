package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret")

	token, err := m.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, ok := m.Verify(token)
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)
}

func TestVerify_Expired(t *testing.T) {
	m := NewTokenManager("test-secret")

	claims := jwt.MapClaims{
		"sub": float64(42),
		"exp": time.Now().Add(-time.Hour).Unix(),
		"iat": time.Now().Add(-25 * time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, ok := m.Verify(expired)
	assert.False(t, ok)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a")
	verifier := NewTokenManager("secret-b")

	token, err := issuer.Issue(7)
	require.NoError(t, err)

	_, ok := verifier.Verify(token)
	assert.False(t, ok)
}

func TestVerify_Malformed(t *testing.T) {
	m := NewTokenManager("test-secret")

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		_, ok := m.Verify(raw)
		assert.False(t, ok, "token %q should be rejected", raw)
	}
}

func TestVerify_MissingSubject(t *testing.T) {
	m := NewTokenManager("test-secret")

	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, ok := m.Verify(token)
	assert.False(t, ok)
}
