package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestJWTCodec_RoundTrip(t *testing.T) {
	codec := NewJWTCodec("test-secret")

	token, err := codec.Issue("alice", "user", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, role, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
	assert.Equal(t, "user", role)
}

func TestJWTCodec_RejectsWrongSecret(t *testing.T) {
	token, err := NewJWTCodec("secret-a").Issue("alice", "user", time.Hour)
	require.NoError(t, err)

	_, _, err = NewJWTCodec("secret-b").Verify(token)
	require.Error(t, err)
}

func TestJWTCodec_RejectsExpiredToken(t *testing.T) {
	codec := NewJWTCodec("test-secret")
	token, err := codec.Issue("alice", "user", -time.Minute)
	require.NoError(t, err)

	_, _, err = codec.Verify(token)
	require.Error(t, err)
}

func TestJWTCodec_RejectsGarbage(t *testing.T) {
	_, _, err := NewJWTCodec("test-secret").Verify("not.a.token")
	require.Error(t, err)
}

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("admin123")
	require.NoError(t, err)
	require.NotEqual(t, "admin123", hash)

	require.NoError(t, hasher.Compare(hash, "admin123"))
	require.Error(t, hasher.Compare(hash, "wrong"))
}
