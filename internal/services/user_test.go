package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"imagetagger/internal/adapters/auth"
	"imagetagger/internal/domain"
)

func newTestUserService(t *testing.T) domain.UserService {
	t.Helper()
	svc, err := NewUserService(auth.NewBcryptHasher(bcrypt.MinCost), auth.NewJWTCodec("test-secret"), time.Hour)
	require.NoError(t, err)
	return svc
}

func TestAuthenticate(t *testing.T) {
	svc := newTestUserService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
		wantRole string
		wantErr  error
	}{
		{"admin logs in", "admin", "admin123", "admin", nil},
		{"regular user logs in", "alice", "alice123", "user", nil},
		{"wrong password", "alice", "bob123", "", ErrInvalidCredentials},
		{"unknown user", "mallory", "whatever", "", ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, token, err := svc.Authenticate(ctx, tt.username, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.username, user.Username)
			assert.Equal(t, tt.wantRole, user.Role)
			require.NotEmpty(t, token)

			// The token must verify back to the same identity.
			username, role, err := auth.NewJWTCodec("test-secret").Verify(token)
			require.NoError(t, err)
			assert.Equal(t, tt.username, username)
			assert.Equal(t, tt.wantRole, role)
		})
	}
}

func TestUsernames(t *testing.T) {
	svc := newTestUserService(t)
	names := svc.Usernames(context.Background())
	assert.Equal(t, []string{"admin", "alice", "bob", "charlie", "diana", "user"}, names)
}

func TestGet(t *testing.T) {
	svc := newTestUserService(t)
	u, err := svc.Get(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", u.Email)

	_, err = svc.Get(context.Background(), "mallory")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
