package domain

import (
	"context"
	"time"
)

// User is a registered account. Accounts are seeded at startup; PasswordHash
// is a bcrypt hash and is never serialized.
type User struct {
	Username     string `json:"username"`
	Role         string `json:"role"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// PasswordHasher hashes and verifies passwords. Implementations may use
// bcrypt, argon2, etc.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(username, role string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated username and
// role.
type TokenVerifier interface {
	Verify(token string) (username, role string, err error)
}

// UserService authenticates seeded users and lists usernames.
type UserService interface {
	// Authenticate checks the credentials and, on success, returns the user
	// and a signed session token.
	Authenticate(ctx context.Context, username, password string) (*User, string, error)
	Usernames(ctx context.Context) []string
	Get(ctx context.Context, username string) (*User, error)
}

// Mailer sends a single email message.
type Mailer interface {
	Send(to, subject, html, text string) error
}
