package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"imagetagger/internal/domain"
)

// ErrInvalidCredentials is returned by Authenticate for a bad username or
// password. The controller maps it to 401 without detail.
var ErrInvalidCredentials = errors.New("invalid credentials")

// seedUser is one fixed account created at startup.
type seedUser struct {
	username string
	password string
	role     string
	email    string
}

// defaultUsers is the demo account set. There is no signup flow; accounts
// exist only to exercise the group and tagging features.
var defaultUsers = []seedUser{
	{"admin", "admin123", "admin", "admin@example.com"},
	{"user", "user123", "user", "user@example.com"},
	{"alice", "alice123", "user", "alice@example.com"},
	{"bob", "bob123", "user", "bob@example.com"},
	{"charlie", "charlie123", "user", "charlie@example.com"},
	{"diana", "diana123", "user", "diana@example.com"},
}

type userService struct {
	users       map[string]domain.User
	hasher      domain.PasswordHasher
	issuer      domain.TokenIssuer
	tokenExpiry time.Duration
}

// NewUserService seeds the fixed user set, hashing every password, and
// returns a UserService that issues a session token on login.
func NewUserService(hasher domain.PasswordHasher, issuer domain.TokenIssuer, tokenExpiry time.Duration) (domain.UserService, error) {
	users := make(map[string]domain.User, len(defaultUsers))
	for _, u := range defaultUsers {
		hash, err := hasher.Hash(u.password)
		if err != nil {
			return nil, fmt.Errorf("failed to seed user %s: %w", u.username, err)
		}
		users[u.username] = domain.User{
			Username:     u.username,
			Role:         u.role,
			Email:        u.email,
			PasswordHash: hash,
		}
	}
	return &userService{
		users:       users,
		hasher:      hasher,
		issuer:      issuer,
		tokenExpiry: tokenExpiry,
	}, nil
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, string, error) {
	u, ok := s.users[username]
	if !ok {
		return nil, "", ErrInvalidCredentials
	}
	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.issuer.Issue(u.Username, u.Role, s.tokenExpiry)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return &u, token, nil
}

func (s *userService) Usernames(ctx context.Context) []string {
	names := make([]string, 0, len(s.users))
	for name := range s.users {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *userService) Get(ctx context.Context, username string) (*domain.User, error) {
	u, ok := s.users[username]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, username)
	}
	return &u, nil
}
