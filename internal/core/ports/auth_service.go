package ports

import (
	"context"

	"github.com/campusops/student-api/internal/core/domain"
)

type AuthService interface {
	// Register creates a student-role account. Empty username or password
	// yields domain.ErrInvalidCredentials; a username collision yields
	// domain.ErrUserExists.
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login verifies credentials. Unknown usernames and wrong passwords are
	// indistinguishable to the caller: both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*domain.User, error)
	// EnsureAdmin creates the bootstrap admin account when it does not exist.
	EnsureAdmin(ctx context.Context, username, password string) error
}
