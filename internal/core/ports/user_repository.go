package ports

import (
	"context"

	"github.com/campusops/student-api/internal/core/domain"
)

// UserRepository defines the interface for account persistence. Username
// uniqueness is enforced by the store: Create returns domain.ErrUserExists
// on a collision.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
