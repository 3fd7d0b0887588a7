package ports

import (
	"context"

	"github.com/edukatsiya/education-platform/internal/core/domain"
)

// AuthRepository defines the interface for user identity persistence.
// Create must surface domain.ErrEmailTaken on a duplicate email; the backing
// store's unique index is the authority, not a prior existence check.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
