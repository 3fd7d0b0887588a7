package ports

import (
	"context"

	"github.com/edukatsiya/education-platform/internal/core/domain"
)

// AuthService covers registration, login and the admin login variant.
// Login and AdminLogin collapse every failure cause into
// domain.ErrInvalidCredentials so callers cannot enumerate accounts.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	AdminLogin(ctx context.Context, email, password string) (string, *domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
}
