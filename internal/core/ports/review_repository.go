package ports

import (
	"context"

	"github.com/edukatsiya/education-platform/internal/core/domain"
)

// ReviewRepository defines persistence operations for course reviews.
// FindByID returns domain.ErrReviewNotFound when the id does not resolve.
type ReviewRepository interface {
	List(ctx context.Context) ([]*domain.Review, error)
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	Update(ctx context.Context, review *domain.Review) error
	Delete(ctx context.Context, id string) error
}
