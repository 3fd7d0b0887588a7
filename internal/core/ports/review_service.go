package ports

import (
	"context"

	"github.com/edukatsiya/education-platform/internal/core/domain"
)

// CreateReviewInput carries the fields a user submits for a new review.
// UserEmail comes from the verified token claims, never from the request body.
type CreateReviewInput struct {
	CourseID  string
	UserEmail string
	Comment   string
	Rating    int
}

// UpdateReviewInput is a partial update; nil fields are left unchanged.
// Caller identity is used for the ownership check.
type UpdateReviewInput struct {
	ID          string
	CallerEmail string
	CallerRole  string
	Comment     *string
	Rating      *int
}

// DeleteReviewInput identifies the review and the caller for the ownership check.
type DeleteReviewInput struct {
	ID          string
	CallerEmail string
	CallerRole  string
}

// ReviewView is a review with its course title resolved, used in list responses.
type ReviewView struct {
	domain.Review
	CourseTitle string
}

// ReviewService defines the review use cases. Update and Delete evaluate
// existence before ownership: a missing review yields ErrReviewNotFound, a
// non-owner non-admin caller yields ErrForbidden.
type ReviewService interface {
	ListReviews(ctx context.Context) ([]*ReviewView, error)
	CreateReview(ctx context.Context, in CreateReviewInput) (*domain.Review, error)
	UpdateReview(ctx context.Context, in UpdateReviewInput) (*domain.Review, error)
	DeleteReview(ctx context.Context, in DeleteReviewInput) error
}
