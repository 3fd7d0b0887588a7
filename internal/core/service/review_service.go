package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/edukatsiya/education-platform/internal/core/domain"
	"github.com/edukatsiya/education-platform/internal/core/ports"
)

// ReviewService implements the review use cases, including the ownership
// policy on mutations.
type ReviewService struct {
	reviews ports.ReviewRepository
	courses ports.CourseRepository
	log     zerolog.Logger
}

func NewReviewService(reviews ports.ReviewRepository, courses ports.CourseRepository, log zerolog.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, courses: courses, log: log}
}

// ListReviews returns all reviews with their course titles resolved. A review
// whose course no longer resolves is still returned, with an empty title.
func (s *ReviewService) ListReviews(ctx context.Context) ([]*ports.ReviewView, error) {
	reviews, err := s.reviews.List(ctx)
	if err != nil {
		return nil, err
	}

	titles := make(map[string]string)
	views := make([]*ports.ReviewView, 0, len(reviews))
	for _, r := range reviews {
		title, seen := titles[r.CourseID]
		if !seen {
			if course, err := s.courses.FindByID(ctx, r.CourseID); err == nil {
				title = course.Title
			}
			titles[r.CourseID] = title
		}
		views = append(views, &ports.ReviewView{Review: *r, CourseTitle: title})
	}
	return views, nil
}

// CreateReview persists a new review authored by the caller. The rating range
// is enforced here as well as at the transport layer.
func (s *ReviewService) CreateReview(ctx context.Context, in ports.CreateReviewInput) (*domain.Review, error) {
	if !domain.ValidRating(in.Rating) {
		return nil, domain.ErrInvalidRating
	}
	if _, err := s.courses.FindByID(ctx, in.CourseID); err != nil {
		return nil, err
	}

	review := &domain.Review{
		CourseID:  in.CourseID,
		UserEmail: in.UserEmail,
		Comment:   in.Comment,
		Rating:    in.Rating,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.reviews.Create(ctx, review)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("review_id", created.ID).Str("course_id", created.CourseID).Msg("review created")
	return created, nil
}

// UpdateReview applies a partial update after the existence and ownership
// checks, in that order: a missing review is 404 before any ownership
// question, a non-owner non-admin caller is rejected without mutation.
func (s *ReviewService) UpdateReview(ctx context.Context, in ports.UpdateReviewInput) (*domain.Review, error) {
	review, err := s.authorize(ctx, in.ID, in.CallerEmail, in.CallerRole)
	if err != nil {
		return nil, err
	}

	if in.Comment != nil {
		review.Comment = *in.Comment
	}
	if in.Rating != nil {
		if !domain.ValidRating(*in.Rating) {
			return nil, domain.ErrInvalidRating
		}
		review.Rating = *in.Rating
	}

	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// DeleteReview removes a review after the existence and ownership checks.
func (s *ReviewService) DeleteReview(ctx context.Context, in ports.DeleteReviewInput) error {
	if _, err := s.authorize(ctx, in.ID, in.CallerEmail, in.CallerRole); err != nil {
		return err
	}
	return s.reviews.Delete(ctx, in.ID)
}

// authorize loads the review and applies the ownership policy.
func (s *ReviewService) authorize(ctx context.Context, id, callerEmail, callerRole string) (*domain.Review, error) {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrReviewNotFound) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}
	if !domain.CanMutateReview(review, callerEmail, callerRole) {
		return nil, domain.ErrForbidden
	}
	return review, nil
}
