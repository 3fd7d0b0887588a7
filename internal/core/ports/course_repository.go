package ports

import (
	"context"

	"github.com/edukatsiya/education-platform/internal/core/domain"
)

// CourseRepository defines persistence operations for courses.
type CourseRepository interface {
	List(ctx context.Context) ([]*domain.Course, error)
	FindByID(ctx context.Context, id string) (*domain.Course, error)
	Create(ctx context.Context, course *domain.Course) (*domain.Course, error)
	Update(ctx context.Context, course *domain.Course) error
	Delete(ctx context.Context, id string) error
}

// TeacherRepository defines persistence operations for teacher profiles.
type TeacherRepository interface {
	List(ctx context.Context) ([]*domain.Teacher, error)
	FindByID(ctx context.Context, id string) (*domain.Teacher, error)
	Create(ctx context.Context, teacher *domain.Teacher) (*domain.Teacher, error)
	Update(ctx context.Context, teacher *domain.Teacher) error
	Delete(ctx context.Context, id string) error
}

// AdvantageRepository defines persistence operations for landing-page advantages.
type AdvantageRepository interface {
	List(ctx context.Context) ([]*domain.Advantage, error)
	FindByID(ctx context.Context, id string) (*domain.Advantage, error)
	Create(ctx context.Context, advantage *domain.Advantage) (*domain.Advantage, error)
	Update(ctx context.Context, advantage *domain.Advantage) error
	Delete(ctx context.Context, id string) error
}

// StudentReviewRepository defines persistence operations for testimonials.
type StudentReviewRepository interface {
	List(ctx context.Context) ([]*domain.StudentReview, error)
	Create(ctx context.Context, review *domain.StudentReview) (*domain.StudentReview, error)
}
