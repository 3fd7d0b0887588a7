package ports

import (
	"context"

	"github.com/edukatsiya/education-platform/internal/core/domain"
)

// CreateCourseInput carries the fields for a new or updated course.
type CreateCourseInput struct {
	Title       string
	Description string
	TeacherID   string
}

// CourseService defines course use cases. Read views resolve the linked
// teacher profile when one is set.
type CourseService interface {
	ListCourses(ctx context.Context) ([]*domain.CourseWithTeacher, error)
	GetCourse(ctx context.Context, id string) (*domain.CourseWithTeacher, error)
	CreateCourse(ctx context.Context, in CreateCourseInput) (*domain.Course, error)
	UpdateCourse(ctx context.Context, id string, in CreateCourseInput) (*domain.Course, error)
	DeleteCourse(ctx context.Context, id string) error
}

// CreateTeacherInput carries the fields for a new or updated teacher profile.
type CreateTeacherInput struct {
	Name  string
	Image string
	Bio   string
}

// TeacherService defines teacher profile use cases.
type TeacherService interface {
	ListTeachers(ctx context.Context) ([]*domain.Teacher, error)
	GetTeacher(ctx context.Context, id string) (*domain.Teacher, error)
	CreateTeacher(ctx context.Context, in CreateTeacherInput) (*domain.Teacher, error)
	UpdateTeacher(ctx context.Context, id string, in CreateTeacherInput) (*domain.Teacher, error)
	DeleteTeacher(ctx context.Context, id string) error
}

// CreateAdvantageInput carries the fields for a new or updated advantage.
type CreateAdvantageInput struct {
	Title       string
	Description string
}

// AdvantageService defines advantage use cases.
type AdvantageService interface {
	ListAdvantages(ctx context.Context) ([]*domain.Advantage, error)
	CreateAdvantage(ctx context.Context, in CreateAdvantageInput) (*domain.Advantage, error)
	UpdateAdvantage(ctx context.Context, id string, in CreateAdvantageInput) (*domain.Advantage, error)
	DeleteAdvantage(ctx context.Context, id string) error
}

// CreateStudentReviewInput carries the fields for a new testimonial.
type CreateStudentReviewInput struct {
	Name   string
	Course string
	Text   string
}

// StudentReviewService defines testimonial use cases.
type StudentReviewService interface {
	ListStudentReviews(ctx context.Context) ([]*domain.StudentReview, error)
	CreateStudentReview(ctx context.Context, in CreateStudentReviewInput) (*domain.StudentReview, error)
}
