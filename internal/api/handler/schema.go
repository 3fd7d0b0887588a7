package handler

import (
	"time"

	"github.com/edukatsiya/education-platform/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the confirmation envelope for mutations without a body.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Reviews ---

type createReviewRequest struct {
	Course  string `json:"course"  validate:"required"`
	Comment string `json:"comment" validate:"required"`
	Rating  int    `json:"rating"  validate:"required,min=1,max=5"`
}

// updateReviewRequest is a partial update; omitted fields stay unchanged.
type updateReviewRequest struct {
	Comment *string `json:"comment,omitempty"`
	Rating  *int    `json:"rating,omitempty"  validate:"omitempty,min=1,max=5"`
}

type reviewResponse struct {
	ID          string    `json:"id"`
	Course      string    `json:"course"`
	CourseTitle string    `json:"course_title,omitempty"`
	User        string    `json:"user"`
	Comment     string    `json:"comment"`
	Rating      int       `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
}

func toReviewResponse(r *domain.Review, courseTitle string) reviewResponse {
	return reviewResponse{
		ID:          r.ID,
		Course:      r.CourseID,
		CourseTitle: courseTitle,
		User:        r.UserEmail,
		Comment:     r.Comment,
		Rating:      r.Rating,
		CreatedAt:   r.CreatedAt,
	}
}

// --- Courses ---

type courseRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	TeacherID   string `json:"teacher_id"`
}

// courseUpdateRequest allows partial updates, so nothing is required.
type courseUpdateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TeacherID   string `json:"teacher_id"`
}

// --- Teachers ---

type teacherRequest struct {
	Name  string `json:"name"  validate:"required"`
	Image string `json:"image"`
	Bio   string `json:"bio"   validate:"required"`
}

type teacherUpdateRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
	Bio   string `json:"bio"`
}

// --- Advantages ---

type advantageRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
}

type advantageUpdateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// --- Student reviews ---

type studentReviewRequest struct {
	Name   string `json:"name"   validate:"required"`
	Course string `json:"course" validate:"required"`
	Text   string `json:"text"   validate:"required"`
}

// --- Uploads ---

type uploadResponse struct {
	FilePath string `json:"file_path"`
}

type fileListResponse struct {
	Files []string `json:"files"`
}
