package domain

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a course review written by an authenticated user. UserEmail is set
// from the verified token claims at creation and is immutable afterwards.
type Review struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	CourseID  string    `json:"course" bson:"course_id"`
	UserEmail string    `json:"user" bson:"user_email"`
	Comment   string    `json:"comment" bson:"comment"`
	Rating    int       `json:"rating" bson:"rating"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// ValidRating reports whether r is inside the allowed [MinRating, MaxRating] range.
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

// CanMutateReview decides whether the caller identified by email and role may
// update or delete the review: the author always may, admins override.
// Existence must be checked by the caller before this policy is applied.
func CanMutateReview(review *Review, email, role string) bool {
	return review.UserEmail == email || role == RoleAdmin
}
