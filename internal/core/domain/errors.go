package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")

	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrPasswordNoUpper  = errors.New("password must contain at least one uppercase letter")
	ErrPasswordNoDigit  = errors.New("password must contain at least one digit")

	ErrForbidden = errors.New("access forbidden")

	ErrCourseNotFound        = errors.New("course not found")
	ErrTeacherNotFound       = errors.New("teacher not found")
	ErrReviewNotFound        = errors.New("review not found")
	ErrAdvantageNotFound     = errors.New("advantage not found")
	ErrStudentReviewNotFound = errors.New("student review not found")

	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrUnsupportedFile = errors.New("only JPEG, PNG or GIF images are allowed")
	ErrFileTooLarge    = errors.New("file exceeds the maximum allowed size")
)
