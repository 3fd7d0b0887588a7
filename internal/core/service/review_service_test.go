package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/edukatsiya/education-platform/internal/core/domain"
	"github.com/edukatsiya/education-platform/internal/core/ports"
)

type stubReviewRepo struct {
	reviews map[string]*domain.Review
	nextID  int
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{reviews: make(map[string]*domain.Review), nextID: 1}
}

func (r *stubReviewRepo) List(_ context.Context) ([]*domain.Review, error) {
	out := make([]*domain.Review, 0, len(r.reviews))
	for _, rev := range r.reviews {
		clone := *rev
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubReviewRepo) FindByID(_ context.Context, id string) (*domain.Review, error) {
	rev, ok := r.reviews[id]
	if !ok {
		return nil, domain.ErrReviewNotFound
	}
	clone := *rev
	return &clone, nil
}

func (r *stubReviewRepo) Create(_ context.Context, review *domain.Review) (*domain.Review, error) {
	clone := *review
	clone.ID = "rev_" + strconv.Itoa(r.nextID)
	r.nextID++
	stored := clone
	r.reviews[clone.ID] = &stored
	return &clone, nil
}

func (r *stubReviewRepo) Update(_ context.Context, review *domain.Review) error {
	if _, ok := r.reviews[review.ID]; !ok {
		return domain.ErrReviewNotFound
	}
	clone := *review
	r.reviews[review.ID] = &clone
	return nil
}

func (r *stubReviewRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.reviews[id]; !ok {
		return domain.ErrReviewNotFound
	}
	delete(r.reviews, id)
	return nil
}

type stubCourseRepo struct {
	courses map[string]*domain.Course
}

func newStubCourseRepo(courses ...*domain.Course) *stubCourseRepo {
	r := &stubCourseRepo{courses: make(map[string]*domain.Course)}
	for _, c := range courses {
		r.courses[c.ID] = c
	}
	return r
}

func (r *stubCourseRepo) List(_ context.Context) ([]*domain.Course, error) {
	out := make([]*domain.Course, 0, len(r.courses))
	for _, c := range r.courses {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCourseRepo) FindByID(_ context.Context, id string) (*domain.Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCourseRepo) Create(_ context.Context, course *domain.Course) (*domain.Course, error) {
	clone := *course
	if clone.ID == "" {
		clone.ID = "course_" + strconv.Itoa(len(r.courses)+1)
	}
	stored := clone
	r.courses[clone.ID] = &stored
	return &clone, nil
}

func (r *stubCourseRepo) Update(_ context.Context, course *domain.Course) error {
	if _, ok := r.courses[course.ID]; !ok {
		return domain.ErrCourseNotFound
	}
	clone := *course
	r.courses[course.ID] = &clone
	return nil
}

func (r *stubCourseRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.courses[id]; !ok {
		return domain.ErrCourseNotFound
	}
	delete(r.courses, id)
	return nil
}

func newTestReviewService() (*ReviewService, *stubReviewRepo) {
	reviews := newStubReviewRepo()
	courses := newStubCourseRepo(&domain.Course{ID: "course_1", Title: "Mathematics"})
	return NewReviewService(reviews, courses, zerolog.Nop()), reviews
}

func createReviewBy(t *testing.T, svc *ReviewService, email string) *domain.Review {
	t.Helper()
	review, err := svc.CreateReview(context.Background(), ports.CreateReviewInput{
		CourseID:  "course_1",
		UserEmail: email,
		Comment:   "great course",
		Rating:    5,
	})
	if err != nil {
		t.Fatalf("create review: %v", err)
	}
	return review
}

func TestReviewService_Create_RatingBounds(t *testing.T) {
	svc, _ := newTestReviewService()

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.CreateReview(context.Background(), ports.CreateReviewInput{
			CourseID: "course_1", UserEmail: "a@x.com", Comment: "x", Rating: rating,
		})
		if err != domain.ErrInvalidRating {
			t.Fatalf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}

	for _, rating := range []int{1, 5} {
		if _, err := svc.CreateReview(context.Background(), ports.CreateReviewInput{
			CourseID: "course_1", UserEmail: "a@x.com", Comment: "x", Rating: rating,
		}); err != nil {
			t.Fatalf("rating %d: expected success, got %v", rating, err)
		}
	}
}

func TestReviewService_Create_UnknownCourse(t *testing.T) {
	svc, _ := newTestReviewService()

	_, err := svc.CreateReview(context.Background(), ports.CreateReviewInput{
		CourseID: "missing", UserEmail: "a@x.com", Comment: "x", Rating: 3,
	})
	if err != domain.ErrCourseNotFound {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestReviewService_Update_OwnershipMatrix(t *testing.T) {
	svc, _ := newTestReviewService()
	review := createReviewBy(t, svc, "author@x.com")

	comment := "edited"

	// Non-owner with the user role is forbidden.
	_, err := svc.UpdateReview(context.Background(), ports.UpdateReviewInput{
		ID: review.ID, CallerEmail: "other@x.com", CallerRole: domain.RoleUser, Comment: &comment,
	})
	if err != domain.ErrForbidden {
		t.Fatalf("non-owner: expected ErrForbidden, got %v", err)
	}

	// The author may update.
	updated, err := svc.UpdateReview(context.Background(), ports.UpdateReviewInput{
		ID: review.ID, CallerEmail: "author@x.com", CallerRole: domain.RoleUser, Comment: &comment,
	})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Comment != "edited" {
		t.Fatalf("comment not applied: %q", updated.Comment)
	}
	if updated.UserEmail != "author@x.com" {
		t.Fatalf("owner field mutated: %q", updated.UserEmail)
	}

	// An admin may update anyone's review.
	if _, err := svc.UpdateReview(context.Background(), ports.UpdateReviewInput{
		ID: review.ID, CallerEmail: "admin@x.com", CallerRole: domain.RoleAdmin, Comment: &comment,
	}); err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
}

func TestReviewService_Update_NotFoundBeforeOwnership(t *testing.T) {
	svc, _ := newTestReviewService()

	comment := "edited"
	_, err := svc.UpdateReview(context.Background(), ports.UpdateReviewInput{
		ID: "missing", CallerEmail: "anyone@x.com", CallerRole: domain.RoleUser, Comment: &comment,
	})
	if err != domain.ErrReviewNotFound {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}

func TestReviewService_Update_InvalidRating(t *testing.T) {
	svc, repo := newTestReviewService()
	review := createReviewBy(t, svc, "author@x.com")

	rating := 6
	_, err := svc.UpdateReview(context.Background(), ports.UpdateReviewInput{
		ID: review.ID, CallerEmail: "author@x.com", CallerRole: domain.RoleUser, Rating: &rating,
	})
	if err != domain.ErrInvalidRating {
		t.Fatalf("expected ErrInvalidRating, got %v", err)
	}
	if repo.reviews[review.ID].Rating != 5 {
		t.Fatalf("rating mutated despite validation failure")
	}
}

func TestReviewService_Delete_OwnershipMatrix(t *testing.T) {
	svc, repo := newTestReviewService()
	review := createReviewBy(t, svc, "author@x.com")

	if err := svc.DeleteReview(context.Background(), ports.DeleteReviewInput{
		ID: review.ID, CallerEmail: "other@x.com", CallerRole: domain.RoleUser,
	}); err != domain.ErrForbidden {
		t.Fatalf("non-owner delete: expected ErrForbidden, got %v", err)
	}
	if _, ok := repo.reviews[review.ID]; !ok {
		t.Fatalf("review deleted despite forbidden outcome")
	}

	if err := svc.DeleteReview(context.Background(), ports.DeleteReviewInput{
		ID: review.ID, CallerEmail: "admin@x.com", CallerRole: domain.RoleAdmin,
	}); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if _, ok := repo.reviews[review.ID]; ok {
		t.Fatalf("review still present after delete")
	}

	if err := svc.DeleteReview(context.Background(), ports.DeleteReviewInput{
		ID: review.ID, CallerEmail: "admin@x.com", CallerRole: domain.RoleAdmin,
	}); err != domain.ErrReviewNotFound {
		t.Fatalf("expected ErrReviewNotFound on second delete, got %v", err)
	}
}

func TestReviewService_List_ResolvesCourseTitle(t *testing.T) {
	svc, _ := newTestReviewService()
	createReviewBy(t, svc, "author@x.com")

	views, err := svc.ListReviews(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 review, got %d", len(views))
	}
	if views[0].CourseTitle != "Mathematics" {
		t.Fatalf("expected course title resolved, got %q", views[0].CourseTitle)
	}
}
