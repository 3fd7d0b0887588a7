package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/edukatsiya/education-platform/internal/core/domain"
	"github.com/edukatsiya/education-platform/internal/core/ports"
)

type stubTeacherRepo struct {
	teachers map[string]*domain.Teacher
}

func newStubTeacherRepo(teachers ...*domain.Teacher) *stubTeacherRepo {
	r := &stubTeacherRepo{teachers: make(map[string]*domain.Teacher)}
	for _, tc := range teachers {
		r.teachers[tc.ID] = tc
	}
	return r
}

func (r *stubTeacherRepo) List(_ context.Context) ([]*domain.Teacher, error) {
	out := make([]*domain.Teacher, 0, len(r.teachers))
	for _, tc := range r.teachers {
		clone := *tc
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubTeacherRepo) FindByID(_ context.Context, id string) (*domain.Teacher, error) {
	tc, ok := r.teachers[id]
	if !ok {
		return nil, domain.ErrTeacherNotFound
	}
	clone := *tc
	return &clone, nil
}

func (r *stubTeacherRepo) Create(_ context.Context, teacher *domain.Teacher) (*domain.Teacher, error) {
	clone := *teacher
	clone.ID = "teacher_" + strconv.Itoa(len(r.teachers)+1)
	stored := clone
	r.teachers[clone.ID] = &stored
	return &clone, nil
}

func (r *stubTeacherRepo) Update(_ context.Context, teacher *domain.Teacher) error {
	if _, ok := r.teachers[teacher.ID]; !ok {
		return domain.ErrTeacherNotFound
	}
	clone := *teacher
	r.teachers[teacher.ID] = &clone
	return nil
}

func (r *stubTeacherRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.teachers[id]; !ok {
		return domain.ErrTeacherNotFound
	}
	delete(r.teachers, id)
	return nil
}

func TestCourseService_Get_ResolvesTeacher(t *testing.T) {
	courses := newStubCourseRepo(&domain.Course{ID: "course_1", Title: "Physics", TeacherID: "teacher_1"})
	teachers := newStubTeacherRepo(&domain.Teacher{ID: "teacher_1", Name: "Vali", Bio: "Physics professor"})
	svc := NewCourseService(courses, teachers, zerolog.Nop())

	view, err := svc.GetCourse(context.Background(), "course_1")
	if err != nil {
		t.Fatalf("get course: %v", err)
	}
	if view.Teacher == nil || view.Teacher.Name != "Vali" {
		t.Fatalf("expected teacher resolved, got %+v", view.Teacher)
	}
}

func TestCourseService_Get_DanglingTeacher(t *testing.T) {
	courses := newStubCourseRepo(&domain.Course{ID: "course_1", Title: "Physics", TeacherID: "gone"})
	svc := NewCourseService(courses, newStubTeacherRepo(), zerolog.Nop())

	view, err := svc.GetCourse(context.Background(), "course_1")
	if err != nil {
		t.Fatalf("get course: %v", err)
	}
	if view.Teacher != nil {
		t.Fatalf("expected nil teacher for dangling reference")
	}
}

func TestCourseService_Get_NotFound(t *testing.T) {
	svc := NewCourseService(newStubCourseRepo(), newStubTeacherRepo(), zerolog.Nop())

	if _, err := svc.GetCourse(context.Background(), "missing"); err != domain.ErrCourseNotFound {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestCourseService_Create_UnknownTeacher(t *testing.T) {
	svc := NewCourseService(newStubCourseRepo(), newStubTeacherRepo(), zerolog.Nop())

	_, err := svc.CreateCourse(context.Background(), ports.CreateCourseInput{
		Title: "Algebra", TeacherID: "missing",
	})
	if err != domain.ErrTeacherNotFound {
		t.Fatalf("expected ErrTeacherNotFound, got %v", err)
	}
}

func TestCourseService_Update_Partial(t *testing.T) {
	courses := newStubCourseRepo(&domain.Course{ID: "course_1", Title: "Physics", Description: "intro"})
	svc := NewCourseService(courses, newStubTeacherRepo(), zerolog.Nop())

	updated, err := svc.UpdateCourse(context.Background(), "course_1", ports.CreateCourseInput{Title: "Physics II"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Physics II" || updated.Description != "intro" {
		t.Fatalf("partial update wrong: %+v", updated)
	}
}

func TestTeacherService_Create_DefaultImage(t *testing.T) {
	svc := NewTeacherService(newStubTeacherRepo(), zerolog.Nop())

	teacher, err := svc.CreateTeacher(context.Background(), ports.CreateTeacherInput{Name: "Ali", Bio: "Maths"})
	if err != nil {
		t.Fatalf("create teacher: %v", err)
	}
	if teacher.Image != domain.DefaultTeacherImage {
		t.Fatalf("expected default image, got %q", teacher.Image)
	}
}
