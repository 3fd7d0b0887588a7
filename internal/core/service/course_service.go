package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/edukatsiya/education-platform/internal/core/domain"
	"github.com/edukatsiya/education-platform/internal/core/ports"
)

// CourseService implements course use cases. Read views resolve the linked
// teacher so list pages need a single request.
type CourseService struct {
	courses  ports.CourseRepository
	teachers ports.TeacherRepository
	log      zerolog.Logger
}

func NewCourseService(courses ports.CourseRepository, teachers ports.TeacherRepository, log zerolog.Logger) *CourseService {
	return &CourseService{courses: courses, teachers: teachers, log: log}
}

func (s *CourseService) ListCourses(ctx context.Context) ([]*domain.CourseWithTeacher, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*domain.CourseWithTeacher, 0, len(courses))
	for _, c := range courses {
		views = append(views, s.withTeacher(ctx, c))
	}
	return views, nil
}

func (s *CourseService) GetCourse(ctx context.Context, id string) (*domain.CourseWithTeacher, error) {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withTeacher(ctx, course), nil
}

func (s *CourseService) CreateCourse(ctx context.Context, in ports.CreateCourseInput) (*domain.Course, error) {
	if in.TeacherID != "" {
		if _, err := s.teachers.FindByID(ctx, in.TeacherID); err != nil {
			return nil, err
		}
	}

	created, err := s.courses.Create(ctx, &domain.Course{
		Title:       in.Title,
		Description: in.Description,
		TeacherID:   in.TeacherID,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("course_id", created.ID).Str("title", created.Title).Msg("course created")
	return created, nil
}

func (s *CourseService) UpdateCourse(ctx context.Context, id string, in ports.CreateCourseInput) (*domain.Course, error) {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		course.Title = in.Title
	}
	if in.Description != "" {
		course.Description = in.Description
	}
	if in.TeacherID != "" {
		if _, err := s.teachers.FindByID(ctx, in.TeacherID); err != nil {
			return nil, err
		}
		course.TeacherID = in.TeacherID
	}

	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) DeleteCourse(ctx context.Context, id string) error {
	if _, err := s.courses.FindByID(ctx, id); err != nil {
		return err
	}
	return s.courses.Delete(ctx, id)
}

// withTeacher attaches the teacher profile when the course links one. A
// dangling teacher reference degrades to a course without teacher details.
func (s *CourseService) withTeacher(ctx context.Context, course *domain.Course) *domain.CourseWithTeacher {
	view := &domain.CourseWithTeacher{Course: *course}
	if course.TeacherID == "" {
		return view
	}
	teacher, err := s.teachers.FindByID(ctx, course.TeacherID)
	if err != nil {
		if !errors.Is(err, domain.ErrTeacherNotFound) {
			s.log.Warn().Err(err).Str("course_id", course.ID).Msg("failed to resolve teacher")
		}
		return view
	}
	view.Teacher = teacher
	return view
}
