package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/edukatsiya/education-platform/internal/core/domain"
	"github.com/edukatsiya/education-platform/internal/core/ports"
)

// TeacherService implements teacher profile use cases.
type TeacherService struct {
	repo ports.TeacherRepository
	log  zerolog.Logger
}

func NewTeacherService(repo ports.TeacherRepository, log zerolog.Logger) *TeacherService {
	return &TeacherService{repo: repo, log: log}
}

func (s *TeacherService) ListTeachers(ctx context.Context) ([]*domain.Teacher, error) {
	return s.repo.List(ctx)
}

func (s *TeacherService) GetTeacher(ctx context.Context, id string) (*domain.Teacher, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TeacherService) CreateTeacher(ctx context.Context, in ports.CreateTeacherInput) (*domain.Teacher, error) {
	image := in.Image
	if image == "" {
		image = domain.DefaultTeacherImage
	}

	created, err := s.repo.Create(ctx, &domain.Teacher{
		Name:  in.Name,
		Image: image,
		Bio:   in.Bio,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("teacher_id", created.ID).Str("name", created.Name).Msg("teacher created")
	return created, nil
}

func (s *TeacherService) UpdateTeacher(ctx context.Context, id string, in ports.CreateTeacherInput) (*domain.Teacher, error) {
	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		teacher.Name = in.Name
	}
	if in.Image != "" {
		teacher.Image = in.Image
	}
	if in.Bio != "" {
		teacher.Bio = in.Bio
	}

	if err := s.repo.Update(ctx, teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}

func (s *TeacherService) DeleteTeacher(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
