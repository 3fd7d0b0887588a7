package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/edukatsiya/education-platform/internal/core/domain"
	"github.com/edukatsiya/education-platform/internal/core/ports"
)

// AdvantageService implements landing-page advantage use cases.
type AdvantageService struct {
	repo ports.AdvantageRepository
	log  zerolog.Logger
}

func NewAdvantageService(repo ports.AdvantageRepository, log zerolog.Logger) *AdvantageService {
	return &AdvantageService{repo: repo, log: log}
}

func (s *AdvantageService) ListAdvantages(ctx context.Context) ([]*domain.Advantage, error) {
	return s.repo.List(ctx)
}

func (s *AdvantageService) CreateAdvantage(ctx context.Context, in ports.CreateAdvantageInput) (*domain.Advantage, error) {
	created, err := s.repo.Create(ctx, &domain.Advantage{
		Title:       in.Title,
		Description: in.Description,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("advantage_id", created.ID).Msg("advantage created")
	return created, nil
}

func (s *AdvantageService) UpdateAdvantage(ctx context.Context, id string, in ports.CreateAdvantageInput) (*domain.Advantage, error) {
	advantage, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		advantage.Title = in.Title
	}
	if in.Description != "" {
		advantage.Description = in.Description
	}

	if err := s.repo.Update(ctx, advantage); err != nil {
		return nil, err
	}
	return advantage, nil
}

func (s *AdvantageService) DeleteAdvantage(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// StudentReviewService implements testimonial use cases. Creation is an
// admin-only route used by seeding.
type StudentReviewService struct {
	repo ports.StudentReviewRepository
	log  zerolog.Logger
}

func NewStudentReviewService(repo ports.StudentReviewRepository, log zerolog.Logger) *StudentReviewService {
	return &StudentReviewService{repo: repo, log: log}
}

func (s *StudentReviewService) ListStudentReviews(ctx context.Context) ([]*domain.StudentReview, error) {
	return s.repo.List(ctx)
}

func (s *StudentReviewService) CreateStudentReview(ctx context.Context, in ports.CreateStudentReviewInput) (*domain.StudentReview, error) {
	return s.repo.Create(ctx, &domain.StudentReview{
		Name:   in.Name,
		Course: in.Course,
		Text:   in.Text,
	})
}
