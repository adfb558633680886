package service

import (
	"context"
	"fmt"

	"github.com/fccardedeu/backend/internal/domain"
	"github.com/fccardedeu/backend/internal/repository"

	"github.com/google/uuid"
)

type SponsorInput struct {
	Name    string
	Website string
	LogoURL string
	Tier    string
	Active  bool
}

type sponsorService struct {
	repo repository.Sponsors
}

func newSponsorService(repo repository.Sponsors) *sponsorService {
	return &sponsorService{repo: repo}
}

func (s *sponsorService) List(ctx context.Context, activeOnly bool) ([]domain.Sponsor, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *sponsorService) Create(ctx context.Context, input SponsorInput) (*domain.Sponsor, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate sponsor id failed: %w", err)
	}

	sponsor := &domain.Sponsor{
		ID:      id,
		Name:    input.Name,
		Website: input.Website,
		LogoURL: input.LogoURL,
		Tier:    input.Tier,
		Active:  input.Active,
	}

	if err := s.repo.Create(ctx, sponsor); err != nil {
		return nil, err
	}

	return sponsor, nil
}

func (s *sponsorService) Update(ctx context.Context, id uuid.UUID, input SponsorInput) error {
	return s.repo.Update(ctx, &domain.Sponsor{
		ID:      id,
		Name:    input.Name,
		Website: input.Website,
		LogoURL: input.LogoURL,
		Tier:    input.Tier,
		Active:  input.Active,
	})
}

func (s *sponsorService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
