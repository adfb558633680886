package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fccardedeu/backend/internal/domain"
	"github.com/fccardedeu/backend/internal/repository"

	"github.com/google/uuid"
)

type TeamInput struct {
	Name     string
	Category string
	Season   string
	Coach    string
	PhotoURL string
}

type PlayerInput struct {
	Name     string
	Surname  string
	Number   int
	Position string
}

type teamService struct {
	repo repository.Teams
}

func newTeamService(repo repository.Teams) *teamService {
	return &teamService{repo: repo}
}

func (s *teamService) List(ctx context.Context) ([]domain.Team, error) {
	return s.repo.List(ctx)
}

func (s *teamService) GetWithRoster(ctx context.Context, id uuid.UUID) (*domain.Team, []domain.Player, error) {
	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, ErrTeamNotFound
		}
		return nil, nil, err
	}

	players, err := s.repo.ListPlayers(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return team, players, nil
}

func (s *teamService) Create(ctx context.Context, input TeamInput) (*domain.Team, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate team id failed: %w", err)
	}

	team := &domain.Team{
		ID:       id,
		Name:     input.Name,
		Category: input.Category,
		Season:   input.Season,
		Coach:    input.Coach,
		PhotoURL: input.PhotoURL,
	}

	if err := s.repo.Create(ctx, team); err != nil {
		return nil, err
	}

	return team, nil
}

func (s *teamService) Update(ctx context.Context, id uuid.UUID, input TeamInput) error {
	return s.repo.Update(ctx, &domain.Team{
		ID:       id,
		Name:     input.Name,
		Category: input.Category,
		Season:   input.Season,
		Coach:    input.Coach,
		PhotoURL: input.PhotoURL,
	})
}

func (s *teamService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *teamService) AddPlayer(ctx context.Context, teamID uuid.UUID, input PlayerInput) (*domain.Player, error) {
	if _, err := s.repo.GetByID(ctx, teamID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate player id failed: %w", err)
	}

	player := &domain.Player{
		ID:       id,
		TeamID:   teamID,
		Name:     input.Name,
		Surname:  input.Surname,
		Number:   input.Number,
		Position: input.Position,
	}

	if err := s.repo.AddPlayer(ctx, player); err != nil {
		return nil, err
	}

	return player, nil
}

func (s *teamService) RemovePlayer(ctx context.Context, id uuid.UUID) error {
	return s.repo.RemovePlayer(ctx, id)
}
