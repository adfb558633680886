package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fccardedeu/backend/internal/domain"
	"github.com/fccardedeu/backend/internal/repository"

	"github.com/google/uuid"
)

type MatchInput struct {
	TeamID   uuid.UUID
	Opponent string
	Kickoff  time.Time
	Location string
	Home     bool
}

type matchService struct {
	repo  repository.Matches
	teams repository.Teams
}

func newMatchService(repo repository.Matches, teams repository.Teams) *matchService {
	return &matchService{
		repo:  repo,
		teams: teams,
	}
}

func (s *matchService) ListUpcoming(ctx context.Context, teamID *uuid.UUID, limit int) ([]domain.Match, error) {
	return s.repo.ListUpcoming(ctx, teamID, limit)
}

func (s *matchService) Create(ctx context.Context, input MatchInput) (*domain.Match, error) {
	if _, err := s.teams.GetByID(ctx, input.TeamID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate match id failed: %w", err)
	}

	match := &domain.Match{
		ID:       id,
		TeamID:   input.TeamID,
		Opponent: input.Opponent,
		Kickoff:  input.Kickoff,
		Location: input.Location,
		Home:     input.Home,
	}

	if err := s.repo.Create(ctx, match); err != nil {
		return nil, err
	}

	return match, nil
}

func (s *matchService) Update(ctx context.Context, id uuid.UUID, input MatchInput) error {
	return s.repo.Update(ctx, &domain.Match{
		ID:       id,
		TeamID:   input.TeamID,
		Opponent: input.Opponent,
		Kickoff:  input.Kickoff,
		Location: input.Location,
		Home:     input.Home,
	})
}

func (s *matchService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *matchService) SetResult(ctx context.Context, id uuid.UUID, homeGoals, awayGoals int) error {
	return s.repo.SetResult(ctx, id, homeGoals, awayGoals)
}
