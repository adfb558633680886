package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fccardedeu/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type teamRepository struct {
	db *sqlx.DB
}

func newTeamRepository(db *sqlx.DB) *teamRepository {
	return &teamRepository{
		db: db,
	}
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	const query = `INSERT INTO teams (id, name, category, season, coach, photo_url)
		VALUES (uuid_to_bin(?), ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		team.ID, team.Name, team.Category, team.Season, team.Coach, team.PhotoURL)
	if err != nil {
		return fmt.Errorf("db insert team: %w", err)
	}

	return nil
}

func (r *teamRepository) Update(ctx context.Context, team *domain.Team) error {
	const query = `UPDATE teams SET name = ?, category = ?, season = ?, coach = ?, photo_url = ?
		WHERE id = uuid_to_bin(?)`

	res, err := r.db.ExecContext(ctx, query,
		team.Name, team.Category, team.Season, team.Coach, team.PhotoURL, team.ID)
	if err != nil {
		return fmt.Errorf("db update team: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db update team rows: %w", err)
	}

	if rows == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func (r *teamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM teams WHERE id = uuid_to_bin(?)", id)
	if err != nil {
		return fmt.Errorf("db delete team: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db delete team rows: %w", err)
	}

	if rows == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func (r *teamRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Team, error) {
	var team domain.Team
	const query = `SELECT id, name, category, season, coach, photo_url, created_at, updated_at
		FROM teams WHERE id = uuid_to_bin(?)`

	if err := r.db.GetContext(ctx, &team, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select query err: %w", err)
	}

	return &team, nil
}

func (r *teamRepository) List(ctx context.Context) ([]domain.Team, error) {
	teams := []domain.Team{}
	const query = `SELECT id, name, category, season, coach, photo_url, created_at, updated_at
		FROM teams ORDER BY category, name`

	if err := r.db.SelectContext(ctx, &teams, query); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	return teams, nil
}

func (r *teamRepository) AddPlayer(ctx context.Context, player *domain.Player) error {
	const query = `INSERT INTO players (id, team_id, name, surname, number, position)
		VALUES (uuid_to_bin(?), uuid_to_bin(?), ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		player.ID, player.TeamID, player.Name, player.Surname, player.Number, player.Position)
	if err != nil {
		return fmt.Errorf("db insert player: %w", err)
	}

	return nil
}

func (r *teamRepository) RemovePlayer(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM players WHERE id = uuid_to_bin(?)", id)
	if err != nil {
		return fmt.Errorf("db delete player: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db delete player rows: %w", err)
	}

	if rows == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func (r *teamRepository) ListPlayers(ctx context.Context, teamID uuid.UUID) ([]domain.Player, error) {
	players := []domain.Player{}
	const query = `SELECT id, team_id, name, surname, number, position, created_at
		FROM players WHERE team_id = uuid_to_bin(?) ORDER BY number`

	if err := r.db.SelectContext(ctx, &players, query, teamID); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	return players, nil
}
