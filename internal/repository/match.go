package repository

import (
	"context"
	"fmt"

	"github.com/fccardedeu/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type matchRepository struct {
	db *sqlx.DB
}

func newMatchRepository(db *sqlx.DB) *matchRepository {
	return &matchRepository{
		db: db,
	}
}

const matchColumns = "id, team_id, opponent, kickoff, location, home, home_goals, away_goals, created_at, updated_at"

func (r *matchRepository) Create(ctx context.Context, match *domain.Match) error {
	const query = `INSERT INTO matches (id, team_id, opponent, kickoff, location, home)
		VALUES (uuid_to_bin(?), uuid_to_bin(?), ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		match.ID, match.TeamID, match.Opponent, match.Kickoff, match.Location, match.Home)
	if err != nil {
		return fmt.Errorf("db insert match: %w", err)
	}

	return nil
}

func (r *matchRepository) Update(ctx context.Context, match *domain.Match) error {
	const query = `UPDATE matches SET opponent = ?, kickoff = ?, location = ?, home = ?
		WHERE id = uuid_to_bin(?)`

	res, err := r.db.ExecContext(ctx, query,
		match.Opponent, match.Kickoff, match.Location, match.Home, match.ID)
	if err != nil {
		return fmt.Errorf("db update match: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db update match rows: %w", err)
	}

	if rows == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func (r *matchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM matches WHERE id = uuid_to_bin(?)", id)
	if err != nil {
		return fmt.Errorf("db delete match: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db delete match rows: %w", err)
	}

	if rows == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func (r *matchRepository) ListUpcoming(ctx context.Context, teamID *uuid.UUID, limit int) ([]domain.Match, error) {
	matches := []domain.Match{}

	query := "SELECT " + matchColumns + " FROM matches WHERE kickoff >= NOW()"
	args := []interface{}{}

	if teamID != nil {
		query += " AND team_id = uuid_to_bin(?)"
		args = append(args, *teamID)
	}

	query += " ORDER BY kickoff LIMIT ?"
	args = append(args, limit)

	if err := r.db.SelectContext(ctx, &matches, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	return matches, nil
}

func (r *matchRepository) SetResult(ctx context.Context, id uuid.UUID, homeGoals, awayGoals int) error {
	const query = "UPDATE matches SET home_goals = ?, away_goals = ? WHERE id = uuid_to_bin(?)"

	res, err := r.db.ExecContext(ctx, query, homeGoals, awayGoals, id)
	if err != nil {
		return fmt.Errorf("db set match result: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db set match result rows: %w", err)
	}

	if rows == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}
