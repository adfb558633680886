package repository

import (
	"context"
	"fmt"

	"github.com/fccardedeu/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type sponsorRepository struct {
	db *sqlx.DB
}

func newSponsorRepository(db *sqlx.DB) *sponsorRepository {
	return &sponsorRepository{
		db: db,
	}
}

func (r *sponsorRepository) Create(ctx context.Context, sponsor *domain.Sponsor) error {
	const query = `INSERT INTO sponsors (id, name, website, logo_url, tier, active)
		VALUES (uuid_to_bin(?), ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		sponsor.ID, sponsor.Name, sponsor.Website, sponsor.LogoURL, sponsor.Tier, sponsor.Active)
	if err != nil {
		return fmt.Errorf("db insert sponsor: %w", err)
	}

	return nil
}

func (r *sponsorRepository) Update(ctx context.Context, sponsor *domain.Sponsor) error {
	const query = `UPDATE sponsors SET name = ?, website = ?, logo_url = ?, tier = ?, active = ?
		WHERE id = uuid_to_bin(?)`

	res, err := r.db.ExecContext(ctx, query,
		sponsor.Name, sponsor.Website, sponsor.LogoURL, sponsor.Tier, sponsor.Active, sponsor.ID)
	if err != nil {
		return fmt.Errorf("db update sponsor: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db update sponsor rows: %w", err)
	}

	if rows == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func (r *sponsorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM sponsors WHERE id = uuid_to_bin(?)", id)
	if err != nil {
		return fmt.Errorf("db delete sponsor: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db delete sponsor rows: %w", err)
	}

	if rows == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func (r *sponsorRepository) List(ctx context.Context, activeOnly bool) ([]domain.Sponsor, error) {
	query := "SELECT id, name, website, logo_url, tier, active, created_at, updated_at FROM sponsors"
	if activeOnly {
		query += " WHERE active = TRUE"
	}
	query += " ORDER BY tier, name"

	sponsors := []domain.Sponsor{}
	if err := r.db.SelectContext(ctx, &sponsors, query); err != nil {
		return nil, fmt.Errorf("select sponsors: %w", err)
	}

	return sponsors, nil
}
