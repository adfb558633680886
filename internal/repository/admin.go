package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fccardedeu/backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

type adminRepository struct {
	db *sqlx.DB
}

func newAdminRepository(db *sqlx.DB) *adminRepository {
	return &adminRepository{
		db: db,
	}
}

func (r *adminRepository) GetByCredentials(ctx context.Context, email, passwordHash string) (*domain.Admin, error) {
	var admin domain.Admin
	const query = "SELECT id, email, password, name, created_at FROM admins WHERE email = ? AND password = ?"

	if err := r.db.GetContext(ctx, &admin, query, email, passwordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select query err: %w", err)
	}

	return &admin, nil
}
