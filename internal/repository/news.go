package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fccardedeu/backend/internal/db"
	"github.com/fccardedeu/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type newsRepository struct {
	db *sqlx.DB
}

func newNewsRepository(db *sqlx.DB) *newsRepository {
	return &newsRepository{
		db: db,
	}
}

const newsColumns = "id, slug, title, summary, body, cover_image, published, published_at, created_at, updated_at"

func (r *newsRepository) Create(ctx context.Context, news *domain.News) error {
	const query = `INSERT INTO news (id, slug, title, summary, body, cover_image, published, published_at)
		VALUES (uuid_to_bin(?), ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		news.ID, news.Slug, news.Title, news.Summary, news.Body, news.CoverImage, news.Published, news.PublishedAt)
	if err != nil {
		if db.IsDuplicateEntry(err) {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db insert news: %w", err)
	}

	return nil
}

func (r *newsRepository) Update(ctx context.Context, news *domain.News) error {
	const query = `UPDATE news SET slug = ?, title = ?, summary = ?, body = ?, cover_image = ?,
		published = ?, published_at = ? WHERE id = uuid_to_bin(?)`

	res, err := r.db.ExecContext(ctx, query,
		news.Slug, news.Title, news.Summary, news.Body, news.CoverImage,
		news.Published, news.PublishedAt, news.ID)
	if err != nil {
		return fmt.Errorf("db update news: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db update news rows: %w", err)
	}

	if rows == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func (r *newsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM news WHERE id = uuid_to_bin(?)", id)
	if err != nil {
		return fmt.Errorf("db delete news: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db delete news rows: %w", err)
	}

	if rows == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func (r *newsRepository) GetBySlug(ctx context.Context, slug string) (*domain.News, error) {
	var news domain.News
	query := "SELECT " + newsColumns + " FROM news WHERE slug = ?"

	if err := r.db.GetContext(ctx, &news, query, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select query err: %w", err)
	}

	return &news, nil
}

func (r *newsRepository) List(ctx context.Context, publishedOnly bool, page, limit int) ([]domain.News, int64, error) {
	where := ""
	if publishedOnly {
		where = " WHERE published = TRUE"
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM news"+where); err != nil {
		return nil, 0, fmt.Errorf("count news: %w", err)
	}

	items := []domain.News{}
	query := "SELECT " + newsColumns + " FROM news" + where + " ORDER BY published_at DESC, created_at DESC LIMIT ? OFFSET ?"
	if err := r.db.SelectContext(ctx, &items, query, limit, (page-1)*limit); err != nil {
		return nil, 0, fmt.Errorf("select news: %w", err)
	}

	return items, total, nil
}
