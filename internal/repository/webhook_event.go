package repository

import (
	"context"
	"fmt"

	"github.com/fccardedeu/backend/internal/db"
	"github.com/fccardedeu/backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

// webhookEventRepository keeps a record of processed provider events so a
// redelivered webhook is acknowledged without being applied twice.
type webhookEventRepository struct {
	db *sqlx.DB
}

func newWebhookEventRepository(db *sqlx.DB) *webhookEventRepository {
	return &webhookEventRepository{
		db: db,
	}
}

func (r *webhookEventRepository) Exists(ctx context.Context, provider, eventID string) (bool, error) {
	var count int
	const query = "SELECT COUNT(*) FROM webhook_events WHERE provider = ? AND event_id = ?"

	if err := r.db.GetContext(ctx, &count, query, provider, eventID); err != nil {
		return false, fmt.Errorf("select webhook event: %w", err)
	}

	return count > 0, nil
}

func (r *webhookEventRepository) Create(ctx context.Context, provider, eventID, eventType string) error {
	const query = "INSERT INTO webhook_events (provider, event_id, event_type) VALUES (?, ?, ?)"

	_, err := r.db.ExecContext(ctx, query, provider, eventID, eventType)
	if err != nil {
		if db.IsDuplicateEntry(err) {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db insert webhook event: %w", err)
	}

	return nil
}
