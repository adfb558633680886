package repository

import (
	"context"
	"fmt"

	"github.com/fccardedeu/backend/internal/db"
	"github.com/fccardedeu/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type paymentRepository struct {
	db *sqlx.DB
}

func newPaymentRepository(db *sqlx.DB) *paymentRepository {
	return &paymentRepository{
		db: db,
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	const query = `INSERT INTO payments
		(id, registration_id, payment_type, amount_paid, amount_pending, stripe_session_id, stripe_payment_id, paid_at)
		VALUES (uuid_to_bin(?), uuid_to_bin(?), ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		payment.ID, payment.RegistrationID, payment.Type,
		payment.AmountPaid, payment.AmountPending,
		payment.StripeSessionID, payment.StripePaymentID, payment.PaidAt)
	if err != nil {
		if db.IsDuplicateEntry(err) {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db insert payment: %w", err)
	}

	return nil
}

func (r *paymentRepository) ListByRegistration(ctx context.Context, registrationID uuid.UUID) ([]domain.Payment, error) {
	payments := []domain.Payment{}
	const query = `SELECT id, registration_id, payment_type, amount_paid, amount_pending,
		stripe_session_id, stripe_payment_id, paid_at, created_at
		FROM payments WHERE registration_id = uuid_to_bin(?) ORDER BY paid_at`

	if err := r.db.SelectContext(ctx, &payments, query, registrationID); err != nil {
		return nil, fmt.Errorf("select payments: %w", err)
	}

	return payments, nil
}
