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

type registrationRepository struct {
	db *sqlx.DB
}

func newRegistrationRepository(db *sqlx.DB) *registrationRepository {
	return &registrationRepository{
		db: db,
	}
}

const registrationColumns = `id, name, surname, birth_date, dni, email, phone, address, postal_code, city, category,
	photo_path, status, payment_type, amount_paid, amount_pending, stripe_session_id, stripe_payment_id, paid_at,
	created_at, updated_at`

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	const query = `INSERT INTO registrations
		(id, name, surname, birth_date, dni, email, phone, address, postal_code, city, category, status)
		VALUES (uuid_to_bin(?), ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		reg.ID, reg.Name, reg.Surname, reg.BirthDate, reg.DNI, reg.Email, reg.Phone,
		reg.Address, reg.PostalCode, reg.City, reg.Category, reg.Status)
	if err != nil {
		return fmt.Errorf("db insert registration: %w", err)
	}

	return nil
}

func (r *registrationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Registration, error) {
	var reg domain.Registration
	query := "SELECT " + registrationColumns + " FROM registrations WHERE id = uuid_to_bin(?)"

	if err := r.db.GetContext(ctx, &reg, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select query err: %w", err)
	}

	return &reg, nil
}

func (r *registrationRepository) List(ctx context.Context, page, limit int) ([]domain.Registration, int64, error) {
	var total int64
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM registrations"); err != nil {
		return nil, 0, fmt.Errorf("count registrations: %w", err)
	}

	regs := []domain.Registration{}
	query := "SELECT " + registrationColumns + " FROM registrations ORDER BY created_at DESC LIMIT ? OFFSET ?"
	if err := r.db.SelectContext(ctx, &regs, query, limit, (page-1)*limit); err != nil {
		return nil, 0, fmt.Errorf("select registrations: %w", err)
	}

	return regs, total, nil
}

func (r *registrationRepository) AttachPhoto(ctx context.Context, id uuid.UUID, photoPath string) error {
	const query = "UPDATE registrations SET photo_path = ? WHERE id = uuid_to_bin(?)"

	res, err := r.db.ExecContext(ctx, query, photoPath, id)
	if err != nil {
		return fmt.Errorf("db attach photo: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db attach photo rows: %w", err)
	}

	if rows == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func (r *registrationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RegistrationStatus) error {
	const query = "UPDATE registrations SET status = ? WHERE id = uuid_to_bin(?)"

	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("db update registration status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db update registration status rows: %w", err)
	}

	if rows == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func (r *registrationRepository) RecordPayment(ctx context.Context, id uuid.UUID, fields PaymentFields) error {
	const query = `UPDATE registrations
		SET payment_type = ?, amount_paid = ?, amount_pending = ?,
			stripe_session_id = ?, stripe_payment_id = ?, paid_at = ?, status = ?
		WHERE id = uuid_to_bin(?)`

	res, err := r.db.ExecContext(ctx, query,
		fields.Type, fields.AmountPaid, fields.AmountPending,
		fields.StripeSessionID, fields.StripePaymentID, fields.PaidAt, fields.Status, id)
	if err != nil {
		return fmt.Errorf("db record payment: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db record payment rows: %w", err)
	}

	if rows == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}
