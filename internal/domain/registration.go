package domain

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationStatus is the lifecycle of a member registration. Transitions
// go pending -> processing -> completed or rejected; completed and rejected
// are terminal.
type RegistrationStatus string

const (
	StatusPending    RegistrationStatus = "pending"
	StatusProcessing RegistrationStatus = "processing"
	StatusCompleted  RegistrationStatus = "completed"
	StatusRejected   RegistrationStatus = "rejected"
)

func (s RegistrationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving from s to next is a legal step.
func (s RegistrationStatus) CanTransitionTo(next RegistrationStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusProcessing || next == StatusCompleted || next == StatusRejected
	case StatusProcessing:
		return next == StatusCompleted || next == StatusRejected
	default:
		return false
	}
}

// Registration is a member signup. Payment columns stay zero until the
// Stripe webhook confirms a checkout for this row. Monetary amounts are
// whole euros.
type Registration struct {
	ID              uuid.UUID          `json:"id" db:"id"`
	Name            string             `json:"name" db:"name"`
	Surname         string             `json:"surname" db:"surname"`
	BirthDate       string             `json:"birth_date" db:"birth_date"`
	DNI             string             `json:"dni" db:"dni"`
	Email           string             `json:"email" db:"email"`
	Phone           string             `json:"phone" db:"phone"`
	Address         string             `json:"address" db:"address"`
	PostalCode      string             `json:"postal_code" db:"postal_code"`
	City            string             `json:"city" db:"city"`
	Category        string             `json:"category" db:"category"`
	PhotoPath       *string            `json:"photo_path" db:"photo_path"`
	Status          RegistrationStatus `json:"status" db:"status"`
	PaymentType     *string            `json:"payment_type" db:"payment_type"`
	AmountPaid      int64              `json:"amount_paid" db:"amount_paid"`
	AmountPending   int64              `json:"amount_pending" db:"amount_pending"`
	StripeSessionID *string            `json:"stripe_session_id" db:"stripe_session_id"`
	StripePaymentID *string            `json:"stripe_payment_id" db:"stripe_payment_id"`
	PaidAt          *time.Time         `json:"paid_at" db:"paid_at"`
	CreatedAt       time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt       *time.Time         `json:"updated_at" db:"updated_at"`
}
