package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentType selects between the two membership fee tiers. The literal
// values travel through Stripe metadata, so they stay in the club's own
// wording.
type PaymentType string

const (
	PaymentTypeFull    PaymentType = "completo"
	PaymentTypePartial PaymentType = "parcial"
)

// Payment records one confirmed money movement, linked to the registration
// it pays for. Amounts are whole euros.
type Payment struct {
	ID              uuid.UUID   `json:"id" db:"id"`
	RegistrationID  uuid.UUID   `json:"registration_id" db:"registration_id"`
	Type            PaymentType `json:"payment_type" db:"payment_type"`
	AmountPaid      int64       `json:"amount_paid" db:"amount_paid"`
	AmountPending   int64       `json:"amount_pending" db:"amount_pending"`
	StripeSessionID string      `json:"stripe_session_id" db:"stripe_session_id"`
	StripePaymentID string      `json:"stripe_payment_id" db:"stripe_payment_id"`
	PaidAt          time.Time   `json:"paid_at" db:"paid_at"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`
}
