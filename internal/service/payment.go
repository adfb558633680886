package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fccardedeu/backend/internal/config"
	"github.com/fccardedeu/backend/internal/domain"
	"github.com/fccardedeu/backend/internal/queue/client"
	"github.com/fccardedeu/backend/internal/queue/task"
	"github.com/fccardedeu/backend/internal/repository"
	"github.com/fccardedeu/backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"
)

const stripeProvider = "stripe"

// Membership fee tiers in whole euros. Stripe wants cents, the database
// keeps euros.
const (
	fullFeeEUR        = 260
	partialPaidEUR    = 100
	partialPendingEUR = 160

	currency = "eur"
)

// CheckoutInput identifies who is paying. When RegistrationID is set the
// member data comes from the stored registration; otherwise the caller
// supplies it and the webhook creates the registration on confirmation.
type CheckoutInput struct {
	RegistrationID *uuid.UUID
	PaymentType    domain.PaymentType
	Email          string
	Name           string
	Surname        string
	DNI            string
}

type CheckoutResult struct {
	SessionID  string
	SessionURL string
}

// CheckoutClient is the slice of the Stripe API the payment service uses.
type CheckoutClient interface {
	CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type paymentService struct {
	registrations repository.Registrations
	payments      repository.Payments
	events        repository.WebhookEvents
	checkout      CheckoutClient
	cfg           config.StripeConfig
	log           *zap.SugaredLogger
}

func newPaymentService(
	registrations repository.Registrations,
	payments repository.Payments,
	events repository.WebhookEvents,
	checkout CheckoutClient,
	cfg config.StripeConfig,
	log *zap.SugaredLogger,
) *paymentService {
	return &paymentService{
		registrations: registrations,
		payments:      payments,
		events:        events,
		checkout:      checkout,
		cfg:           cfg,
		log:           log,
	}
}

func feeAmounts(paymentType domain.PaymentType) (paid, pending int64, err error) {
	switch paymentType {
	case domain.PaymentTypeFull:
		return fullFeeEUR, 0, nil
	case domain.PaymentTypePartial:
		return partialPaidEUR, partialPendingEUR, nil
	default:
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownPaymentType, paymentType)
	}
}

func (s *paymentService) Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error) {
	paid, _, err := feeAmounts(input.PaymentType)
	if err != nil {
		return nil, err
	}

	email, name, surname, dni := input.Email, input.Name, input.Surname, input.DNI
	registrationID := ""

	// Without a registration row the key falls back to the email, bucketed
	// by hour so a quick client retry reuses the session but a later new
	// attempt with the same email and tier gets a fresh one.
	bucket := time.Now().UTC().Truncate(time.Hour).Unix()
	idempotencyKey := fmt.Sprintf("checkout-%s-%s-%d", email, input.PaymentType, bucket)

	if input.RegistrationID != nil {
		reg, err := s.registrations.GetByID(ctx, *input.RegistrationID)
		if err != nil {
			return nil, err
		}
		email, name, surname, dni = reg.Email, reg.Name, reg.Surname, reg.DNI
		registrationID = reg.ID.String()
		idempotencyKey = fmt.Sprintf("checkout-%s-%s", reg.ID, input.PaymentType)
	}

	description := fmt.Sprintf("Quota de soci %s %s", name, surname)

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:    stripe.String(s.cfg.SuccessURL),
		CancelURL:     stripe.String(s.cfg.CancelURL),
		CustomerEmail: stripe.String(email),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(currency),
					UnitAmount: stripe.Int64(paid * 100),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(description),
					},
				},
			},
		},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Description: stripe.String(description),
		},
	}
	if registrationID != "" {
		params.AddMetadata("registration_id", registrationID)
	}
	params.AddMetadata("payment_type", string(input.PaymentType))
	params.AddMetadata("email", email)
	params.AddMetadata("name", name)
	params.AddMetadata("surname", surname)
	params.AddMetadata("dni", dni)
	params.SetIdempotencyKey(idempotencyKey)

	session, err := s.checkout.CreateCheckoutSession(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPaymentProvider, err)
	}

	return &CheckoutResult{
		SessionID:  session.ID,
		SessionURL: session.URL,
	}, nil
}

// sessionMetadata is what the checkout initiator attached to the Stripe
// session. registration_id links the payment back to its row; the personal
// fields are a fallback for sessions created without one.
type sessionMetadata struct {
	RegistrationID string `validate:"omitempty,uuid"`
	PaymentType    string `validate:"omitempty,oneof=completo parcial"`
	Email          string `validate:"required,email"`
	Name           string `validate:"required_without=RegistrationID"`
	Surname        string `validate:"required_without=RegistrationID"`
	DNI            string `validate:"omitempty,dni"`
}

func (s *paymentService) ConfirmCheckout(ctx context.Context, eventID string, session *stripe.CheckoutSession) error {
	seen, err := s.events.Exists(ctx, stripeProvider, eventID)
	if err != nil {
		return fmt.Errorf("check webhook event failed: %w", err)
	}
	if seen {
		return ErrEventAlreadyProcessed
	}

	meta := sessionMetadata{
		RegistrationID: session.Metadata["registration_id"],
		PaymentType:    session.Metadata["payment_type"],
		Email:          session.Metadata["email"],
		Name:           session.Metadata["name"],
		Surname:        session.Metadata["surname"],
		DNI:            session.Metadata["dni"],
	}
	if err := validator.New().Struct(meta); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMetadata, err)
	}

	paymentType := domain.PaymentType(meta.PaymentType)
	if paymentType == "" {
		paymentType = domain.PaymentTypeFull
	}

	paid, pending, err := feeAmounts(paymentType)
	if err != nil {
		return err
	}

	status := domain.StatusCompleted
	if paymentType == domain.PaymentTypePartial {
		status = domain.StatusProcessing
	}

	paymentIntent := ""
	if session.PaymentIntent != nil {
		paymentIntent = session.PaymentIntent.ID
	}

	fields := repository.PaymentFields{
		Type:            paymentType,
		AmountPaid:      paid,
		AmountPending:   pending,
		StripeSessionID: session.ID,
		StripePaymentID: paymentIntent,
		PaidAt:          time.Now().UTC(),
		Status:          status,
	}

	registrationID, err := s.resolveRegistration(ctx, meta, fields)
	if err != nil {
		return err
	}

	payment := &domain.Payment{
		RegistrationID:  registrationID,
		Type:            paymentType,
		AmountPaid:      paid,
		AmountPending:   pending,
		StripeSessionID: session.ID,
		StripePaymentID: paymentIntent,
		PaidAt:          fields.PaidAt,
	}
	payment.ID, err = uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate payment id failed: %w", err)
	}

	if err := s.payments.Create(ctx, payment); err != nil && !errors.Is(err, domain.ErrDuplicateEntry) {
		return fmt.Errorf("create payment failed: %w", err)
	}

	// The dedup row is written last so a failed run returns an error, the
	// provider retries, and the retry can still do the work.
	if err := s.events.Create(ctx, stripeProvider, eventID, string(stripe.EventTypeCheckoutSessionCompleted)); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return ErrEventAlreadyProcessed
		}
		return fmt.Errorf("record webhook event failed: %w", err)
	}

	s.enqueueConfirmationEmail(ctx, meta.Email, meta.Name, paid, pending)

	return nil
}

func (s *paymentService) resolveRegistration(ctx context.Context, meta sessionMetadata, fields repository.PaymentFields) (uuid.UUID, error) {
	if meta.RegistrationID != "" {
		id, err := uuid.Parse(meta.RegistrationID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidMetadata, err)
		}

		if err := s.registrations.RecordPayment(ctx, id, fields); err != nil {
			if !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrNoRowsAffected) {
				return uuid.Nil, fmt.Errorf("record payment failed: %w", err)
			}
			s.log.Warnw("registration from metadata not found, creating from metadata",
				"registration_id", meta.RegistrationID)
		} else {
			return id, nil
		}
	}

	// Legacy sessions carry the member's data only in metadata. Create the
	// row now so the payment still lands on a registration.
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, fmt.Errorf("generate registration id failed: %w", err)
	}

	reg := &domain.Registration{
		ID:      id,
		Name:    meta.Name,
		Surname: meta.Surname,
		DNI:     meta.DNI,
		Email:   meta.Email,
		Status:  domain.StatusPending,
	}
	if err := s.registrations.Create(ctx, reg); err != nil {
		return uuid.Nil, fmt.Errorf("create registration from metadata failed: %w", err)
	}

	if err := s.registrations.RecordPayment(ctx, id, fields); err != nil {
		return uuid.Nil, fmt.Errorf("record payment failed: %w", err)
	}

	return id, nil
}

func (s *paymentService) enqueueConfirmationEmail(ctx context.Context, email, name string, paid, pending int64) {
	queueClient := client.GetClient(ctx)
	if queueClient == nil {
		return
	}

	t, err := task.NewPaymentConfirmationTask(email, name, paid, pending)
	if err != nil {
		s.log.Errorw("build payment confirmation task failed", "error", err)
		return
	}

	if _, err := queueClient.EnqueueContext(ctx, t); err != nil {
		s.log.Errorw("enqueue payment confirmation task failed", "error", err)
	}
}

func (s *paymentService) ListByRegistration(ctx context.Context, registrationID uuid.UUID) ([]domain.Payment, error) {
	return s.payments.ListByRegistration(ctx, registrationID)
}
