package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fccardedeu/backend/internal/config"
	"github.com/fccardedeu/backend/internal/domain"
	"github.com/fccardedeu/backend/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"
)

func newTestPaymentService(regs *registrationsRepoMock, pays *paymentsRepoMock, events *webhookEventsRepoMock, checkout *checkoutClientMock) *paymentService {
	cfg := config.StripeConfig{
		SuccessURL: "https://fccardedeu.cat/inscripcio/ok",
		CancelURL:  "https://fccardedeu.cat/inscripcio/ko",
	}

	return newPaymentService(regs, pays, events, checkout, cfg, zap.NewNop().Sugar())
}

func TestCheckoutFullFee(t *testing.T) {
	regs := new(registrationsRepoMock)
	checkout := new(checkoutClientMock)
	svc := newTestPaymentService(regs, new(paymentsRepoMock), new(webhookEventsRepoMock), checkout)

	regID := uuid.New()
	regs.On("GetByID", mock.Anything, regID).Return(&domain.Registration{
		ID:      regID,
		Name:    "Marta",
		Surname: "Serra",
		DNI:     "12345678Z",
		Email:   "marta@example.com",
	}, nil)

	checkout.On("CreateCheckoutSession", mock.Anything, mock.MatchedBy(func(params *stripe.CheckoutSessionParams) bool {
		if len(params.LineItems) != 1 {
			return false
		}
		item := params.LineItems[0]

		return *item.PriceData.UnitAmount == 26000 &&
			*item.PriceData.Currency == "eur" &&
			params.Metadata["registration_id"] == regID.String() &&
			params.Metadata["payment_type"] == "completo" &&
			*params.CustomerEmail == "marta@example.com"
	})).Return(&stripe.CheckoutSession{ID: "cs_test_full", URL: "https://checkout.stripe.com/c/cs_test_full"}, nil)

	result, err := svc.Checkout(context.Background(), CheckoutInput{
		RegistrationID: &regID,
		PaymentType:    domain.PaymentTypeFull,
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_test_full", result.SessionID)
	assert.Equal(t, "https://checkout.stripe.com/c/cs_test_full", result.SessionURL)

	checkout.AssertExpectations(t)
}

func TestCheckoutWithoutRegistrationUsesCallerData(t *testing.T) {
	regs := new(registrationsRepoMock)
	checkout := new(checkoutClientMock)
	svc := newTestPaymentService(regs, new(paymentsRepoMock), new(webhookEventsRepoMock), checkout)

	checkout.On("CreateCheckoutSession", mock.Anything, mock.MatchedBy(func(params *stripe.CheckoutSessionParams) bool {
		_, hasRegID := params.Metadata["registration_id"]

		return !hasRegID &&
			params.Metadata["email"] == "nou@example.com" &&
			params.Metadata["name"] == "Pau" &&
			*params.CustomerEmail == "nou@example.com"
	})).Return(&stripe.CheckoutSession{ID: "cs_test_meta"}, nil)

	_, err := svc.Checkout(context.Background(), CheckoutInput{
		PaymentType: domain.PaymentTypeFull,
		Email:       "nou@example.com",
		Name:        "Pau",
		Surname:     "Vila",
	})
	require.NoError(t, err)

	regs.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	checkout.AssertExpectations(t)
}

func TestCheckoutEmailKeyIsTimeBucketed(t *testing.T) {
	regs := new(registrationsRepoMock)
	checkout := new(checkoutClientMock)
	svc := newTestPaymentService(regs, new(paymentsRepoMock), new(webhookEventsRepoMock), checkout)

	var key string
	checkout.On("CreateCheckoutSession", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			params := args.Get(1).(*stripe.CheckoutSessionParams)
			if params.IdempotencyKey != nil {
				key = *params.IdempotencyKey
			}
		}).
		Return(&stripe.CheckoutSession{ID: "cs_test_bucket"}, nil)

	before := time.Now().UTC().Truncate(time.Hour).Unix()
	_, err := svc.Checkout(context.Background(), CheckoutInput{
		PaymentType: domain.PaymentTypeFull,
		Email:       "nou@example.com",
	})
	require.NoError(t, err)
	after := time.Now().UTC().Truncate(time.Hour).Unix()

	// The call may straddle an hour boundary, so either bucket is fine.
	assert.Contains(t, []string{
		fmt.Sprintf("checkout-nou@example.com-completo-%d", before),
		fmt.Sprintf("checkout-nou@example.com-completo-%d", after),
	}, key)
}

func TestCheckoutProviderError(t *testing.T) {
	regs := new(registrationsRepoMock)
	checkout := new(checkoutClientMock)
	svc := newTestPaymentService(regs, new(paymentsRepoMock), new(webhookEventsRepoMock), checkout)

	checkout.On("CreateCheckoutSession", mock.Anything, mock.Anything).
		Return(nil, errors.New("stripe down"))

	_, err := svc.Checkout(context.Background(), CheckoutInput{
		PaymentType: domain.PaymentTypeFull,
		Email:       "x@example.com",
	})
	require.ErrorIs(t, err, ErrPaymentProvider)
}

func TestCheckoutPartialFeeAmount(t *testing.T) {
	regs := new(registrationsRepoMock)
	checkout := new(checkoutClientMock)
	svc := newTestPaymentService(regs, new(paymentsRepoMock), new(webhookEventsRepoMock), checkout)

	regID := uuid.New()
	regs.On("GetByID", mock.Anything, regID).Return(&domain.Registration{ID: regID, Email: "x@example.com"}, nil)

	checkout.On("CreateCheckoutSession", mock.Anything, mock.MatchedBy(func(params *stripe.CheckoutSessionParams) bool {
		return *params.LineItems[0].PriceData.UnitAmount == 10000
	})).Return(&stripe.CheckoutSession{ID: "cs_test_partial"}, nil)

	_, err := svc.Checkout(context.Background(), CheckoutInput{
		RegistrationID: &regID,
		PaymentType:    domain.PaymentTypePartial,
	})
	require.NoError(t, err)

	checkout.AssertExpectations(t)
}

func TestCheckoutUnknownPaymentType(t *testing.T) {
	regs := new(registrationsRepoMock)
	checkout := new(checkoutClientMock)
	svc := newTestPaymentService(regs, new(paymentsRepoMock), new(webhookEventsRepoMock), checkout)

	regID := uuid.New()

	_, err := svc.Checkout(context.Background(), CheckoutInput{
		RegistrationID: &regID,
		PaymentType:    domain.PaymentType("mensual"),
	})
	require.ErrorIs(t, err, ErrUnknownPaymentType)

	regs.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)

	checkout.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
}

func TestCheckoutRegistrationNotFound(t *testing.T) {
	regs := new(registrationsRepoMock)
	svc := newTestPaymentService(regs, new(paymentsRepoMock), new(webhookEventsRepoMock), new(checkoutClientMock))

	regID := uuid.New()
	regs.On("GetByID", mock.Anything, regID).Return(nil, domain.ErrNotFound)

	_, err := svc.Checkout(context.Background(), CheckoutInput{
		RegistrationID: &regID,
		PaymentType:    domain.PaymentTypeFull,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func completedSession(regID uuid.UUID, paymentType string) *stripe.CheckoutSession {
	return &stripe.CheckoutSession{
		ID:            "cs_test_hook",
		PaymentIntent: &stripe.PaymentIntent{ID: "pi_test_hook"},
		Metadata: map[string]string{
			"registration_id": regID.String(),
			"payment_type":    paymentType,
			"email":           "soci@example.com",
			"name":            "Marta",
			"surname":         "Serra",
			"dni":             "12345678Z",
		},
	}
}

func TestConfirmCheckoutPartial(t *testing.T) {
	regs := new(registrationsRepoMock)
	pays := new(paymentsRepoMock)
	events := new(webhookEventsRepoMock)
	svc := newTestPaymentService(regs, pays, events, new(checkoutClientMock))

	regID := uuid.New()

	events.On("Exists", mock.Anything, "stripe", "evt_partial").Return(false, nil)
	regs.On("RecordPayment", mock.Anything, regID, mock.MatchedBy(func(f repository.PaymentFields) bool {
		return f.Type == domain.PaymentTypePartial &&
			f.AmountPaid == 100 &&
			f.AmountPending == 160 &&
			f.Status == domain.StatusProcessing &&
			f.StripeSessionID == "cs_test_hook" &&
			f.StripePaymentID == "pi_test_hook"
	})).Return(nil)
	pays.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
		return p.RegistrationID == regID && p.AmountPaid == 100 && p.AmountPending == 160
	})).Return(nil)
	events.On("Create", mock.Anything, "stripe", "evt_partial", "checkout.session.completed").Return(nil)

	err := svc.ConfirmCheckout(context.Background(), "evt_partial", completedSession(regID, "parcial"))
	require.NoError(t, err)

	regs.AssertExpectations(t)
	pays.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestConfirmCheckoutFull(t *testing.T) {
	regs := new(registrationsRepoMock)
	pays := new(paymentsRepoMock)
	events := new(webhookEventsRepoMock)
	svc := newTestPaymentService(regs, pays, events, new(checkoutClientMock))

	regID := uuid.New()

	events.On("Exists", mock.Anything, "stripe", "evt_full").Return(false, nil)
	regs.On("RecordPayment", mock.Anything, regID, mock.MatchedBy(func(f repository.PaymentFields) bool {
		return f.Type == domain.PaymentTypeFull &&
			f.AmountPaid == 260 &&
			f.AmountPending == 0 &&
			f.Status == domain.StatusCompleted
	})).Return(nil)
	pays.On("Create", mock.Anything, mock.Anything).Return(nil)
	events.On("Create", mock.Anything, "stripe", "evt_full", "checkout.session.completed").Return(nil)

	err := svc.ConfirmCheckout(context.Background(), "evt_full", completedSession(regID, "completo"))
	require.NoError(t, err)

	regs.AssertExpectations(t)
}

func TestConfirmCheckoutMissingTypeDefaultsToFull(t *testing.T) {
	regs := new(registrationsRepoMock)
	pays := new(paymentsRepoMock)
	events := new(webhookEventsRepoMock)
	svc := newTestPaymentService(regs, pays, events, new(checkoutClientMock))

	regID := uuid.New()
	session := completedSession(regID, "completo")
	delete(session.Metadata, "payment_type")

	events.On("Exists", mock.Anything, "stripe", "evt_default").Return(false, nil)
	regs.On("RecordPayment", mock.Anything, regID, mock.MatchedBy(func(f repository.PaymentFields) bool {
		return f.AmountPaid == 260 && f.AmountPending == 0
	})).Return(nil)
	pays.On("Create", mock.Anything, mock.Anything).Return(nil)
	events.On("Create", mock.Anything, "stripe", "evt_default", "checkout.session.completed").Return(nil)

	err := svc.ConfirmCheckout(context.Background(), "evt_default", session)
	require.NoError(t, err)
}

func TestConfirmCheckoutDuplicateEvent(t *testing.T) {
	regs := new(registrationsRepoMock)
	pays := new(paymentsRepoMock)
	events := new(webhookEventsRepoMock)
	svc := newTestPaymentService(regs, pays, events, new(checkoutClientMock))

	events.On("Exists", mock.Anything, "stripe", "evt_dup").Return(true, nil)

	err := svc.ConfirmCheckout(context.Background(), "evt_dup", completedSession(uuid.New(), "completo"))
	require.ErrorIs(t, err, ErrEventAlreadyProcessed)

	regs.AssertNotCalled(t, "RecordPayment", mock.Anything, mock.Anything, mock.Anything)
	pays.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestConfirmCheckoutInvalidMetadata(t *testing.T) {
	regs := new(registrationsRepoMock)
	pays := new(paymentsRepoMock)
	events := new(webhookEventsRepoMock)
	svc := newTestPaymentService(regs, pays, events, new(checkoutClientMock))

	session := completedSession(uuid.New(), "parcial")
	session.Metadata["email"] = "not-an-email"

	events.On("Exists", mock.Anything, "stripe", "evt_bad_meta").Return(false, nil)

	err := svc.ConfirmCheckout(context.Background(), "evt_bad_meta", session)
	require.ErrorIs(t, err, ErrInvalidMetadata)

	regs.AssertNotCalled(t, "RecordPayment", mock.Anything, mock.Anything, mock.Anything)
	pays.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestConfirmCheckoutLegacyMetadataCreatesRegistration(t *testing.T) {
	regs := new(registrationsRepoMock)
	pays := new(paymentsRepoMock)
	events := new(webhookEventsRepoMock)
	svc := newTestPaymentService(regs, pays, events, new(checkoutClientMock))

	session := completedSession(uuid.New(), "completo")
	delete(session.Metadata, "registration_id")

	events.On("Exists", mock.Anything, "stripe", "evt_legacy").Return(false, nil)
	regs.On("Create", mock.Anything, mock.MatchedBy(func(reg *domain.Registration) bool {
		return reg.Name == "Marta" && reg.Surname == "Serra" && reg.Email == "soci@example.com" &&
			reg.Status == domain.StatusPending
	})).Return(nil)
	regs.On("RecordPayment", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	pays.On("Create", mock.Anything, mock.Anything).Return(nil)
	events.On("Create", mock.Anything, "stripe", "evt_legacy", "checkout.session.completed").Return(nil)

	err := svc.ConfirmCheckout(context.Background(), "evt_legacy", session)
	require.NoError(t, err)

	regs.AssertExpectations(t)
}

func TestConfirmCheckoutStaleRegistrationIDFallsBack(t *testing.T) {
	regs := new(registrationsRepoMock)
	pays := new(paymentsRepoMock)
	events := new(webhookEventsRepoMock)
	svc := newTestPaymentService(regs, pays, events, new(checkoutClientMock))

	staleID := uuid.New()
	session := completedSession(staleID, "completo")

	events.On("Exists", mock.Anything, "stripe", "evt_stale").Return(false, nil)
	regs.On("RecordPayment", mock.Anything, staleID, mock.Anything).Return(domain.ErrNoRowsAffected).Once()
	regs.On("Create", mock.Anything, mock.Anything).Return(nil)
	regs.On("RecordPayment", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	pays.On("Create", mock.Anything, mock.Anything).Return(nil)
	events.On("Create", mock.Anything, "stripe", "evt_stale", "checkout.session.completed").Return(nil)

	err := svc.ConfirmCheckout(context.Background(), "evt_stale", session)
	require.NoError(t, err)

	regs.AssertExpectations(t)
}

func TestConfirmCheckoutRedeliveredSessionKeepsOnePayment(t *testing.T) {
	regs := new(registrationsRepoMock)
	pays := new(paymentsRepoMock)
	events := new(webhookEventsRepoMock)
	svc := newTestPaymentService(regs, pays, events, new(checkoutClientMock))

	regID := uuid.New()

	// A redelivery after the dedup row failed to land re-runs the whole
	// confirmation; the session's unique key rejects the second payments
	// row and the run still succeeds.
	events.On("Exists", mock.Anything, "stripe", "evt_redelivery").Return(false, nil)
	regs.On("RecordPayment", mock.Anything, regID, mock.Anything).Return(nil)
	pays.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateEntry)
	events.On("Create", mock.Anything, "stripe", "evt_redelivery", "checkout.session.completed").Return(nil)

	err := svc.ConfirmCheckout(context.Background(), "evt_redelivery", completedSession(regID, "completo"))
	require.NoError(t, err)

	events.AssertExpectations(t)
}

func TestConfirmCheckoutDedupRowRaceReturnsAlreadyProcessed(t *testing.T) {
	regs := new(registrationsRepoMock)
	pays := new(paymentsRepoMock)
	events := new(webhookEventsRepoMock)
	svc := newTestPaymentService(regs, pays, events, new(checkoutClientMock))

	regID := uuid.New()

	events.On("Exists", mock.Anything, "stripe", "evt_race").Return(false, nil)
	regs.On("RecordPayment", mock.Anything, regID, mock.Anything).Return(nil)
	pays.On("Create", mock.Anything, mock.Anything).Return(nil)
	events.On("Create", mock.Anything, "stripe", "evt_race", "checkout.session.completed").
		Return(domain.ErrDuplicateEntry)

	err := svc.ConfirmCheckout(context.Background(), "evt_race", completedSession(regID, "completo"))
	require.ErrorIs(t, err, ErrEventAlreadyProcessed)
}

func TestConfirmCheckoutEventLookupError(t *testing.T) {
	regs := new(registrationsRepoMock)
	events := new(webhookEventsRepoMock)
	svc := newTestPaymentService(regs, new(paymentsRepoMock), events, new(checkoutClientMock))

	events.On("Exists", mock.Anything, "stripe", "evt_err").Return(false, errors.New("db gone"))

	err := svc.ConfirmCheckout(context.Background(), "evt_err", completedSession(uuid.New(), "completo"))
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrEventAlreadyProcessed)
}
