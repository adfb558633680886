package service

import (
	"context"
	"io"

	"github.com/fccardedeu/backend/internal/domain"
	"github.com/fccardedeu/backend/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v82"
)

type registrationsRepoMock struct {
	mock.Mock
}

func (m *registrationsRepoMock) Create(ctx context.Context, reg *domain.Registration) error {
	args := m.Called(ctx, reg)

	return args.Error(0)
}

func (m *registrationsRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Registration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Registration), args.Error(1)
}

func (m *registrationsRepoMock) List(ctx context.Context, page, limit int) ([]domain.Registration, int64, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}

	return args.Get(0).([]domain.Registration), args.Get(1).(int64), args.Error(2)
}

func (m *registrationsRepoMock) AttachPhoto(ctx context.Context, id uuid.UUID, photoPath string) error {
	args := m.Called(ctx, id, photoPath)

	return args.Error(0)
}

func (m *registrationsRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RegistrationStatus) error {
	args := m.Called(ctx, id, status)

	return args.Error(0)
}

func (m *registrationsRepoMock) RecordPayment(ctx context.Context, id uuid.UUID, fields repository.PaymentFields) error {
	args := m.Called(ctx, id, fields)

	return args.Error(0)
}

type paymentsRepoMock struct {
	mock.Mock
}

func (m *paymentsRepoMock) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)

	return args.Error(0)
}

func (m *paymentsRepoMock) ListByRegistration(ctx context.Context, registrationID uuid.UUID) ([]domain.Payment, error) {
	args := m.Called(ctx, registrationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Payment), args.Error(1)
}

type webhookEventsRepoMock struct {
	mock.Mock
}

func (m *webhookEventsRepoMock) Exists(ctx context.Context, provider, eventID string) (bool, error) {
	args := m.Called(ctx, provider, eventID)

	return args.Bool(0), args.Error(1)
}

func (m *webhookEventsRepoMock) Create(ctx context.Context, provider, eventID, eventType string) error {
	args := m.Called(ctx, provider, eventID, eventType)

	return args.Error(0)
}

type checkoutClientMock struct {
	mock.Mock
}

func (m *checkoutClientMock) CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
}

type photoStoreMock struct {
	mock.Mock
}

func (m *photoStoreMock) Upload(ctx context.Context, key string, contentType string, body io.Reader) error {
	args := m.Called(ctx, key, contentType, body)

	return args.Error(0)
}
