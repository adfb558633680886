package v1_test

import (
	"context"
	"testing"
	"time"

	v1 "github.com/fccardedeu/backend/internal/api/http/internal/v1"
	"github.com/fccardedeu/backend/internal/config"
	"github.com/fccardedeu/backend/internal/domain"
	"github.com/fccardedeu/backend/internal/service"
	"github.com/fccardedeu/backend/pkg/cookiecrypt"
	"github.com/fccardedeu/backend/pkg/token"
	"github.com/fccardedeu/backend/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
)

const (
	testCookieKey     = "0123456789abcdef0123456789abcdef"
	testDraftKey      = "test-draft-signing-key"
	testCookieName    = "club_registration_draft"
	testWebhookSecret = "whsec_test_secret"
)

type testEnv struct {
	router *gin.Engine
	codec  *cookiecrypt.Codec
	drafts *token.Manager
}

func newTestEnv(t *testing.T, services *service.Services) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)
	validator.RegisterGinValidator()

	cfg := &config.Config{}
	cfg.Draft.CookieName = testCookieName
	cfg.Stripe.WebhookSecret = testWebhookSecret

	codec, err := cookiecrypt.NewCodec(testCookieKey, false)
	require.NoError(t, err)

	drafts, err := token.NewManager(testDraftKey, time.Hour)
	require.NoError(t, err)

	handler := v1.NewHandler(services, nil, cfg, codec, drafts)

	router := gin.New()
	handler.Init(router.Group("/api"))

	return &testEnv{
		router: router,
		codec:  codec,
		drafts: drafts,
	}
}

type registrationsServiceMock struct {
	mock.Mock
}

func (m *registrationsServiceMock) Start(input service.StepOneInput) (string, error) {
	args := m.Called(input)

	return args.String(0), args.Error(1)
}

func (m *registrationsServiceMock) Finalize(ctx context.Context, draft token.Draft, input service.StepTwoInput, photo *service.PhotoUpload) (uuid.UUID, error) {
	args := m.Called(ctx, draft, input, photo)

	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *registrationsServiceMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Registration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Registration), args.Error(1)
}

func (m *registrationsServiceMock) List(ctx context.Context, page, limit int) ([]domain.Registration, int64, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}

	return args.Get(0).([]domain.Registration), args.Get(1).(int64), args.Error(2)
}

func (m *registrationsServiceMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RegistrationStatus) error {
	args := m.Called(ctx, id, status)

	return args.Error(0)
}

type paymentsServiceMock struct {
	mock.Mock
}

func (m *paymentsServiceMock) Checkout(ctx context.Context, input service.CheckoutInput) (*service.CheckoutResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.CheckoutResult), args.Error(1)
}

func (m *paymentsServiceMock) ConfirmCheckout(ctx context.Context, eventID string, session *stripe.CheckoutSession) error {
	args := m.Called(ctx, eventID, session)

	return args.Error(0)
}

func (m *paymentsServiceMock) ListByRegistration(ctx context.Context, registrationID uuid.UUID) ([]domain.Payment, error) {
	args := m.Called(ctx, registrationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Payment), args.Error(1)
}
