package v1_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fccardedeu/backend/internal/domain"
	"github.com/fccardedeu/backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func checkoutRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	return req
}

func TestCheckoutReturnsSessionURL(t *testing.T) {
	payments := new(paymentsServiceMock)
	env := newTestEnv(t, &service.Services{Payments: payments})

	regID := uuid.New()
	payments.On("Checkout", mock.Anything, service.CheckoutInput{
		RegistrationID: &regID,
		PaymentType:    domain.PaymentTypePartial,
	}).Return(&service.CheckoutResult{
		SessionID:  "cs_test_1",
		SessionURL: "https://checkout.stripe.com/c/cs_test_1",
	}, nil)

	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, checkoutRequest(`{"registration_id":"`+regID.String()+`","payment_type":"parcial"}`))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"session_id":"cs_test_1","url":"https://checkout.stripe.com/c/cs_test_1"}`, rr.Body.String())
	payments.AssertExpectations(t)
}

func TestCheckoutWithEmailOnly(t *testing.T) {
	payments := new(paymentsServiceMock)
	env := newTestEnv(t, &service.Services{Payments: payments})

	payments.On("Checkout", mock.Anything, service.CheckoutInput{
		PaymentType: domain.PaymentTypeFull,
		Email:       "nou@example.com",
		Name:        "Pau",
		Surname:     "Vila",
	}).Return(&service.CheckoutResult{
		SessionID:  "cs_test_2",
		SessionURL: "https://checkout.stripe.com/c/cs_test_2",
	}, nil)

	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, checkoutRequest(`{"payment_type":"completo","email":"nou@example.com","name":"Pau","surname":"Vila"}`))

	require.Equal(t, http.StatusOK, rr.Code)
	payments.AssertExpectations(t)
}

func TestCheckoutRequiresIdentity(t *testing.T) {
	payments := new(paymentsServiceMock)
	env := newTestEnv(t, &service.Services{Payments: payments})

	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, checkoutRequest(`{"payment_type":"completo"}`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	payments.AssertNotCalled(t, "Checkout", mock.Anything, mock.Anything)
}

func TestCheckoutProviderFailure(t *testing.T) {
	payments := new(paymentsServiceMock)
	env := newTestEnv(t, &service.Services{Payments: payments})

	payments.On("Checkout", mock.Anything, mock.Anything).
		Return(nil, service.ErrPaymentProvider)

	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, checkoutRequest(`{"registration_id":"`+uuid.NewString()+`","payment_type":"completo"}`))

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestCheckoutRejectsUnknownType(t *testing.T) {
	payments := new(paymentsServiceMock)
	env := newTestEnv(t, &service.Services{Payments: payments})

	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, checkoutRequest(`{"registration_id":"`+uuid.NewString()+`","payment_type":"mensual"}`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	payments.AssertNotCalled(t, "Checkout", mock.Anything, mock.Anything)
}

func TestCheckoutUnknownRegistration(t *testing.T) {
	payments := new(paymentsServiceMock)
	env := newTestEnv(t, &service.Services{Payments: payments})

	regID := uuid.New()
	payments.On("Checkout", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)

	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, checkoutRequest(`{"registration_id":"`+regID.String()+`","payment_type":"completo"}`))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
