package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fccardedeu/backend/internal/domain"
	"github.com/fccardedeu/backend/pkg/token"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testDraftManager(t *testing.T) *token.Manager {
	t.Helper()

	manager, err := token.NewManager("test-draft-signing-key", time.Hour)
	require.NoError(t, err)

	return manager
}

func testDraft() token.Draft {
	return token.Draft{
		Name:      "Marta",
		Surname:   "Serra",
		BirthDate: "2012-04-09",
		DNI:       "12345678Z",
		Email:     "marta@example.com",
		Phone:     "612345678",
	}
}

func TestStartIssuesVerifiableToken(t *testing.T) {
	drafts := testDraftManager(t)
	svc := newRegistrationService(new(registrationsRepoMock), drafts, nil, zap.NewNop().Sugar())

	signed, err := svc.Start(StepOneInput{
		Name:      "Marta",
		Surname:   "Serra",
		BirthDate: "2012-04-09",
		DNI:       "12345678Z",
		Email:     "marta@example.com",
		Phone:     "612345678",
	})
	require.NoError(t, err)

	draft, err := drafts.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, testDraft(), *draft)
}

func TestFinalizeWithoutPhoto(t *testing.T) {
	regs := new(registrationsRepoMock)
	svc := newRegistrationService(regs, testDraftManager(t), nil, zap.NewNop().Sugar())

	regs.On("Create", mock.Anything, mock.MatchedBy(func(reg *domain.Registration) bool {
		return reg.Name == "Marta" &&
			reg.DNI == "12345678Z" &&
			reg.Address == "Carrer Major 1" &&
			reg.Category == "aleví" &&
			reg.Status == domain.StatusPending &&
			reg.ID != uuid.Nil
	})).Return(nil)

	id, err := svc.Finalize(context.Background(), testDraft(), StepTwoInput{
		Address:    "Carrer Major 1",
		PostalCode: "08440",
		City:       "Cardedeu",
		Category:   "aleví",
	}, nil)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	regs.AssertExpectations(t)
	regs.AssertNotCalled(t, "AttachPhoto", mock.Anything, mock.Anything, mock.Anything)
}

func TestFinalizeUploadsPhoto(t *testing.T) {
	regs := new(registrationsRepoMock)
	photos := new(photoStoreMock)
	svc := newRegistrationService(regs, testDraftManager(t), photos, zap.NewNop().Sugar())

	regs.On("Create", mock.Anything, mock.Anything).Return(nil)
	photos.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "inscripcions/") && strings.HasSuffix(key, ".jpg")
	}), "image/jpeg", mock.Anything).Return(nil)
	regs.On("AttachPhoto", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Finalize(context.Background(), testDraft(), StepTwoInput{}, &PhotoUpload{
		Filename:    "foto.JPG",
		ContentType: "image/jpeg",
		Body:        strings.NewReader("jpeg bytes"),
	})
	require.NoError(t, err)

	photos.AssertExpectations(t)
	regs.AssertExpectations(t)
}

func TestFinalizeToleratesPhotoUploadFailure(t *testing.T) {
	regs := new(registrationsRepoMock)
	photos := new(photoStoreMock)
	svc := newRegistrationService(regs, testDraftManager(t), photos, zap.NewNop().Sugar())

	regs.On("Create", mock.Anything, mock.Anything).Return(nil)
	photos.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("bucket unavailable"))

	id, err := svc.Finalize(context.Background(), testDraft(), StepTwoInput{}, &PhotoUpload{
		Filename:    "foto.png",
		ContentType: "image/png",
		Body:        strings.NewReader("png bytes"),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	regs.AssertNotCalled(t, "AttachPhoto", mock.Anything, mock.Anything, mock.Anything)
}

func TestFinalizeCreateError(t *testing.T) {
	regs := new(registrationsRepoMock)
	svc := newRegistrationService(regs, testDraftManager(t), nil, zap.NewNop().Sugar())

	regs.On("Create", mock.Anything, mock.Anything).Return(errors.New("db gone"))

	_, err := svc.Finalize(context.Background(), testDraft(), StepTwoInput{}, nil)
	require.Error(t, err)
}

func TestUpdateStatusRejectsIllegalTransition(t *testing.T) {
	regs := new(registrationsRepoMock)
	svc := newRegistrationService(regs, testDraftManager(t), nil, zap.NewNop().Sugar())

	id := uuid.New()
	regs.On("GetByID", mock.Anything, id).Return(&domain.Registration{
		ID:     id,
		Status: domain.StatusCompleted,
	}, nil)

	err := svc.UpdateStatus(context.Background(), id, domain.StatusPending)
	require.ErrorIs(t, err, ErrInvalidStatusTransition)

	regs.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatusAllowsLegalTransition(t *testing.T) {
	regs := new(registrationsRepoMock)
	svc := newRegistrationService(regs, testDraftManager(t), nil, zap.NewNop().Sugar())

	id := uuid.New()
	regs.On("GetByID", mock.Anything, id).Return(&domain.Registration{
		ID:     id,
		Status: domain.StatusPending,
	}, nil)
	regs.On("UpdateStatus", mock.Anything, id, domain.StatusProcessing).Return(nil)

	err := svc.UpdateStatus(context.Background(), id, domain.StatusProcessing)
	require.NoError(t, err)

	regs.AssertExpectations(t)
}
