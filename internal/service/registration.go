package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/fccardedeu/backend/internal/domain"
	"github.com/fccardedeu/backend/internal/repository"
	"github.com/fccardedeu/backend/internal/storage"
	"github.com/fccardedeu/backend/pkg/token"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StepOneInput is the personal data collected on the first registration
// screen. It never touches the database, only the signed draft token.
type StepOneInput struct {
	Name      string
	Surname   string
	BirthDate string
	DNI       string
	Email     string
	Phone     string
}

// StepTwoInput completes the registration with contact and club details.
type StepTwoInput struct {
	Address    string
	PostalCode string
	City       string
	Category   string
}

// PhotoUpload carries an optional member photo from the multipart form.
type PhotoUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

type registrationService struct {
	repo   repository.Registrations
	drafts *token.Manager
	photos storage.PhotoStore
	log    *zap.SugaredLogger
}

func newRegistrationService(repo repository.Registrations, drafts *token.Manager, photos storage.PhotoStore, log *zap.SugaredLogger) *registrationService {
	return &registrationService{
		repo:   repo,
		drafts: drafts,
		photos: photos,
		log:    log,
	}
}

func (s *registrationService) Start(input StepOneInput) (string, error) {
	draft := token.Draft{
		Name:      input.Name,
		Surname:   input.Surname,
		BirthDate: input.BirthDate,
		DNI:       input.DNI,
		Email:     input.Email,
		Phone:     input.Phone,
	}

	signed, err := s.drafts.Issue(draft)
	if err != nil {
		return "", fmt.Errorf("issue draft token failed: %w", err)
	}

	return signed, nil
}

func (s *registrationService) Finalize(ctx context.Context, draft token.Draft, input StepTwoInput, photo *PhotoUpload) (uuid.UUID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, fmt.Errorf("generate registration id failed: %w", err)
	}

	reg := &domain.Registration{
		ID:         id,
		Name:       draft.Name,
		Surname:    draft.Surname,
		BirthDate:  draft.BirthDate,
		DNI:        draft.DNI,
		Email:      draft.Email,
		Phone:      draft.Phone,
		Address:    input.Address,
		PostalCode: input.PostalCode,
		City:       input.City,
		Category:   input.Category,
		Status:     domain.StatusPending,
	}

	if err := s.repo.Create(ctx, reg); err != nil {
		return uuid.Nil, fmt.Errorf("create registration failed: %w", err)
	}

	// The photo is best effort. A failed upload is logged and the member
	// keeps a completed registration without a photo reference.
	if photo != nil && s.photos != nil {
		key := photoKey(id, photo.Filename)
		if err := s.photos.Upload(ctx, key, photo.ContentType, photo.Body); err != nil {
			s.log.Warnw("photo upload failed, registration kept without photo",
				"registration_id", id, "error", err)
			return id, nil
		}

		if err := s.repo.AttachPhoto(ctx, id, key); err != nil {
			s.log.Warnw("attach photo failed, registration kept without photo",
				"registration_id", id, "error", err)
		}
	}

	return id, nil
}

func (s *registrationService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Registration, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *registrationService) List(ctx context.Context, page, limit int) ([]domain.Registration, int64, error) {
	return s.repo.List(ctx, page, limit)
}

func (s *registrationService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RegistrationStatus) error {
	reg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !reg.Status.CanTransitionTo(status) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidStatusTransition, reg.Status, status)
	}

	return s.repo.UpdateStatus(ctx, id, status)
}

func photoKey(id uuid.UUID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("inscripcions/%s%s", id, ext)
}
