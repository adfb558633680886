package repository

import (
	"context"
	"time"

	"github.com/fccardedeu/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Registrations Registrations
	Payments      Payments
	WebhookEvents WebhookEvents
	News          News
	Sponsors      Sponsors
	Teams         Teams
	Matches       Matches
	Admins        Admins
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Registrations: newRegistrationRepository(db),
		Payments:      newPaymentRepository(db),
		WebhookEvents: newWebhookEventRepository(db),
		News:          newNewsRepository(db),
		Sponsors:      newSponsorRepository(db),
		Teams:         newTeamRepository(db),
		Matches:       newMatchRepository(db),
		Admins:        newAdminRepository(db),
	}
}

// PaymentFields is the set of columns the webhook reconciler writes onto an
// existing registration row when Stripe confirms a checkout.
type PaymentFields struct {
	Type            domain.PaymentType
	AmountPaid      int64
	AmountPending   int64
	StripeSessionID string
	StripePaymentID string
	PaidAt          time.Time
	Status          domain.RegistrationStatus
}

type Registrations interface {
	Create(ctx context.Context, reg *domain.Registration) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Registration, error)
	List(ctx context.Context, page, limit int) ([]domain.Registration, int64, error)
	AttachPhoto(ctx context.Context, id uuid.UUID, photoPath string) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RegistrationStatus) error
	RecordPayment(ctx context.Context, id uuid.UUID, fields PaymentFields) error
}

type Payments interface {
	Create(ctx context.Context, payment *domain.Payment) error
	ListByRegistration(ctx context.Context, registrationID uuid.UUID) ([]domain.Payment, error)
}

type WebhookEvents interface {
	Exists(ctx context.Context, provider, eventID string) (bool, error)
	Create(ctx context.Context, provider, eventID, eventType string) error
}

type News interface {
	Create(ctx context.Context, news *domain.News) error
	Update(ctx context.Context, news *domain.News) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetBySlug(ctx context.Context, slug string) (*domain.News, error)
	List(ctx context.Context, publishedOnly bool, page, limit int) ([]domain.News, int64, error)
}

type Sponsors interface {
	Create(ctx context.Context, sponsor *domain.Sponsor) error
	Update(ctx context.Context, sponsor *domain.Sponsor) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, activeOnly bool) ([]domain.Sponsor, error)
}

type Teams interface {
	Create(ctx context.Context, team *domain.Team) error
	Update(ctx context.Context, team *domain.Team) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Team, error)
	List(ctx context.Context) ([]domain.Team, error)
	AddPlayer(ctx context.Context, player *domain.Player) error
	RemovePlayer(ctx context.Context, id uuid.UUID) error
	ListPlayers(ctx context.Context, teamID uuid.UUID) ([]domain.Player, error)
}

type Matches interface {
	Create(ctx context.Context, match *domain.Match) error
	Update(ctx context.Context, match *domain.Match) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListUpcoming(ctx context.Context, teamID *uuid.UUID, limit int) ([]domain.Match, error)
	SetResult(ctx context.Context, id uuid.UUID, homeGoals, awayGoals int) error
}

type Admins interface {
	GetByCredentials(ctx context.Context, email, passwordHash string) (*domain.Admin, error)
}
