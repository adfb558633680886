package service

import (
	"context"

	"github.com/fccardedeu/backend/internal/config"
	"github.com/fccardedeu/backend/internal/domain"
	"github.com/fccardedeu/backend/internal/repository"
	"github.com/fccardedeu/backend/internal/storage"
	"github.com/fccardedeu/backend/pkg/auth"
	"github.com/fccardedeu/backend/pkg/hash"
	"github.com/fccardedeu/backend/pkg/token"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"
)

type Services struct {
	Registrations Registrations
	Payments      Payments
	News          News
	Sponsors      Sponsors
	Teams         Teams
	Matches       Matches
	Admins        Admins
}

type Deps struct {
	Logger       *zap.SugaredLogger
	Config       *config.Config
	Repos        *repository.Repositories
	DraftManager *token.Manager
	Hasher       hash.PasswordHasher
	TokenManager auth.TokenManager
	Checkout     CheckoutClient
	Photos       storage.PhotoStore
	Cache        redis.UniversalClient
}

func NewServices(deps Deps) *Services {
	return &Services{
		Registrations: newRegistrationService(deps.Repos.Registrations,
			deps.DraftManager,
			deps.Photos,
			deps.Logger,
		),
		Payments: newPaymentService(deps.Repos.Registrations,
			deps.Repos.Payments,
			deps.Repos.WebhookEvents,
			deps.Checkout,
			deps.Config.Stripe,
			deps.Logger,
		),
		News:     newNewsService(deps.Repos.News, deps.Cache, deps.Config.Cache.ContentTTL, deps.Logger),
		Sponsors: newSponsorService(deps.Repos.Sponsors),
		Teams:    newTeamService(deps.Repos.Teams),
		Matches:  newMatchService(deps.Repos.Matches, deps.Repos.Teams),
		Admins:   newAdminService(deps.Repos.Admins, deps.Hasher, deps.TokenManager),
	}
}

type Registrations interface {
	Start(input StepOneInput) (string, error)
	Finalize(ctx context.Context, draft token.Draft, input StepTwoInput, photo *PhotoUpload) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Registration, error)
	List(ctx context.Context, page, limit int) ([]domain.Registration, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RegistrationStatus) error
}

type Payments interface {
	Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error)
	ConfirmCheckout(ctx context.Context, eventID string, session *stripe.CheckoutSession) error
	ListByRegistration(ctx context.Context, registrationID uuid.UUID) ([]domain.Payment, error)
}

type News interface {
	List(ctx context.Context, publishedOnly bool, page, limit int) ([]domain.News, int64, error)
	GetBySlug(ctx context.Context, slug string) (*domain.News, error)
	Create(ctx context.Context, input NewsInput) (*domain.News, error)
	Update(ctx context.Context, id uuid.UUID, input NewsInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Sponsors interface {
	List(ctx context.Context, activeOnly bool) ([]domain.Sponsor, error)
	Create(ctx context.Context, input SponsorInput) (*domain.Sponsor, error)
	Update(ctx context.Context, id uuid.UUID, input SponsorInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Teams interface {
	List(ctx context.Context) ([]domain.Team, error)
	GetWithRoster(ctx context.Context, id uuid.UUID) (*domain.Team, []domain.Player, error)
	Create(ctx context.Context, input TeamInput) (*domain.Team, error)
	Update(ctx context.Context, id uuid.UUID, input TeamInput) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddPlayer(ctx context.Context, teamID uuid.UUID, input PlayerInput) (*domain.Player, error)
	RemovePlayer(ctx context.Context, id uuid.UUID) error
}

type Matches interface {
	ListUpcoming(ctx context.Context, teamID *uuid.UUID, limit int) ([]domain.Match, error)
	Create(ctx context.Context, input MatchInput) (*domain.Match, error)
	Update(ctx context.Context, id uuid.UUID, input MatchInput) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetResult(ctx context.Context, id uuid.UUID, homeGoals, awayGoals int) error
}

type Admins interface {
	SignIn(ctx context.Context, email, password string) (*Tokens, error)
}
