package worker

import (
	"context"

	"github.com/fccardedeu/backend/internal/config"
	emailProvider "github.com/fccardedeu/backend/pkg/email"
)

type Workers struct {
	EmailSender EmailSender
}

type Deps struct {
	EmailProvider emailProvider.Sender
	Config        *config.Config
}

type EmailSender interface {
	SendPaymentConfirmationEmail(ctx context.Context, email, name string, amountPaid, amountPending int64) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		EmailSender: newEmailSender(deps.EmailProvider, deps.Config.Email),
	}
}
