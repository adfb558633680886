package worker

import (
	"context"
	"fmt"

	"github.com/fccardedeu/backend/internal/config"
	emailProvider "github.com/fccardedeu/backend/pkg/email"
)

type emailSender struct {
	sender emailProvider.Sender
	config config.EmailConfig
}

func newEmailSender(
	sender emailProvider.Sender,
	config config.EmailConfig,
) *emailSender {
	return &emailSender{
		sender: sender,
		config: config,
	}
}

type confirmationEmailInput struct {
	Name          string
	AmountPaid    int64
	AmountPending int64
}

func (s *emailSender) SendPaymentConfirmationEmail(ctx context.Context, email, name string, amountPaid, amountPending int64) error {
	subject := "Confirmació de pagament"

	templateInput := confirmationEmailInput{
		Name:          name,
		AmountPaid:    amountPaid,
		AmountPending: amountPending,
	}
	sendInput := emailProvider.SendEmailInput{Subject: subject, To: email}

	if err := sendInput.GenerateBodyFromHTML(s.config.Templates.PaymentConfirmation, templateInput); err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	if err := s.sender.Send(sendInput); err != nil {
		return fmt.Errorf("send email failed: %w", err)
	}

	return nil
}
