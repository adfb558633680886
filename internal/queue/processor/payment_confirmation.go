package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fccardedeu/backend/internal/queue/task"
	"github.com/fccardedeu/backend/internal/worker"

	"github.com/hibiken/asynq"
)

type paymentConfirmationProcessor struct {
	workers *worker.Workers
}

func NewPaymentConfirmationProcessor(workers *worker.Workers) *paymentConfirmationProcessor {
	return &paymentConfirmationProcessor{
		workers: workers,
	}
}

func (p *paymentConfirmationProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var data task.PaymentConfirmation
	err := json.Unmarshal(t.Payload(), &data)
	if err != nil {
		return fmt.Errorf("process payment confirmation task json unmarshal failed: %w", err)
	}

	if err = p.workers.EmailSender.SendPaymentConfirmationEmail(ctx, data.Email, data.Name, data.AmountPaid, data.AmountPending); err != nil {
		return fmt.Errorf("send payment confirmation email failed: %w", err)
	}

	return nil
}
