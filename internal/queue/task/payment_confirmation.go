package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	PaymentConfirmationTaskName  = "paymentConfirmationTask"
	PaymentConfirmationQueueName = "paymentConfirmationQueue"
)

type PaymentConfirmation struct {
	Email         string `json:"email"`
	Name          string `json:"name"`
	AmountPaid    int64  `json:"amount_paid"`
	AmountPending int64  `json:"amount_pending"`
}

func NewPaymentConfirmationTask(email, name string, amountPaid, amountPending int64) (*asynq.Task, error) {
	data := PaymentConfirmation{
		Email:         email,
		Name:          name,
		AmountPaid:    amountPaid,
		AmountPending: amountPending,
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		PaymentConfirmationTaskName,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue(PaymentConfirmationQueueName),
	), nil
}
