package tasks

import (
	"encoding/json"

	"veranda/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeSendConfirmation = "confirmation:send"

// NewConfirmationTask wraps a confirmation email payload in an asynq task.
func NewConfirmationTask(payload models.ConfirmationEmail) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSendConfirmation, b), nil
}

// Dispatcher enqueues notification work for background delivery.
type Dispatcher interface {
	EnqueueConfirmation(email models.ConfirmationEmail) error
}

// AsynqDispatcher is the redis-queue-backed Dispatcher.
type AsynqDispatcher struct {
	client *asynq.Client
	logger *zap.Logger
}

// NewAsynqDispatcher builds a dispatcher on the given redis queue settings.
func NewAsynqDispatcher(redisOpts asynq.RedisClientOpt, logger *zap.Logger) *AsynqDispatcher {
	return &AsynqDispatcher{
		client: asynq.NewClient(redisOpts),
		logger: logger,
	}
}

// EnqueueConfirmation queues a confirmation email with bounded retry.
func (d *AsynqDispatcher) EnqueueConfirmation(email models.ConfirmationEmail) error {
	task, err := NewConfirmationTask(email)
	if err != nil {
		return err
	}
	info, err := d.client.Enqueue(task, asynq.MaxRetry(3))
	if err != nil {
		return err
	}
	d.logger.Debug("confirmation queued",
		zap.String("taskId", info.ID),
		zap.String("bookingId", email.BookingID))
	return nil
}
