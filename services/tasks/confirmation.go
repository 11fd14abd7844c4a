package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cityconnect/models"

	"github.com/hibiken/asynq"
)

const TypeSendConfirmation = "reservation:confirmation"

func NewConfirmationTask(payload models.ConfirmationPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendConfirmation, b)
	opts := []asynq.Option{
		asynq.MaxRetry(5),
		asynq.Timeout(30 * time.Second),
	}
	return task, opts, nil
}

// Enqueuer is the subset of *asynq.Client the notifier uses.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqNotifier queues confirmation emails for the background worker.
type AsynqNotifier struct {
	client Enqueuer
}

func NewAsynqNotifier(client Enqueuer) *AsynqNotifier {
	return &AsynqNotifier{client: client}
}

func (n *AsynqNotifier) NotifyConfirmation(ctx context.Context, payload models.ConfirmationPayload) error {
	task, opts, err := NewConfirmationTask(payload)
	if err != nil {
		return fmt.Errorf("build confirmation task: %w", err)
	}
	if _, err := n.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("enqueue confirmation task: %w", err)
	}
	return nil
}
