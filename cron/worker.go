package cron

import (
	"context"
	"encoding/json"
	"fmt"

	"cityconnect/config"
	"cityconnect/models"
	"cityconnect/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RedisOpt is the asynq connection for the confirmation queue.
func RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitConfirmationWorker starts the background worker that sends booking
// confirmations. The caller owns the returned server and must Shutdown it.
func InitConfirmationWorker(logger *zap.Logger) (*asynq.Server, error) {
	srv := asynq.NewServer(
		RedisOpt(),
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendConfirmation, HandleConfirmationTask(logger))

	if err := srv.Start(mux); err != nil {
		return nil, fmt.Errorf("start confirmation worker: %w", err)
	}
	logger.Info("Confirmation worker started")
	return srv, nil
}

// HandleConfirmationTask delivers the confirmation. Email delivery is mocked: the
// message is written to the log.
func HandleConfirmationTask(logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ConfirmationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid confirmation payload", zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		if p.Email == "" {
			logger.Warn("Confirmation without an email address", zap.String("park", p.ParkName))
			return nil
		}

		logger.Info("Sending reservation confirmation (mock email)",
			zap.String("to", p.Email),
			zap.String("name", p.Name),
			zap.String("park", p.ParkName),
			zap.String("date", p.Date),
			zap.String("timeSlot", p.TimeSlot))
		return nil
	}
}
