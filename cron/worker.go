// File: cron/worker.go
package cron

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"tutorhive/config"
	"tutorhive/services/tasks"
	"tutorhive/utils"
)

// redisOpt builds the asynq connection for the reminder queue, which lives on
// its own Redis database so queue traffic never mixes with the slot cache.
func redisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// NewReminderClient returns the enqueue-side client for reminder tasks.
func NewReminderClient() *asynq.Client {
	return asynq.NewClient(redisOpt())
}

// StartReminderWorker runs the reminder consumer until the context is
// cancelled. Retries with backoff if the server fails to start.
func StartReminderWorker(ctx context.Context) {
	logger := utils.GetLogger()

	srv := asynq.NewServer(redisOpt(), asynq.Config{
		Concurrency: 5,
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingReminder, handleBookingReminder)

	go func() {
		<-ctx.Done()
		srv.Shutdown()
	}()

	for {
		if err := srv.Run(mux); err != nil {
			logger.Error("Reminder worker stopped, restarting", zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(5 * time.Second):
				continue
			}
		}
		return
	}
}

// handleBookingReminder announces an upcoming session. Delivery channels
// (email, push) hang off this hook; for now the reminder lands in the
// structured log stream.
func handleBookingReminder(ctx context.Context, t *asynq.Task) error {
	var payload tasks.BookingReminderPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return err
	}

	utils.GetLogger().Info("Booking reminder due",
		zap.String("bookingId", payload.BookingID),
		zap.String("providerId", payload.ProviderID),
		zap.String("studentId", payload.StudentID),
		zap.String("date", payload.Date),
		zap.String("startTime", payload.StartTime))
	return nil
}
