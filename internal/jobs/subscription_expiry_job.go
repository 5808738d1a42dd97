package jobs

import (
	"context"
	"log/slog"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SubscriptionExpiryJob suspends active storefronts whose billing date has
// passed. Runs hourly; a suspended storefront stops taking orders until the
// platform reactivates it.
type SubscriptionExpiryJob struct {
	handler commands.SweepOverdueSubscriptionsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSubscriptionExpiryJob creates the hourly subscription sweep job.
func NewSubscriptionExpiryJob(handler commands.SweepOverdueSubscriptionsCommandHandler, logger *slog.Logger) *SubscriptionExpiryJob {
	return &SubscriptionExpiryJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "subscription_expiry_job"),
	}
}

// Start schedules the sweep for the top of every hour.
func (j *SubscriptionExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewSweepOverdueSubscriptionsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Subscription expiry sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Subscription expiry job started (running hourly)")
	return nil
}

// Stop stops the subscription expiry job.
func (j *SubscriptionExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Subscription expiry job stopped")
}
