package jobs

import (
	"fmt"
	"log/slog"

	"storefront/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dailyCounterResetJob  *DailyCounterResetJob
	subscriptionExpiryJob *SubscriptionExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	resetHandler commands.ResetDailyCountersCommandHandler,
	sweepHandler commands.SweepOverdueSubscriptionsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dailyCounterResetJob:  NewDailyCounterResetJob(resetHandler, logger),
		subscriptionExpiryJob: NewSubscriptionExpiryJob(sweepHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dailyCounterResetJob.Start(); err != nil {
		return fmt.Errorf("failed to start daily counter reset job: %w", err)
	}

	if err := jm.subscriptionExpiryJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.dailyCounterResetJob.Stop()
		return fmt.Errorf("failed to start subscription expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dailyCounterResetJob.Stop()
	jm.subscriptionExpiryJob.Stop()
}
