// Package jobs provides scheduled background tasks for the storefront
// platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the request path never triggers.
//
// # Available Jobs
//
// 1. DailyCounterResetJob - Runs at midnight to zero every courier's per-day delivery counter
// 2. SubscriptionExpiryJob - Runs hourly to suspend active storefronts whose billing date has passed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(resetHandler, sweepHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs log failures and retry on the next tick; a failed run leaves the
// database untouched because each sweep runs in a single transaction.
// Failed job starts will stop any already running jobs.
package jobs
