// Package jobs provides scheduled background tasks for the intake service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping required by the wizard.
//
// # Available Jobs
//
// 1. SessionCleanupJob - Periodically evicts wizard sessions that have been
// idle longer than the configured TTL
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cleanupHandler, 30*time.Minute, "0 * * * * *", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The cleanup job's schedule is a six-field cron expression (with seconds),
// "0 * * * * *" by default, meaning once a minute. Eviction is driven by
// session activity: any wizard operation defers a session's expiry.
//
// # Error Handling
//
// - Cleanup failures are logged and retried on the next tick
// - A failed job start aborts application startup
package jobs
