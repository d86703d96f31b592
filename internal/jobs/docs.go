// Package jobs provides scheduled background tasks for the food court.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order lifecycle.
//
// # Available Jobs
//
// 1. StaleItemAlertJob - Runs every minute to flag items that have waited in
// the incoming status past a configured threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(staleItemsHandler, notifier, 15*time.Minute, logger)
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
// - The stale item job only observes; a failed scan is logged and retried on
// the next tick
// - Notifications are best effort and never block the scan
// - Failed job starts will stop any already running jobs
package jobs
