// Package jobs provides scheduled background tasks for the order tracker.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order store.
//
// # Available Jobs
//
// 1. OrderSummaryJob - Periodically logs how many orders sit in each status
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(listOrdersHandler, listByStatusHandler, schedule, logger)
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
// The summary job takes a six-field cron expression with seconds precision,
// e.g. "0 * * * * *" to run at the top of every minute.
package jobs
