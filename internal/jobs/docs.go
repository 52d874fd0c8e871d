// Package jobs provides scheduled background tasks for the supermarket backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfilment.
//
// # Available Jobs
//
// 1. OrderAssignmentJob - Periodically assigns the oldest unassigned order to the least-loaded active driver
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignOrderHandler, schedule, logger)
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
// The assignment job schedule is a six-field cron expression taken from
// configuration, "*/30 * * * * *" by default (every thirty seconds). Manual
// assignment through the API remains the primary dispatch path; the job
// sweeps up orders the operators have not assigned yet.
//
// # Error Handling
//
// The assignment job ignores expected business errors (no unassigned orders,
// no active drivers) and logs everything else.
package jobs
