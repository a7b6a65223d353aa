// Package jobs provides scheduled background tasks for the order engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order lifecycle.
//
// # Available Jobs
//
// 1. KitchenBoardJob - Periodically snapshots the active order backlog and logs
// it per status, giving operators a heartbeat of kitchen load without querying
// the API.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getActiveOrdersHandler, logger)
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
// Board snapshots are observational: failures are logged and the next tick
// tries again, state is never mutated.
package jobs
