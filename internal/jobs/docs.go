// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment.
//
// # Available Jobs
//
// 1. DeliveryDispatchJob - Runs every second to schedule paid delivery orders onto available drivers
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(orderRegistry, dispatcher, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The dispatch job uses the cron expression "* * * * * *", meaning it runs every
// second. This frequency keeps the window between payment settlement and driver
// assignment short.
//
// # Error Handling
//
// The dispatch job ignores the expected business outcome of the driver pool
// running dry; any other error is logged, and the next sweep retries the
// remaining orders.
package jobs
