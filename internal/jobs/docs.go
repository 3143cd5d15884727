// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// DispatchRetryJob is the automatic caller of dispatch retries: orders that
// reached ready while no driver was available stay ready, and every sweep
// offers them to the driver pool again through DispatchOrderCommandHandler.
//
//	job := jobs.NewDispatchRetryJob(uowFactory, dispatchHandler, "*/10 * * * * *", 50, logger)
//	manager := jobs.NewJobManager(job)
//	if err := manager.StartAll(); err != nil {
//		log.Fatalf("failed to start jobs: %v", err)
//	}
//	defer manager.StopAll()
//
// Schedules use six fields, seconds first.
package jobs
