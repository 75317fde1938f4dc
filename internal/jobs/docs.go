// Package jobs provides scheduled background tasks for the shipping service.
//
// Jobs are built on github.com/robfig/cron/v3 and own their scheduler, so
// each one has an explicit Start/Stop lifecycle.
//
// # Available Jobs
//
// ShipmentLifecycleJob advances shipment statuses on a fixed interval
// (STATUS_TICK_INTERVAL, one minute by default). Every tick runs the lifecycle
// rules in one transaction: Placed shipments older than the transit delay
// move to In Transit, then In Transit shipments untouched for the delivery
// delay move to Delivered.
//
// # Usage
//
//	lifecycleJob := jobs.NewShipmentLifecycleJob(&handler, clock, lifecycleMetrics, time.Minute, logger)
//	jobManager := jobs.NewJobManager(logger, lifecycleJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		logger.Fatal("failed to start jobs", zap.Error(err))
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
//   - A failed tick is logged, counted and rolled back; the next tick runs as usual
//   - A tick still running when the next one is due causes that next one to be skipped
//   - A panic inside a tick is recovered and logged by the scheduler
//   - Failed job starts stop any already running jobs
package jobs
