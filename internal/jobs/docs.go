// Package jobs provides scheduled background tasks for the ordering service.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with a seconds field,
// and are started and stopped through JobManager:
//
//	jobManager := jobs.NewJobManager(summaryHandler, cfg.ReportSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// PendingOrdersReportJob logs counts of pending unassigned orders, pending
// assigned orders and orders completed today. It runs on REPORT_SCHEDULE,
// every five minutes by default. A failed report is logged and the next
// tick tries again.
package jobs
