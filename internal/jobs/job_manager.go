package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	pendingOrdersReportJob *PendingOrdersReportJob
}

func NewJobManager(summarizer OrdersSummarizer, reportSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		pendingOrdersReportJob: NewPendingOrdersReportJob(summarizer, reportSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingOrdersReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending orders report job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingOrdersReportJob.Stop()
}
