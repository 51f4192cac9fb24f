package jobs

import (
	"context"
	"log/slog"
	"time"

	"littlelemon/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultReportSchedule runs the report every five minutes.
const DefaultReportSchedule = "0 */5 * * * *"

// OrdersSummarizer is satisfied by queries.GetOrdersSummaryQueryHandler.
type OrdersSummarizer interface {
	Handle(ctx context.Context, query queries.GetOrdersSummaryQuery) (queries.GetOrdersSummaryQueryResponse, error)
}

// PendingOrdersReportJob periodically logs how many orders wait for a
// delivery crew, how many are out for delivery and how many were completed
// today.
type PendingOrdersReportJob struct {
	handler  OrdersSummarizer
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewPendingOrdersReportJob(handler OrdersSummarizer, schedule string, logger *slog.Logger) *PendingOrdersReportJob {
	if schedule == "" {
		schedule = DefaultReportSchedule
	}
	return &PendingOrdersReportJob{
		handler:  handler,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "pending_orders_report_job"),
	}
}

func (j *PendingOrdersReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending orders report job started", "schedule", j.schedule)
	return nil
}

// Run produces one report.
func (j *PendingOrdersReportJob) Run(ctx context.Context) {
	summary, err := j.handler.Handle(ctx, queries.NewGetOrdersSummaryQuery(j.now()))
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending orders report failed", "error", err)
		return
	}
	j.logger.InfoContext(ctx, "Pending orders report",
		"pending_unassigned", summary.PendingUnassigned,
		"pending_assigned", summary.PendingAssigned,
		"completed_today", summary.CompletedToday,
	)
}

// Stop waits for a running report to finish.
func (j *PendingOrdersReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Pending orders report job stopped")
}
