package jobs

import (
	"context"
	"log/slog"

	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// OrderSummaryJob periodically logs how many orders sit in each status.
// Gives operators a heartbeat view of the store without querying the API.
type OrderSummaryJob struct {
	listOrdersHandler   queries.ListOrdersQueryHandler
	listByStatusHandler queries.ListOrdersByStatusQueryHandler
	schedule            string
	cron                *cron.Cron
	logger              *slog.Logger
}

// NewOrderSummaryJob creates a new job that summarizes the order store.
// The schedule is a six-field cron expression with seconds precision.
func NewOrderSummaryJob(
	listOrdersHandler queries.ListOrdersQueryHandler,
	listByStatusHandler queries.ListOrdersByStatusQueryHandler,
	schedule string,
	logger *slog.Logger,
) *OrderSummaryJob {
	return &OrderSummaryJob{
		listOrdersHandler:   listOrdersHandler,
		listByStatusHandler: listByStatusHandler,
		schedule:            schedule,
		cron:                cron.New(cron.WithSeconds()),
		logger:              logger.With("component", "order_summary_job"),
	}
}

// Start schedules the summary job.
func (j *OrderSummaryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order summary job started", "schedule", j.schedule)
	return nil
}

// Stop stops the summary job.
func (j *OrderSummaryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order summary job stopped")
}

func (j *OrderSummaryJob) run() {
	ctx := context.Background()

	totalResponse, err := j.listOrdersHandler.Handle(ctx, queries.NewListOrdersQuery(""))
	if err != nil {
		j.logger.ErrorContext(ctx, "Order summary job failed", "error", err)
		return
	}

	attrs := []any{"total", totalResponse.Count}
	for _, status := range order.ValidStatuses() {
		query, err := queries.NewListOrdersByStatusQuery(status)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order summary job failed", "error", err)
			return
		}

		response, err := j.listByStatusHandler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order summary job failed", "status", status.String(), "error", err)
			return
		}

		attrs = append(attrs, status.String(), response.Count)
	}

	j.logger.InfoContext(ctx, "Order summary", attrs...)
}
