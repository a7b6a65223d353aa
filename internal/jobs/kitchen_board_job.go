package jobs

import (
	"context"
	"log/slog"

	"kitchen/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// KitchenBoardJob periodically logs the active order backlog broken down by
// status. The snapshot is read-only; it exists so operators can follow kitchen
// load from the logs.
type KitchenBoardJob struct {
	handler queries.GetActiveOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewKitchenBoardJob creates a job that snapshots the kitchen board every 30 seconds.
func NewKitchenBoardJob(handler queries.GetActiveOrdersQueryHandler, logger *slog.Logger) *KitchenBoardJob {
	return &KitchenBoardJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "kitchen_board_job"),
	}
}

// Start begins the kitchen board job.
func (j *KitchenBoardJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		active, err := j.handler.Handle(ctx, queries.NewGetActiveOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Kitchen board snapshot failed", "error", err)
			return
		}

		byStatus := make(map[string]int, len(active))
		for _, o := range active {
			byStatus[o.Status.String()]++
		}

		j.logger.InfoContext(ctx, "Kitchen board snapshot",
			"active_orders", len(active),
			"by_status", byStatus,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Kitchen board job started (running every 30 seconds)")
	return nil
}

// Stop stops the kitchen board job.
func (j *KitchenBoardJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Kitchen board job stopped")
}
