package jobs

import (
	"context"
	"errors"
	"log/slog"

	"supermarket/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderAssignmentJob manages the scheduled assignment of drivers to orders.
// Periodically matches the oldest unassigned order with the least-loaded
// active driver.
type OrderAssignmentJob struct {
	handler  commands.AssignOrderCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderAssignmentJob creates a new job for assigning drivers to orders.
// The schedule is a six-field cron expression with a seconds column.
func NewOrderAssignmentJob(
	handler commands.AssignOrderCommandHandler,
	schedule string,
	logger *slog.Logger,
) *OrderAssignmentJob {
	return &OrderAssignmentJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_assignment_job"),
	}
}

// Start begins the order assignment job on its configured schedule.
func (j *OrderAssignmentJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewAssignOrderCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoUnassignedOrdersFound) &&
				!errors.Is(err, commands.ErrNoActiveDriversFound) {
				j.logger.ErrorContext(ctx, "Order assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order assignment job started", "schedule", j.schedule)
	return nil
}

// Stop stops the order assignment job.
func (j *OrderAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order assignment job stopped")
}
