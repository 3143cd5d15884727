package jobs

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultRetrySchedule runs a sweep every ten seconds.
const DefaultRetrySchedule = "*/10 * * * * *"

// DefaultRetryBatch caps how many ready orders one sweep retries.
const DefaultRetryBatch = 50

type dispatchHandler interface {
	Handle(ctx context.Context, command commands.DispatchOrderCommand) (commands.AdvanceStatusResult, error)
}

// SweepResult counts what one sweep did.
type SweepResult struct {
	Attempted int
	Assigned  int
	Pending   int
	Failed    int
}

// DispatchRetryJob retries driver assignment for orders left in ready
// without a driver, oldest first.
type DispatchRetryJob struct {
	uowFactory ports.UnitOfWorkFactory
	handler    dispatchHandler
	schedule   string
	batch      int
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewDispatchRetryJob takes a six-field cron schedule (with seconds). Blank
// schedule and non-positive batch fall back to the defaults.
func NewDispatchRetryJob(
	uowFactory ports.UnitOfWorkFactory,
	handler dispatchHandler,
	schedule string,
	batch int,
	logger *slog.Logger,
) *DispatchRetryJob {
	if schedule == "" {
		schedule = DefaultRetrySchedule
	}
	if batch <= 0 {
		batch = DefaultRetryBatch
	}
	return &DispatchRetryJob{
		uowFactory: uowFactory,
		handler:    handler,
		schedule:   schedule,
		batch:      batch,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "dispatch_retry_job"),
	}
}

func (j *DispatchRetryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Sweep(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Dispatch retry sweep failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch retry job started", "schedule", j.schedule, "batch", j.batch)
	return nil
}

// Stop waits for a running sweep to finish.
func (j *DispatchRetryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Dispatch retry job stopped")
}

// Sweep runs one retry pass. Orders that moved on or lost their driver to a
// concurrent dispatch are skipped quietly; the next sweep sees them again if
// they are still ready.
func (j *DispatchRetryJob) Sweep(ctx context.Context) (SweepResult, error) {
	ready, err := j.uowFactory.Create().OrderRepository().ListReady(ctx, j.batch)
	if err != nil {
		return SweepResult{}, err
	}

	var result SweepResult
	for _, o := range ready {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		cmd, err := commands.NewDispatchOrderCommand(o.ID())
		if err != nil {
			return result, err
		}

		result.Attempted++
		outcome, err := j.handler.Handle(ctx, cmd)
		switch {
		case err == nil && outcome.Dispatch == commands.DispatchAssigned:
			result.Assigned++
		case err == nil:
			result.Pending++
		case errors.Is(err, order.ErrIllegalTransition), errors.Is(err, driver.ErrDriverNotAvailable):
			result.Pending++
			j.logger.DebugContext(ctx, "Dispatch retry skipped", "order_id", o.ID().String(), "error", err)
		default:
			result.Failed++
			j.logger.ErrorContext(ctx, "Dispatch retry failed", "order_id", o.ID().String(), "error", err)
		}
	}

	if result.Attempted > 0 {
		j.logger.InfoContext(ctx, "Dispatch retry sweep finished",
			"attempted", result.Attempted, "assigned", result.Assigned, "pending", result.Pending, "failed", result.Failed)
	}
	return result, nil
}
