package jobs

import (
	"context"
	"fmt"
	"time"

	"shipping/internal/adapters/out/metrics"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const DefaultTickInterval = time.Minute

type statusAdvancer interface {
	Handle(ctx context.Context, cmd commands.AdvanceShipmentStatusesCommand) ([]commands.TransitionOutcome, error)
}

// ShipmentLifecycleJob runs the automatic status transitions on a fixed
// interval. Ticks never overlap: one that is due while the previous is still
// running is skipped.
type ShipmentLifecycleJob struct {
	handler  statusAdvancer
	clock    kernel.Clock
	metrics  *metrics.LifecycleMetrics
	interval time.Duration
	cron     *cron.Cron
	logger   *zap.Logger
}

func NewShipmentLifecycleJob(
	handler statusAdvancer,
	clock kernel.Clock,
	lifecycleMetrics *metrics.LifecycleMetrics,
	interval time.Duration,
	logger *zap.Logger,
) *ShipmentLifecycleJob {
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	logger = logger.With(zap.String("component", "shipment_lifecycle_job"))
	cronLog := newCronLogger(logger)

	return &ShipmentLifecycleJob{
		handler:  handler,
		clock:    clock,
		metrics:  lifecycleMetrics,
		interval: interval,
		cron: cron.New(
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		logger: logger,
	}
}

func (j *ShipmentLifecycleJob) Name() string {
	return "shipment lifecycle job"
}

// Start schedules the tick and starts the scheduler.
func (j *ShipmentLifecycleJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		_, _ = j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("shipment lifecycle job started", zap.Duration("interval", j.interval))
	return nil
}

// Stop stops the scheduler and waits for a running tick to finish.
func (j *ShipmentLifecycleJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("shipment lifecycle job stopped")
}

// RunOnce executes a single tick at the clock's current time. Errors are
// logged and counted before being returned.
func (j *ShipmentLifecycleJob) RunOnce(ctx context.Context) ([]commands.TransitionOutcome, error) {
	startedAt := time.Now()
	defer func() {
		if j.metrics != nil {
			j.metrics.ObserveTickDuration(time.Since(startedAt))
		}
	}()

	now := j.clock.Now()
	cmd, err := commands.NewAdvanceShipmentStatusesCommand(now)
	if err != nil {
		j.fail(err)
		return nil, err
	}

	outcomes, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.fail(err)
		return nil, err
	}

	for _, outcome := range outcomes {
		if j.metrics != nil {
			j.metrics.ObserveTransitions(outcome.Rule.From, outcome.Rule.To, outcome.Affected)
		}
		if outcome.Affected > 0 {
			j.logger.Info("shipments advanced",
				zap.Stringer("from", outcome.Rule.From),
				zap.Stringer("to", outcome.Rule.To),
				zap.Int64("count", outcome.Affected),
				zap.Time("tick", now),
			)
		}
	}

	return outcomes, nil
}

func (j *ShipmentLifecycleJob) fail(err error) {
	if j.metrics != nil {
		j.metrics.ObserveTickFailure()
	}
	j.logger.Error("shipment lifecycle tick failed", zap.Error(err))
}
