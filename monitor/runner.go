package monitor

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Runner executes the full monitoring rule set for one target day. Rule
// groups run sequentially and read disjoint alert labels, so their order
// carries no correctness weight; each group scans the whole patient set
// before the next one starts. A data access error aborts the run, leaving
// the alerts already created in place.
type Runner struct {
	glycemic  *GlycemicMonitor
	adherence *AdherenceMonitor
	logger    *zap.SugaredLogger
}

func NewRunner(glycemic *GlycemicMonitor, adherence *AdherenceMonitor, logger *zap.SugaredLogger) (*Runner, error) {
	return &Runner{
		glycemic:  glycemic,
		adherence: adherence,
		logger:    logger,
	}, nil
}

func (r *Runner) Run(ctx context.Context, day time.Time) error {
	runId := uuid.NewString()
	logger := r.logger.With("runId", runId, "day", day.Format(dayFormat))
	logger.Infow("starting monitoring run")

	if err := r.glycemic.CheckDaily(ctx, day); err != nil {
		logger.Errorw("daily glycemic check failed", "error", err)
		return err
	}
	logger.Infow("daily glycemic check completed")

	if err := r.glycemic.CheckRepeatedShortfall(ctx, day); err != nil {
		logger.Errorw("repeated shortfall check failed", "error", err)
		return err
	}
	logger.Infow("repeated shortfall check completed")

	if err := r.adherence.Check(ctx, day); err != nil {
		logger.Errorw("adherence check failed", "error", err)
		return err
	}
	logger.Infow("adherence check completed")

	logger.Infow("monitoring run completed")
	return nil
}
