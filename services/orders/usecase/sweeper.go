package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/gebeta-delivery/gebeta/internal/pkg/apperrors"
	"github.com/gebeta-delivery/gebeta/internal/pkg/logger"
)

const defaultSweepInterval = 30 * time.Second

// RunSweeper retries assignment for unassigned orders on a fixed interval
// until ctx is cancelled. Orders that failed their initial assignment attempt
// stay in the queue and are picked up here once drivers free up.
func (uc *OrderUC) RunSweeper(ctx context.Context) {
	interval := time.Duration(uc.cfg.Assignment.SweepIntervalSecs) * time.Second
	if interval <= 0 {
		// time.NewTicker panics on non-positive intervals
		interval = defaultSweepInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("Assignment sweeper started",
		logger.Duration("interval", interval),
		logger.Int("batch_size", uc.cfg.Assignment.SweepBatchSize))

	for {
		select {
		case <-ctx.Done():
			logger.Info("Assignment sweeper stopped")
			return
		case <-ticker.C:
			uc.sweepOnce(ctx)
		}
	}
}

func (uc *OrderUC) sweepOnce(ctx context.Context) {
	unassigned, err := uc.orderRepo.ListUnassigned(ctx, uc.cfg.Assignment.SweepBatchSize)
	if err != nil {
		logger.Error("Sweep failed to list unassigned orders", logger.Err(err))
		return
	}

	for _, order := range unassigned {
		if _, err := uc.TryAssign(ctx, order.ID); err != nil {
			// No eligible driver yet is the expected steady state here; an
			// order assigned or moved on since listing is not a failure either
			if errors.Is(err, apperrors.ErrNoEligibleDriver) ||
				errors.Is(err, apperrors.ErrOrderAlreadyAssigned) ||
				errors.Is(err, apperrors.ErrOrderNotAssignable) {
				continue
			}
			logger.Warn("Sweep assignment attempt failed",
				logger.String("order_id", order.ID.String()),
				logger.Err(err))
		}
	}
}
