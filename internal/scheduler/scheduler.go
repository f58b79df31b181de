package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type poolSyncer interface {
	LoadPools(ctx context.Context) (int, error)
	FinalizeDue(ctx context.Context) (int, error)
}

// Scheduler periodically mirrors pools from chain and, when enabled,
// finalizes lucky-draw pools that are due.
type Scheduler struct {
	pools        poolSyncer
	interval     time.Duration
	autoFinalize bool
	logger       logger.Logger
}

func New(
	pools poolSyncer,
	interval time.Duration,
	autoFinalize bool,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		pools:        pools,
		interval:     interval,
		autoFinalize: autoFinalize,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	loaded, err := s.pools.LoadPools(ctx)
	if err != nil {
		s.logger.Error("failed to load pools",
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.Debug("pools synced",
		logger.Int("count", loaded),
	)

	if !s.autoFinalize {
		return
	}

	finalized, err := s.pools.FinalizeDue(ctx)
	if err != nil {
		s.logger.Error("failed to finalize pools",
			logger.String("error", err.Error()),
		)
		return
	}

	if finalized > 0 {
		s.logger.Info("pools finalized",
			logger.Int("count", finalized),
		)
	}
}
