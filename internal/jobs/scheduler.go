// Package jobs runs the periodic housekeeping of the API process.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"luminous/internal/config"
	"luminous/internal/services"
	"luminous/pkg/utils"
)

const (
	sweepTimeout     = 30 * time.Second
	limiterPruneSpec = "@every 10m"
)

// LimiterPruner drops idle rate limiter buckets.
type LimiterPruner interface {
	Cleanup(now time.Time) int
}

type Scheduler struct {
	cron     *cron.Cron
	clock    utils.Clock
	sessions services.SessionServiceInterface
	limiter  LimiterPruner
	logger   *zap.Logger
}

func NewScheduler(
	cfg *config.Config,
	clock utils.Clock,
	sessions services.SessionServiceInterface,
	limiter LimiterPruner,
	logger *zap.Logger,
) (*Scheduler, error) {
	cl := cronLogger{logger.Sugar()}
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(cfg.Location),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		clock:    clock,
		sessions: sessions,
		limiter:  limiter,
		logger:   logger,
	}

	if _, err := s.cron.AddFunc(cfg.SessionSweepSpec, s.SweepSessions); err != nil {
		return nil, fmt.Errorf("SESSION_SWEEP_SPEC: %w", err)
	}
	if limiter != nil {
		if _, err := s.cron.AddFunc(limiterPruneSpec, s.PruneLimiter); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for running jobs, or until ctx ends.
func (s *Scheduler) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) Jobs() int {
	return len(s.cron.Entries())
}

func (s *Scheduler) SweepSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	n, err := s.sessions.SweepExpired(ctx)
	if err != nil {
		s.logger.Error("session sweep failed", zap.Error(err))
		return
	}
	if n > 0 {
		s.logger.Info("expired sessions removed", zap.Int64("count", n))
	}
}

func (s *Scheduler) PruneLimiter() {
	if n := s.limiter.Cleanup(s.clock.Now()); n > 0 {
		s.logger.Debug("idle rate limiter buckets pruned", zap.Int("count", n))
	}
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	s *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, append(keysAndValues, "error", err)...)
}
