package jobs_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"luminous/internal/config"
	"luminous/internal/jobs"
	"luminous/internal/services"
	"luminous/pkg/middleware"
	"luminous/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(provideScheduler),
	fx.Invoke(startScheduler))

func provideScheduler(
	cfg *config.Config,
	clock utils.Clock,
	sessions services.SessionServiceInterface,
	limiter *middleware.RateLimiter,
	log *zap.Logger,
) (*jobs.Scheduler, error) {
	return jobs.NewScheduler(cfg, clock, sessions, limiter, log)
}

func startScheduler(lc fx.Lifecycle, s *jobs.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: s.Stop,
	})
}
