package wellness_fx

import (
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"luminous/internal/config"
	"luminous/internal/services"
	mem "luminous/pkg/memcache"
	"luminous/pkg/metrics"
	"luminous/pkg/middleware"
	"luminous/pkg/utils"
)

var Module = fx.Provide(
	provideHTTPClient, provideProviders, provideWellnessService, provideRateLimiter)

func provideHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.UpstreamTimeout}
}

func provideProviders(cfg *config.Config, client *http.Client) services.WellnessProviders {
	return services.WellnessProviders{
		Daily:       utils.NewQuotableClient(client, cfg.QuotableURL),
		Mindfulness: utils.NewZenQuotesClient(client, cfg.ZenQuotesURL),
	}
}

func provideWellnessService(
	cfg *config.Config,
	clock utils.Clock,
	providers services.WellnessProviders,
	pins mem.ContentStore,
	m *metrics.Metrics,
	log *zap.Logger,
) services.WellnessServiceInterface {
	return services.NewWellnessService(cfg, clock, providers, pins, m, log)
}

func provideRateLimiter(cfg *config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.WellnessRateRPS, cfg.WellnessRateBurst)
}
