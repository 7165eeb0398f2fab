package config_fx

import (
	"go.uber.org/fx"
	"luminous/internal/config"
	"luminous/internal/infra"
	"luminous/pkg/metrics"
	"luminous/pkg/utils"
)

var Module = fx.Provide(
	config.Load, provideClock, infra.NewLogger, metrics.New)

func provideClock(cfg *config.Config) utils.Clock {
	return utils.NewSystemClock(cfg.Location)
}
