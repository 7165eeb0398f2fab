package db_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"luminous/internal/config"
	"luminous/internal/infra"
	"luminous/pkg/utils"
)

var Module = fx.Provide(
	provideDB)

func provideDB(lc fx.Lifecycle, cfg *config.Config, clock utils.Clock, log *zap.Logger) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg, clock, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(func() {
		infra.ClosePostgresql(db, log)
	}))
	return db, nil
}
