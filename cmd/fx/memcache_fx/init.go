package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"luminous/internal/config"
	"luminous/internal/infra"
	mem "luminous/pkg/memcache"
	"luminous/pkg/utils"
)

var Module = fx.Provide(provideContentStore)

// provideContentStore uses redis when REDIS_URL is set so every replica
// serves the same pinned content; otherwise pins live in process memory.
func provideContentStore(lc fx.Lifecycle, cfg *config.Config, clock utils.Clock, log *zap.Logger) (mem.ContentStore, error) {
	if cfg.RedisURL == "" {
		log.Info("content store: in memory")
		return mem.NewMemoryStore(clock), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := infra.InitRedis(ctx, cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(client.Close))

	log.Info("content store: redis")
	return mem.NewRedisStore(client, "luminous:"), nil
}
