package bootstrap

import (
	"context"
	"log/slog"

	"rentalhub/internal/infra/cache"
	"rentalhub/internal/pkg/config"
	"rentalhub/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewAvailabilityCache,
	),
)

// NewAvailabilityCache returns a no-op cache when REDIS_ADDR is unset.
func NewAvailabilityCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.AvailabilityCache {
	if !cfg.Redis.Enabled() {
		logger.Info("availability cache disabled")
		return cache.NewNoop()
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// an unreachable cache is not fatal; reads fall through to the database
			if err := rdb.Ping(ctx).Err(); err != nil {
				logger.Warn("redis ping failed", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	return cache.NewRedisAvailabilityCache(rdb, cfg.Availability.CacheTTL)
}
