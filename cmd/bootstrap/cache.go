package bootstrap

import (
	"context"
	"log/slog"

	"property-rental/internal/infra/cache"
	"property-rental/internal/pkg/config"
	"property-rental/internal/usecase/commands"
	"property-rental/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewFinancialCache,
	),
)

type FinancialCache interface {
	queries.FinancialCache
	commands.CacheInvalidator
}

type CacheResult struct {
	fx.Out

	Reader      queries.FinancialCache
	Invalidator commands.CacheInvalidator
}

// NewFinancialCache returns a no-op cache when REDIS_ADDR is empty.
func NewFinancialCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) CacheResult {
	var c FinancialCache = cache.NopFinancialCache{}

	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				// an unreachable redis only costs cache misses
				if err := client.Ping(ctx).Err(); err != nil {
					logger.Warn("redis unreachable, financial statements will be recomputed", "addr", cfg.Redis.Addr, "error", err)
				}
				return nil
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		c = cache.NewFinancialCache(client, cfg.Redis.TTL)
	} else {
		logger.Info("financial cache disabled")
	}

	return CacheResult{Reader: c, Invalidator: c}
}
