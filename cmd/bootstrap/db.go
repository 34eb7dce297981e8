package bootstrap

import (
	"context"
	"log/slog"

	"property-rental/internal/infra/db"
	"property-rental/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.DB.MigrationsDir == "" {
				return nil
			}
			applied, err := db.Migrate(ctx, pool, cfg.DB.MigrationsDir)
			if err != nil {
				return err
			}
			logger.Info("migrations applied at startup", "dir", cfg.DB.MigrationsDir, "applied", applied)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return pool, nil
}
