package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"property-rental/internal/handler/middleware"
	"property-rental/internal/infra/db"
	"property-rental/internal/pkg/config"
)

func main() {
	dir := flag.String("dir", "migrations", "directory holding the *.sql migrations")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(middleware.NewLogger(cfg.Log).GetSlogLogger())

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		slog.Error("failed to connect", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	applied, err := db.Migrate(ctx, pool, *dir)
	if err != nil {
		slog.Error("migration failed", "error", err)
		cleanup()
		os.Exit(1)
	}
	slog.Info("migrations complete", "applied", len(applied))
}
