// Command migrate applies pending database migrations and exits. Use it when
// DATABASE_AUTO_MIGRATE is disabled for the server.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/leafcare-backend/internal/adapter/postgres"
	"github.com/heartmarshall/leafcare-backend/internal/app"
	"github.com/heartmarshall/leafcare-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, logger); err != nil {
		logger.Error("migrate", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	logger.Info("migrations applied")
}
