package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/urfave/cli/v2"

	"github.com/dingla0/TranslationTracker/internal/adapter/postgres"
	"github.com/dingla0/TranslationTracker/internal/app"
	"github.com/dingla0/TranslationTracker/internal/config"
)

// env is what a database-backed command runs against.
type env struct {
	cfg      *config.Config
	log      *slog.Logger
	pool     *pgxpool.Pool
	services *app.Services
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		return config.LoadFile(path, true)
	}
	return config.Load()
}

// withDB loads configuration, connects to PostgreSQL and runs fn.
func withDB(c *cli.Context, fn func(ctx context.Context, e *env) error) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	ctx := c.Context
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	return fn(ctx, &env{
		cfg:      cfg,
		log:      logger,
		pool:     pool,
		services: app.NewServices(pool, cfg, logger),
	})
}
