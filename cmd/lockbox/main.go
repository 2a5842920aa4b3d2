package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/mkoval-dev/lockbox/internal/cli"
	"github.com/mkoval-dev/lockbox/internal/config"
	"github.com/mkoval-dev/lockbox/internal/logging"
	"github.com/mkoval-dev/lockbox/internal/repositories/repomanager"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	store, err := repomanager.Open(ctx, cfg.StoreDriver, cfg.StoreDSN)
	if err != nil {
		log.Fatalf("error opening store: %v", err)
	}
	defer store.Close()

	app := cli.NewApp(cfg, store, logger)
	if err := app.Run(ctx); err != nil {
		os.Exit(1)
	}
}
