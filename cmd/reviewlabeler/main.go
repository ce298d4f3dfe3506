package main

import (
	"context"
	"os"

	"ReviewLabeler/internal/app"
	"ReviewLabeler/internal/config"
	"ReviewLabeler/internal/logging"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	application := app.New(cfg, logger)

	if err := application.Run(ctx); err != nil {
		logger.Error("pipeline stopped", "error", err)
		os.Exit(1)
	}
}
