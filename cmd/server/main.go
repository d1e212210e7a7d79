// Package main implements the entry point for the SlideGenie API server,
// which turns free-form topic text into structured presentation decks
// through a multi-stage LLM pipeline.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/slidegenie/slidegenie-api/internal/config"
	"github.com/slidegenie/slidegenie-api/internal/platform/logger"
)

func main() {
	ctx := context.Background()

	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName,
		"mock_mode", cfg.LLM.MockMode)

	return cfg, appLogger, nil
}
