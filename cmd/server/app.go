package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/slidegenie/slidegenie-api/internal/config"
	"github.com/slidegenie/slidegenie-api/internal/generation"
	"github.com/slidegenie/slidegenie-api/internal/platform/gemini"
	"github.com/slidegenie/slidegenie-api/internal/service"
)

// application holds the shared application dependencies so wiring happens in
// one place and shutdown can release them in order.
type application struct {
	config *config.Config
	logger *slog.Logger

	llmClient           generation.LLMClient
	presentationService *service.PresentationService
}

// newApplication wires the full pipeline from configuration: the LLM client
// (real or mock), the four generation stages, and the orchestrator.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	if cfg.LLM.MockMode {
		app.llmClient = gemini.NewMockClient(logger.With("component", "mock_llm_client"))
		logger.Warn("mock mode enabled, generated content is deterministic placeholder text")
	} else {
		client, err := gemini.NewClient(ctx, logger.With("component", "llm_client"), cfg.LLM)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize LLM client: %w", err)
		}
		app.llmClient = client
	}

	improver := generation.NewPromptImprover(app.llmClient, logger)
	planner := generation.NewPlanner(app.llmClient, logger)
	writer := generation.NewSlideWriter(app.llmClient, logger)
	validator := generation.NewValidator(app.llmClient, logger, cfg.LLM.ScoreThreshold)

	app.presentationService = service.NewPresentationService(
		improver,
		planner,
		writer,
		validator,
		logger.With("component", "presentation_service"),
		service.Options{
			SectionRetries:          cfg.LLM.MaxSectionRetries,
			MaxConcurrentExpansions: cfg.LLM.MaxConcurrentExpansions,
			CacheTTL:                time.Duration(cfg.LLM.CacheTTLSeconds) * time.Second,
		},
	)

	logger.Info("application initialized")
	return app, nil
}

// Run starts the HTTP server and blocks until shutdown.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()
	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
