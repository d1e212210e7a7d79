package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/slidegenie/slidegenie-api/internal/config"
	"github.com/slidegenie/slidegenie-api/internal/generation"
)

// Client implements generation.LLMClient using the Google Gemini API.
// The client handle is stateless after construction and safe for use by
// concurrent goroutines.
type Client struct {
	logger  *slog.Logger
	client  *genai.Client
	model   string
	limiter *rate.Limiter
}

// NewClient creates a Gemini-backed LLM client from the given configuration.
//
// Returns an error if the configuration is invalid or the underlying client
// cannot be constructed.
func NewClient(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidCredentials)
	}
	if cfg.ModelName == "" {
		return nil, errors.New("model name cannot be empty")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Outbound throttling smooths the bursts produced by concurrent
	// section expansions across requests.
	var limiter *rate.Limiter
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60.0), cfg.RequestsPerMinute/10+1)
	}

	return &Client{
		logger:  logger,
		client:  client,
		model:   cfg.ModelName,
		limiter: limiter,
	}, nil
}

// Complete issues one chat completion to the Gemini API and returns the raw
// reply text. Upstream failures are classified into the generation
// package's error taxonomy so callers can map them to user-visible codes.
func (c *Client) Complete(ctx context.Context, req generation.Request) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
		}
	}

	genCfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if req.System != "" {
		genCfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}
	if req.JSONResponse {
		genCfg.ResponseMIMEType = "application/json"
	}

	c.logger.DebugContext(ctx, "calling Gemini API",
		"model", c.model,
		"prompt_length", len(req.Prompt),
		"temperature", req.Temperature)

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(req.Prompt), genCfg)
	if err != nil {
		classified := classifyAPIError(err)
		c.logger.ErrorContext(ctx, "Gemini API call failed", "error", err)
		return "", classified
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty reply from model", generation.ErrInvalidResponse)
	}

	return text, nil
}
