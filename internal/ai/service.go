package ai

import (
	"context"
	"fmt"

	"careerkit/internal/config"
	"careerkit/internal/errors"
	"careerkit/internal/schema"
)

// Service handles AI operations for assessment tools
type Service struct {
	Provider Provider // Exported for access from server package
	Prompts  *PromptStore
	cfg      *config.Config
	logger   *errors.Logger
}

// NewService creates a new AI service instance
func NewService(cfg *config.Config, logger *errors.Logger) (*Service, error) {
	logger.Debug("Initializing AI service",
		"provider", cfg.AI.Provider,
		"model", cfg.AI.Model,
		"temperature", cfg.AI.Temperature,
		"timeout", cfg.AI.Timeout,
		"max_retries", cfg.AI.MaxRetries,
		"prompts_dir", cfg.AI.PromptsDir)

	prompts, err := NewPromptStore(cfg.AI.PromptsDir, logger)
	if err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			"Failed to load prompt overrides", err)
	}

	var provider Provider
	switch cfg.AI.Provider {
	case "gemini":
		provider, err = NewGeminiProvider(cfg, prompts, logger)
	default:
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("Unsupported AI provider: %s", cfg.AI.Provider), nil)
	}

	if err != nil {
		return nil, errors.NewAIError(errors.ErrCodeAIServiceFailed,
			"Failed to create AI provider", err)
	}

	return &Service{
		Provider: provider,
		Prompts:  prompts,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

// WatchPrompts starts the prompt file watcher when a prompts directory is
// configured. Blocks until the context is cancelled.
func (s *Service) WatchPrompts(ctx context.Context) error {
	return s.Prompts.Watch(ctx)
}

// GetModelInfo returns information about the AI model for health checks
func (s *Service) GetModelInfo(ctx context.Context, tool *schema.ToolSchema) *ModelInfo {
	return s.Provider.GetModelInfo(ctx, tool)
}

// Close releases provider resources
func (s *Service) Close() error {
	return s.Provider.Close()
}
