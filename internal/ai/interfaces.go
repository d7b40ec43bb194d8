package ai

import (
	"context"

	"careerkit/internal/schema"
)

// Provider interface for different AI implementations.
// Generate returns the tool's result object along with token usage
// information - callers can ignore the usage if not needed.
type Provider interface {
	Generate(ctx context.Context, tool *schema.ToolSchema, values map[string]any) (map[string]any, *TokenUsage, error)
	GetModelInfo(ctx context.Context, tool *schema.ToolSchema) *ModelInfo
	GetCircuitBreakerStats() map[string]any
	Close() error
}
