package server

import (
	"context"
	"encoding/json"
	"net/http"

	"go.opentelemetry.io/otel/attribute"

	"careerkit/internal/errors"
	"careerkit/internal/observability"
)

// createToolHandler builds the shared submission handler for every
// registered tool. The tool is selected by the slug path segment; its
// schema drives validation, the AI call, and the response envelope.
func (s *Server) createToolHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("careerkit.api")
		ctx, span := tracer.Start(ctx, "api.tool_submit")
		defer span.End()

		slug := r.PathValue("slug")
		span.SetAttributes(attribute.String("tool.slug", slug))

		tool, ok := s.Registry.Get(slug)
		if !ok {
			span.SetAttributes(attribute.String("error.type", "unknown_tool"))
			writeErrorResponse(w, errors.ErrCodeUnknownTool, "No tool registered for slug '"+slug+"'", http.StatusNotFound)
			return
		}

		// Parse request
		var values map[string]any
		if err := parseJSONRequest(r, &values); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "bad_request"))
			writeErrorResponse(w, errors.ErrCodeInvalidRequest, err.Error(), http.StatusBadRequest)
			return
		}

		// Validate every submitted field against the tool schema
		metrics := om.GetMetrics()
		if err := tool.ValidateAll(values); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			metrics.RecordBusinessMetric(ctx, "validation_failed", false,
				attribute.String("tool", slug))
			writeErrorResponse(w, errors.ErrCodeValidationFailed, err.Error(), http.StatusBadRequest)
			return
		}

		// Track AI operation with observability and token usage
		var result map[string]any
		var tokens *observability.TokenUsage
		err := metrics.TrackAIOperationWithTokens(ctx, slug, func(ctx context.Context) *observability.AIOperationResult {
			output, tokenUsage, aiErr := s.AIService.Provider.Generate(ctx, tool, values)
			result = output
			tokens = (*observability.TokenUsage)(tokenUsage)
			return &observability.AIOperationResult{
				Error:      aiErr,
				TokenUsage: tokens,
			}
		}, om)

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "ai_processing"))
			metrics.RecordBusinessMetric(ctx, "tool_run", false,
				attribute.String("tool", slug))
			writeErrorResponse(w, errors.ErrCodeAIServiceFailed, "Analysis failed, please try again later", http.StatusInternalServerError)
			return
		}

		// Record success metrics
		metrics.RecordBusinessMetric(ctx, "tool_run", true,
			attribute.String("tool", slug))
		span.SetAttributes(attribute.Bool("success", true))

		// Response envelope: result under the tool's result key, plus
		// model and token accounting.
		response := map[string]any{
			tool.ResultKey: result,
			"model":        s.AppConfig.ToolAI(slug).Model,
		}
		if tokens != nil {
			response["tokens"] = map[string]int64{
				"input":  tokens.InputTokens,
				"output": tokens.OutputTokens,
				"total":  tokens.TotalTokens,
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		limited := originalMiddleware(next)
		return func(w http.ResponseWriter, r *http.Request) {
			// Wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			limited(wrapper, r)

			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		}
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
