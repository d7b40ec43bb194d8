// Package gateway performs tool submissions against a careerkit server and
// classifies every exchange into exactly one Outcome. Callers never see a
// raw transport error: network failures, malformed bodies, and non-success
// envelopes all degrade to classified outcomes with displayable messages.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"careerkit/internal/errors"
	"careerkit/internal/schema"
)

// Status classifies the outcome of one submission.
type Status int

const (
	StatusOK Status = iota
	StatusRateLimited
	StatusFailed
	// StatusBusy means a prior submission from this client instance is
	// still outstanding; no network call was made.
	StatusBusy
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusRateLimited:
		return "rate_limited"
	case StatusFailed:
		return "failed"
	case StatusBusy:
		return "busy"
	default:
		return "unknown"
	}
}

// Outcome is the single classified result of a submission. Result is only
// set for StatusOK and holds the result-key payload byte-for-byte as the
// server sent it. RetryAfterSeconds and ResetAt are only meaningful for
// StatusRateLimited.
type Outcome struct {
	Status            Status
	Result            json.RawMessage
	Message           string
	RetryAfterSeconds int
	ResetAt           time.Time
}

// Fallback messages shown when the server provides none. Raw transport
// internals are never surfaced to users.
const (
	genericFailureMessage   = "Something went wrong while generating your results. Please try again."
	genericRateLimitMessage = "You're sending requests too quickly. Please wait a moment and try again."
	busyMessage             = "A submission is already in progress."
)

// errorEnvelope is the server's error response shape.
type errorEnvelope struct {
	Error      string `json:"error"`
	Message    string `json:"message,omitempty"`
	RetryAfter int    `json:"retryAfter,omitempty"`
}

// Client submits tool inputs to a careerkit server. A Client corresponds to
// one tool instance: it enforces at-most-one in-flight submission for
// itself and is independent of every other Client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *errors.Logger
	inFlight   atomic.Bool
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithAPIKey sets the API key sent with every submission.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithLogger sets a structured logger for submission diagnostics.
func WithLogger(logger *errors.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a gateway client for the given server base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit performs exactly one network exchange for the given tool and input
// values and classifies its outcome. It never retries, never caches, and
// never mutates the values map. A call made while a prior submission from
// this client is outstanding returns StatusBusy without touching the
// network.
func (c *Client) Submit(ctx context.Context, tool *schema.ToolSchema, values map[string]any) Outcome {
	if !c.inFlight.CompareAndSwap(false, true) {
		return Outcome{Status: StatusBusy, Message: busyMessage}
	}
	defer c.inFlight.Store(false)

	body, err := json.Marshal(values)
	if err != nil {
		return Outcome{Status: StatusFailed, Message: genericFailureMessage}
	}

	url := c.baseURL + "/v1/tools/" + tool.Slug
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Outcome{Status: StatusFailed, Message: genericFailureMessage}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logWarn("Submission transport failure", "tool", tool.Slug, "error", err.Error())
		return Outcome{Status: StatusFailed, Message: genericFailureMessage}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logWarn("Failed to read response body", "tool", tool.Slug, "error", err.Error())
		return Outcome{Status: StatusFailed, Message: genericFailureMessage}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return c.classifySuccess(tool, payload)
	}
	return c.classifyError(tool, resp, payload)
}

// classifySuccess extracts the tool's result-key payload from a 2xx body.
// The payload is passed through unmodified; tool-specific shapes are not
// interpreted here.
func (c *Client) classifySuccess(tool *schema.ToolSchema, payload []byte) Outcome {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(payload, &envelope); err != nil {
		c.logWarn("Malformed success envelope", "tool", tool.Slug, "error", err.Error())
		return Outcome{Status: StatusFailed, Message: genericFailureMessage}
	}

	result, ok := envelope[tool.ResultKey]
	if !ok {
		c.logWarn("Success envelope missing result key",
			"tool", tool.Slug, "result_key", tool.ResultKey)
		return Outcome{Status: StatusFailed, Message: genericFailureMessage}
	}
	return Outcome{Status: StatusOK, Result: result}
}

// classifyError maps a non-2xx response to RateLimited or Failed. Rate
// limiting is recognized by status 429 or the machine-readable error code;
// sniffing human-readable text is a degraded fallback only.
func (c *Client) classifyError(tool *schema.ToolSchema, resp *http.Response, payload []byte) Outcome {
	var envelope errorEnvelope
	parsed := json.Unmarshal(payload, &envelope) == nil

	rateLimited := resp.StatusCode == http.StatusTooManyRequests ||
		(parsed && envelope.Error == errors.ErrCodeRateLimitExceeded)
	if !rateLimited && parsed {
		// Degraded fallback for servers without machine-readable codes.
		rateLimited = strings.Contains(strings.ToLower(envelope.Message), "rate limit")
	}

	if rateLimited {
		outcome := Outcome{
			Status:  StatusRateLimited,
			Message: genericRateLimitMessage,
		}
		if parsed && envelope.Message != "" {
			outcome.Message = envelope.Message
		}
		if parsed && envelope.RetryAfter > 0 {
			outcome.RetryAfterSeconds = envelope.RetryAfter
		}
		if reset := resp.Header.Get("X-RateLimit-Reset"); reset != "" {
			if unix, err := strconv.ParseInt(reset, 10, 64); err == nil {
				outcome.ResetAt = time.Unix(unix, 0)
			}
		}
		c.logWarn("Submission rate limited",
			"tool", tool.Slug, "retry_after", outcome.RetryAfterSeconds)
		return outcome
	}

	message := genericFailureMessage
	if parsed && envelope.Message != "" {
		message = envelope.Message
	}
	c.logWarn("Submission failed",
		"tool", tool.Slug, "status_code", resp.StatusCode)
	return Outcome{Status: StatusFailed, Message: message}
}

func (c *Client) logWarn(message string, args ...any) {
	if c.logger != nil {
		c.logger.Warn(message, args...)
	}
}
