package ai

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"testing"

	"google.golang.org/api/googleapi"

	"careerkit/internal/config"
	"careerkit/internal/errors"
)

type fakeNetError struct{}

func (e *fakeNetError) Error() string   { return "dial tcp: i/o timeout" }
func (e *fakeNetError) Timeout() bool   { return true }
func (e *fakeNetError) Temporary() bool { return true }

var _ net.Error = (*fakeNetError)(nil)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil error", err: nil, want: false},
		{name: "network error", err: &fakeNetError{}, want: true},
		{name: "wrapped network error", err: fmt.Errorf("call failed: %w", &fakeNetError{}), want: true},
		{name: "rate limited", err: &googleapi.Error{Code: http.StatusTooManyRequests}, want: true},
		{name: "internal server error", err: &googleapi.Error{Code: http.StatusInternalServerError}, want: true},
		{name: "bad gateway", err: &googleapi.Error{Code: http.StatusBadGateway}, want: true},
		{name: "service unavailable", err: &googleapi.Error{Code: http.StatusServiceUnavailable}, want: true},
		{name: "gateway timeout", err: &googleapi.Error{Code: http.StatusGatewayTimeout}, want: true},
		{name: "bad request is permanent", err: &googleapi.Error{Code: http.StatusBadRequest}, want: false},
		{name: "unauthorized is permanent", err: &googleapi.Error{Code: http.StatusUnauthorized}, want: false},
		{name: "plain error is permanent", err: fmt.Errorf("schema mismatch"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRetryableError(tt.err); got != tt.want {
				t.Errorf("isRetryableError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestExtractTokenUsage(t *testing.T) {
	if got := extractTokenUsage(nil); got != nil {
		t.Errorf("extractTokenUsage(nil) = %+v, want nil", got)
	}
}

func TestNewServiceRejectsUnknownProvider(t *testing.T) {
	cfg := &config.Config{}
	cfg.AI.Provider = "openai"
	cfg.App.LogLevel = "error"

	logger := errors.NewLogger(slog.LevelError)
	if _, err := NewService(cfg, logger); err == nil {
		t.Error("expected error for unsupported provider")
	}
}
