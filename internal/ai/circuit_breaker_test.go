package ai

import (
	"testing"
	"time"

	"google.golang.org/genai"

	"careerkit/internal/config"
)

func enabledBreakerConfig() config.CircuitBreakerConfig {
	return config.CircuitBreakerConfig{
		Enabled:          true,
		MaxRequests:      3,
		Interval:         60 * time.Second,
		Timeout:          60 * time.Second,
		MinRequests:      3,
		FailureThreshold: 0.6,
	}
}

func TestGenerateCircuitBreakerStats(t *testing.T) {
	cb := NewGenerateCircuitBreaker(enabledBreakerConfig(), nil)
	if cb == nil {
		t.Fatal("enabled config returned nil breaker")
	}

	stats := cb.GetStats()

	name, ok := stats["name"].(string)
	if !ok {
		t.Fatal("circuit breaker name not found")
	}
	if name != "AI-Generate" {
		t.Errorf("name = %q, want AI-Generate", name)
	}

	state, ok := stats["state"].(string)
	if !ok {
		t.Fatal("circuit breaker state not found")
	}
	if state != "closed" {
		t.Errorf("initial state = %q, want closed", state)
	}

	enabled, ok := stats["enabled"].(bool)
	if !ok || !enabled {
		t.Error("circuit breaker should report enabled")
	}

	if !cb.IsHealthy() {
		t.Error("fresh circuit breaker should be healthy")
	}
}

func TestModelCircuitBreakerStats(t *testing.T) {
	cb := NewModelCircuitBreaker(enabledBreakerConfig(), nil)
	if cb == nil {
		t.Fatal("enabled config returned nil breaker")
	}

	stats := cb.GetModelStats()
	if name, _ := stats["name"].(string); name != "AI-Model" {
		t.Errorf("name = %q, want AI-Model", name)
	}
	if !cb.IsModelHealthy() {
		t.Error("fresh model circuit breaker should be healthy")
	}
}

func TestDisabledCircuitBreaker(t *testing.T) {
	cfg := config.CircuitBreakerConfig{Enabled: false}

	genCB := NewGenerateCircuitBreaker(cfg, nil)
	if genCB != nil {
		t.Error("disabled config should return nil generate breaker")
	}
	modelCB := NewModelCircuitBreaker(cfg, nil)
	if modelCB != nil {
		t.Error("disabled config should return nil model breaker")
	}

	// Nil breakers execute directly and report healthy
	stats := genCB.GetStats()
	if enabled, _ := stats["enabled"].(bool); enabled {
		t.Error("nil breaker stats should report enabled=false")
	}
	if !genCB.IsHealthy() {
		t.Error("nil generate breaker should report healthy")
	}
	if !modelCB.IsModelHealthy() {
		t.Error("nil model breaker should report healthy")
	}

	executed := false
	_, err := genCB.Execute(func() (*genai.GenerateContentResponse, error) {
		executed = true
		return nil, nil
	})
	if err != nil {
		t.Errorf("nil breaker Execute returned error: %v", err)
	}
	if !executed {
		t.Error("nil breaker did not execute the function")
	}
}
