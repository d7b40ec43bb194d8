package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"careerkit/internal/schema"
)

func testTool(t *testing.T) *schema.ToolSchema {
	t.Helper()
	tool, ok := schema.Builtin().Get("keyword-finder")
	if !ok {
		t.Fatal("keyword-finder not registered")
	}
	return tool
}

func testValues() map[string]any {
	return map[string]any{"jobDescription": "We need a Go engineer with gRPC experience."}
}

func TestSubmitSuccess(t *testing.T) {
	tool := testTool(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/v1/tools/keyword-finder" {
			t.Errorf("path = %s, want /v1/tools/keyword-finder", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %s, want application/json", ct)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("X-Request-ID header missing")
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		if body["jobDescription"] == "" {
			t.Error("request body missing jobDescription")
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"keywords": {"hardSkills": ["Go", "gRPC"], "softSkills": ["communication"]},
			"model": "gemini-2.0-flash",
			"tokens": {"input": 100, "output": 50, "total": 150}
		}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	outcome := client.Submit(context.Background(), tool, testValues())

	if outcome.Status != StatusOK {
		t.Fatalf("status = %s, want ok (message: %s)", outcome.Status, outcome.Message)
	}

	var result map[string]any
	if err := json.Unmarshal(outcome.Result, &result); err != nil {
		t.Fatalf("result payload not valid JSON: %v", err)
	}
	hardSkills, ok := result["hardSkills"].([]any)
	if !ok || len(hardSkills) != 2 {
		t.Errorf("result payload not passed through: %v", result)
	}
}

func TestSubmitRateLimited(t *testing.T) {
	tool := testTool(t)
	resetAt := time.Now().Add(5 * time.Second).Unix()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Retry-After", "5")
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", resetAt))
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error": "RATE_LIMIT_EXCEEDED", "message": "Too many requests, please retry in 5 seconds", "retryAfter": 5}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	outcome := client.Submit(context.Background(), tool, testValues())

	if outcome.Status != StatusRateLimited {
		t.Fatalf("status = %s, want rate_limited", outcome.Status)
	}
	if outcome.RetryAfterSeconds != 5 {
		t.Errorf("RetryAfterSeconds = %d, want 5", outcome.RetryAfterSeconds)
	}
	if outcome.ResetAt.Unix() != resetAt {
		t.Errorf("ResetAt = %v, want unix %d", outcome.ResetAt, resetAt)
	}
	if outcome.Message == "" {
		t.Error("rate-limited outcome has no message")
	}
}

func TestSubmitRateLimitedByCodeOnly(t *testing.T) {
	tool := testTool(t)

	// Some proxies rewrite the status; the machine-readable code still wins
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, `{"error": "RATE_LIMIT_EXCEEDED", "message": "slow down", "retryAfter": 10}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	outcome := client.Submit(context.Background(), tool, testValues())

	if outcome.Status != StatusRateLimited {
		t.Fatalf("status = %s, want rate_limited", outcome.Status)
	}
	if outcome.RetryAfterSeconds != 10 {
		t.Errorf("RetryAfterSeconds = %d, want 10", outcome.RetryAfterSeconds)
	}
}

func TestSubmitRateLimitedByMessageFallback(t *testing.T) {
	tool := testTool(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, `{"error": "UPSTREAM_ERROR", "message": "Rate limit reached for upstream model"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	outcome := client.Submit(context.Background(), tool, testValues())

	if outcome.Status != StatusRateLimited {
		t.Fatalf("status = %s, want rate_limited via message fallback", outcome.Status)
	}
}

func TestSubmitFailureClassification(t *testing.T) {
	tool := testTool(t)

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				fmt.Fprint(w, `{"error": "AI_SERVICE_FAILED", "message": "Analysis failed, please try again later"}`)
			},
		},
		{
			name: "malformed success envelope",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{not json`)
			},
		},
		{
			name: "success envelope missing result key",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"somethingElse": {}}`)
			},
		},
		{
			name: "empty error body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(server.URL)
			outcome := client.Submit(context.Background(), tool, testValues())

			if outcome.Status != StatusFailed {
				t.Errorf("status = %s, want failed", outcome.Status)
			}
			if outcome.Message == "" {
				t.Error("failed outcome has no message")
			}
		})
	}
}

func TestSubmitTransportFailure(t *testing.T) {
	tool := testTool(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := NewClient(server.URL)
	outcome := client.Submit(context.Background(), tool, testValues())

	if outcome.Status != StatusFailed {
		t.Fatalf("status = %s, want failed", outcome.Status)
	}
	if outcome.Message == "" {
		t.Error("transport failure outcome has no message")
	}
}

func TestSubmitAtMostOneInFlight(t *testing.T) {
	tool := testTool(t)

	var calls atomic.Int32
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		<-release
		fmt.Fprint(w, `{"keywords": {}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		outcome := client.Submit(context.Background(), tool, testValues())
		if outcome.Status != StatusOK {
			t.Errorf("first submit: status = %s, want ok", outcome.Status)
		}
	}()

	// Wait for the first submission to hit the server, then try a second
	deadline := time.After(2 * time.Second)
	for calls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("first submission never reached the server")
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}

	second := client.Submit(context.Background(), tool, testValues())
	if second.Status != StatusBusy {
		t.Errorf("second submit: status = %s, want busy", second.Status)
	}

	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("server saw %d calls, want 1", got)
	}

	// After the first completes, the client accepts submissions again
	third := client.Submit(context.Background(), tool, testValues())
	if third.Status != StatusOK {
		t.Errorf("third submit: status = %s, want ok", third.Status)
	}
}

func TestSubmitSendsAPIKey(t *testing.T) {
	tool := testTool(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-API-Key"); got != "test-key" {
			t.Errorf("X-API-Key = %q, want test-key", got)
		}
		fmt.Fprint(w, `{"keywords": {}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, WithAPIKey("test-key"))
	outcome := client.Submit(context.Background(), tool, testValues())
	if outcome.Status != StatusOK {
		t.Fatalf("status = %s, want ok", outcome.Status)
	}
}

func TestSubmitDoesNotMutateValues(t *testing.T) {
	tool := testTool(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"keywords": {}}`)
	}))
	defer server.Close()

	values := testValues()
	original := testValues()

	client := NewClient(server.URL)
	client.Submit(context.Background(), tool, values)

	if len(values) != len(original) || values["jobDescription"] != original["jobDescription"] {
		t.Errorf("Submit mutated values: %v", values)
	}
}
