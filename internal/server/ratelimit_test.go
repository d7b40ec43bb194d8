package server

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"careerkit/internal/config"
	careerkitErrors "careerkit/internal/errors"
)

func TestLimiterManagerAllow(t *testing.T) {
	m := NewRateLimiter(60, 3, careerkitErrors.NewLogger(slog.LevelError))
	defer m.Close()

	// Burst capacity admits the first requests immediately
	for i := range 3 {
		if !m.Allow("ip:10.0.0.1") {
			t.Fatalf("request %d denied within burst capacity", i+1)
		}
	}
	if m.Allow("ip:10.0.0.1") {
		t.Error("request allowed after burst exhausted")
	}

	// Keys are independent buckets
	if !m.Allow("ip:10.0.0.2") {
		t.Error("fresh key denied")
	}
}

func TestLimiterManagerGetStats(t *testing.T) {
	m := NewRateLimiter(30, 5, careerkitErrors.NewLogger(slog.LevelError))
	defer m.Close()

	m.Allow("ip:10.0.0.1")
	m.Allow("api:some-key")

	stats := m.GetStats()
	if stats["active_limiters"] != 2 {
		t.Errorf("active_limiters = %v, want 2", stats["active_limiters"])
	}
	if stats["rate_per_minute"] != 30.0 {
		t.Errorf("rate_per_minute = %v, want 30", stats["rate_per_minute"])
	}
	if stats["burst_capacity"] != 5 {
		t.Errorf("burst_capacity = %v, want 5", stats["burst_capacity"])
	}
}

func TestLimiterManagerCleanup(t *testing.T) {
	m := NewRateLimiter(60, 1, careerkitErrors.NewLogger(slog.LevelError))
	defer m.Close()

	m.Allow("ip:10.0.0.1")
	m.cleanup(0)

	if stats := m.GetStats(); stats["active_limiters"] != 0 {
		t.Errorf("active_limiters after eviction = %v, want 0", stats["active_limiters"])
	}
}

func TestRateLimitMiddlewareResponse(t *testing.T) {
	cfg := testServerConfig()
	cfg.Server.RateLimit = config.RateLimitConfig{
		Enabled:        true,
		RequestsPerMin: 60,
		BurstCapacity:  1,
		ByIP:           true,
		RetryAfter:     7,
	}
	provider := &stubProvider{result: map[string]any{}}
	_, mux := newTestServer(t, cfg, provider)

	before := time.Now()

	// Burst of 1: first request passes, second is throttled
	first := postTool(mux, "keyword-finder", `{"jobDescription": "x"}`)
	if first.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200\n%s", first.Code, first.Body.String())
	}

	second := postTool(mux, "keyword-finder", `{"jobDescription": "x"}`)
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", second.Code)
	}

	envelope := decodeError(t, second)
	if envelope.Error != careerkitErrors.ErrCodeRateLimitExceeded {
		t.Errorf("error code = %q, want RATE_LIMIT_EXCEEDED", envelope.Error)
	}
	if envelope.Message != "Too many requests, please retry in 7 seconds" {
		t.Errorf("message = %q", envelope.Message)
	}
	if envelope.RetryAfter != 7 {
		t.Errorf("retryAfter = %d, want 7", envelope.RetryAfter)
	}

	if got := second.Header().Get("Retry-After"); got != "7" {
		t.Errorf("Retry-After header = %q, want 7", got)
	}
	reset, err := strconv.ParseInt(second.Header().Get("X-RateLimit-Reset"), 10, 64)
	if err != nil {
		t.Fatalf("X-RateLimit-Reset header is not a unix timestamp: %v", err)
	}
	resetAt := time.Unix(reset, 0)
	if resetAt.Before(before.Add(6*time.Second)) || resetAt.After(before.Add(9*time.Second)) {
		t.Errorf("X-RateLimit-Reset = %v, want ~7s after %v", resetAt, before)
	}

	// Only the admitted request reached the provider
	if provider.calls != 1 {
		t.Errorf("provider called %d times, want 1", provider.calls)
	}
}

func TestRateLimitKeysAreIndependent(t *testing.T) {
	cfg := testServerConfig()
	cfg.Server.RateLimit = config.RateLimitConfig{
		Enabled:        true,
		RequestsPerMin: 60,
		BurstCapacity:  1,
		ByAPIKey:       true,
		ByIP:           true,
		RetryAfter:     5,
	}
	_, mux := newTestServer(t, cfg, &stubProvider{result: map[string]any{}})

	asKey := func(key string) func(*http.Request) {
		return func(r *http.Request) { r.Header.Set("X-API-Key", key) }
	}

	if rec := postTool(mux, "keyword-finder", `{"jobDescription": "x"}`, asKey("key-a")); rec.Code != http.StatusOK {
		t.Fatalf("key-a first request status = %d", rec.Code)
	}
	if rec := postTool(mux, "keyword-finder", `{"jobDescription": "x"}`, asKey("key-a")); rec.Code != http.StatusTooManyRequests {
		t.Errorf("key-a second request status = %d, want 429", rec.Code)
	}
	// A different API key holds its own budget
	if rec := postTool(mux, "keyword-finder", `{"jobDescription": "x"}`, asKey("key-b")); rec.Code != http.StatusOK {
		t.Errorf("key-b first request status = %d, want 200", rec.Code)
	}
}

func TestGetRateLimitKey(t *testing.T) {
	newReq := func(mutate ...func(*http.Request)) *http.Request {
		r := httptest.NewRequest(http.MethodPost, "/v1/tools/keyword-finder", nil)
		r.RemoteAddr = "192.0.2.10:54321"
		for _, fn := range mutate {
			fn(r)
		}
		return r
	}

	tests := []struct {
		name     string
		req      *http.Request
		byAPIKey bool
		byIP     bool
		want     string
	}{
		{
			name: "api key header wins over IP",
			req: newReq(func(r *http.Request) {
				r.Header.Set("X-API-Key", "abc123")
			}),
			byAPIKey: true, byIP: true,
			want: "api:abc123",
		},
		{
			name: "bearer token",
			req: newReq(func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer token456")
			}),
			byAPIKey: true,
			want:     "api:token456",
		},
		{
			name:     "ip fallback when no key sent",
			req:      newReq(),
			byAPIKey: true, byIP: true,
			want: "ip:192.0.2.10",
		},
		{
			name: "ip only",
			req:  newReq(),
			byIP: true,
			want: "ip:192.0.2.10",
		},
		{
			name: "no dimensions enabled",
			req:  newReq(),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getRateLimitKey(tt.req, tt.byAPIKey, tt.byIP); got != tt.want {
				t.Errorf("getRateLimitKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*http.Request)
		want   string
	}{
		{
			name:   "forwarded-for first hop",
			mutate: func(r *http.Request) { r.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.1") },
			want:   "203.0.113.5",
		},
		{
			name:   "forwarded-for garbage falls through",
			mutate: func(r *http.Request) { r.Header.Set("X-Forwarded-For", "not-an-ip") },
			want:   "192.0.2.10",
		},
		{
			name:   "real-ip header",
			mutate: func(r *http.Request) { r.Header.Set("X-Real-IP", "198.51.100.7") },
			want:   "198.51.100.7",
		},
		{
			name:   "remote addr",
			mutate: func(r *http.Request) {},
			want:   "192.0.2.10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", nil)
			r.RemoteAddr = "192.0.2.10:54321"
			tt.mutate(r)
			if got := getClientIP(r); got != tt.want {
				t.Errorf("getClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseFirstIP(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"203.0.113.5", "203.0.113.5"},
		{" 203.0.113.5 , 10.0.0.1", "203.0.113.5"},
		{"junk, 203.0.113.5", "203.0.113.5"},
		{"junk, more junk", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := parseFirstIP(tt.in); got != tt.want {
			t.Errorf("parseFirstIP(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
