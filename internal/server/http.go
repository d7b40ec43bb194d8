package server

import (
	"time"

	"careerkit/internal/ai"
	"careerkit/internal/config"
	careerkitErrors "careerkit/internal/errors"
	"careerkit/internal/schema"
)

// ErrorResponse represents an error response. Error carries the
// machine-readable code, Message the human-readable text.
type ErrorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message,omitempty"`
	RetryAfter int    `json:"retryAfter,omitempty"`
}

// Server holds configuration for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// Tool schema registry serving the /v1/tools endpoints
	Registry *schema.Registry

	// Shared AI service
	AIService *ai.Service

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limit
	MaxRequestSize int64

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	// Logger
	Logger *careerkitErrors.Logger
}

// NewServer creates a new Server instance
func NewServer(appCfg *config.Config, registry *schema.Registry, aiService *ai.Service, version string, logger *careerkitErrors.Logger) *Server {
	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range appCfg.Server.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	rateLimit := appCfg.Server.RateLimit
	var rateLimiter *RateLimiter
	if rateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			rateLimit.RequestsPerMin,
			rateLimit.BurstCapacity,
			logger,
		)
	}

	return &Server{
		Host:           appCfg.Server.Host,
		Port:           appCfg.Server.Port,
		Version:        version,
		AppConfig:      appCfg,
		Registry:       registry,
		AIService:      aiService,
		APIKeys:        apiKeyMap,
		ReadTimeout:    appCfg.Server.ReadTimeout,
		WriteTimeout:   appCfg.Server.WriteTimeout,
		IdleTimeout:    appCfg.Server.IdleTimeout,
		MaxRequestSize: appCfg.Server.MaxRequestBytes,
		RateLimit:      &rateLimit,
		RateLimiter:    rateLimiter,
		Logger:         logger,
	}
}
