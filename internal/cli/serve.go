package cli

import (
	"fmt"

	"careerkit/internal/ai"
	"careerkit/internal/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP server for the assessment tools",
	Long: `Start an HTTP server that exposes every registered assessment tool
as a REST endpoint.

Available endpoints:
- POST /v1/tools/{slug}: Submit input for a tool and receive its analysis
- GET /v1/tools: List registered tool schemas
- GET /health: Health check endpoint
- GET /stats: Server statistics and rate limiting info`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (default from config)")
	serveCmd.Flags().String("host", "", "Host to bind to (default from config)")
	serveCmd.Flags().String("tools-file", "", "YAML file with additional tool schemas (overrides config)")

	// Bind flags to viper config keys
	bindFlag := func(key, flagName string) {
		if err := viper.BindPFlag(key, serveCmd.Flags().Lookup(flagName)); err != nil {
			panic(err)
		}
	}

	bindFlag("server.port", "port")
	bindFlag("server.host", "host")
	bindFlag("app.toolsfile", "tools-file")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	registry, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	aiService, err := ai.NewService(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create AI service: %w", err)
	}

	return server.NewServer(cfg, registry, aiService, Version, logger).Start()
}
