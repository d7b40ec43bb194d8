package cli

import (
	"context"
	"fmt"

	"careerkit/internal/config"
	"careerkit/internal/errors"
	"careerkit/internal/schema"

	"github.com/spf13/cobra"
)

// Define custom private types for context keys.
type configKeyType struct{}
type loggerKeyType struct{}

// Use variables of these types as the keys.
var configKey = configKeyType{}
var loggerKey = loggerKeyType{}

var rootCmd = &cobra.Command{
	Use:   "careerkit",
	Short: "AI-backed career assessment tools",
	Long: `Careerkit runs a set of career assessment tools backed by AI analysis.
Each tool declares its input fields as a schema; inputs are validated locally,
submitted to the careerkit server, and the structured result is rendered into
readable sections.`,
}

func Execute(ctx context.Context, cfg *config.Config, logger *errors.Logger) error {
	// Attach the config and logger to the context, making them available to all subcommands
	ctx = context.WithValue(ctx, configKey, cfg)
	ctx = context.WithValue(ctx, loggerKey, logger)
	rootCmd.SetContext(ctx)
	return rootCmd.Execute()
}

// getConfigFromContext is a helper function to get config from context
func getConfigFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok {
		return cfg
	}
	panic("config not found in context") // Should not happen if properly initialized
}

// getLoggerFromContext is a helper function to get logger from context
func getLoggerFromContext(ctx context.Context) *errors.Logger {
	if logger, ok := ctx.Value(loggerKey).(*errors.Logger); ok {
		return logger
	}
	panic("logger not found in context") // Should not happen if properly initialized
}

// buildRegistry assembles the tool registry: builtin tools plus any
// tools declared in the configured tools file.
func buildRegistry(cfg *config.Config) (*schema.Registry, error) {
	registry := schema.Builtin()
	if cfg.App.ToolsFile != "" {
		if err := schema.RegisterFile(registry, cfg.App.ToolsFile); err != nil {
			return nil, fmt.Errorf("failed to load tools file %s: %w", cfg.App.ToolsFile, err)
		}
	}
	return registry, nil
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
}
