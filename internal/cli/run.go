package cli

import (
	"context"
	"fmt"

	"careerkit/internal/common"
	"careerkit/internal/gateway"
	"careerkit/internal/schema"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [tool-slug] [values-file]",
	Short: "Run an assessment tool against a careerkit server",
	Long: `Run an assessment tool by submitting a values file to a careerkit server.
The command takes two arguments: the tool slug (see "careerkit tools") and the
path to a JSON or YAML file mapping field names to values. Values are validated
against the tool's schema before anything is sent.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if runConfig.OutputFormat == "" {
			runConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(runConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runTool,
}

var runConfig common.CommandConfig
var runServerURL string
var runAPIKey string

func init() {
	runCmd.Flags().StringVarP(&runConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	runCmd.Flags().StringVar(&runConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	runCmd.Flags().StringVar(&runServerURL, "server", "", "Base URL of the careerkit server (default: local server from config)")
	runCmd.Flags().StringVar(&runAPIKey, "api-key", "", "API key to authenticate with the server")

	// Add completion for format flag
	_ = runCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})

	// Add completion for the tool slug argument
	runCmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveDefault
		}
		cfg := getConfigFromContext(cmd.Context())
		registry, err := buildRegistry(cfg)
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		var slugs []string
		for _, tool := range registry.All() {
			slugs = append(slugs, tool.Slug)
		}
		return slugs, cobra.ShellCompDirectiveNoFileComp
	}
}

func runTool(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	registry, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	slug := args[0]
	tool, ok := registry.Get(slug)
	if !ok {
		return fmt.Errorf("unknown tool %q, run \"careerkit tools\" to list available tools", slug)
	}

	baseURL := runServerURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("http://%s:%s", cfg.Server.Host, cfg.Server.Port)
	}

	opts := []gateway.Option{gateway.WithLogger(logger)}
	if runAPIKey != "" {
		opts = append(opts, gateway.WithAPIKey(runAPIKey))
	}
	client := gateway.NewClient(baseURL, opts...)

	submit := func(ctx context.Context, tool *schema.ToolSchema, values map[string]any) gateway.Outcome {
		return client.Submit(ctx, tool, values)
	}

	err = common.RunToolCommand(
		cmd.Context(),
		logger,
		runConfig,
		tool,
		args[1],
		submit,
	)
	if err != nil {
		return fmt.Errorf("failed to run tool %s: %w", slug, err)
	}
	logger.Info("Tool run completed successfully", "tool", slug)
	return nil
}
