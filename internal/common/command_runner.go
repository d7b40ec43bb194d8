package common

import (
	"context"
	"encoding/json"
	"fmt"

	"careerkit/internal/errors"
	"careerkit/internal/form"
	"careerkit/internal/gateway"
	"careerkit/internal/render"
	"careerkit/internal/schema"

	"gopkg.in/yaml.v3"
)

// SubmitFunc performs the network submission for validated field values.
type SubmitFunc func(ctx context.Context, tool *schema.ToolSchema, values map[string]any) gateway.Outcome

// ParseValuesFile decodes a JSON or YAML values document into field values.
func ParseValuesFile(content string) (map[string]any, error) {
	values := make(map[string]any)
	if err := json.Unmarshal([]byte(content), &values); err == nil {
		return values, nil
	}
	if err := yaml.Unmarshal([]byte(content), &values); err != nil {
		return nil, fmt.Errorf("input is neither valid JSON nor valid YAML: %w", err)
	}
	return values, nil
}

// RunToolCommand encapsulates the common logic for submitting a tool input
// from a values file and rendering the classified outcome.
func RunToolCommand(
	ctx context.Context,
	logger *errors.Logger,
	cmdConfig CommandConfig,
	tool *schema.ToolSchema,
	valuesFile string,
	submit SubmitFunc,
) error {
	fileProcessor := NewFileProcessor(logger)
	outputHandler := NewOutputHandler(logger)

	content, err := fileProcessor.ReadInputFile(valuesFile)
	if err != nil {
		return err
	}

	values, err := ParseValuesFile(content)
	if err != nil {
		return errors.NewValidationError(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("Cannot parse values file %s", valuesFile), err)
	}

	// Drive the values through a form controller so undeclared fields are
	// dropped and defaults fill the gaps
	controller := form.New(tool)
	for name, value := range values {
		controller.SetField(name, value)
	}
	if !controller.Complete() {
		return errors.NewValidationError(errors.ErrCodeValidationFailed,
			fmt.Sprintf("Input for %s is incomplete or invalid", tool.Slug),
			tool.ValidateAll(controller.Values()))
	}

	if logger != nil {
		logger.Info("Submitting tool input",
			"tool", tool.Slug,
			"fields", len(values),
			"output_format", cmdConfig.OutputFormat)
	}

	outcome := submit(ctx, tool, controller.Values())
	switch outcome.Status {
	case gateway.StatusOK:
		// fall through to rendering
	case gateway.StatusRateLimited:
		return errors.NewRateLimitError(errors.ErrCodeRateLimitExceeded,
			fmt.Sprintf("%s (retry in %ds)", outcome.Message, outcome.RetryAfterSeconds), nil)
	case gateway.StatusBusy:
		return errors.NewValidationError(errors.ErrCodeInvalidRequest, outcome.Message, nil)
	default:
		return errors.NewAIError(errors.ErrCodeAIServiceFailed, outcome.Message, nil)
	}

	sections := render.NewRenderer().Render(tool, outcome.Result)
	return outputHandler.HandleOutput(sections, cmdConfig)
}
