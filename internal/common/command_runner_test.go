package common

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	careerkitErrors "careerkit/internal/errors"
	"careerkit/internal/gateway"
	"careerkit/internal/schema"
)

func TestParseValuesFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    map[string]any
		wantErr bool
	}{
		{
			name:    "json document",
			content: `{"jobDescription": "Go engineer", "years": 5}`,
			want:    map[string]any{"jobDescription": "Go engineer", "years": float64(5)},
		},
		{
			name:    "yaml document",
			content: "jobDescription: Go engineer\nremote: true\n",
			want:    map[string]any{"jobDescription": "Go engineer", "remote": true},
		},
		{
			name:    "neither json nor yaml",
			content: "{broken: [\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValuesFile(tt.content)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseValuesFile() error = %v", err)
			}
			for key, want := range tt.want {
				if got[key] != want {
					t.Errorf("values[%q] = %v, want %v", key, got[key], want)
				}
			}
		})
	}
}

func TestValidateOutputFormat(t *testing.T) {
	supported := []string{"json", "text", "markdown"}

	if err := ValidateOutputFormat("json", supported); err != nil {
		t.Errorf("json rejected: %v", err)
	}
	if err := ValidateOutputFormat("xml", supported); err == nil {
		t.Error("xml accepted")
	}
	if err := ValidateOutputFormat("anything", nil); err != nil {
		t.Errorf("unrestricted config rejected a format: %v", err)
	}
}

func writeValuesFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write values file: %v", err)
	}
	return path
}

func keywordTool(t *testing.T) *schema.ToolSchema {
	t.Helper()
	tool, ok := schema.Builtin().Get("keyword-finder")
	if !ok {
		t.Fatal("keyword-finder not registered")
	}
	return tool
}

func TestRunToolCommand(t *testing.T) {
	logger := careerkitErrors.NewLogger(slog.LevelError)
	okSubmit := func(result string) SubmitFunc {
		return func(ctx context.Context, tool *schema.ToolSchema, values map[string]any) gateway.Outcome {
			return gateway.Outcome{Status: gateway.StatusOK, Result: json.RawMessage(result)}
		}
	}

	t.Run("success writes formatted output", func(t *testing.T) {
		valuesFile := writeValuesFile(t, "values.json", `{"jobDescription": "We need a Go engineer."}`)
		outputFile := filepath.Join(t.TempDir(), "out.json")

		var submittedValues map[string]any
		submit := func(ctx context.Context, tool *schema.ToolSchema, values map[string]any) gateway.Outcome {
			submittedValues = values
			return gateway.Outcome{Status: gateway.StatusOK,
				Result: json.RawMessage(`{"hardSkills": ["Go", "gRPC"]}`)}
		}

		cmdConfig := CommandConfig{OutputFile: outputFile, OutputFormat: "json"}
		if err := RunToolCommand(context.Background(), logger, cmdConfig, keywordTool(t), valuesFile, submit); err != nil {
			t.Fatalf("RunToolCommand() error = %v", err)
		}

		if submittedValues["jobDescription"] != "We need a Go engineer." {
			t.Errorf("submitted values = %v", submittedValues)
		}

		data, err := os.ReadFile(outputFile)
		if err != nil {
			t.Fatalf("output file not written: %v", err)
		}
		if !strings.Contains(string(data), "Go") {
			t.Errorf("output missing rendered result: %s", data)
		}
	})

	t.Run("yaml values accepted", func(t *testing.T) {
		valuesFile := writeValuesFile(t, "values.yaml", "jobDescription: We need a Go engineer.\n")
		outputFile := filepath.Join(t.TempDir(), "out.txt")

		cmdConfig := CommandConfig{OutputFile: outputFile, OutputFormat: "text"}
		if err := RunToolCommand(context.Background(), logger, cmdConfig, keywordTool(t), valuesFile,
			okSubmit(`{"hardSkills": ["Go"]}`)); err != nil {
			t.Fatalf("RunToolCommand() error = %v", err)
		}
	})

	t.Run("missing values file", func(t *testing.T) {
		err := RunToolCommand(context.Background(), logger, CommandConfig{OutputFormat: "json"},
			keywordTool(t), filepath.Join(t.TempDir(), "absent.json"), okSubmit(`{}`))
		if err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("unparseable values file", func(t *testing.T) {
		valuesFile := writeValuesFile(t, "values.json", "{broken: [\n")
		err := RunToolCommand(context.Background(), logger, CommandConfig{OutputFormat: "json"},
			keywordTool(t), valuesFile, okSubmit(`{}`))
		assertErrorCode(t, err, careerkitErrors.ErrCodeInvalidRequest)
	})

	t.Run("incomplete input never submits", func(t *testing.T) {
		valuesFile := writeValuesFile(t, "values.json", `{"unrelated": "field"}`)
		submitted := false
		submit := func(ctx context.Context, tool *schema.ToolSchema, values map[string]any) gateway.Outcome {
			submitted = true
			return gateway.Outcome{Status: gateway.StatusOK, Result: json.RawMessage(`{}`)}
		}

		err := RunToolCommand(context.Background(), logger, CommandConfig{OutputFormat: "json"},
			keywordTool(t), valuesFile, submit)
		assertErrorCode(t, err, careerkitErrors.ErrCodeValidationFailed)
		if submitted {
			t.Error("incomplete input was submitted")
		}
	})

	t.Run("rate limited outcome", func(t *testing.T) {
		valuesFile := writeValuesFile(t, "values.json", `{"jobDescription": "x"}`)
		submit := func(ctx context.Context, tool *schema.ToolSchema, values map[string]any) gateway.Outcome {
			return gateway.Outcome{Status: gateway.StatusRateLimited,
				Message: "Too many requests", RetryAfterSeconds: 5}
		}

		err := RunToolCommand(context.Background(), logger, CommandConfig{OutputFormat: "json"},
			keywordTool(t), valuesFile, submit)
		assertErrorCode(t, err, careerkitErrors.ErrCodeRateLimitExceeded)
		if !strings.Contains(err.Error(), "retry in 5s") {
			t.Errorf("error missing retry hint: %v", err)
		}
	})

	t.Run("failed outcome", func(t *testing.T) {
		valuesFile := writeValuesFile(t, "values.json", `{"jobDescription": "x"}`)
		submit := func(ctx context.Context, tool *schema.ToolSchema, values map[string]any) gateway.Outcome {
			return gateway.Outcome{Status: gateway.StatusFailed, Message: "Analysis failed"}
		}

		err := RunToolCommand(context.Background(), logger, CommandConfig{OutputFormat: "json"},
			keywordTool(t), valuesFile, submit)
		assertErrorCode(t, err, careerkitErrors.ErrCodeAIServiceFailed)
	})

	t.Run("unknown output format", func(t *testing.T) {
		valuesFile := writeValuesFile(t, "values.json", `{"jobDescription": "x"}`)
		err := RunToolCommand(context.Background(), logger, CommandConfig{OutputFormat: "xml"},
			keywordTool(t), valuesFile, okSubmit(`{"hardSkills": ["Go"]}`))
		assertErrorCode(t, err, careerkitErrors.ErrCodeInvalidFormat)
	})
}

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	appErr, ok := err.(*careerkitErrors.AppError)
	if !ok {
		t.Fatalf("error type = %T, want *AppError: %v", err, err)
	}
	if appErr.Code != code {
		t.Errorf("error code = %q, want %q", appErr.Code, code)
	}
}
