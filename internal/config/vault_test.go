package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseVersionValue(t *testing.T) {
	tests := []struct {
		name        string
		input       any
		want        int64
		expectError bool
	}{
		{name: "int64", input: int64(3), want: 3},
		{name: "float64 from json", input: float64(7), want: 7},
		{name: "numeric string", input: "12", want: 12},
		{name: "non-numeric string", input: "latest", expectError: true},
		{name: "unexpected type", input: []string{"1"}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseVersionValue(tt.input, "secret/data/test")
			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseVersionValue(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveVaultToken(t *testing.T) {
	t.Run("token from config", func(t *testing.T) {
		token, err := resolveVaultToken(VaultConfig{Token: "direct-token"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "direct-token" {
			t.Errorf("token = %q, want direct-token", token)
		}
	})

	t.Run("token from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "token")
		if err := os.WriteFile(path, []byte("  file-token\n"), 0600); err != nil {
			t.Fatalf("failed to write token file: %v", err)
		}

		token, err := resolveVaultToken(VaultConfig{TokenFile: path})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "file-token" {
			t.Errorf("token = %q, want trimmed file-token", token)
		}
	})

	t.Run("config token wins over file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "token")
		if err := os.WriteFile(path, []byte("file-token"), 0600); err != nil {
			t.Fatalf("failed to write token file: %v", err)
		}

		token, err := resolveVaultToken(VaultConfig{Token: "direct-token", TokenFile: path})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "direct-token" {
			t.Errorf("token = %q, want direct-token", token)
		}
	})

	t.Run("missing token is an error", func(t *testing.T) {
		if _, err := resolveVaultToken(VaultConfig{}); err == nil {
			t.Error("expected error for missing token")
		}
	})

	t.Run("missing token file is an error", func(t *testing.T) {
		if _, err := resolveVaultToken(VaultConfig{TokenFile: "/nonexistent/token"}); err == nil {
			t.Error("expected error for missing token file")
		}
	})
}

func TestResolveVaultSecretsDisabled(t *testing.T) {
	cfg := validConfig()
	cfg.Vault.Enabled = false
	cfg.Vault.Secrets.GeminiKey = "secret/data/careerkit/gemini"

	if err := cfg.resolveVaultSecrets(); err != nil {
		t.Errorf("disabled vault must be a no-op, got error: %v", err)
	}
	if cfg.AI.APIKey != "test-key" {
		t.Errorf("disabled vault mutated the API key: %q", cfg.AI.APIKey)
	}
}
