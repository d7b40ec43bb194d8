package schema

import (
	"os"
	"path/filepath"
	"testing"
)

const validToolYAML = `
tools:
  - slug: salary-check
    title: Salary Sanity Check
    resultKey: analysis
    fields:
      - name: role
        label: Role
        kind: short-text
        required: true
        constraints:
          maxChars: 120
      - name: salary
        kind: number
        required: true
        constraints:
          min: 0
      - name: seniority
        kind: select
        default: mid
        constraints:
          options: [junior, mid, senior]
    result:
      - name: verdict
        type: string
      - name: marketRange
        type: string
    sections:
      - category: narrative
        title: Verdict
        path: verdict
`

func writeToolFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tools.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write tool file: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := writeToolFile(t, validToolYAML)

		tools, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile failed: %v", err)
		}
		if len(tools) != 1 {
			t.Fatalf("loaded %d tools, want 1", len(tools))
		}

		tool := tools[0]
		if tool.Slug != "salary-check" {
			t.Errorf("slug = %q, want salary-check", tool.Slug)
		}
		if tool.ResultKey != "analysis" {
			t.Errorf("resultKey = %q, want analysis", tool.ResultKey)
		}
		if len(tool.Fields) != 3 {
			t.Fatalf("loaded %d fields, want 3", len(tool.Fields))
		}

		role, ok := tool.Field("role")
		if !ok {
			t.Fatal("field role not loaded")
		}
		if role.Kind != KindShortText || !role.Required || role.Constraints.MaxChars != 120 {
			t.Errorf("role field loaded incorrectly: %+v", role)
		}

		salary, ok := tool.Field("salary")
		if !ok {
			t.Fatal("field salary not loaded")
		}
		if salary.Constraints.Min == nil || *salary.Constraints.Min != 0 {
			t.Errorf("salary min bound not loaded: %+v", salary.Constraints)
		}

		seniority, ok := tool.Field("seniority")
		if !ok {
			t.Fatal("field seniority not loaded")
		}
		if seniority.Default != "mid" || len(seniority.Constraints.Options) != 3 {
			t.Errorf("seniority field loaded incorrectly: %+v", seniority)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeToolFile(t, "tools: [\n  - broken")
		if _, err := LoadFile(path); err == nil {
			t.Error("expected error for malformed yaml")
		}
	})

	t.Run("schema validation applies to loaded tools", func(t *testing.T) {
		path := writeToolFile(t, `
tools:
  - slug: broken-tool
    resultKey: result
    fields:
      - name: choice
        kind: select
`)
		if _, err := LoadFile(path); err == nil {
			t.Error("expected error for select field without options")
		}
	})
}

func TestRegisterFile(t *testing.T) {
	t.Run("loaded tools join the registry", func(t *testing.T) {
		registry := Builtin()
		path := writeToolFile(t, validToolYAML)

		if err := RegisterFile(registry, path); err != nil {
			t.Fatalf("RegisterFile failed: %v", err)
		}

		tool, ok := registry.Get("salary-check")
		if !ok {
			t.Fatal("loaded tool not in registry")
		}
		if err := tool.ValidateAll(map[string]any{"role": "SRE", "salary": 95000.0, "seniority": "mid"}); err != nil {
			t.Errorf("loaded tool rejects valid input: %v", err)
		}
	})

	t.Run("slug collision with builtin is rejected", func(t *testing.T) {
		registry := Builtin()
		path := writeToolFile(t, `
tools:
  - slug: keyword-finder
    resultKey: keywords
    fields:
      - name: jobDescription
        kind: long-text
        required: true
`)
		if err := RegisterFile(registry, path); err == nil {
			t.Error("expected error for slug collision with builtin tool")
		}
	})
}
