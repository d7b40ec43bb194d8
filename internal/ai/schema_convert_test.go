package ai

import (
	"testing"

	"google.golang.org/genai"

	"careerkit/internal/schema"
)

func TestResponseSchema(t *testing.T) {
	tool := &schema.ToolSchema{
		Slug:      "test-tool",
		ResultKey: "analysis",
		Fields:    []schema.Field{{Name: "input", Kind: schema.KindShortText}},
		Result: []schema.ResultField{
			{Name: "score", Type: schema.ResultInteger},
			{Name: "ratio", Type: schema.ResultNumber},
			{Name: "verdict", Type: schema.ResultString},
			{Name: "viable", Type: schema.ResultBoolean},
			{Name: "tips", Type: schema.ResultArray, Items: &schema.ResultField{Type: schema.ResultString}},
			{Name: "phases", Type: schema.ResultArray, Items: &schema.ResultField{
				Type: schema.ResultObject,
				Fields: []schema.ResultField{
					{Name: "title", Type: schema.ResultString},
					{Name: "months", Type: schema.ResultInteger},
				},
			}},
		},
	}

	got := responseSchema(tool)

	if got.Type != genai.TypeObject {
		t.Fatalf("root type = %v, want object", got.Type)
	}
	if len(got.Properties) != len(tool.Result) {
		t.Fatalf("root has %d properties, want %d", len(got.Properties), len(tool.Result))
	}
	// Every declared field is required so the model cannot omit sections
	if len(got.Required) != len(tool.Result) {
		t.Errorf("root requires %d fields, want %d", len(got.Required), len(tool.Result))
	}

	tests := []struct {
		field string
		want  genai.Type
	}{
		{field: "score", want: genai.TypeInteger},
		{field: "ratio", want: genai.TypeNumber},
		{field: "verdict", want: genai.TypeString},
		{field: "viable", want: genai.TypeBoolean},
		{field: "tips", want: genai.TypeArray},
		{field: "phases", want: genai.TypeArray},
	}
	for _, tt := range tests {
		prop, ok := got.Properties[tt.field]
		if !ok {
			t.Errorf("property %q missing", tt.field)
			continue
		}
		if prop.Type != tt.want {
			t.Errorf("property %q type = %v, want %v", tt.field, prop.Type, tt.want)
		}
	}

	tips := got.Properties["tips"]
	if tips.Items == nil || tips.Items.Type != genai.TypeString {
		t.Errorf("tips items = %+v, want string items", tips.Items)
	}

	phases := got.Properties["phases"]
	if phases.Items == nil || phases.Items.Type != genai.TypeObject {
		t.Fatalf("phases items = %+v, want object items", phases.Items)
	}
	if len(phases.Items.Properties) != 2 || len(phases.Items.Required) != 2 {
		t.Errorf("nested object schema incomplete: %+v", phases.Items)
	}
}

func TestFieldSchemaDefaults(t *testing.T) {
	// Undeclared types fall back to string
	got := fieldSchema(schema.ResultField{Name: "anything"})
	if got.Type != genai.TypeString {
		t.Errorf("default type = %v, want string", got.Type)
	}

	// Arrays without declared items default to string items
	arr := fieldSchema(schema.ResultField{Name: "list", Type: schema.ResultArray})
	if arr.Items == nil || arr.Items.Type != genai.TypeString {
		t.Errorf("untyped array items = %+v, want string items", arr.Items)
	}
}

func TestBuiltinToolsProduceValidSchemas(t *testing.T) {
	for _, tool := range schema.Builtin().All() {
		got := responseSchema(tool)
		if got.Type != genai.TypeObject {
			t.Errorf("tool %s: root type = %v, want object", tool.Slug, got.Type)
		}
		if len(got.Properties) == 0 {
			t.Errorf("tool %s: response schema has no properties", tool.Slug)
		}
	}
}
