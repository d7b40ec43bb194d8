package ai

import (
	"google.golang.org/genai"

	"careerkit/internal/schema"
)

// responseSchema builds the structured-output schema the model must follow
// from a tool's declared result shape. Every declared field is required so
// the model cannot omit sections.
func responseSchema(tool *schema.ToolSchema) *genai.Schema {
	return objectSchema(tool.Result)
}

func objectSchema(fields []schema.ResultField) *genai.Schema {
	properties := make(map[string]*genai.Schema, len(fields))
	required := make([]string, 0, len(fields))
	for _, field := range fields {
		properties[field.Name] = fieldSchema(field)
		required = append(required, field.Name)
	}
	return &genai.Schema{
		Type:       genai.TypeObject,
		Properties: properties,
		Required:   required,
	}
}

func fieldSchema(field schema.ResultField) *genai.Schema {
	switch field.Type {
	case schema.ResultInteger:
		return &genai.Schema{Type: genai.TypeInteger}
	case schema.ResultNumber:
		return &genai.Schema{Type: genai.TypeNumber}
	case schema.ResultBoolean:
		return &genai.Schema{Type: genai.TypeBoolean}
	case schema.ResultArray:
		items := &genai.Schema{Type: genai.TypeString}
		if field.Items != nil {
			items = fieldSchema(*field.Items)
		}
		return &genai.Schema{Type: genai.TypeArray, Items: items}
	case schema.ResultObject:
		return objectSchema(field.Fields)
	default:
		return &genai.Schema{Type: genai.TypeString}
	}
}
