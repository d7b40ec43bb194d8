package schema

import (
	"fmt"
	"strings"
)

// Kind enumerates the supported input field kinds.
type Kind string

const (
	KindShortText   Kind = "short-text"
	KindLongText    Kind = "long-text"
	KindNumber      Kind = "number"
	KindSlider      Kind = "slider"
	KindSelect      Kind = "select"
	KindMultiSelect Kind = "multi-select"
	KindBoolean     Kind = "boolean"
)

// Constraints holds the per-field validation bounds. Zero values mean
// "no bound". Soft limits are display guidance only and never gate
// submission; hard limits do.
type Constraints struct {
	Min  *float64 `yaml:"min,omitempty"`
	Max  *float64 `yaml:"max,omitempty"`
	Step *float64 `yaml:"step,omitempty"`

	MaxChars int `yaml:"maxChars,omitempty"`
	MaxWords int `yaml:"maxWords,omitempty"`

	SoftMaxChars int `yaml:"softMaxChars,omitempty"`
	SoftMaxWords int `yaml:"softMaxWords,omitempty"`

	Options []string `yaml:"options,omitempty"`
}

// Field describes a single input of a tool.
type Field struct {
	Name        string      `yaml:"name"`
	Label       string      `yaml:"label,omitempty"`
	Kind        Kind        `yaml:"kind"`
	Required    bool        `yaml:"required,omitempty"`
	Step        int         `yaml:"step,omitempty"` // wizard step, 1-indexed; 0 means step 1
	Default     any         `yaml:"default,omitempty"`
	Constraints Constraints `yaml:"constraints,omitempty"`
}

// ResultType enumerates the JSON types a result field may declare.
type ResultType string

const (
	ResultString  ResultType = "string"
	ResultInteger ResultType = "integer"
	ResultNumber  ResultType = "number"
	ResultBoolean ResultType = "boolean"
	ResultArray   ResultType = "array"
	ResultObject  ResultType = "object"
)

// ResultField declares one field of a tool's structured result. The
// declaration drives both the generative model's response schema and the
// renderer's section lookup, so a tool's output shape is authored exactly
// once.
type ResultField struct {
	Name   string        `yaml:"name"`
	Type   ResultType    `yaml:"type"`
	Items  *ResultField  `yaml:"items,omitempty"`
	Fields []ResultField `yaml:"fields,omitempty"`
}

// SectionCategory tags a rendered display section with its semantic role.
type SectionCategory string

const (
	SectionPrimaryScore    SectionCategory = "primary-score"
	SectionNarrative       SectionCategory = "narrative"
	SectionCategorizedList SectionCategory = "categorized-list"
	SectionRecommendations SectionCategory = "tiered-recommendations"
	SectionCallToAction    SectionCategory = "call-to-action"
)

// SectionSpec maps a result sub-field onto a display section. Path is a
// dot-separated path into the result object.
type SectionSpec struct {
	Category SectionCategory `yaml:"category"`
	Title    string          `yaml:"title"`
	Path     string          `yaml:"path"`
}

// ToolSchema is the complete declarative definition of one assessment tool:
// input fields, result shape, display sections, and prompt template.
type ToolSchema struct {
	Slug        string        `yaml:"slug"`
	Title       string        `yaml:"title"`
	Description string        `yaml:"description,omitempty"`
	ResultKey   string        `yaml:"resultKey"`
	Fields      []Field       `yaml:"fields"`
	Result      []ResultField `yaml:"result"`
	Sections    []SectionSpec `yaml:"sections,omitempty"`
}

// Field returns the descriptor for name, if declared.
func (t *ToolSchema) Field(name string) (*Field, bool) {
	for i := range t.Fields {
		if t.Fields[i].Name == name {
			return &t.Fields[i], true
		}
	}
	return nil, false
}

// StepCount returns the number of wizard steps the schema declares.
// Single-step tools report 1.
func (t *ToolSchema) StepCount() int {
	max := 1
	for _, f := range t.Fields {
		if f.Step > max {
			max = f.Step
		}
	}
	return max
}

// FieldsForStep returns the fields scoped to the given 1-indexed step.
// Fields with no declared step belong to step 1.
func (t *ToolSchema) FieldsForStep(step int) []Field {
	var out []Field
	for _, f := range t.Fields {
		s := f.Step
		if s == 0 {
			s = 1
		}
		if s == step {
			out = append(out, f)
		}
	}
	return out
}

// Defaults returns the declared default value for every field. Fields
// without an explicit default get the zero value for their kind.
func (t *ToolSchema) Defaults() map[string]any {
	defaults := make(map[string]any, len(t.Fields))
	for _, f := range t.Fields {
		if f.Default != nil {
			defaults[f.Name] = f.Default
			continue
		}
		switch f.Kind {
		case KindNumber, KindSlider:
			if f.Constraints.Min != nil {
				defaults[f.Name] = *f.Constraints.Min
			} else {
				defaults[f.Name] = float64(0)
			}
		case KindBoolean:
			defaults[f.Name] = false
		case KindMultiSelect:
			defaults[f.Name] = []string{}
		default:
			defaults[f.Name] = ""
		}
	}
	return defaults
}

// Validate checks a single value against the named field's constraints.
// It is a pure predicate over (schema, value): nil means valid. Unknown
// field names are invalid. Cross-field rules do not exist in this model;
// each field is validated independently.
func (t *ToolSchema) Validate(name string, value any) error {
	field, ok := t.Field(name)
	if !ok {
		return fmt.Errorf("unknown field %q", name)
	}
	return field.Validate(value)
}

// Validate checks a value against the field's declared kind and constraints.
func (f *Field) Validate(value any) error {
	if isEmpty(value) {
		if f.Required {
			return fmt.Errorf("field %q is required", f.Name)
		}
		return nil
	}

	switch f.Kind {
	case KindShortText, KindLongText:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("field %q must be a string", f.Name)
		}
		return f.validateText(s)
	case KindNumber, KindSlider:
		n, ok := toFloat(value)
		if !ok {
			return fmt.Errorf("field %q must be a number", f.Name)
		}
		return f.validateNumber(n)
	case KindSelect:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("field %q must be a string", f.Name)
		}
		if !f.hasOption(s) {
			return fmt.Errorf("field %q: %q is not an allowed option", f.Name, s)
		}
		return nil
	case KindMultiSelect:
		selected, ok := toStringSlice(value)
		if !ok {
			return fmt.Errorf("field %q must be a list of strings", f.Name)
		}
		for _, s := range selected {
			if !f.hasOption(s) {
				return fmt.Errorf("field %q: %q is not an allowed option", f.Name, s)
			}
		}
		return nil
	case KindBoolean:
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("field %q must be a boolean", f.Name)
		}
		return nil
	default:
		return fmt.Errorf("field %q has unsupported kind %q", f.Name, f.Kind)
	}
}

// validateText enforces the hard character and word ceilings. Both must be
// satisfied when both are declared; the soft limits are intentionally
// ignored here.
func (f *Field) validateText(s string) error {
	if f.Constraints.MaxChars > 0 && len(s) > f.Constraints.MaxChars {
		return fmt.Errorf("field %q exceeds %d characters", f.Name, f.Constraints.MaxChars)
	}
	if f.Constraints.MaxWords > 0 && WordCount(s) > f.Constraints.MaxWords {
		return fmt.Errorf("field %q exceeds %d words", f.Name, f.Constraints.MaxWords)
	}
	return nil
}

func (f *Field) validateNumber(n float64) error {
	if f.Constraints.Min != nil && n < *f.Constraints.Min {
		return fmt.Errorf("field %q must be at least %v", f.Name, *f.Constraints.Min)
	}
	if f.Constraints.Max != nil && n > *f.Constraints.Max {
		return fmt.Errorf("field %q must be at most %v", f.Name, *f.Constraints.Max)
	}
	return nil
}

func (f *Field) hasOption(s string) bool {
	for _, opt := range f.Constraints.Options {
		if opt == s {
			return true
		}
	}
	return false
}

// OverSoftLimit reports whether a text value exceeds the field's soft
// guidance limits. Used for advisory display only; never gates submission.
func (f *Field) OverSoftLimit(s string) bool {
	if f.Constraints.SoftMaxChars > 0 && len(s) > f.Constraints.SoftMaxChars {
		return true
	}
	if f.Constraints.SoftMaxWords > 0 && WordCount(s) > f.Constraints.SoftMaxWords {
		return true
	}
	return false
}

// ValidateAll validates a full value map against the schema: every required
// field must be present and valid, and every present value must satisfy its
// field's constraints. Values for undeclared fields are rejected.
func (t *ToolSchema) ValidateAll(values map[string]any) error {
	for name := range values {
		if _, ok := t.Field(name); !ok {
			return fmt.Errorf("unknown field %q", name)
		}
	}
	for i := range t.Fields {
		f := &t.Fields[i]
		if err := f.Validate(values[f.Name]); err != nil {
			return err
		}
	}
	return nil
}

// validate checks the schema definition itself. Registration rejects
// malformed schemas so runtime validation can trust the declaration.
func (t *ToolSchema) validate() error {
	if t.Slug == "" {
		return fmt.Errorf("tool schema missing slug")
	}
	if t.ResultKey == "" {
		return fmt.Errorf("tool %q missing resultKey", t.Slug)
	}
	if len(t.Fields) == 0 {
		return fmt.Errorf("tool %q declares no fields", t.Slug)
	}
	seen := make(map[string]bool, len(t.Fields))
	for _, f := range t.Fields {
		if f.Name == "" {
			return fmt.Errorf("tool %q has a field with no name", t.Slug)
		}
		if seen[f.Name] {
			return fmt.Errorf("tool %q declares field %q twice", t.Slug, f.Name)
		}
		seen[f.Name] = true
		if f.Constraints.Min != nil && f.Constraints.Max != nil && *f.Constraints.Min > *f.Constraints.Max {
			return fmt.Errorf("tool %q field %q: min %v exceeds max %v",
				t.Slug, f.Name, *f.Constraints.Min, *f.Constraints.Max)
		}
		switch f.Kind {
		case KindSelect, KindMultiSelect:
			if len(f.Constraints.Options) == 0 {
				return fmt.Errorf("tool %q field %q: %s kind requires options", t.Slug, f.Name, f.Kind)
			}
		}
	}
	for _, s := range t.Sections {
		if s.Path == "" {
			return fmt.Errorf("tool %q section %q missing path", t.Slug, s.Title)
		}
	}
	return nil
}

// WordCount returns the whitespace-delimited token count of the trimmed value.
func WordCount(s string) int {
	return len(strings.Fields(strings.TrimSpace(s)))
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []string:
		return len(v) == 0
	case []any:
		return len(v) == 0
	default:
		return false
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func toStringSlice(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

// FloatPtr is a convenience for declaring constraint bounds inline.
func FloatPtr(v float64) *float64 {
	return &v
}
