package render

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Formatter serializes rendered sections for a given output format.
type Formatter interface {
	Format(sections []Section) (string, error)
}

// FormatterRegistry manages the available output formatters.
type FormatterRegistry struct {
	formatters map[string]Formatter
}

// NewFormatterRegistry creates a registry with the default formatters.
func NewFormatterRegistry() *FormatterRegistry {
	return &FormatterRegistry{
		formatters: map[string]Formatter{
			"json":     &JSONFormatter{},
			"text":     &TextFormatter{},
			"markdown": &MarkdownFormatter{},
		},
	}
}

// GlobalRegistry is the default formatter registry used by output handling.
var GlobalRegistry = NewFormatterRegistry()

// RegisterFormatter registers a formatter under a format name.
func (fr *FormatterRegistry) RegisterFormatter(format string, formatter Formatter) {
	fr.formatters[format] = formatter
}

// Format serializes sections using the named formatter.
func (fr *FormatterRegistry) Format(sections []Section, format string) (string, error) {
	formatter, exists := fr.formatters[format]
	if !exists {
		return "", fmt.Errorf("no formatter found for format '%s'", format)
	}
	return formatter.Format(sections)
}

// GetSupportedFormats returns all registered format names.
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

// JSONFormatter emits sections as indented JSON.
type JSONFormatter struct{}

func (f *JSONFormatter) Format(sections []Section) (string, error) {
	out, err := json.MarshalIndent(sections, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal sections to JSON: %w", err)
	}
	return string(out), nil
}

// TextFormatter emits sections as plain terminal text.
type TextFormatter struct{}

func (f *TextFormatter) Format(sections []Section) (string, error) {
	var sb strings.Builder
	for i, section := range sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(strings.ToUpper(section.Title))
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat("=", len(section.Title)))
		sb.WriteString("\n")

		if section.Score != nil {
			sb.WriteString(fmt.Sprintf("%d/100  %s\n", *section.Score, section.Bar))
		}
		if section.Body != "" {
			sb.WriteString(section.Body)
			sb.WriteString("\n")
		}
		for _, item := range section.Items {
			sb.WriteString(formatTextItem(item))
		}
	}
	return sb.String(), nil
}

func formatTextItem(item Item) string {
	var sb strings.Builder
	sb.WriteString("  - ")
	if item.Label != "" {
		sb.WriteString(item.Label)
	}
	if item.Value != "" {
		if item.Label != "" {
			sb.WriteString(": ")
		}
		sb.WriteString(item.Value)
	}
	sb.WriteString("\n")
	if item.Detail != "" {
		sb.WriteString("    ")
		sb.WriteString(item.Detail)
		sb.WriteString("\n")
	}
	return sb.String()
}

// MarkdownFormatter emits sections as a markdown document.
type MarkdownFormatter struct{}

func (f *MarkdownFormatter) Format(sections []Section) (string, error) {
	var sb strings.Builder
	for _, section := range sections {
		sb.WriteString("## ")
		sb.WriteString(section.Title)
		sb.WriteString("\n\n")

		if section.Score != nil {
			sb.WriteString(fmt.Sprintf("**%d/100** `%s`\n\n", *section.Score, section.Bar))
		}
		if section.Body != "" {
			sb.WriteString(section.Body)
			sb.WriteString("\n\n")
		}
		for _, item := range section.Items {
			sb.WriteString("- ")
			if item.Label != "" {
				sb.WriteString("**")
				sb.WriteString(item.Label)
				sb.WriteString("**")
			}
			if item.Value != "" {
				if item.Label != "" {
					sb.WriteString(": ")
				}
				sb.WriteString(item.Value)
			}
			if item.Detail != "" {
				sb.WriteString(" — ")
				sb.WriteString(item.Detail)
			}
			sb.WriteString("\n")
		}
		if len(section.Items) > 0 {
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n") + "\n", nil
}
