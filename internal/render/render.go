// Package render maps a tool result onto read-only display sections. It is
// purely presentational: formatting, threshold classification, and
// pluralization, but no computation over the result beyond lookup.
// Rendering is total; absent or empty result sub-fields produce empty
// sections instead of failures.
package render

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"careerkit/internal/schema"
)

// Tone classifies a section for display styling using fixed thresholds.
type Tone string

const (
	ToneNeutral Tone = "neutral"
	ToneGood    Tone = "good"
	ToneWarn    Tone = "warn"
	ToneBad     Tone = "bad"
)

// Item is one entry of a list-like section.
type Item struct {
	Label  string `json:"label,omitempty"`
	Detail string `json:"detail,omitempty"`
	Value  string `json:"value,omitempty"`
}

// Section is one rendered display block, tagged with its semantic category.
type Section struct {
	Category schema.SectionCategory `json:"category"`
	Title    string                 `json:"title"`
	Body     string                 `json:"body,omitempty"`
	Items    []Item                 `json:"items,omitempty"`
	Score    *int                   `json:"score,omitempty"`
	Bar      string                 `json:"bar,omitempty"`
	Tone     Tone                   `json:"tone"`
}

// ResultCallback is invoked after a result has been rendered, once per
// Render call. View-layer effects such as scrolling to results belong
// here, not inside the pipeline.
type ResultCallback func(toolSlug string)

// Renderer converts tool results into sections. All AI-produced text is
// sanitized before display.
type Renderer struct {
	policy   *bluemonday.Policy
	titler   cases.Caser
	onResult ResultCallback
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithResultCallback registers the post-render callback.
func WithResultCallback(cb ResultCallback) Option {
	return func(r *Renderer) { r.onResult = cb }
}

// NewRenderer creates a renderer with strict text sanitization.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		policy: bluemonday.StrictPolicy(),
		titler: cases.Title(language.English),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render maps a result payload onto the tool's declared sections. Every
// declared section is emitted in order; sections whose path is absent from
// the result come back empty. An unparseable payload renders as the
// declared sections, all empty.
func (r *Renderer) Render(tool *schema.ToolSchema, result json.RawMessage) []Section {
	var data map[string]any
	_ = json.Unmarshal(result, &data)

	sections := make([]Section, 0, len(tool.Sections))
	for _, spec := range tool.Sections {
		sections = append(sections, r.renderSection(spec, lookupPath(data, spec.Path)))
	}

	if r.onResult != nil {
		r.onResult(tool.Slug)
	}
	return sections
}

func (r *Renderer) renderSection(spec schema.SectionSpec, value any) Section {
	section := Section{
		Category: spec.Category,
		Title:    spec.Title,
		Tone:     ToneNeutral,
	}
	if value == nil {
		return section
	}

	switch v := value.(type) {
	case string:
		section.Body = r.sanitize(v)
	case float64:
		if spec.Category == schema.SectionPrimaryScore {
			score := int(math.Round(v))
			section.Score = &score
			section.Bar = PercentBar(score, 20)
			section.Tone = ToneForScore(score)
		} else {
			section.Body = formatNumber(v)
		}
	case bool:
		section.Body = fmt.Sprintf("%t", v)
	case []any:
		section.Items = r.renderItems(v)
	case map[string]any:
		section.Items = r.renderObject(v)
	default:
		section.Body = r.sanitize(fmt.Sprintf("%v", v))
	}
	return section
}

// renderItems converts a result list to display items. Lists of strings
// become labeled entries; lists of objects pick a label field and fold the
// remaining scalar fields into the detail.
func (r *Renderer) renderItems(list []any) []Item {
	items := make([]Item, 0, len(list))
	for _, entry := range list {
		switch v := entry.(type) {
		case string:
			items = append(items, Item{Label: r.sanitize(v)})
		case map[string]any:
			items = append(items, r.renderObjectItem(v))
		case float64:
			items = append(items, Item{Value: formatNumber(v)})
		}
	}
	return items
}

// labelKeys are tried in order when picking an object's display label.
var labelKeys = []string{"title", "keyword", "category", "phase", "name", "label"}

func (r *Renderer) renderObjectItem(obj map[string]any) Item {
	item := Item{}
	labelKey := ""
	for _, key := range labelKeys {
		if s, ok := obj[key].(string); ok {
			item.Label = r.sanitize(s)
			labelKey = key
			break
		}
	}

	var details []string
	for _, key := range sortedKeys(obj) {
		if key == labelKey {
			continue
		}
		switch v := obj[key].(type) {
		case string:
			details = append(details, r.sanitize(v))
		case float64:
			item.Value = formatNumber(v)
		case []any:
			for _, nested := range v {
				if s, ok := nested.(string); ok {
					details = append(details, r.sanitize(s))
				}
			}
		}
	}
	item.Detail = strings.Join(details, " — ")
	return item
}

// renderObject flattens a scalar-valued object (e.g. a market comparison)
// into labeled items.
func (r *Renderer) renderObject(obj map[string]any) []Item {
	items := make([]Item, 0, len(obj))
	for _, key := range sortedKeys(obj) {
		item := Item{Label: r.humanize(key)}
		switch v := obj[key].(type) {
		case string:
			item.Value = r.sanitize(v)
		case float64:
			item.Value = formatNumber(v)
		case bool:
			item.Value = fmt.Sprintf("%t", v)
		default:
			continue
		}
		items = append(items, item)
	}
	return items
}

func (r *Renderer) sanitize(s string) string {
	return strings.TrimSpace(r.policy.Sanitize(s))
}

// humanize turns a camelCase result key into a display label.
func (r *Renderer) humanize(key string) string {
	var words []string
	start := 0
	for i, ch := range key {
		if i > 0 && ch >= 'A' && ch <= 'Z' {
			words = append(words, key[start:i])
			start = i
		}
	}
	words = append(words, key[start:])
	return r.titler.String(strings.ToLower(strings.Join(words, " ")))
}

// lookupPath walks a dot-separated path into nested result objects.
func lookupPath(data map[string]any, path string) any {
	parts := strings.Split(path, ".")
	var current any = data
	for _, part := range parts {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = obj[part]
		if !ok {
			return nil
		}
	}
	return current
}

func sortedKeys(obj map[string]any) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// PercentBar renders a 0-100 score as a fixed-width bar.
func PercentBar(score, width int) string {
	if width <= 0 {
		return ""
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	filled := score * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// ToneForScore classifies a 0-100 score with fixed thresholds.
func ToneForScore(score int) Tone {
	switch {
	case score >= 70:
		return ToneGood
	case score >= 40:
		return ToneWarn
	default:
		return ToneBad
	}
}

// Pluralize returns the singular or plural form for n.
func Pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

func formatNumber(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
