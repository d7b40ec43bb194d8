package schema

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds the set of known tool schemas. Registration is expected at
// startup; lookups are concurrency-safe afterwards.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]*ToolSchema
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]*ToolSchema)}
}

// Register adds a tool schema after validating its declaration. Duplicate
// slugs are rejected.
func (r *Registry) Register(tool *ToolSchema) error {
	if err := tool.validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[tool.Slug]; exists {
		return fmt.Errorf("tool %q already registered", tool.Slug)
	}
	r.tools[tool.Slug] = tool
	return nil
}

// Get returns the schema for slug.
func (r *Registry) Get(slug string) (*ToolSchema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, ok := r.tools[slug]
	return tool, ok
}

// All returns every registered schema, ordered by slug.
func (r *Registry) All() []*ToolSchema {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*ToolSchema, 0, len(r.tools))
	for _, tool := range r.tools {
		out = append(out, tool)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}

// Builtin returns a registry populated with the built-in career tools.
func Builtin() *Registry {
	r := NewRegistry()
	for _, tool := range builtinTools() {
		if err := r.Register(tool); err != nil {
			// Built-in definitions are validated by tests; a failure here
			// is a programming defect.
			panic(fmt.Sprintf("invalid built-in tool schema: %v", err))
		}
	}
	return r
}
