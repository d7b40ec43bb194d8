// Package form owns the mutable input state for one mounted tool instance.
// A Controller is not safe for concurrent use; each instance belongs to a
// single interaction flow.
package form

import (
	"careerkit/internal/schema"
)

// Controller tracks field values and wizard progress for one tool instance.
type Controller struct {
	tool        *schema.ToolSchema
	values      map[string]any
	currentStep int
	totalSteps  int
}

// New creates a controller initialized with the schema's declared defaults
// and positioned at step 1.
func New(tool *schema.ToolSchema) *Controller {
	return &Controller{
		tool:        tool,
		values:      tool.Defaults(),
		currentStep: 1,
		totalSteps:  tool.StepCount(),
	}
}

// Tool returns the schema this controller was built from.
func (c *Controller) Tool() *schema.ToolSchema {
	return c.tool
}

// SetField replaces the value for name unconditionally. Invalid values are
// accepted; validity surfaces through StepValid/Complete rather than as
// hard errors at edit time. Values for fields the schema does not declare
// are ignored.
func (c *Controller) SetField(name string, value any) {
	if _, ok := c.tool.Field(name); !ok {
		return
	}
	c.values[name] = value
}

// Value returns the current value for name.
func (c *Controller) Value(name string) any {
	return c.values[name]
}

// Values returns a copy of the current field values, suitable for
// submission.
func (c *Controller) Values() map[string]any {
	out := make(map[string]any, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}

// CurrentStep returns the 1-indexed wizard step.
func (c *Controller) CurrentStep() int {
	return c.currentStep
}

// TotalSteps returns the number of steps the schema declares.
func (c *Controller) TotalSteps() int {
	return c.totalSteps
}

// StepValid reports whether every required field scoped to step currently
// holds a valid value.
func (c *Controller) StepValid(step int) bool {
	for _, f := range c.tool.FieldsForStep(step) {
		if !f.Required {
			continue
		}
		if f.Validate(c.values[f.Name]) != nil {
			return false
		}
	}
	return true
}

// Complete reports whether the whole form would pass submission validation.
func (c *Controller) Complete() bool {
	return c.tool.ValidateAll(c.values) == nil
}

// NextStep advances the wizard by one step. It is a silent no-op at the
// last step or while the current step is invalid; single-step tools never
// advance and rely on submission as the only gate.
func (c *Controller) NextStep() {
	if c.currentStep >= c.totalSteps {
		return
	}
	if !c.StepValid(c.currentStep) {
		return
	}
	c.currentStep++
}

// PrevStep retreats by one step; no-op at the first step.
func (c *Controller) PrevStep() {
	if c.currentStep <= 1 {
		return
	}
	c.currentStep--
}

// Reset restores the schema defaults and returns to step 1, regardless of
// prior mutation history.
func (c *Controller) Reset() {
	c.values = c.tool.Defaults()
	c.currentStep = 1
}
