package ai

import (
	"fmt"
	"strings"

	"careerkit/internal/schema"
)

// DefaultSystemPrompt is the base system instruction shared by all tools.
const DefaultSystemPrompt = `You are an expert career advisor and labor-market analyst with deep knowledge of:

- Global job markets, salary benchmarks, and hiring trends
- Career planning, skill development, and professional transitions
- Automation, AI disruption, and the future of work
- International employment, relocation, and education economics

Your core principles are:
- Ground every assessment in realistic, current market data
- Be honest about uncertainty; never fabricate statistics
- Give specific, actionable guidance rather than generic advice
- Respond strictly in the requested JSON structure`

// toolGuidance holds per-tool additions to the system prompt, keyed by tool slug.
var toolGuidance = map[string]string{
	"career-roadmap": `Focus on concrete, phased milestones. Each phase must name skills to acquire,
actions to take, and a realistic timeframe for the person's experience level.`,

	"freelance-rate": `Base hourly rate recommendations on the person's skill, experience, region,
and market positioning. Always provide a conservative, standard, and premium tier.`,

	"automation-risk": `Assess how exposed the given occupation is to automation and AI over the
next decade. Distinguish task-level exposure from full-occupation displacement.`,

	"career-transition": `Map transferable skills between the current and target fields. Identify
genuine gaps and realistic bridging steps, not aspirational filler.`,

	"job-demand": `Analyze current demand, competition, and hiring outlook for the given role
and region. Quantify competition where possible.`,

	"keyword-finder": `Extract the concrete skills, technologies, and qualifications an applicant
tracking system would match on. Categorize keywords and rank them by importance
to this specific posting. Never invent keywords absent from the text.`,

	"linkedin-headline": `Write headlines that are specific and credible. Avoid buzzwords such as
"guru", "ninja", or "passionate". Stay within LinkedIn's 220-character limit.`,

	"resume-gap": `Treat employment gaps as neutral facts to be framed, not flaws to hide.
Suggest honest framing language for each gap.`,

	"study-abroad-roi": `Compute return on investment from total cost, foregone earnings, and
realistic post-graduation salary uplift in the target country.`,

	"work-abroad-savings": `Estimate realistic monthly savings from local salary norms, taxes, and
cost of living for the given role and destination.`,

	"work-life-balance": `Score balance from the reported working pattern. Weight chronic overwork
and inability to disconnect more heavily than occasional busy periods.`,
}

// systemPromptFor composes the default system prompt for a tool.
func systemPromptFor(slug string) string {
	guidance, ok := toolGuidance[slug]
	if !ok {
		return DefaultSystemPrompt
	}
	return DefaultSystemPrompt + "\n\n**Tool focus:**\n" + guidance
}

// buildUserPrompt renders the user's answers into the prompt sent to the
// model. The intro is the task statement (the tool description, or a
// loaded override); fields are listed in schema order using their display
// labels.
func buildUserPrompt(tool *schema.ToolSchema, values map[string]any, intro string) string {
	var sb strings.Builder
	sb.WriteString(intro)
	sb.WriteString("\n\n**User input:**\n")

	for _, field := range tool.Fields {
		value, ok := values[field.Name]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("- %s: %s\n", field.Label, formatPromptValue(value)))
	}

	sb.WriteString("\nProduce the analysis as JSON matching the required response schema.")
	return sb.String()
}

func formatPromptValue(value any) string {
	switch v := value.(type) {
	case string:
		if strings.ContainsAny(v, "\n") {
			return "\n-----\n" + v + "\n-----"
		}
		return v
	case []string:
		return strings.Join(v, ", ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprintf("%v", item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", v)
	}
}

// resolvePrompt selects the prompt string based on priority order:
// 1. A prompt loaded from a file (hot-reloadable).
// 2. A hardcoded default prompt.
func resolvePrompt(loadedFromFile, fromDefault string) string {
	if loadedFromFile != "" {
		return loadedFromFile
	}
	return fromDefault
}
