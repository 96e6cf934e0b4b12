// Package export serializes a completed roadmap for use outside the app.
// Both serializers are pure functions: the same roadmap always yields
// byte-identical output.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/promptpilot/prompt-pilot-service/types"
)

// AsMarkdown renders the roadmap as a Markdown document: summary list, one
// section per stage with each prompt in a fenced block, and a numbered tips
// list.
func AsMarkdown(roadmap *types.PromptRoadmapResponse) string {
	var sb strings.Builder

	sb.WriteString("# Prompt Roadmap\n\n")

	sb.WriteString("## Summary\n\n")
	for _, item := range roadmap.Summary {
		fmt.Fprintf(&sb, "- %s\n", item)
	}
	sb.WriteString("\n")

	for _, stage := range roadmap.Stages {
		fmt.Fprintf(&sb, "## Stage %d: %s\n\n", stage.Index, stage.Name)
		fmt.Fprintf(&sb, "**Objective:** %s\n\n", stage.Objective)
		fmt.Fprintf(&sb, "**When to use:** %s\n\n", stage.WhenToUse)
		sb.WriteString("### Prompts\n\n")
		for i, prompt := range stage.Prompts {
			fmt.Fprintf(&sb, "#### %d. %s\n\n", i+1, prompt.Title)
			sb.WriteString("```\n")
			fmt.Fprintf(&sb, "%s\n", prompt.Text)
			sb.WriteString("```\n\n")
		}
	}

	sb.WriteString("## Tips for Use\n\n")
	for i, tip := range roadmap.Tips {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, tip)
	}

	return sb.String()
}

// PromptsOnly renders a flat text block of just the prompts: an upper-cased
// header per stage followed by each prompt's title and literal text, with
// trailing whitespace trimmed.
func PromptsOnly(roadmap *types.PromptRoadmapResponse) string {
	var sb strings.Builder

	for _, stage := range roadmap.Stages {
		fmt.Fprintf(&sb, "=== STAGE %d: %s ===\n\n", stage.Index, strings.ToUpper(stage.Name))
		for i, prompt := range stage.Prompts {
			fmt.Fprintf(&sb, "[%d] %s\n", i+1, prompt.Title)
			fmt.Fprintf(&sb, "%s\n\n", prompt.Text)
		}
	}

	return strings.TrimSpace(sb.String())
}

// AsHTML converts the Markdown form to HTML.
func AsHTML(roadmap *types.PromptRoadmapResponse) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(AsMarkdown(roadmap)), &buf); err != nil {
		return "", fmt.Errorf("failed to render roadmap HTML: %w", err)
	}
	return buf.String(), nil
}
