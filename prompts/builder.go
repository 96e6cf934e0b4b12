package prompts

import (
	"fmt"
	"strings"

	"github.com/promptpilot/prompt-pilot-service/types"
)

// BuildClarifyUserMessage renders the user message for the clarifying
// questions exchange from the submitted goal input.
func BuildClarifyUserMessage(input types.GoalInput) string {
	var sb strings.Builder
	writeGoalFields(&sb, input)
	sb.WriteString("\nGenerate short, generic clarifying questions to design a better prompt roadmap.")
	return sb.String()
}

// BuildRoadmapUserMessage renders the user message for the roadmap exchange.
// Clarification answers are appended as Q{n}/A{n} lines in positional order,
// with unanswered questions marked "(not answered)".
func BuildRoadmapUserMessage(input types.GoalInput, clarifications []types.ClarificationAnswer) string {
	var sb strings.Builder
	writeGoalFields(&sb, input)

	if len(clarifications) > 0 {
		sb.WriteString("\nClarifying Q&A:\n")
		for i, c := range clarifications {
			answer := c.Answer
			if answer == "" {
				answer = "(not answered)"
			}
			fmt.Fprintf(&sb, "Q%d: %s\nA%d: %s\n", i+1, c.Question, i+1, answer)
		}
	}

	sb.WriteString("\nGenerate a comprehensive prompt roadmap for this user.")
	return sb.String()
}

func writeGoalFields(sb *strings.Builder, input types.GoalInput) {
	tools := input.PreferredTools
	if tools == "" {
		tools = "Not specified"
	}

	fmt.Fprintf(sb, "Goal: %s\n", input.GoalDescription)
	fmt.Fprintf(sb, "Use case type: %s\n", input.UseCaseType)
	fmt.Fprintf(sb, "AI skill level: %s\n", input.AISkillLevel)
	fmt.Fprintf(sb, "Time horizon: %s\n", input.TimeHorizon)
	fmt.Fprintf(sb, "Preferred tools: %s\n", tools)
}
