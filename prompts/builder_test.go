package prompts

import (
	"strings"
	"testing"

	"github.com/promptpilot/prompt-pilot-service/types"
)

func TestBuildClarifyUserMessage(t *testing.T) {
	input := types.GoalInput{
		GoalDescription: "Learn Kubernetes",
		UseCaseType:     types.UseCaseLearnTopic,
		AISkillLevel:    types.SkillBeginner,
		TimeHorizon:     types.HorizonThisWeek,
		PreferredTools:  "ChatGPT",
	}

	msg := BuildClarifyUserMessage(input)

	for _, want := range []string{
		"Goal: Learn Kubernetes",
		"Use case type: learn_topic",
		"AI skill level: beginner",
		"Time horizon: this_week",
		"Preferred tools: ChatGPT",
		"Generate short, generic clarifying questions",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("Expected message to contain %q, got:\n%s", want, msg)
		}
	}
}

func TestBuildClarifyUserMessage_NoTools(t *testing.T) {
	input := types.GoalInput{GoalDescription: "Write a novel"}

	msg := BuildClarifyUserMessage(input)
	if !strings.Contains(msg, "Preferred tools: Not specified") {
		t.Errorf("Expected 'Not specified' fallback for tools, got:\n%s", msg)
	}
}

func TestBuildRoadmapUserMessage_WithAnswers(t *testing.T) {
	input := types.GoalInput{GoalDescription: "Build a SaaS"}
	clarifications := []types.ClarificationAnswer{
		{Question: "What is your budget?", Answer: "Low"},
		{Question: "Solo or team?", Answer: ""},
	}

	msg := BuildRoadmapUserMessage(input, clarifications)

	for _, want := range []string{
		"Clarifying Q&A:",
		"Q1: What is your budget?",
		"A1: Low",
		"Q2: Solo or team?",
		"A2: (not answered)",
		"Generate a comprehensive prompt roadmap for this user.",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("Expected message to contain %q, got:\n%s", want, msg)
		}
	}
}

func TestBuildRoadmapUserMessage_NoAnswers(t *testing.T) {
	input := types.GoalInput{GoalDescription: "Build a SaaS"}

	msg := BuildRoadmapUserMessage(input, nil)
	if strings.Contains(msg, "Clarifying Q&A:") {
		t.Errorf("Expected no Q&A section when clarifications are empty, got:\n%s", msg)
	}
	if !strings.Contains(msg, "Generate a comprehensive prompt roadmap") {
		t.Errorf("Expected roadmap instruction, got:\n%s", msg)
	}
}

func TestBuildRoadmapUserMessage_PreservesOrder(t *testing.T) {
	input := types.GoalInput{GoalDescription: "Plan a trip"}
	clarifications := []types.ClarificationAnswer{
		{Question: "Where to?", Answer: "Japan"},
		{Question: "When?", Answer: "Spring"},
		{Question: "Budget?", Answer: "Flexible"},
	}

	msg := BuildRoadmapUserMessage(input, clarifications)

	q1 := strings.Index(msg, "Q1: Where to?")
	q2 := strings.Index(msg, "Q2: When?")
	q3 := strings.Index(msg, "Q3: Budget?")
	if q1 < 0 || q2 < 0 || q3 < 0 || !(q1 < q2 && q2 < q3) {
		t.Errorf("Expected questions in submission order, got:\n%s", msg)
	}
}
