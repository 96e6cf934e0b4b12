package flow

import (
	"errors"
	"testing"

	"github.com/promptpilot/prompt-pilot-service/types"
)

func goalInput() types.GoalInput {
	return types.GoalInput{
		GoalDescription: "Learn Go",
		UseCaseType:     types.UseCaseLearnTopic,
	}
}

func roadmap() *types.PromptRoadmapResponse {
	return &types.PromptRoadmapResponse{
		Summary: []string{"Start small"},
		Stages:  []types.RoadmapStage{{ID: "s1", Index: 1, Name: "Foundations"}},
		Tips:    []string{"Iterate"},
	}
}

func TestController_HappyPath(t *testing.T) {
	c := NewController()
	if c.Step() != StepGoal {
		t.Fatalf("Expected goal step, got %s", c.Step())
	}

	id, err := c.BeginClarify(goalInput())
	if err != nil {
		t.Fatalf("BeginClarify failed: %v", err)
	}
	if !c.Pending() {
		t.Error("Expected pending while the request is in flight")
	}

	if !c.ApplyQuestions(id, []string{"Why?"}, nil) {
		t.Fatal("Expected result applied")
	}
	if c.Step() != StepClarify || c.Pending() {
		t.Fatalf("Expected clarify step and not pending, got %s pending=%v", c.Step(), c.Pending())
	}

	id, err = c.BeginRoadmap([]types.ClarificationAnswer{{Question: "Why?", Answer: "Career"}})
	if err != nil {
		t.Fatalf("BeginRoadmap failed: %v", err)
	}

	sess, applied := c.ApplyRoadmap(id, roadmap(), nil)
	if !applied || sess == nil {
		t.Fatal("Expected roadmap applied with a session for persistence")
	}
	if c.Step() != StepRoadmap {
		t.Fatalf("Expected roadmap step, got %s", c.Step())
	}
	if sess.Input.GoalDescription != "Learn Go" || sess.Roadmap == nil {
		t.Errorf("Session incomplete: %+v", sess)
	}
	if sess.CreatedAt == "" {
		t.Error("Expected a createdAt timestamp")
	}
	if c.Restored() {
		t.Error("A freshly generated roadmap is not a restored one")
	}
}

func TestController_PendingBlocksResubmission(t *testing.T) {
	c := NewController()
	if _, err := c.BeginClarify(goalInput()); err != nil {
		t.Fatalf("BeginClarify failed: %v", err)
	}

	if _, err := c.BeginClarify(goalInput()); !errors.Is(err, ErrRequestPending) {
		t.Errorf("Expected ErrRequestPending, got %v", err)
	}
}

func TestController_ErrorKeepsStep(t *testing.T) {
	c := NewController()
	id, _ := c.BeginClarify(goalInput())

	if !c.ApplyQuestions(id, nil, errors.New("upstream down")) {
		t.Fatal("Expected error result applied")
	}
	if c.Step() != StepGoal {
		t.Errorf("Expected to stay on the goal step, got %s", c.Step())
	}
	if c.Err() != "upstream down" {
		t.Errorf("Expected error message surfaced, got %q", c.Err())
	}
	if c.Pending() {
		t.Error("Expected pending cleared after a failed result")
	}

	// Retrying after a failure works
	if _, err := c.BeginClarify(goalInput()); err != nil {
		t.Errorf("Expected retry allowed, got %v", err)
	}
}

func TestController_StaleResultDiscarded(t *testing.T) {
	c := NewController()
	id, _ := c.BeginClarify(goalInput())

	// The user resets while the request is still in flight.
	c.Reset()

	if c.ApplyQuestions(id, []string{"Why?"}, nil) {
		t.Error("Expected stale result discarded after reset")
	}
	if c.Step() != StepGoal || c.Pending() {
		t.Errorf("Expected fresh goal step, got %s pending=%v", c.Step(), c.Pending())
	}
}

func TestController_WrongStepRejected(t *testing.T) {
	c := NewController()

	if _, err := c.BeginRoadmap(nil); err == nil {
		t.Error("Expected roadmap request rejected on the goal step")
	}
}

func TestController_BackKeepsInput(t *testing.T) {
	c := NewController()
	id, _ := c.BeginClarify(goalInput())
	c.ApplyQuestions(id, []string{"Why?"}, nil)

	c.Back()
	if c.Step() != StepGoal {
		t.Fatalf("Expected goal step, got %s", c.Step())
	}
	if c.Input() == nil || c.Input().GoalDescription != "Learn Go" {
		t.Error("Expected the entered goal kept for re-editing")
	}
}

func TestController_SkippedAnswers(t *testing.T) {
	c := NewController()
	id, _ := c.BeginClarify(goalInput())
	c.ApplyQuestions(id, []string{"Why?"}, nil)

	// nil answers are the explicit skip
	if _, err := c.BeginRoadmap(nil); err != nil {
		t.Fatalf("BeginRoadmap failed: %v", err)
	}
	if c.Answers() == nil || len(c.Answers()) != 0 {
		t.Errorf("Expected empty answer list, got %v", c.Answers())
	}
}

func TestController_Restore(t *testing.T) {
	c := NewController()

	sess := &types.Session{
		Input:                  goalInput(),
		ClarificationQuestions: []string{"Why?"},
		ClarificationAnswers:   []types.ClarificationAnswer{{Question: "Why?", Answer: "Career"}},
		Roadmap:                roadmap(),
		CreatedAt:              "2026-01-15T10:00:00Z",
	}

	if !c.Restore(sess) {
		t.Fatal("Expected session restored")
	}
	if c.Step() != StepRoadmap || !c.Restored() {
		t.Errorf("Expected restored roadmap step, got %s restored=%v", c.Step(), c.Restored())
	}
	if c.Roadmap() == nil {
		t.Error("Expected roadmap available without a network call")
	}
}

func TestController_RestoreRejectsIncomplete(t *testing.T) {
	c := NewController()

	if c.Restore(nil) {
		t.Error("Expected nil session rejected")
	}
	if c.Restore(&types.Session{Input: goalInput()}) {
		t.Error("Expected roadmap-less session rejected")
	}
	if c.Step() != StepGoal {
		t.Errorf("Expected untouched goal step, got %s", c.Step())
	}
}

func TestController_Reset(t *testing.T) {
	c := NewController()
	id, _ := c.BeginClarify(goalInput())
	c.ApplyQuestions(id, []string{"Why?"}, nil)
	id, _ = c.BeginRoadmap(nil)
	c.ApplyRoadmap(id, roadmap(), nil)

	c.Reset()

	if c.Step() != StepGoal {
		t.Errorf("Expected goal step after reset, got %s", c.Step())
	}
	if c.Input() != nil || c.Questions() != nil || c.Roadmap() != nil {
		t.Error("Expected all state cleared after reset")
	}
}
