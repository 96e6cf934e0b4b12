package prompts

import (
	"testing"

	"github.com/promptpilot/prompt-pilot-service/types"
)

func TestValidateQuestions_Valid(t *testing.T) {
	resp := &types.ClarifyResponse{Questions: []string{"What is your budget?"}}

	errors := ValidateQuestions(resp)
	if len(errors) != 0 {
		t.Errorf("Expected no validation errors, got %d: %v", len(errors), errors)
	}
}

func TestValidateQuestions_EmptyListIsValid(t *testing.T) {
	resp := &types.ClarifyResponse{Questions: []string{}}

	errors := ValidateQuestions(resp)
	if len(errors) != 0 {
		t.Errorf("Expected no validation errors for empty list, got %d", len(errors))
	}
}

func TestValidateQuestions_MissingField(t *testing.T) {
	resp := &types.ClarifyResponse{}

	errors := ValidateQuestions(resp)
	if len(errors) != 1 {
		t.Fatalf("Expected 1 validation error, got %d", len(errors))
	}
	if errors[0].Field != "questions" {
		t.Errorf("Expected error field 'questions', got '%s'", errors[0].Field)
	}
}

func TestValidateRoadmap_Valid(t *testing.T) {
	resp := &types.PromptRoadmapResponse{
		Summary: []string{"First learn the basics"},
		Stages:  []types.RoadmapStage{{ID: "stage-1", Index: 1, Name: "Foundations"}},
		Tips:    []string{"Iterate on prompts"},
	}

	errors := ValidateRoadmap(resp)
	if len(errors) != 0 {
		t.Errorf("Expected no validation errors, got %d: %v", len(errors), errors)
	}
}

func TestValidateRoadmap_MissingFields(t *testing.T) {
	resp := &types.PromptRoadmapResponse{
		Summary: []string{"Only a summary"},
	}

	errors := ValidateRoadmap(resp)
	if len(errors) != 2 {
		t.Fatalf("Expected 2 validation errors, got %d: %v", len(errors), errors)
	}
	if errors[0].Field != "stages" || errors[1].Field != "tips" {
		t.Errorf("Expected errors for 'stages' then 'tips', got %v", errors)
	}
}

func TestValidateRoadmap_NilResponse(t *testing.T) {
	errors := ValidateRoadmap(nil)
	if len(errors) == 0 {
		t.Error("Expected validation error for nil response")
	}
}

func TestValidateRoadmap_EmptyStagesAllowed(t *testing.T) {
	// Stage counts are not enforced; an empty array still satisfies the shape.
	resp := &types.PromptRoadmapResponse{
		Summary: []string{},
		Stages:  []types.RoadmapStage{},
		Tips:    []string{},
	}

	errors := ValidateRoadmap(resp)
	if len(errors) != 0 {
		t.Errorf("Expected no validation errors, got %d: %v", len(errors), errors)
	}
}
