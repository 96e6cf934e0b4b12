package prompts

import (
	"fmt"

	"github.com/promptpilot/prompt-pilot-service/types"
)

// ValidationError represents a shape-validation failure on a parsed model
// response.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidateQuestions checks the parsed clarify response: the questions field
// must be present as a sequence of text. The 3-7 length guidance lives in the
// system prompt only; the model is trusted to follow it.
func ValidateQuestions(resp *types.ClarifyResponse) []ValidationError {
	if resp == nil || resp.Questions == nil {
		return []ValidationError{{
			Field:   "questions",
			Message: "required field 'questions' is missing or not an array",
		}}
	}
	return nil
}

// ValidateRoadmap checks the parsed roadmap response for the presence of the
// summary, stages and tips fields. Stage and prompt counts are deliberately
// not enforced.
func ValidateRoadmap(resp *types.PromptRoadmapResponse) []ValidationError {
	if resp == nil {
		return []ValidationError{{Field: "roadmap", Message: "response is empty"}}
	}

	var errs []ValidationError
	addMissing := func(field string, present bool) {
		if !present {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("required field '%s' is missing", field),
			})
		}
	}
	addMissing("summary", resp.Summary != nil)
	addMissing("stages", resp.Stages != nil)
	addMissing("tips", resp.Tips != nil)
	return errs
}
