package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/promptpilot/prompt-pilot-service/types"
)

// Fixed messages shared by the validation paths. Identical bodies always get
// identical error shapes.
const (
	msgGoalRequired   = "Goal description is required"
	msgInvalidBody    = "Invalid request body"
	msgInternalError  = "An error occurred. Please try again."
	msgSessionMissing = "Session not found"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, rawText string) {
	writeJSON(w, status, types.ErrorResponse{Error: message, RawText: rawText})
}

// decodeGoalInput parses the raw input object and enforces the one hard
// validation rule: a goal description that is present and a non-empty string.
// Any failure (absent object, non-string field, blank text) reports the same
// fixed message.
func decodeGoalInput(raw json.RawMessage) (types.GoalInput, bool) {
	var input types.GoalInput
	if len(raw) == 0 {
		return input, false
	}
	if err := json.Unmarshal(raw, &input); err != nil {
		return input, false
	}
	if !input.Valid() {
		return input, false
	}
	return input, true
}
