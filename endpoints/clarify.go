package endpoints

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/promptpilot/prompt-pilot-service/gateway"
	"github.com/promptpilot/prompt-pilot-service/types"
)

// ClarifyHandler handles POST /clarify: validates the goal input, asks the
// gateway for clarifying questions and returns them verbatim.
func ClarifyHandler(g *gateway.Gateway) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ClarifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody, "")
			return
		}

		input, ok := decodeGoalInput(req.Input)
		if !ok {
			writeError(w, http.StatusBadRequest, msgGoalRequired, "")
			return
		}

		questions, err := g.ClarifyingQuestions(r.Context(), input)
		if err != nil {
			respondGatewayError(w, "clarify", err)
			return
		}

		writeJSON(w, http.StatusOK, types.ClarifyResponse{Questions: questions})
	}
}

// respondGatewayError maps a gateway failure onto the 500 contract: the
// gateway's user-facing message plus the raw model output when one exists.
// Anything else gets the generic internal message with no details leaked.
func respondGatewayError(w http.ResponseWriter, op string, err error) {
	var gerr *gateway.Error
	if errors.As(err, &gerr) {
		writeError(w, http.StatusInternalServerError, gerr.Message, gerr.RawText)
		return
	}
	log.Printf("Unexpected %s error: %v", op, err)
	writeError(w, http.StatusInternalServerError, msgInternalError, "")
}
