package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/promptpilot/prompt-pilot-service/gateway"
	"github.com/promptpilot/prompt-pilot-service/types"
)

// RoadmapHandler handles POST /roadmap: validates the goal input, feeds the
// clarification Q&A back to the gateway and returns the generated roadmap
// payload verbatim. Clarifications default to empty when omitted.
func RoadmapHandler(g *gateway.Gateway) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.RoadmapRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody, "")
			return
		}

		input, ok := decodeGoalInput(req.Input)
		if !ok {
			writeError(w, http.StatusBadRequest, msgGoalRequired, "")
			return
		}

		clarifications := req.Clarifications
		if clarifications == nil {
			clarifications = []types.ClarificationAnswer{}
		}

		roadmap, err := g.Roadmap(r.Context(), input, clarifications)
		if err != nil {
			respondGatewayError(w, "roadmap", err)
			return
		}

		writeJSON(w, http.StatusOK, roadmap)
	}
}
