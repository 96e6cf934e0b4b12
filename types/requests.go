package types

import "encoding/json"

// ClarifyRequest is the payload for POST /clarify. Input is kept raw so the
// handler can distinguish a missing object from one that fails to decode
// (e.g. a non-string goalDescription) and report both the same way.
type ClarifyRequest struct {
	Input json.RawMessage `json:"input"`
}

// RoadmapRequest is the payload for POST /roadmap. Clarifications default to
// empty when omitted.
type RoadmapRequest struct {
	Input          json.RawMessage       `json:"input"`
	Clarifications []ClarificationAnswer `json:"clarifications"`
}

// ClarifyResponse is the success payload for POST /clarify.
type ClarifyResponse struct {
	Questions []string `json:"questions"`
}

// ErrorResponse is the error payload shared by all endpoints. RawText carries
// the upstream model's unparseable output, when there is one, so the user can
// recover it manually.
type ErrorResponse struct {
	Error   string `json:"error"`
	RawText string `json:"rawText,omitempty"`
}

// SessionCreatedResponse is returned when a session is cached server-side.
type SessionCreatedResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
