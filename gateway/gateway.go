package gateway

import (
	"context"
	"encoding/json"
	"log"

	"github.com/promptpilot/prompt-pilot-service/prompts"
	"github.com/promptpilot/prompt-pilot-service/types"
)

// Token budgets for the two operations.
const (
	clarifyMaxTokens = 1000
	roadmapMaxTokens = 4000
)

// User-facing fallback messages. Kept stable so clients can show them as-is.
const (
	msgClarifyEmpty  = "Failed to generate questions. Please try again."
	msgRoadmapEmpty  = "Failed to generate roadmap. Please try again."
	msgMalformed     = "The AI returned an unexpected format. Here is the raw output."
	msgInvalidShape  = "Invalid response format. Please try again."
	msgClarifyFailed = "An error occurred while generating questions. Please try again."
	msgRoadmapFailed = "An error occurred while generating the roadmap. Please try again."
)

// Gateway runs the two prompt-roadmap exchanges against a chat-completion
// provider. It is constructed once at startup and held for the process
// lifetime.
type Gateway struct {
	chat ChatClient
}

func New(chat ChatClient) *Gateway {
	return &Gateway{chat: chat}
}

// ClarifyingQuestions asks the model for 3-7 short generic questions about
// the submitted goal. The returned slice is exactly the provider's sequence,
// never mutated or reordered.
func (g *Gateway) ClarifyingQuestions(ctx context.Context, input types.GoalInput) ([]string, error) {
	content, err := g.chat.Complete(ctx, ChatRequest{
		System:    prompts.ClarifySystemPrompt,
		User:      prompts.BuildClarifyUserMessage(input),
		MaxTokens: clarifyMaxTokens,
	})
	if err != nil {
		log.Printf("Clarify request failed: %v", err)
		return nil, &Error{Kind: KindRequestFailed, Message: msgClarifyFailed, Err: err}
	}
	if content == "" {
		return nil, &Error{Kind: KindEmptyResponse, Message: msgClarifyEmpty}
	}

	var parsed types.ClarifyResponse
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, &Error{Kind: KindMalformedResponse, Message: msgMalformed, RawText: content}
	}

	if errs := prompts.ValidateQuestions(&parsed); len(errs) > 0 {
		log.Printf("Clarify response failed shape validation: %v", errs)
		return nil, &Error{Kind: KindInvalidShape, Message: msgInvalidShape}
	}

	return parsed.Questions, nil
}

// Roadmap asks the model for the full staged prompt roadmap, feeding back the
// clarification Q&A pairs. The parsed payload is returned verbatim.
func (g *Gateway) Roadmap(ctx context.Context, input types.GoalInput, clarifications []types.ClarificationAnswer) (*types.PromptRoadmapResponse, error) {
	content, err := g.chat.Complete(ctx, ChatRequest{
		System:    prompts.RoadmapSystemPrompt,
		User:      prompts.BuildRoadmapUserMessage(input, clarifications),
		MaxTokens: roadmapMaxTokens,
	})
	if err != nil {
		log.Printf("Roadmap request failed: %v", err)
		return nil, &Error{Kind: KindRequestFailed, Message: msgRoadmapFailed, Err: err}
	}
	if content == "" {
		return nil, &Error{Kind: KindEmptyResponse, Message: msgRoadmapEmpty}
	}

	var parsed types.PromptRoadmapResponse
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, &Error{Kind: KindMalformedResponse, Message: msgMalformed, RawText: content}
	}

	if errs := prompts.ValidateRoadmap(&parsed); len(errs) > 0 {
		log.Printf("Roadmap response failed shape validation: %v", errs)
		return nil, &Error{Kind: KindInvalidShape, Message: msgInvalidShape}
	}

	return &parsed, nil
}
