package gateway

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/promptpilot/prompt-pilot-service/config"
)

// chat parameters fixed by the product, not configuration.
const (
	temperature = 0.7
)

// ChatRequest is one two-message exchange sent to the completion provider.
type ChatRequest struct {
	System    string
	User      string
	MaxTokens int64
}

// ChatClient abstracts the hosted chat-completion endpoint so the gateway can
// be exercised with a canned client in tests.
type ChatClient interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

// OpenAIClient implements ChatClient with the official openai-go SDK,
// requesting a JSON-object-shaped reply. A single round trip, no retry,
// no streaming.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient builds the provider client once from configuration.
func NewOpenAIClient(cfg *config.LLMConfig) (*OpenAIClient, error) {
	if cfg == nil {
		return nil, errors.New("llm config is nil")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key missing; set llm.api_key or OPENAI_API_KEY")
	}
	if cfg.Model == "" {
		return nil, errors.New("llm model is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAIClient{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
	}, nil
}

func (o *OpenAIClient) Complete(ctx context.Context, req ChatRequest) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.User),
		},
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(req.MaxTokens),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
