package adapter

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterAdapter implements TextGenerator against OpenRouter's
// chat-completion endpoint. This is the primary advanced boundary: the
// model ID is chosen per request by the router.
type OpenRouterAdapter struct {
	client openai.Client
}

// NewOpenRouterAdapter creates an OpenRouter adapter.
func NewOpenRouterAdapter(apiKey string) (*OpenRouterAdapter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(openRouterBaseURL),
	)
	return &OpenRouterAdapter{client: client}, nil
}

// Name returns the adapter identifier.
func (a *OpenRouterAdapter) Name() string {
	return "openrouter"
}

// Generate sends a chat-completion request with the per-request model ID,
// system instruction, and sampling parameters.
func (a *OpenRouterAdapter) Generate(ctx context.Context, req Request) (*Response, error) {
	if req.Model == "" {
		return nil, fmt.Errorf("openrouter request requires a model ID")
	}

	messages := []openai.ChatCompletionMessageParamUnion{}
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(req.Model),
		Messages: messages,
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	if req.TopP > 0 {
		params.TopP = openai.Float(req.TopP)
	}

	resp, err := a.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openrouter API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, &AdapterError{Err: fmt.Errorf("openrouter returned no choices")}
	}

	return &Response{Content: resp.Choices[0].Message.Content}, nil
}
