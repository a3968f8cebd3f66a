package generator

import (
	"context"
	"errors"
	"fmt"
	"kubbot/internal/core/domain"

	"github.com/revrost/go-openrouter"
)

var (
	ErrNotConfigured = errors.New("openrouter API key not configured")
	ErrNoChoices     = errors.New("openrouter returned no choices")
)

type client interface {
	CreateChatCompletion(ctx context.Context,
		request openrouter.ChatCompletionRequest) (openrouter.ChatCompletionResponse, error)
}

type OpenRouter struct {
	client       client
	systemPrompt string
}

// NewOpenRouter returns a generator for the given key. An empty key yields a generator that fails every request
// with ErrNotConfigured, so the bot can run without LLM access.
func NewOpenRouter(apiKey, systemPrompt string) *OpenRouter {
	g := &OpenRouter{systemPrompt: systemPrompt}
	if apiKey != "" {
		g.client = openrouter.NewClient(apiKey, openrouter.WithXTitle("kubbot"))
	}

	return g
}

func (g *OpenRouter) GenerateFromPrompt(ctx context.Context, prompts []domain.Prompt) (domain.ModelResponse, error) {
	if g.client == nil {
		return domain.ModelResponse{}, ErrNotConfigured
	}

	if len(prompts) == 0 {
		return domain.ModelResponse{}, domain.ErrEmptyPrompt
	}

	messages := make([]openrouter.ChatCompletionMessage, 0, len(prompts)+1)
	if g.systemPrompt != "" {
		messages = append(messages, message(openrouter.ChatMessageRoleSystem, g.systemPrompt))
	}

	for _, prompt := range prompts {
		switch prompt.Author {
		case domain.System:
			messages = append(messages, message(openrouter.ChatMessageRoleAssistant, prompt.Prompt))
		default:
			messages = append(messages, message(openrouter.ChatMessageRoleUser, prompt.Prompt))
		}
	}

	ccr := openrouter.ChatCompletionRequest{
		Messages: messages,
		Model:    prompts[len(prompts)-1].Model,
	}

	resp, err := g.client.CreateChatCompletion(ctx, ccr)
	if err != nil {
		return domain.ModelResponse{}, fmt.Errorf("openrouter API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return domain.ModelResponse{}, ErrNoChoices
	}

	return domain.ModelResponse{
		Response: resp.Choices[0].Message.Content.Text,
		Metadata: domain.ResponseMetadata{
			Model:            resp.Model,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

func message(role, text string) openrouter.ChatCompletionMessage {
	return openrouter.ChatCompletionMessage{
		Role:    role,
		Content: openrouter.Content{Text: text},
	}
}
