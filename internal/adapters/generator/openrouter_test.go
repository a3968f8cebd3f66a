package generator

import (
	"context"
	"errors"
	"kubbot/internal/core/domain"
	"testing"

	"github.com/revrost/go-openrouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient is a test double for the openrouter client.
type mockClient struct {
	createChatCompletionFunc func(ctx context.Context,
		ccr openrouter.ChatCompletionRequest) (openrouter.ChatCompletionResponse, error)
}

func (m *mockClient) CreateChatCompletion(ctx context.Context,
	ccr openrouter.ChatCompletionRequest) (openrouter.ChatCompletionResponse, error) {
	return m.createChatCompletionFunc(ctx, ccr)
}

func TestOpenRouter_GenerateFromPrompt(t *testing.T) {
	testCases := []struct {
		name         string
		systemPrompt string
		prompts      []domain.Prompt
		mockResp     openrouter.ChatCompletionResponse
		mockErr      error
		wantMessages []openrouter.ChatCompletionMessage
		expectedResp domain.ModelResponse
		expectErr    error
	}{
		{
			name:         "success, single user prompt",
			systemPrompt: "system",
			prompts: []domain.Prompt{
				{Prompt: "hi", Author: domain.User, Model: "openai/gpt-4.1"},
			},
			mockResp: openrouter.ChatCompletionResponse{
				Choices: []openrouter.ChatCompletionChoice{{
					Message: openrouter.ChatCompletionMessage{
						Content: openrouter.Content{Text: "hello!"},
					},
				}},
				Model: "openai/gpt-4.1",
				Usage: openrouter.Usage{CompletionTokens: 7, TotalTokens: 9},
			},
			wantMessages: []openrouter.ChatCompletionMessage{
				message(openrouter.ChatMessageRoleSystem, "system"),
				message(openrouter.ChatMessageRoleUser, "hi"),
			},
			expectedResp: domain.ModelResponse{
				Response: "hello!",
				Metadata: domain.ResponseMetadata{
					Model:            "openai/gpt-4.1",
					CompletionTokens: 7,
					TotalTokens:      9,
				},
			},
		},
		{
			name: "assistant turn without system prompt",
			prompts: []domain.Prompt{
				{Prompt: "i'm an assistant.", Author: domain.System},
				{Prompt: "hi", Author: domain.User, Model: "openai/gpt-4.1"},
			},
			mockResp: openrouter.ChatCompletionResponse{
				Choices: []openrouter.ChatCompletionChoice{{
					Message: openrouter.ChatCompletionMessage{
						Content: openrouter.Content{Text: "hello again"},
					},
				}},
				Model: "openai/gpt-4.1",
			},
			wantMessages: []openrouter.ChatCompletionMessage{
				message(openrouter.ChatMessageRoleAssistant, "i'm an assistant."),
				message(openrouter.ChatMessageRoleUser, "hi"),
			},
			expectedResp: domain.ModelResponse{
				Response: "hello again",
				Metadata: domain.ResponseMetadata{Model: "openai/gpt-4.1"},
			},
		},
		{
			name:         "API error returned",
			systemPrompt: "system",
			prompts: []domain.Prompt{
				{Prompt: "fail", Author: domain.User, Model: "openai/gpt-4.1"},
			},
			mockErr:   errors.New("api failure"),
			expectErr: errors.New("openrouter API error: api failure"),
		},
		{
			name:      "no choices",
			prompts:   []domain.Prompt{{Prompt: "hi", Author: domain.User}},
			expectErr: ErrNoChoices,
		},
		{
			name:      "no prompts",
			expectErr: domain.ErrEmptyPrompt,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var sent openrouter.ChatCompletionRequest
			mock := &mockClient{
				createChatCompletionFunc: func(_ context.Context,
					ccr openrouter.ChatCompletionRequest) (openrouter.ChatCompletionResponse, error) {
					sent = ccr
					return tc.mockResp, tc.mockErr
				},
			}
			gen := &OpenRouter{
				client:       mock,
				systemPrompt: tc.systemPrompt,
			}

			resp, err := gen.GenerateFromPrompt(t.Context(), tc.prompts)
			if tc.expectErr != nil {
				require.EqualError(t, err, tc.expectErr.Error())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedResp, resp)
			assert.Equal(t, tc.wantMessages, sent.Messages)
			assert.Equal(t, tc.prompts[len(tc.prompts)-1].Model, sent.Model)
		})
	}
}

func TestNewOpenRouter_WithoutKey(t *testing.T) {
	gen := NewOpenRouter("", "system")

	_, err := gen.GenerateFromPrompt(t.Context(), []domain.Prompt{{Prompt: "hi"}})
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewOpenRouter_WithKey(t *testing.T) {
	gen := NewOpenRouter("sk-test", "system")

	assert.NotNil(t, gen.client)
	assert.Equal(t, "system", gen.systemPrompt)
}
