// Package llm wraps the OpenAI API behind the small interface the clinician
// summariser needs.
package llm

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// Client produces a short clinician-facing summary from a prepared prompt.
type Client interface {
	Summarize(ctx context.Context, system, prompt string) (string, error)
}

// OpenAIClient calls the OpenAI chat completion API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient builds a client for the given credentials.  Model falls
// back to a small default when empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIClient{client: openai.NewClient(apiKey), model: model}
}

// Summarize sends the system instruction and prompt and returns the model's
// reply.
func (c *OpenAIClient) Summarize(ctx context.Context, system, prompt string) (string, error) {
	if c.client == nil {
		return "", errors.New("openai client not initialized")
	}
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
