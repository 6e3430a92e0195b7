package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// APIClient talks to the Anthropic Messages API.
type APIClient struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewAPIClient returns nil when ANTHROPIC_API_KEY is not set.
func NewAPIClient() *APIClient {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &APIClient{client: client, model: anthropic.ModelClaude3_5Haiku20241022}
}

func (c *APIClient) Name() string { return "api" }

// Complete sends prompt as a single user message and returns the first text
// block of the reply.
func (c *APIClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 2000,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic api: %w", err)
	}

	for _, block := range resp.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("anthropic api: empty response")
}
