package llm

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	claudecode "github.com/severity1/claude-agent-sdk-go"
)

// CLIClient runs prompts through a locally installed claude CLI.
type CLIClient struct {
	model string
}

// NewCLIClient returns nil when the claude executable is not on PATH.
func NewCLIClient() *CLIClient {
	if _, err := exec.LookPath("claude"); err != nil {
		return nil
	}
	return &CLIClient{model: "sonnet"}
}

func (c *CLIClient) Name() string { return "cli" }

// Complete runs a single-turn query without tools and concatenates the
// assistant's text blocks.
func (c *CLIClient) Complete(ctx context.Context, prompt string) (string, error) {
	iterator, err := claudecode.Query(ctx, prompt,
		claudecode.WithModel(c.model),
		claudecode.WithMaxTurns(1),
	)
	if err != nil {
		if claudecode.IsCLINotFoundError(err) {
			return "", fmt.Errorf("claude cli not found: %w", err)
		}
		return "", fmt.Errorf("claude cli: %w", err)
	}
	defer iterator.Close()

	var b strings.Builder
	for {
		message, err := iterator.Next(ctx)
		if err != nil {
			if errors.Is(err, claudecode.ErrNoMoreMessages) {
				break
			}
			return "", fmt.Errorf("reading claude response: %w", err)
		}

		if msg, ok := message.(*claudecode.AssistantMessage); ok {
			for _, block := range msg.Content {
				if text, ok := block.(*claudecode.TextBlock); ok {
					b.WriteString(text.Text)
				}
			}
		}
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("empty response from claude cli")
	}
	return b.String(), nil
}
