// Package llm provides the completion backends used by the opt-in AI
// review. Nothing in the core analysis path talks to a model.
package llm

import (
	"context"
	"fmt"
	"strings"
)

// Client completes a prompt.
type Client interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// Backend selects a Client implementation.
type Backend string

const (
	BackendAuto Backend = "auto"
	BackendAPI  Backend = "api"
	BackendCLI  Backend = "cli"
	BackendNone Backend = "none"
)

// New returns the client for backend. Auto prefers the API and falls back
// to the CLI. A nil client with a nil error means AI review is disabled.
func New(backend Backend) (Client, error) {
	switch backend {
	case BackendNone:
		return nil, nil
	case BackendAPI:
		if c := NewAPIClient(); c != nil {
			return c, nil
		}
		return nil, fmt.Errorf("api backend needs ANTHROPIC_API_KEY")
	case BackendCLI:
		if c := NewCLIClient(); c != nil {
			return c, nil
		}
		return nil, fmt.Errorf("cli backend needs the claude executable on PATH")
	case BackendAuto, "":
		if c := NewAPIClient(); c != nil {
			return c, nil
		}
		if c := NewCLIClient(); c != nil {
			return c, nil
		}
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown llm backend %q", backend)
	}
}

// ExtractJSON pulls a JSON object out of a response that may be wrapped in
// a markdown fence or surrounded by prose.
func ExtractJSON(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "{") {
		return s
	}

	if idx := strings.Index(s, "```json"); idx != -1 {
		start := idx + 7
		if end := strings.Index(s[start:], "```"); end != -1 {
			return strings.TrimSpace(s[start : start+end])
		}
	}

	if idx := strings.Index(s, "```"); idx != -1 {
		start := idx + 3
		// skip the language identifier
		if nl := strings.Index(s[start:], "\n"); nl != -1 {
			start += nl + 1
		}
		if end := strings.Index(s[start:], "```"); end != -1 {
			return strings.TrimSpace(s[start : start+end])
		}
	}

	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end > start {
			return s[start : end+1]
		}
	}

	return s
}

// Truncate shortens s to at most max bytes without splitting a rune and
// marks the cut.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !isRuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "\n...[truncated]..."
}

func isRuneStart(b byte) bool { return b&0xC0 != 0x80 }
