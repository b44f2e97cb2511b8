// Package llm provides completion clients for the model gateway.
package llm

import (
	"context"
)

// CompletionClient defines the interface for one-shot chat completions.
// Every call sends a system+user message pair and returns the raw model text.
// Use this interface for dependency injection to enable mocking in tests.
type CompletionClient interface {
	// Complete sends the prompt with the given system message and returns
	// the model's raw text reply.
	Complete(ctx context.Context, prompt string, systemMessage string) (string, error)

	// Model returns the configured model name.
	Model() string
}

// Ensure implementations satisfy CompletionClient at compile time.
var (
	_ CompletionClient = (*Client)(nil)
	_ CompletionClient = (*AnthropicClient)(nil)
	_ CompletionClient = (*MockClient)(nil)
)
