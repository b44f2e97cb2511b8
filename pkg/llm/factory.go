package llm

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// NewFromConfig creates a completion client for the configured provider.
// Returns CompletionClient to enable dependency injection of mocks.
func NewFromConfig(cfg *Config, logger *zap.Logger) (CompletionClient, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "openai":
		client, err := NewClient(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("create openai client: %w", err)
		}
		return client, nil
	case "anthropic":
		client, err := NewAnthropicClient(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("create anthropic client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %q", cfg.Provider)
	}
}
