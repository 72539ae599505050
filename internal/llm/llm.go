package llm

import "context"

// Completer abstracts the text-completion provider so services can be
// tested without network access.
type Completer interface {
	Complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error)
}

// Settings carries provider configuration for concrete implementations.
type Settings struct {
	APIKey  string
	BaseURL string
	Model   string
}
