// Package llm invokes the generative-text provider with a two-tier model
// fallback.
package llm

import "context"

// Client abstracts the generative-text provider so it can be replaced or
// mocked. The model identifier is chosen per call by the Generator.
type Client interface {
	Complete(ctx context.Context, model, prompt string) (string, error)
}

// Settings provides the base configuration for a concrete client.
type Settings struct {
	APIKey  string
	BaseURL string
}
