package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/coldreach/coldreach/internal/logger"
)

// ErrModelUnavailable means both model tiers failed for one generation. The
// underlying transport, auth, and quota distinctions are not preserved past
// this boundary.
var ErrModelUnavailable = errors.New("model unavailable")

// Generator produces email bodies, retrying exactly once on a fallback model
// when the primary call fails.
type Generator struct {
	client   Client
	primary  string
	fallback string
	log      *logger.Logger
}

// NewGenerator creates a Generator over the given client and model tiers.
func NewGenerator(client Client, primary, fallback string, log *logger.Logger) *Generator {
	return &Generator{
		client:   client,
		primary:  primary,
		fallback: fallback,
		log:      log.WithComponent("generator"),
	}
}

// Generate invokes the primary model and, on any failure, the fallback model
// exactly once. On success the provider's text is returned verbatim, with no
// post-processing or truncation. When both tiers fail the body is absent and
// the error wraps ErrModelUnavailable.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := g.client.Complete(ctx, g.primary, prompt)
	if err == nil {
		return body, nil
	}
	g.log.Warn().Err(err).Str("model", g.primary).Msg("primary model failed, retrying on fallback")

	body, fallbackErr := g.client.Complete(ctx, g.fallback, prompt)
	if fallbackErr == nil {
		return body, nil
	}
	g.log.Error().Err(fallbackErr).Str("model", g.fallback).Msg("fallback model failed")

	return "", fmt.Errorf("%w: primary: %v, fallback: %v", ErrModelUnavailable, err, fallbackErr)
}
