package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coldreach/coldreach/internal/logger"
)

// scriptedClient fails per model id and records call order.
type scriptedClient struct {
	fail   map[string]bool
	bodies map[string]string
	calls  []string
}

func (c *scriptedClient) Complete(_ context.Context, model, _ string) (string, error) {
	c.calls = append(c.calls, model)
	if c.fail[model] {
		return "", errors.New(model + " failed")
	}
	return c.bodies[model], nil
}

func testLogger() *logger.Logger {
	return logger.New("disabled", "json")
}

func TestGeneratePrimarySuccess(t *testing.T) {
	client := &scriptedClient{bodies: map[string]string{"primary": "primary body"}}
	gen := NewGenerator(client, "primary", "fallback", testLogger())

	body, err := gen.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "primary body", body)
	assert.Equal(t, []string{"primary"}, client.calls)
}

func TestGenerateFallsBackExactlyOnce(t *testing.T) {
	client := &scriptedClient{
		fail:   map[string]bool{"primary": true},
		bodies: map[string]string{"fallback": "fallback body"},
	}
	gen := NewGenerator(client, "primary", "fallback", testLogger())

	body, err := gen.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "fallback body", body)
	assert.Equal(t, []string{"primary", "fallback"}, client.calls)
}

func TestGenerateBothTiersFail(t *testing.T) {
	client := &scriptedClient{fail: map[string]bool{"primary": true, "fallback": true}}
	gen := NewGenerator(client, "primary", "fallback", testLogger())

	body, err := gen.Generate(context.Background(), "prompt")
	require.ErrorIs(t, err, ErrModelUnavailable)
	// No body at all, not a partially filled string.
	assert.Empty(t, body)
	// No retries beyond the single fallback attempt.
	assert.Equal(t, []string{"primary", "fallback"}, client.calls)
}

func TestGenerateReturnsTextVerbatim(t *testing.T) {
	raw := "  Hello Dr. Lee,\n\nbody with trailing space  \n"
	client := &scriptedClient{bodies: map[string]string{"primary": raw}}
	gen := NewGenerator(client, "primary", "fallback", testLogger())

	body, err := gen.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, raw, body)
}

func TestMockClientNeverFails(t *testing.T) {
	gen := NewGenerator(MockClient{}, "primary", "fallback", testLogger())

	body, err := gen.Generate(context.Background(), "the rendered prompt")
	require.NoError(t, err)
	assert.Contains(t, body, "the rendered prompt")
}
