package llm

import (
	"context"
	"strings"
)

// MockClient is a simple placeholder implementation for local runs without
// provider access. It never calls out.
type MockClient struct{}

// Complete echoes a canned body derived from the prompt.
func (MockClient) Complete(_ context.Context, _, prompt string) (string, error) {
	var sb strings.Builder
	sb.WriteString("Hello,\n\n")
	sb.WriteString("This is a locally generated placeholder body. The rendered prompt was:\n\n")
	sb.WriteString(prompt)
	sb.WriteString("\n\nBest regards\n")
	return sb.String(), nil
}
