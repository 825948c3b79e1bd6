package draft

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"google.golang.org/api/gmail/v1"

	"github.com/coldreach/coldreach/internal/google"
)

// GmailPublisher implements Publisher using the Gmail API drafts endpoint.
type GmailPublisher struct {
	service *gmail.Service
	// observerCC receives a copy of every draft. Empty means no copy.
	observerCC string
}

// NewGmailPublisher creates a GmailPublisher on the authorized session.
func NewGmailPublisher(ctx context.Context, sess *google.Session, observerCC string) (*GmailPublisher, error) {
	svc, err := gmail.NewService(ctx, sess.ClientOption())
	if err != nil {
		return nil, fmt.Errorf("gmail: failed to create service: %w", err)
	}
	return &GmailPublisher{service: svc, observerCC: observerCC}, nil
}

// CreateDraft assembles the raw message and stores it as a draft scoped to
// the authenticated account. There is no verification beyond the provider's
// synchronous success response.
func (g *GmailPublisher) CreateDraft(ctx context.Context, to, body string) error {
	_, err := g.service.Users.Drafts.Create("me", &gmail.Draft{
		Message: &gmail.Message{Raw: encodeMessage(to, g.observerCC, body)},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("gmail: failed to create draft: %w", err)
	}
	return nil
}

// encodeMessage builds the plain-text RFC 2822 message and encodes it the
// way the drafts endpoint expects.
func encodeMessage(to, cc, body string) string {
	lines := []string{
		"To: " + to,
	}
	if cc != "" {
		lines = append(lines, "Cc: "+cc)
	}
	lines = append(lines,
		"Subject: "+Subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
		"",
		body,
	)
	return base64.URLEncoding.EncodeToString([]byte(strings.Join(lines, "\r\n")))
}
