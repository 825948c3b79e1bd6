// Package draft stores generated messages as unsent Gmail drafts.
package draft

import "context"

// Subject is the fixed subject line of every outreach draft.
const Subject = "Research Opportunity Inquiry"

// Publisher stores a message as an unsent draft with the provider. This
// abstraction keeps the pipeline independent of the Gmail API and allows a
// fake in tests.
type Publisher interface {
	// CreateDraft stores body as a draft addressed to the given recipient.
	// Exactly one provider draft is created per successful call.
	CreateDraft(ctx context.Context, to, body string) error
}
