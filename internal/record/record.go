// Package record normalizes recipient input from the interactive prompts or a
// spreadsheet into a single validated shape.
package record

import (
	"errors"
	"fmt"
	"strings"
)

// Common record errors
var (
	// ErrIncomplete marks a tuple missing one of the three required leading fields.
	ErrIncomplete = errors.New("record incomplete")
	// ErrTerminated is the user-requested termination signal.
	ErrTerminated = errors.New("run terminated by user")
)

// Record is a normalized outreach recipient. It is immutable once built and
// lives only for the duration of its draft attempt.
type Record struct {
	// Name of the recipient, used verbatim in the greeting.
	Name string
	// Email is treated as an opaque address, never validated for RFC correctness.
	Email string
	// SourceRef is a URL or free-text description of the recipient's work.
	SourceRef string
	// Context is optional supporting detail, empty when absent.
	Context string
}

// FromTuple validates a raw field tuple in canonical order (name, email,
// source reference, optional context) and converts it to a Record. A tuple
// with fewer than three populated leading fields is incomplete.
func FromTuple(tuple []string) (Record, error) {
	field := func(i int) string {
		if i < len(tuple) {
			return strings.TrimSpace(tuple[i])
		}
		return ""
	}

	rec := Record{
		Name:      field(0),
		Email:     field(1),
		SourceRef: field(2),
		Context:   field(3),
	}
	if rec.Name == "" || rec.Email == "" || rec.SourceRef == "" {
		return Record{}, fmt.Errorf("%w: %q", ErrIncomplete, tuple)
	}
	return rec, nil
}
