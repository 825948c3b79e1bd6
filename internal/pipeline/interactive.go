package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/coldreach/coldreach/internal/prompt"
	"github.com/coldreach/coldreach/internal/record"
)

// state of the interactive draft loop.
type state int

const (
	stateCollecting state = iota
	stateGenerated
	stateAwaitingDecision
	statePublishing
	stateRegenerating
	stateTerminated
)

// RunInteractive drives the single-record loop: collect a record, generate a
// body, then let the user publish, regenerate, or quit. The termination
// keyword at any field prompt ends the whole run before a model call is made.
func (c *Controller) RunInteractive(ctx context.Context, src *record.InteractiveSource, out io.Writer) error {
	var (
		rec      record.Record
		rendered string
		body     string
	)

	st := stateCollecting
	for st != stateTerminated {
		switch st {
		case stateCollecting:
			tuple, err := src.Next()
			if errors.Is(err, record.ErrTerminated) {
				st = stateTerminated
				continue
			}
			if err != nil {
				return err
			}
			rec, err = record.FromTuple(tuple)
			if err != nil {
				fmt.Fprintln(out, "name, email, and source link are all required - starting over")
				continue
			}
			rendered = prompt.Build(rec, c.profile, c.now())
			fmt.Fprintln(out, "\ngenerating email...")
			body, err = c.generator.Generate(ctx, rendered)
			if err != nil {
				fmt.Fprintln(out, "generation failed - starting over")
				continue
			}
			st = stateGenerated

		case stateGenerated:
			printBody(out, "generated email", body)
			st = stateAwaitingDecision

		case stateAwaitingDecision:
			fmt.Fprintln(out, "\nnext steps:")
			fmt.Fprintln(out, " ENTER: create gmail draft")
			fmt.Fprintln(out, " A: regenerate email")
			fmt.Fprintln(out, " B: quit")

			choice, err := src.Ask("> ")
			if errors.Is(err, record.ErrTerminated) {
				st = stateTerminated
				continue
			}
			if err != nil {
				return err
			}
			switch {
			case choice == "":
				st = statePublishing
			case strings.EqualFold(choice, "a"):
				st = stateRegenerating
			case strings.EqualFold(choice, "b"):
				st = stateTerminated
			default:
				fmt.Fprintln(out, "invalid choice - please enter one of the options")
			}

		case statePublishing:
			err := c.publish(ctx, rec, body)
			switch {
			case err == nil:
				fmt.Fprintln(out, "\ngmail draft created successfully.")
				fmt.Fprintln(out, "check your drafts folder to review and send.")
				st = stateCollecting
			case errors.Is(err, ErrNoPublisher):
				// Stay on the decision prompt so the body is not lost.
				fmt.Fprintln(out, "gmail isn't connected - reconnect gmail service to regain access to autodraft.")
				st = stateAwaitingDecision
			default:
				// The record is abandoned after its draft attempt, pass or fail.
				c.log.Warn().Str("recipient", rec.Email).Err(err).Msg("draft creation failed")
				fmt.Fprintln(out, "draft creation failed - starting over")
				st = stateCollecting
			}

		case stateRegenerating:
			// Same rendered prompt; only the model output changes.
			next, err := c.generator.Generate(ctx, rendered)
			if err != nil {
				fmt.Fprintln(out, "regeneration failed - starting over")
				st = stateCollecting
				continue
			}
			body = next
			printBody(out, "regenerated email", body)
			st = stateAwaitingDecision
		}
	}

	fmt.Fprintln(out, "user-specified termination")
	return nil
}

func printBody(out io.Writer, heading, body string) {
	rule := strings.Repeat("-", 60)
	fmt.Fprintf(out, "\n%s\n %s\n%s\n%s\n%s\n", rule, heading, rule, body, rule)
}
