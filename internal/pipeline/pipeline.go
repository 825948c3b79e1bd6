// Package pipeline sequences record intake, prompt rendering, generation,
// and draft publication, isolating per-record failures.
package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/coldreach/coldreach/internal/draft"
	"github.com/coldreach/coldreach/internal/llm"
	"github.com/coldreach/coldreach/internal/logger"
	"github.com/coldreach/coldreach/internal/prompt"
	"github.com/coldreach/coldreach/internal/record"
)

// ErrNoPublisher means no draft service is connected for this run.
var ErrNoPublisher = errors.New("draft service not connected")

// Stats accumulates batch counters. Attempted counts records that passed
// validation; Drafted counts successful draft creations. Rows skipped for
// incompleteness appear in neither counter, only in the log.
type Stats struct {
	Attempted int
	Drafted   int
}

// Controller drives both operating modes over the same collaborators. It is
// strictly sequential: one record, one model call, one draft at a time.
type Controller struct {
	profile   prompt.Profile
	generator *llm.Generator
	// publisher is nil when no draft service is connected.
	publisher draft.Publisher
	log       *logger.Logger
	now       func() time.Time
}

// New creates a Controller. publisher may be nil, in which case publish
// attempts report ErrNoPublisher.
func New(profile prompt.Profile, generator *llm.Generator, publisher draft.Publisher, log *logger.Logger) *Controller {
	return &Controller{
		profile:   profile,
		generator: generator,
		publisher: publisher,
		log:       log.WithComponent("pipeline"),
		now:       time.Now,
	}
}

// RunBatch processes every tuple in source order. A malformed row, a failed
// generation, or a rejected draft only affects its own record; the batch
// always runs to the end of the sequence.
func (c *Controller) RunBatch(ctx context.Context, tuples [][]string) Stats {
	log := c.log.WithRunID(uuid.NewString())

	var stats Stats
	for i, tuple := range tuples {
		rec, err := record.FromTuple(tuple)
		if err != nil {
			log.Warn().Int("row", i+1).Strs("tuple", tuple).Msg("skipping incomplete row")
			continue
		}
		stats.Attempted++

		body, err := c.generator.Generate(ctx, prompt.Build(rec, c.profile, c.now()))
		if err != nil {
			log.Warn().Int("row", i+1).Str("recipient", rec.Email).Err(err).Msg("generation failed, skipping record")
			continue
		}

		// Drafted is bumped here and only here, strictly off this record's
		// own publish result.
		if err := c.publish(ctx, rec, body); err != nil {
			log.Warn().Int("row", i+1).Str("recipient", rec.Email).Err(err).Msg("draft creation failed")
			continue
		}
		stats.Drafted++
		log.Info().Int("row", i+1).Str("recipient", rec.Email).Msg("draft created")
	}

	log.Info().Int("attempted", stats.Attempted).Int("drafted", stats.Drafted).Msg("batch finished")
	return stats
}

func (c *Controller) publish(ctx context.Context, rec record.Record, body string) error {
	if c.publisher == nil {
		return ErrNoPublisher
	}
	return c.publisher.CreateDraft(ctx, rec.Email, body)
}
