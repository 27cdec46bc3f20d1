// Package driver runs the check routines in sequence and collects their results.

package driver

import (
	"context"
	"fmt"
	"time"
	"voice-api-smoke/internal/checker/v1/checker"
	"voice-api-smoke/internal/checker/v1/models"
	"voice-api-smoke/internal/client/v1/modeldto"
	"voice-api-smoke/internal/console"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options selects the payload and the optional checks of a run.
type Options struct {
	Session modeldto.SessionRequest
	Phrases bool
}

// Driver defines a Driver object and sets its attributes.
type Driver struct {
	log     *zerolog.Logger
	checker *checker.Checker
	console *console.Console
}

// NewDriver initializes a Driver object.
func NewDriver(logger *zerolog.Logger, checker *checker.Checker, console *console.Console) *Driver {
	logger.Debug().Msg("calling initializer of driver service")
	return &Driver{
		log:     logger,
		checker: checker,
		console: console,
	}
}

// Validate reports configuration problems that would make every check fail.
func (d *Driver) Validate() error {
	return d.checker.Validate()
}

// Run executes every check unconditionally; no outcome gates a later check.
func (d *Driver) Run(ctx context.Context, opts Options) *models.Report {
	report := &models.Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}
	log := d.log.With().Str("run_id", report.RunID).Logger()
	log.Info().Msg("run started")

	d.console.Println("Starting API tests...")
	report.Results = append(report.Results, d.checker.Root(ctx))
	report.Results = append(report.Results, d.checker.SessionRoundTrip(ctx, opts.Session))
	if opts.Phrases {
		report.Results = append(report.Results, d.checker.Phrases(ctx, opts.Session.Dataset))
	}
	d.console.Println("All tests finished.")

	report.FinishedAt = time.Now().UTC()
	passed, failed, skipped := report.Counts()
	log.Info().Int("passed", passed).Int("failed", failed).Int("skipped", skipped).Msg("run finished")
	return report
}

// Verdict returns an error when any of the results did not pass.
func Verdict(results ...models.Result) error {
	var bad []string
	for _, res := range results {
		if !res.Passed() {
			bad = append(bad, fmt.Sprintf("%s=%s", res.Check, res.Outcome))
		}
	}
	if len(bad) == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d checks did not pass: %v", len(bad), len(results), bad)
}
