package check

import (
	"fmt"
	"voice-api-smoke/internal/checker/v1/checker"
	"voice-api-smoke/internal/command/errors"
	"voice-api-smoke/internal/config"
	"voice-api-smoke/internal/driver"
	"voice-api-smoke/internal/syncutils"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// SessionCommand defines a new command struct and sets its attributes.
type SessionCommand struct {
	log       *zerolog.Logger
	cfg       *config.Config
	checker   *checker.Checker
	syncUtils *syncutils.SyncUtils
}

// NewSessionCommand creates a new command instance.
func NewSessionCommand(
	logger *zerolog.Logger,
	cfg *config.Config,
	checker *checker.Checker,
	syncUtils *syncutils.SyncUtils,
) *SessionCommand {
	logger.Debug().Msg("calling initializer of check:session command")
	return &SessionCommand{
		log:       logger,
		cfg:       cfg,
		checker:   checker,
		syncUtils: syncUtils,
	}
}

// Describe handles command description when invoked.
func (t *SessionCommand) Describe() *cli.Command {
	return &cli.Command{
		Category: "check",
		Name:     "check:session",
		Usage:    "Create a session and verify it can be fetched back by id",
		Action:   t.Execute,
		Flags:    append(sessionFlags(t.cfg), strictFlag(t.cfg)),
	}
}

// Execute runs the command-associated execution logic.
func (t *SessionCommand) Execute(ctx *cli.Context) error {
	const (
		handler    = "check:session"
		datasetKey = "dataset"
	)

	req := sessionRequest(ctx)
	t.log.Info().Str(handlerKey, handler).Str(datasetKey, req.Dataset).Msg(fmt.Sprintf("CLI: %s endpoint hit", handler))
	defer t.syncUtils.Shutdown()

	if err := t.checker.Validate(); err != nil {
		t.log.Error().Err(err).Str(handlerKey, handler).Msg(errors.InvalidBaseURL)
		return err
	}

	res := t.checker.SessionRoundTrip(t.syncUtils.Ctx, req)
	if ctx.Bool("strict") {
		return driver.Verdict(res)
	}
	return nil
}
