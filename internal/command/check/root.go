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

// RootCommand defines a new command struct and sets its attributes.
type RootCommand struct {
	log       *zerolog.Logger
	cfg       *config.Config
	checker   *checker.Checker
	syncUtils *syncutils.SyncUtils
}

// NewRootCommand creates a new command instance.
func NewRootCommand(
	logger *zerolog.Logger,
	cfg *config.Config,
	checker *checker.Checker,
	syncUtils *syncutils.SyncUtils,
) *RootCommand {
	logger.Debug().Msg("calling initializer of check:root command")
	return &RootCommand{
		log:       logger,
		cfg:       cfg,
		checker:   checker,
		syncUtils: syncUtils,
	}
}

// Describe handles command description when invoked.
func (t *RootCommand) Describe() *cli.Command {
	return &cli.Command{
		Category: "check",
		Name:     "check:root",
		Usage:    "Check that the API root answers with JSON",
		Action:   t.Execute,
		Flags:    []cli.Flag{strictFlag(t.cfg)},
	}
}

// Execute runs the command-associated execution logic.
func (t *RootCommand) Execute(ctx *cli.Context) error {
	const handler = "check:root"

	t.log.Info().Str(handlerKey, handler).Msg(fmt.Sprintf("CLI: %s endpoint hit", handler))
	defer t.syncUtils.Shutdown()

	if err := t.checker.Validate(); err != nil {
		t.log.Error().Err(err).Str(handlerKey, handler).Msg(errors.InvalidBaseURL)
		return err
	}

	res := t.checker.Root(t.syncUtils.Ctx)
	if ctx.Bool("strict") {
		return driver.Verdict(res)
	}
	return nil
}
