package check

import (
	"fmt"
	busamqp "voice-api-smoke/internal/bus/amqp"
	"voice-api-smoke/internal/command/errors"
	"voice-api-smoke/internal/config"
	"voice-api-smoke/internal/console"
	"voice-api-smoke/internal/driver"
	"voice-api-smoke/internal/report"
	"voice-api-smoke/internal/syncutils"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// AllCommand defines a new command struct and sets its attributes.
type AllCommand struct {
	log       *zerolog.Logger
	cfg       *config.Config
	driver    *driver.Driver
	console   *console.Console
	amqp      *busamqp.AMQP
	syncUtils *syncutils.SyncUtils
}

// NewAllCommand creates a new command instance.
func NewAllCommand(
	logger *zerolog.Logger,
	cfg *config.Config,
	driver *driver.Driver,
	console *console.Console,
	amqp *busamqp.AMQP,
	syncUtils *syncutils.SyncUtils,
) *AllCommand {
	logger.Debug().Msg("calling initializer of check:all command")
	return &AllCommand{
		log:       logger,
		cfg:       cfg,
		driver:    driver,
		console:   console,
		amqp:      amqp,
		syncUtils: syncUtils,
	}
}

// Describe handles command description when invoked.
func (t *AllCommand) Describe() *cli.Command {
	flags := append(sessionFlags(t.cfg),
		&cli.BoolFlag{
			Name:  "phrases",
			Usage: "Also check the phrases endpoint of the dataset",
			Value: t.cfg.Run.Phrases,
		},
		&cli.StringFlag{
			Name:    "summary",
			Usage:   "Summary format printed after the run, one of `table`, `json` or `none`",
			Aliases: []string{"s"},
			Value:   t.cfg.Run.Summary,
		},
		&cli.BoolFlag{
			Name:  "publish",
			Usage: "Publish the run report to the AMQP report exchange",
		},
		strictFlag(t.cfg),
	)
	return &cli.Command{
		Category: "check",
		Name:     "check:all",
		Usage:    "Run the root check and the session round-trip check in sequence",
		Action:   t.Execute,
		Flags:    flags,
	}
}

// Execute runs the command-associated execution logic.
func (t *AllCommand) Execute(ctx *cli.Context) error {
	const handler = "check:all"

	summary := ctx.String("summary")
	if err := report.ValidateFormat(summary); err != nil {
		t.log.Error().Err(err).Str(handlerKey, handler).Msg(errors.InvalidSummaryFormat)
		return err
	}

	t.log.Info().Str(handlerKey, handler).Msg(fmt.Sprintf("CLI: %s endpoint hit", handler))
	defer t.syncUtils.Shutdown()

	if err := t.driver.Validate(); err != nil {
		t.log.Error().Err(err).Str(handlerKey, handler).Msg(errors.InvalidBaseURL)
		return err
	}

	rep := t.driver.Run(t.syncUtils.Ctx, driver.Options{
		Session: sessionRequest(ctx),
		Phrases: ctx.Bool("phrases"),
	})

	if err := report.Render(t.console.Writer(), summary, rep); err != nil {
		t.log.Error().Err(err).Str(handlerKey, handler).Msg(errors.SummaryRenderError)
	}

	if ctx.Bool("publish") {
		if err := t.amqp.PublishReport(t.syncUtils.Ctx, rep); err != nil {
			t.log.Error().Err(err).Str(handlerKey, handler).Str("run_id", rep.RunID).Msg(errors.ReportPublishError)
		}
	}

	if ctx.Bool("strict") {
		return driver.Verdict(rep.Results...)
	}
	return nil
}
