// Package stub provides CLI commands definitions and execution logic.

package stub

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
	"voice-api-smoke/internal/command/errors"
	"voice-api-smoke/internal/config"
	"voice-api-smoke/internal/stub/api/handlers"
	"voice-api-smoke/internal/syncutils"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultHTTPPort = 8080
	handlerKey      = "cli_command"
)

// ServeCommand defines a new command struct and sets its attributes.
type ServeCommand struct {
	log              *zerolog.Logger
	cfg              *config.Config
	endpointHandlers *handlers.EndpointHandlers
	syncUtils        *syncutils.SyncUtils
}

// NewServeCommand creates a new command instance.
func NewServeCommand(
	logger *zerolog.Logger,
	cfg *config.Config,
	endpointHandlers *handlers.EndpointHandlers,
	syncUtils *syncutils.SyncUtils,
) *ServeCommand {
	logger.Debug().Msg("calling initializer of stub:serve command")
	return &ServeCommand{
		log:              logger,
		cfg:              cfg,
		syncUtils:        syncUtils,
		endpointHandlers: endpointHandlers,
	}
}

// Describe handles command description when invoked.
func (t *ServeCommand) Describe() *cli.Command {
	return &cli.Command{
		Category: "stub",
		Name:     "stub:serve",
		Usage:    "Start an in-memory stub of the session API for local smoke testing",
		Action:   t.Execute,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Usage:   "HTTP port",
				Aliases: []string{"p"},
				Value:   DefaultHTTPPort,
			},
			&cli.StringFlag{
				Name:    "fault",
				Usage:   "Injected fault, one of " + strings.Join(handlers.ValidFaults, ", "),
				Aliases: []string{"f"},
				Value:   handlers.FaultNone,
			},
		},
	}
}

// Execute runs the command-associated execution logic.
func (t *ServeCommand) Execute(ctx *cli.Context) error {
	const handler = "stub:serve"

	t.log.Info().Str(handlerKey, handler).Msg(fmt.Sprintf("CLI: %s endpoint hit", handler))
	defer t.syncUtils.Shutdown()

	if err := t.endpointHandlers.SetFault(ctx.String("fault")); err != nil {
		t.log.Error().Err(err).Str(handlerKey, handler).Msg(errors.InvalidFaultMode)
		return err
	}

	addr := net.JoinHostPort("", strconv.Itoa(ctx.Int("port")))
	if addr != t.cfg.Server.ServerAddress {
		t.log.Warn().Str("env address", t.cfg.Server.ServerAddress).Str("kwargs address", addr).Msg("server address override")
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      t.endpointHandlers.Router(),
		IdleTimeout:  t.cfg.Server.IdleTimeout,
		ReadTimeout:  t.cfg.Server.ReadTimeout,
		WriteTimeout: t.cfg.Server.WriteTimeout,
	}

	group, groupCtx := errgroup.WithContext(t.syncUtils.Ctx)
	group.Go(func() error {
		t.log.Info().Str("address", addr).Str("fault", ctx.String("fault")).Msg("server start attempted")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			t.log.Error().Err(err).Msg(errors.ServerStartError)
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		t.log.Info().Msg("server shutdown attempted")
		ctxTO, cancelTO := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelTO()
		if err := srv.Shutdown(ctxTO); err != nil {
			t.log.Error().Err(err).Msg(errors.ServerShutdownError)
			return err
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		return err
	}

	t.log.Info().Msg("server shutdown succeeded")
	return nil
}
