// Package check provides CLI commands definitions and execution logic.

package check

import (
	"voice-api-smoke/internal/client/v1/modeldto"
	"voice-api-smoke/internal/config"

	"github.com/urfave/cli/v2"
)

const handlerKey = "cli_command"

func strictFlag(cfg *config.Config) cli.Flag {
	return &cli.BoolFlag{
		Name:  "strict",
		Usage: "Exit with a non-zero status when any check does not pass",
		Value: cfg.Run.Strict,
	}
}

func sessionFlags(cfg *config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "genero",
			Usage:   "Gender category sent in the session creation payload",
			Aliases: []string{"g"},
			Value:   cfg.Session.Genero,
		},
		&cli.StringFlag{
			Name:    "dataset",
			Usage:   "Dataset name sent in the session creation payload",
			Aliases: []string{"d"},
			Value:   cfg.Session.Dataset,
		},
	}
}

func sessionRequest(ctx *cli.Context) modeldto.SessionRequest {
	return modeldto.SessionRequest{
		Genero:  ctx.String("genero"),
		Dataset: ctx.String("dataset"),
	}
}
