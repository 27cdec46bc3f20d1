// Package cli provides a method for new application instantiation.

package cli

import (
	"voice-api-smoke/internal/command"

	"github.com/urfave/cli/v2"
)

// Version is the application version reported by --version.
var Version = "0.1.0"

// NewApp initializes a new cli.App service.
func NewApp(definitions []command.Command) *cli.App {
	commands := make([]*cli.Command, 0, len(definitions))

	for _, definition := range definitions {
		commands = append(commands, definition.Describe())
	}

	return &cli.App{
		Name:     "voice-api-smoke",
		Usage:    "Smoke tests for the voice collection session API",
		Version:  Version,
		Commands: commands,
	}
}
