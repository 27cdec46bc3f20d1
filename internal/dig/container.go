// Package dig implements logic for dependency injection using uber-go/dig.

package dig

import (
	"fmt"
	"voice-api-smoke/internal/bus/amqp"
	"voice-api-smoke/internal/checker/v1/checker"
	cli2 "voice-api-smoke/internal/cli"
	"voice-api-smoke/internal/client/v1/apiclient"
	"voice-api-smoke/internal/command"
	commandCheck "voice-api-smoke/internal/command/check"
	commandStub "voice-api-smoke/internal/command/stub"
	"voice-api-smoke/internal/config"
	"voice-api-smoke/internal/console"
	"voice-api-smoke/internal/driver"
	"voice-api-smoke/internal/logger"
	"voice-api-smoke/internal/stub/api/handlers"
	"voice-api-smoke/internal/stub/store"
	"voice-api-smoke/internal/syncutils"

	"go.uber.org/dig"
)

var definitions = []interface{}{
	commandCheck.NewRootCommand,
	commandCheck.NewSessionCommand,
	commandCheck.NewAllCommand,
	commandStub.NewServeCommand,
	config.NewConfig,
	logger.NewLog,
	console.NewConsole,
	apiclient.NewClient,
	checker.NewChecker,
	driver.NewDriver,
	amqp.NewAMQP,
	store.NewStore,
	handlers.NewEndpointHandlers,
	cli2.NewApp,
	syncutils.NewSyncUtils,
}

func buildContainer() (*dig.Container, error) {
	container := dig.New()

	for _, definition := range definitions {
		if err := container.Provide(definition); err != nil {
			return nil, fmt.Errorf("failed to provide service: %w", err)
		}
	}

	if err := commands(container); err != nil {
		return nil, fmt.Errorf("failed to provide commands: %w", err)
	}

	return container, nil
}

func commands(container *dig.Container) error {
	if err := container.Provide(func(
		checkAllCommand *commandCheck.AllCommand,
		checkRootCommand *commandCheck.RootCommand,
		checkSessionCommand *commandCheck.SessionCommand,
		stubServeCommand *commandStub.ServeCommand,
	) []command.Command {
		return []command.Command{
			checkAllCommand,
			checkRootCommand,
			checkSessionCommand,
			stubServeCommand,
		}
	}); err != nil {
		return fmt.Errorf("failed to define application: %w", err)
	}

	return nil
}
