// Package checker implements the smoke-test check routines run against the session API.

package checker

import (
	"bytes"
	"encoding/json"
	"time"
	"voice-api-smoke/internal/checker/v1/models"
	"voice-api-smoke/internal/client/v1/apiclient"
	"voice-api-smoke/internal/config"
	"voice-api-smoke/internal/console"
	"voice-api-smoke/internal/constants"

	"github.com/rs/zerolog"
)

const checkKey = "check"

// Checker defines a Checker object and sets its attributes.
type Checker struct {
	log     *zerolog.Logger
	cfg     *config.Config
	client  *apiclient.Client
	console *console.Console
}

// NewChecker initializes a Checker object.
func NewChecker(
	logger *zerolog.Logger,
	cfg *config.Config,
	client *apiclient.Client,
	console *console.Console,
) *Checker {
	logger.Debug().Msg("calling initializer of checker service")
	return &Checker{
		log:     logger,
		cfg:     cfg,
		client:  client,
		console: console,
	}
}

// Validate reports whether the checks can reach the configured API at all.
func (c *Checker) Validate() error {
	return c.client.Validate()
}

func (c *Checker) printBody(body []byte) {
	c.console.Println("Response JSON:")
	var out bytes.Buffer
	if err := json.Indent(&out, body, "", "  "); err != nil {
		c.console.Println(string(body))
		return
	}
	c.console.Println(out.String())
}

func (c *Checker) finish(res *models.Result, start time.Time) {
	res.Duration = time.Since(start)
	event := c.log.Info()
	if res.Outcome != constants.OutcomePassed {
		event = c.log.Warn().Err(res.Err)
	}
	event.Str(checkKey, res.Check).
		Str("outcome", res.Outcome).
		Str("state", res.State).
		Str("kind", res.Kind).
		Dur("duration", res.Duration).
		Msg("check finished")
}

func passed(check, state string) models.Result {
	return models.Result{Check: check, Outcome: constants.OutcomePassed, State: state}
}

func failed(check, state, kind string, err error) models.Result {
	return models.Result{Check: check, Outcome: constants.OutcomeFailed, State: state, Kind: kind, Message: err.Error(), Err: err}
}
