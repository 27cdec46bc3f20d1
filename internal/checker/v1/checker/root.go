package checker

import (
	"context"
	"encoding/json"
	"errors"
	"time"
	checkerrors "voice-api-smoke/internal/checker/errors"
	"voice-api-smoke/internal/checker/v1/models"
	"voice-api-smoke/internal/constants"
)

// Root performs an unauthenticated read of the service root. Any failure is
// reported on the console and in the returned result; it never propagates.
func (c *Checker) Root(ctx context.Context) (res models.Result) {
	start := time.Now()
	end := c.console.Begin("GET /")
	defer end()
	defer func() { c.finish(&res, start) }()

	resp, err := c.client.Root(ctx)
	if err != nil {
		c.console.Printf("Root endpoint test FAILED: %v", err)
		return failed(constants.CheckRoot, constants.StateRootFailed, constants.KindTransportError, err)
	}

	c.console.Printf("Status Code: %d", resp.StatusCode)
	if !json.Valid(resp.Body) {
		err = errors.New(checkerrors.InvalidJSONBody)
		c.console.Printf("Root endpoint test FAILED: %v", err)
		res = failed(constants.CheckRoot, constants.StateRootFailed, constants.KindTransportError, err)
		res.StatusCode = resp.StatusCode
		return res
	}
	c.printBody(resp.Body)
	c.console.Println("Root endpoint test PASSED.")

	res = passed(constants.CheckRoot, constants.StateRootResponded)
	res.StatusCode = resp.StatusCode
	return res
}
