package checker

import (
	"context"
	"errors"
	"fmt"
	"time"
	checkerrors "voice-api-smoke/internal/checker/errors"
	"voice-api-smoke/internal/checker/v1/models"
	"voice-api-smoke/internal/client/v1/modeldto"
	"voice-api-smoke/internal/constants"
)

const sessionIDKey = "session_id"

// SessionRoundTrip creates a session and fetches it back by id. The fetch is
// attempted only when creation yielded an id; otherwise the result is skipped.
// Terminal states: verified, fetch_failed, validation_failed, skipped.
func (c *Checker) SessionRoundTrip(ctx context.Context, req modeldto.SessionRequest) (res models.Result) {
	start := time.Now()
	end := c.console.Begin("GET /api/v1/sessions/{session_id}")
	defer end()
	defer func() { c.finish(&res, start) }()

	c.console.Println("Step 1: Creating a new session...")
	id, kind, err := c.createSession(ctx, req)
	if err != nil {
		c.console.Printf("Step 1 FAILED: Could not create a session to test against. Reason: %v", err)
		c.console.Println("GET session test SKIPPED.")
		return models.Result{
			Check:   constants.CheckSession,
			Outcome: constants.OutcomeSkipped,
			State:   constants.StateSkipped,
			Kind:    kind,
			Message: fmt.Sprintf("%s: %v", checkerrors.CreateStepError, err),
			Err:     err,
		}
	}
	c.console.Printf("Session created successfully with ID: %s", id)
	c.log.Debug().Str(checkKey, constants.CheckSession).Str(sessionIDKey, id.String()).Msg("session created")

	res = c.fetchSession(ctx, id)
	res.SessionID = id.String()
	return res
}

func (c *Checker) createSession(ctx context.Context, req modeldto.SessionRequest) (modeldto.SessionID, string, error) {
	resp, err := c.client.CreateSession(ctx, req)
	if err != nil {
		return modeldto.SessionID{}, constants.KindTransportError, err
	}

	var rec modeldto.SessionRecord
	if err := resp.DecodeJSON(&rec); err != nil {
		return modeldto.SessionID{}, constants.KindTransportError, fmt.Errorf("%s: %w", checkerrors.InvalidJSONBody, err)
	}
	if rec.ID.IsZero() {
		return modeldto.SessionID{}, constants.KindMissingField, errors.New(checkerrors.MissingSessionID)
	}
	return rec.ID, "", nil
}

func (c *Checker) fetchSession(ctx context.Context, id modeldto.SessionID) models.Result {
	c.console.Printf("Step 2: Fetching session with ID %s...", id)

	resp, err := c.client.GetSession(ctx, id)
	if err != nil {
		c.console.Printf("Step 2 FAILED: Could not fetch the session. Reason: %v", err)
		return failed(constants.CheckSession, constants.StateFetchFailed, constants.KindTransportError,
			fmt.Errorf("%s: %w", checkerrors.FetchStepError, err))
	}

	c.console.Printf("Status Code: %d", resp.StatusCode)

	var rec modeldto.SessionRecord
	if err := resp.DecodeJSON(&rec); err != nil {
		c.console.Printf("Step 2 FAILED: Could not fetch the session. Reason: %s", checkerrors.InvalidJSONBody)
		res := failed(constants.CheckSession, constants.StateFetchFailed, constants.KindTransportError,
			fmt.Errorf("%s: %s: %w", checkerrors.FetchStepError, checkerrors.InvalidJSONBody, err))
		res.StatusCode = resp.StatusCode
		return res
	}
	c.printBody(resp.Body)

	if !rec.ID.Equal(id) {
		c.console.Println("Step 2 FAILED: Response validation failed. The returned ID did not match the requested ID.")
		c.log.Debug().Str(sessionIDKey, id.String()).Str("returned_id", rec.ID.String()).Msg(checkerrors.SessionIDMismatch)
		res := failed(constants.CheckSession, constants.StateValidationFailed, constants.KindValidationMismatch,
			fmt.Errorf("%s: %s (requested %q, returned %q)", checkerrors.ValidationError, checkerrors.SessionIDMismatch, id, rec.ID))
		res.StatusCode = resp.StatusCode
		return res
	}

	c.console.Println("GET session test PASSED.")
	res := passed(constants.CheckSession, constants.StateVerified)
	res.StatusCode = resp.StatusCode
	return res
}
