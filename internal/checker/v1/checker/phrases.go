package checker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	checkerrors "voice-api-smoke/internal/checker/errors"
	"voice-api-smoke/internal/checker/v1/models"
	"voice-api-smoke/internal/constants"
)

// Phrases reads the prompt phrases of a dataset and expects a JSON array.
func (c *Checker) Phrases(ctx context.Context, dataset string) (res models.Result) {
	start := time.Now()
	end := c.console.Begin("GET /api/v1/phrases/{dataset}")
	defer end()
	defer func() { c.finish(&res, start) }()

	resp, err := c.client.GetPhrases(ctx, dataset)
	if err != nil {
		c.console.Printf("Phrases endpoint test FAILED: %v", err)
		return failed(constants.CheckPhrases, constants.StatePhrasesFailed, constants.KindTransportError,
			fmt.Errorf("%s: %w", checkerrors.PhrasesCheckError, err))
	}
	c.console.Printf("Status Code: %d", resp.StatusCode)

	var phrases []json.RawMessage
	if err := resp.DecodeJSON(&phrases); err != nil {
		c.console.Printf("Phrases endpoint test FAILED: %s", checkerrors.PhrasesNotArray)
		res = failed(constants.CheckPhrases, constants.StatePhrasesFailed, constants.KindTransportError,
			fmt.Errorf("%s: %w", checkerrors.PhrasesCheckError, errors.New(checkerrors.PhrasesNotArray)))
		res.StatusCode = resp.StatusCode
		return res
	}

	c.console.Printf("Dataset %q has %d phrases.", dataset, len(phrases))
	c.console.Println("Phrases endpoint test PASSED.")
	res = passed(constants.CheckPhrases, constants.StatePhrasesListed)
	res.StatusCode = resp.StatusCode
	return res
}
