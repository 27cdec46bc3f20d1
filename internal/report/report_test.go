package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
	"voice-api-smoke/internal/checker/v1/models"
	"voice-api-smoke/internal/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *models.Report {
	start := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	return &models.Report{
		RunID:      "run-1",
		StartedAt:  start,
		FinishedAt: start.Add(250 * time.Millisecond),
		Results: []models.Result{
			{Check: constants.CheckRoot, Outcome: constants.OutcomePassed, State: constants.StateRootResponded, StatusCode: 200},
			{Check: constants.CheckSession, Outcome: constants.OutcomeFailed, State: constants.StateValidationFailed,
				Kind: constants.KindValidationMismatch, StatusCode: 200, SessionID: "abc123"},
		},
	}
}

func TestRender_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, constants.SummaryTable, sampleReport()))

	out := buf.String()
	assert.Contains(t, out, constants.CheckSession)
	assert.Contains(t, out, constants.StateValidationFailed)
	assert.Contains(t, out, constants.StateRootResponded)
	assert.Contains(t, strings.ToUpper(out), "RUN-1")
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, constants.SummaryJSON, sampleReport()))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run-1", decoded["run_id"])
	assert.Len(t, decoded["results"], 2)
}

func TestRender_NoneAndInvalid(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, constants.SummaryNone, sampleReport()))
	assert.Empty(t, buf.String())

	assert.Error(t, Render(&buf, "xml", sampleReport()))
	assert.Error(t, ValidateFormat("xml"))
	assert.NoError(t, ValidateFormat(constants.SummaryJSON))
}
