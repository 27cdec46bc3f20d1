package models

import (
	"testing"
	"voice-api-smoke/internal/constants"

	"github.com/stretchr/testify/assert"
)

func TestReport_Counts(t *testing.T) {
	r := &Report{Results: []Result{
		{Check: constants.CheckRoot, Outcome: constants.OutcomePassed},
		{Check: constants.CheckSession, Outcome: constants.OutcomeSkipped},
		{Check: constants.CheckPhrases, Outcome: constants.OutcomeFailed},
	}}

	passed, failed, skipped := r.Counts()
	assert.Equal(t, 1, passed)
	assert.Equal(t, 1, failed)
	assert.Equal(t, 1, skipped)
	assert.False(t, r.Passed())
}

func TestReport_Passed(t *testing.T) {
	assert.False(t, (&Report{}).Passed())
	assert.True(t, (&Report{Results: []Result{
		{Outcome: constants.OutcomePassed},
		{Outcome: constants.OutcomePassed},
	}}).Passed())
}
