// Package models provides check result models.

package models

import (
	"time"
	"voice-api-smoke/internal/constants"
)

// Result is the outcome of one check routine.
type Result struct {
	Check      string        `json:"check"`
	Outcome    string        `json:"outcome"`
	State      string        `json:"state,omitempty"`
	Kind       string        `json:"kind,omitempty"`
	Message    string        `json:"message,omitempty"`
	SessionID  string        `json:"session_id,omitempty"`
	StatusCode int           `json:"status_code,omitempty"`
	Duration   time.Duration `json:"duration"`
	Err        error         `json:"-"`
}

// Passed reports whether the check passed.
func (r Result) Passed() bool { return r.Outcome == constants.OutcomePassed }

// Report aggregates the results of one driver run.
type Report struct {
	RunID      string    `json:"run_id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Results    []Result  `json:"results"`
}

// Counts returns the number of passed, failed and skipped results.
func (r *Report) Counts() (passed, failed, skipped int) {
	for _, res := range r.Results {
		switch res.Outcome {
		case constants.OutcomePassed:
			passed++
		case constants.OutcomeFailed:
			failed++
		case constants.OutcomeSkipped:
			skipped++
		}
	}
	return
}

// Passed reports whether every result passed. An empty report does not pass.
func (r *Report) Passed() bool {
	if len(r.Results) == 0 {
		return false
	}
	for _, res := range r.Results {
		if !res.Passed() {
			return false
		}
	}
	return true
}
