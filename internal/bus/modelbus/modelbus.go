// Package modelbus provides models for AMQP transfer objects.

package modelbus

import "time"

type CheckResult struct {
	Check      string `json:"check"`
	Outcome    string `json:"outcome"`
	State      string `json:"state,omitempty"`
	Kind       string `json:"kind,omitempty"`
	Message    string `json:"message,omitempty"`
	SessionID  string `json:"session_id,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}

type RunReport struct {
	RunID      string        `json:"run_id"`
	BaseURL    string        `json:"base_url"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Passed     bool          `json:"passed"`
	Results    []CheckResult `json:"results"`
}
