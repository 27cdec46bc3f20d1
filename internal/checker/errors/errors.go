// Package errors provides string codes for error instantiation.

package errors

const (
	MissingSessionID  = "failed to get session_id from creation response"
	InvalidJSONBody   = "response body is not valid JSON"
	SessionIDMismatch = "the returned ID did not match the requested ID"
	PhrasesNotArray   = "phrases response is not a JSON array"
	RootCheckError    = "root endpoint check failed"
	CreateStepError   = "could not create a session to test against"
	FetchStepError    = "could not fetch the session"
	ValidationError   = "session response validation failed"
	PhrasesCheckError = "phrases endpoint check failed"
)
