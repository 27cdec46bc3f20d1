// Package errors provides string codes for error instantiation.

package errors

const (
	BaseURLParsingError  = "could not parse API base URL"
	RequestBuildingError = "could not build HTTP request"
	RequestSendingError  = "HTTP request failed"
	ResponseReadingError = "could not read HTTP response body"
	MarshallingError     = "failed to marshall request body"
	UnexpectedStatus     = "API responded with an error status"
)
