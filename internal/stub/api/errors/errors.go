// Package errors provides string codes for error instantiation.

package errors

const (
	InvalidContentType      = "invalid content type"
	RequestBodyReadingError = "failed to read request body"
	UnmarshallingError      = "failed to unmarshall request body"
	MarshallingError        = "failed to marshall response body"
	MissingDataset          = "dataset is required"
	SessionNotFound         = "session not found"
	DatasetNotFound         = "dataset not found"
	ServiceUnavailable      = "service unavailable"
)
