// Package errors provides string codes for error instantiation.

package errors

const (
	InvalidSummaryFormat = "invalid summary format"
	InvalidBaseURL       = "API base URL is not usable"
	SummaryRenderError   = "could not render run summary"
	ReportPublishError   = "could not publish run report"
	InvalidFaultMode     = "invalid stub fault mode"
	ServerStartError     = "stub server start failed"
	ServerShutdownError  = "stub server shutdown failed"
)
