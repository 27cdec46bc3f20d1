// Package constants provides constants.

package constants

const (
	OutcomePassed  = "passed"
	OutcomeFailed  = "failed"
	OutcomeSkipped = "skipped"

	StateVerified         = "verified"
	StateFetchFailed      = "fetch_failed"
	StateValidationFailed = "validation_failed"
	StateSkipped          = "skipped"
	StateRootResponded    = "responded"
	StateRootFailed       = "unreachable"
	StatePhrasesListed    = "listed"
	StatePhrasesFailed    = "unlisted"

	KindTransportError     = "transport_error"
	KindMissingField       = "missing_field"
	KindValidationMismatch = "validation_mismatch"

	CheckRoot    = "root"
	CheckSession = "session_round_trip"
	CheckPhrases = "phrases"

	PathRoot     = "/"
	PathSessions = "/api/v1/sessions"
	PathPhrases  = "/api/v1/phrases"

	SummaryTable = "table"
	SummaryJSON  = "json"
	SummaryNone  = "none"

	Terminator = "-------------------------"
)

var ValidSummaryFormats = []string{
	SummaryTable,
	SummaryJSON,
	SummaryNone}
