// Package report renders run summaries.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"
	"voice-api-smoke/internal/checker/v1/models"
	"voice-api-smoke/internal/constants"

	"github.com/olekukonko/tablewriter"
)

// ValidateFormat checks a summary format name.
func ValidateFormat(format string) error {
	for _, f := range constants.ValidSummaryFormats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("invalid summary format %q, expected one of %v", format, constants.ValidSummaryFormats)
}

// Render writes the report summary in the given format.
func Render(w io.Writer, format string, r *models.Report) error {
	switch format {
	case constants.SummaryTable:
		renderTable(w, r)
		return nil
	case constants.SummaryJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case constants.SummaryNone:
		return nil
	default:
		return ValidateFormat(format)
	}
}

func renderTable(w io.Writer, r *models.Report) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{
		"Check",
		"Outcome",
		"State",
		"Kind",
		"Status",
		"Duration",
	})
	for _, res := range r.Results {
		status := ""
		if res.StatusCode != 0 {
			status = strconv.Itoa(res.StatusCode)
		}
		table.Append([]string{
			res.Check,
			res.Outcome,
			res.State,
			res.Kind,
			status,
			res.Duration.Round(time.Millisecond).String(),
		})
	}
	passed, failed, skipped := r.Counts()
	table.SetFooter([]string{
		"run " + r.RunID,
		fmt.Sprintf("%d passed", passed),
		fmt.Sprintf("%d failed", failed),
		fmt.Sprintf("%d skipped", skipped),
		"",
		r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond).String(),
	})
	table.Render()
}
