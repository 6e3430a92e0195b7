package reporter

import (
	"encoding/json"
	"io"

	"github.com/pthm/contentlint/internal/analysis"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w         io.Writer
	failOnBad bool
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer, failOnBad bool) *JSONReporter {
	return &JSONReporter{w: w, failOnBad: failOnBad}
}

// JSONOutput represents the JSON output format
type JSONOutput struct {
	Reports []*analysis.Report `json:"reports"`
	Summary Summary            `json:"summary"`
}

// Report outputs reports as JSON
func (r *JSONReporter) Report(reports []*analysis.Report) error {
	output := JSONOutput{
		Reports: reports,
		Summary: ComputeSummary(reports),
	}
	if output.Reports == nil {
		output.Reports = []*analysis.Report{}
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return err
	}

	if r.failOnBad && output.Summary.Bad > 0 {
		return ErrBadResults
	}
	return nil
}
