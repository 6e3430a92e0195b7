// Package reporter prints analysis reports.
package reporter

import (
	"errors"

	"github.com/pthm/contentlint/internal/analysis"
	"github.com/pthm/contentlint/internal/assessments"
)

// ErrBadResults is returned by reporters configured to fail when any
// assessment is rated bad.
var ErrBadResults = errors.New("bad results found")

// Reporter defines the interface for outputting analysis reports
type Reporter interface {
	// Report outputs the analysis reports
	Report(reports []*analysis.Report) error
}

// Summary holds summary statistics for a lint run
type Summary struct {
	Documents int `json:"documents"`
	Good      int `json:"good"`
	OK        int `json:"ok"`
	Bad       int `json:"bad"`
	Feedback  int `json:"feedback"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
	Fallbacks int `json:"fallbacks"`
}

// ComputeSummary computes summary statistics from reports
func ComputeSummary(reports []*analysis.Report) Summary {
	s := Summary{Documents: len(reports)}

	for _, rep := range reports {
		if rep.FallbackReason != "" {
			s.Fallbacks++
		}
		for _, res := range rep.Results {
			switch res.Status {
			case assessments.Skipped:
				s.Skipped++
				continue
			case assessments.Failed:
				s.Failed++
				continue
			}
			switch res.Rating {
			case assessments.Good:
				s.Good++
			case assessments.OK:
				s.OK++
			case assessments.Bad:
				s.Bad++
			case assessments.Feedback:
				s.Feedback++
			}
		}
	}

	return s
}
