package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/pthm/contentlint/internal/analysis"
	"github.com/pthm/contentlint/internal/assessments"
	"github.com/pthm/contentlint/internal/ui"
)

// maxEvidence is the number of evidence lines printed per result.
const maxEvidence = 3

// TerminalReporter outputs results to the terminal with colors
type TerminalReporter struct {
	w           io.Writer
	styles      *ui.Styles
	failOnBad   bool
	showSkipped bool
}

// TerminalOptions configure the terminal reporter.
type TerminalOptions struct {
	FailOnBad   bool
	ShowSkipped bool
}

// NewTerminalReporter creates a new terminal reporter
func NewTerminalReporter(w io.Writer, u *ui.UI, opts TerminalOptions) *TerminalReporter {
	return &TerminalReporter{w: w, styles: u.Styles, failOnBad: opts.FailOnBad, showSkipped: opts.ShowSkipped}
}

// Report outputs reports to the terminal
func (r *TerminalReporter) Report(reports []*analysis.Report) error {
	if len(reports) == 0 {
		fmt.Fprintln(r.w, r.styles.Skipped.Render("No content to analyze"))
		return nil
	}

	for _, rep := range reports {
		r.printReport(rep)
	}

	summary := ComputeSummary(reports)
	r.printSummary(summary)

	if r.failOnBad && summary.Bad > 0 {
		return ErrBadResults
	}
	return nil
}

func (r *TerminalReporter) printReport(rep *analysis.Report) {
	s := r.styles

	fmt.Fprintln(r.w)
	name := rep.ID
	if name == "" {
		name = "(untitled)"
	}
	fmt.Fprintf(r.w, "%s %s\n", s.Header.Render(name), s.Path.Render("["+rep.Language+"]"))
	if rep.FallbackReason != "" {
		fmt.Fprintf(r.w, "  %s\n", s.Warning.Render(s.IconWarning+" "+rep.FallbackReason))
	}

	var scores []string
	if rep.HasReadabilityScore {
		scores = append(scores, s.ForScore(rep.ReadabilityScore).Render(fmt.Sprintf("Readability %d", rep.ReadabilityScore)))
	}
	if rep.HasSEOScore {
		scores = append(scores, s.ForScore(rep.SEOScore).Render(fmt.Sprintf("SEO %d", rep.SEOScore)))
	}
	if rep.FleschReadingEase != nil {
		scores = append(scores, fmt.Sprintf("Flesch %.1f", *rep.FleschReadingEase))
	}
	scores = append(scores, s.Path.Render(fmt.Sprintf("%d words, %d sentences", rep.Stats.Words, rep.Stats.Sentences)))
	fmt.Fprintf(r.w, "  %s\n", strings.Join(scores, "  "))

	shown := r.visible(rep.Results)
	idWidth, iconWidth := 0, 0
	for _, res := range shown {
		_, icon := s.ForResult(res)
		idWidth = max(idWidth, runewidth.StringWidth(res.ID))
		iconWidth = max(iconWidth, runewidth.StringWidth(icon))
	}

	for _, category := range []assessments.Category{assessments.Readability, assessments.SEO, assessments.AI} {
		var inCategory []assessments.Result
		for _, res := range shown {
			if res.Category == category {
				inCategory = append(inCategory, res)
			}
		}
		if len(inCategory) == 0 {
			continue
		}

		fmt.Fprintf(r.w, "  %s\n", s.Subheader.Render(categoryTitle(category)))
		for _, res := range inCategory {
			r.printResult(res, idWidth, iconWidth)
		}
	}
}

func (r *TerminalReporter) visible(results []assessments.Result) []assessments.Result {
	if r.showSkipped {
		return results
	}
	var out []assessments.Result
	for _, res := range results {
		if res.Status != assessments.Skipped {
			out = append(out, res)
		}
	}
	return out
}

func (r *TerminalReporter) printResult(res assessments.Result, idWidth, iconWidth int) {
	style, icon := r.styles.ForResult(res)

	fmt.Fprintf(r.w, "    %s %s  %s\n",
		style.Render(runewidth.FillRight(icon, iconWidth)),
		runewidth.FillRight(res.ID, idWidth),
		res.Message)

	indent := strings.Repeat(" ", 4+iconWidth+1+idWidth+2)
	for i, ev := range res.Evidence {
		if i == maxEvidence {
			fmt.Fprintf(r.w, "%s%s\n", indent, r.styles.Path.Render(fmt.Sprintf("... and %d more", len(res.Evidence)-maxEvidence)))
			break
		}
		line := ev.Sentence
		if line == "" {
			line = ev.Text
		}
		if line == "" {
			continue
		}
		fmt.Fprintf(r.w, "%s%s\n", indent, r.styles.Path.Render("> "+runewidth.Truncate(line, 100, "...")))
	}
}

func categoryTitle(c assessments.Category) string {
	switch c {
	case assessments.Readability:
		return "Readability"
	case assessments.SEO:
		return "SEO"
	case assessments.AI:
		return "AI review"
	default:
		return string(c)
	}
}

func (r *TerminalReporter) printSummary(summary Summary) {
	s := r.styles

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s.Separator.Render("─────────────────────────────────────"))

	parts := []string{
		s.Good.Render(fmt.Sprintf("%d good", summary.Good)),
		s.OK.Render(fmt.Sprintf("%d ok", summary.OK)),
		s.Bad.Render(fmt.Sprintf("%d bad", summary.Bad)),
	}
	if summary.Feedback > 0 {
		parts = append(parts, s.Feedback.Render(fmt.Sprintf("%d feedback", summary.Feedback)))
	}
	if summary.Skipped > 0 {
		parts = append(parts, s.Skipped.Render(fmt.Sprintf("%d skipped", summary.Skipped)))
	}
	if summary.Failed > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d failed", summary.Failed)))
	}

	fmt.Fprintf(r.w, "Analyzed %d %s: %s\n", summary.Documents, plural(summary.Documents, "document", "documents"), strings.Join(parts, ", "))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
