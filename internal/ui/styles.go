package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pthm/contentlint/internal/assessments"
)

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool

	// Rating styles
	Good     lipgloss.Style
	OK       lipgloss.Style
	Bad      lipgloss.Style
	Feedback lipgloss.Style
	Skipped  lipgloss.Style
	Warning  lipgloss.Style

	// Structural styles
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Path      lipgloss.Style
	ID        lipgloss.Style
	Separator lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconGood     string
	IconOK       string
	IconBad      string
	IconFeedback string
	IconSkipped  string
	IconWarning  string
}

// NewStyles creates a new Styles instance
// When enabled is false, styles return text unchanged (for non-TTY output)
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		s.Good = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))     // Green
		s.OK = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))       // Yellow
		s.Bad = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))       // Red
		s.Feedback = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // Blue
		s.Skipped = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))   // Gray
		s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))  // Yellow

		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")) // White bold
		s.Subheader = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))         // Cyan
		s.Path = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))               // Gray
		s.ID = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))                 // Gray
		s.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))          // Gray

		s.IconGood = "\u25cf"     // ●
		s.IconOK = "\u25cf"       // ●
		s.IconBad = "\u25cf"      // ●
		s.IconFeedback = "\u25cb" // ○
		s.IconSkipped = "\u2013"  // –
		s.IconWarning = "\u26a0"  // ⚠
	} else {
		// No-op styles for non-TTY (plain text output)
		s.Good = lipgloss.NewStyle()
		s.OK = lipgloss.NewStyle()
		s.Bad = lipgloss.NewStyle()
		s.Feedback = lipgloss.NewStyle()
		s.Skipped = lipgloss.NewStyle()
		s.Warning = lipgloss.NewStyle()

		s.Header = lipgloss.NewStyle()
		s.Subheader = lipgloss.NewStyle()
		s.Path = lipgloss.NewStyle()
		s.ID = lipgloss.NewStyle()
		s.Separator = lipgloss.NewStyle()

		s.IconGood = "GOOD"
		s.IconOK = "OK"
		s.IconBad = "BAD"
		s.IconFeedback = "NOTE"
		s.IconSkipped = "SKIP"
		s.IconWarning = "WARN:"
	}

	return s
}

// Enabled returns whether styling is enabled
func (s *Styles) Enabled() bool {
	return s.enabled
}

// ForResult returns the style and icon for a result.
func (s *Styles) ForResult(res assessments.Result) (lipgloss.Style, string) {
	switch {
	case res.Status == assessments.Skipped:
		return s.Skipped, s.IconSkipped
	case res.Status == assessments.Failed:
		return s.Warning, s.IconWarning
	}
	switch res.Rating {
	case assessments.Good:
		return s.Good, s.IconGood
	case assessments.OK:
		return s.OK, s.IconOK
	case assessments.Bad:
		return s.Bad, s.IconBad
	default:
		return s.Feedback, s.IconFeedback
	}
}

// ForScore returns the style for an overall 0-100 score, using the same
// bands as single results.
func (s *Styles) ForScore(score int) lipgloss.Style {
	switch assessments.RatingFor((score*assessments.MaxScore + 50) / 100) {
	case assessments.Good:
		return s.Good
	case assessments.OK:
		return s.OK
	case assessments.Bad:
		return s.Bad
	default:
		return s.Feedback
	}
}
