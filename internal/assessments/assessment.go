// Package assessments turns research facts into rated results. Each
// assessment declares the researcher capabilities it needs; the runner
// skips assessments the active language cannot support instead of scoring
// them with another language's rules.
package assessments

import (
	"context"

	"github.com/pthm/contentlint/internal/research"
	"github.com/pthm/contentlint/internal/researcher"
)

// Category groups assessments for overall scores.
type Category string

const (
	Readability Category = "readability"
	SEO         Category = "seo"
	AI          Category = "ai"
)

// Status says whether an assessment produced a score.
type Status string

const (
	Scored  Status = "scored"
	Skipped Status = "skipped"
	Failed  Status = "failed"
)

// Rating is the traffic light shown for a result.
type Rating string

const (
	Good     Rating = "good"
	OK       Rating = "ok"
	Bad      Rating = "bad"
	Feedback Rating = "feedback"
)

// MaxScore is the best score an assessment can give.
const MaxScore = 9

// RatingFor maps points to a rating: 0 is feedback, 1-4 bad, 5-7 ok and
// 8-9 good.
func RatingFor(score int) Rating {
	switch {
	case score <= 0:
		return Feedback
	case score <= 4:
		return Bad
	case score <= 7:
		return OK
	default:
		return Good
	}
}

// Evidence points at the text that produced a rating.
type Evidence struct {
	Text     string `json:"text,omitempty"`
	Sentence string `json:"sentence,omitempty"`
	Start    int    `json:"start,omitempty"`
	End      int    `json:"end,omitempty"`
}

// Result is the outcome of one assessment.
type Result struct {
	ID       string     `json:"id"`
	Category Category   `json:"category"`
	Status   Status     `json:"status"`
	Rating   Rating     `json:"rating,omitempty"`
	Score    int        `json:"score"`
	Value    *float64   `json:"value,omitempty"`
	Tier     string     `json:"tier,omitempty"`
	Message  string     `json:"message"`
	Evidence []Evidence `json:"evidence,omitempty"`
	Missing  []string   `json:"missing,omitempty"`
}

// Context carries what an assessment may read. Researcher and its Paper are
// immutable and shared by every assessment of a run.
type Context struct {
	Context    context.Context
	Researcher *researcher.Researcher
}

// NewContext builds a Context for r.
func NewContext(ctx context.Context, r *researcher.Researcher) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Context{Context: ctx, Researcher: r}
}

// AssessmentConfig defines when an assessment applies.
type AssessmentConfig struct {
	Category Category

	// Requirements lists the config keys and helpers Run relies on. A
	// researcher lacking any of them gets a skipped result.
	Requirements researcher.Requirements

	// RequiresKeyword makes the runner return feedback asking for a
	// keyphrase when the paper has none.
	RequiresKeyword bool

	// RequiresAI marks assessments that call a model. They only run when
	// deep analysis is enabled.
	RequiresAI bool
}

// Assessment scores one aspect of a paper.
type Assessment interface {
	// Name returns the unique identifier for this assessment
	Name() string

	// Description returns a human-readable description
	Description() string

	// Config returns the assessment's configuration
	Config() AssessmentConfig

	// Run scores the paper. Only ID, Category and Status are filled in by
	// the runner; Rating is derived from Score.
	Run(ctx *Context) (Result, error)
}

func value(v float64) *float64 { return &v }

func sentenceEvidence(matches []research.SentenceMatch) []Evidence {
	out := make([]Evidence, 0, len(matches))
	for _, m := range matches {
		out = append(out, Evidence{Text: m.Match, Sentence: m.Sentence, Start: m.Start, End: m.End})
	}
	return out
}

// needs builds requirements from research names plus extra config keys.
func needs(names []research.Name, keys ...researcher.ConfigKey) researcher.Requirements {
	req := researcher.Requirements{Config: keys}
	for _, n := range names {
		req = req.Merge(research.Requirements(n))
	}
	return req
}
