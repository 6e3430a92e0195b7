// Package analysis is the entry point of the engine: it selects a
// researcher for the requested language, runs the assessments and
// condenses the results into a report.
package analysis

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pthm/contentlint/internal/assessments"
	"github.com/pthm/contentlint/internal/language"
	"github.com/pthm/contentlint/internal/paper"
	"github.com/pthm/contentlint/internal/research"
	"github.com/pthm/contentlint/internal/researcher"
	"github.com/pthm/contentlint/internal/text"
)

// Options are the optional paper fields accepted by Analyze.
type Options struct {
	ID           string   `json:"id,omitempty"`
	FocusKeyword string   `json:"keyword,omitempty"`
	Synonyms     []string `json:"synonyms,omitempty"`
	Locale       string   `json:"locale,omitempty"`
	Title        string   `json:"title,omitempty"`
	Description  string   `json:"description,omitempty"`
	Slug         string   `json:"slug,omitempty"`
	URL          string   `json:"url,omitempty"`
}

// Paper builds the immutable paper for text.
func (o Options) Paper(body string) *paper.Paper {
	return paper.New(body,
		paper.WithID(o.ID),
		paper.WithKeyword(o.FocusKeyword),
		paper.WithSynonyms(o.Synonyms...),
		paper.WithLocale(o.Locale),
		paper.WithTitle(o.Title),
		paper.WithDescription(o.Description),
		paper.WithSlug(o.Slug),
		paper.WithURL(o.URL),
	)
}

// Stats are the size facts of the analyzed text.
type Stats struct {
	Words     int `json:"words"`
	Sentences int `json:"sentences"`
}

// Report is the outcome of analyzing one paper.
type Report struct {
	ID                  string               `json:"id,omitempty"`
	Keyword             string               `json:"keyword,omitempty"`
	RequestedLanguage   string               `json:"requested_language,omitempty"`
	Language            string               `json:"language"`
	FallbackReason      string               `json:"fallback_reason,omitempty"`
	Results             []assessments.Result `json:"results"`
	ReadabilityScore    int                  `json:"readability_score"`
	HasReadabilityScore bool                 `json:"has_readability_score"`
	SEOScore            int                  `json:"seo_score"`
	HasSEOScore         bool                 `json:"has_seo_score"`
	FleschReadingEase   *float64             `json:"flesch_reading_ease,omitempty"`
	Stats               Stats                `json:"stats"`
}

// Count returns how many results have the given rating.
func (r *Report) Count(rating assessments.Rating) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == assessments.Scored && res.Rating == rating {
			n++
		}
	}
	return n
}

// Analyzer runs assessments over papers. It is safe for concurrent use.
type Analyzer struct {
	researchers *researcher.Registry
	assessments []assessments.Assessment
	log         zerolog.Logger
	onReport    func(*Report)
	defaultLang string
}

// Option configures an Analyzer.
type Option func(*config)

type config struct {
	researchers *researcher.Registry
	registry    *assessments.Registry
	log         zerolog.Logger
	deep        bool
	only        []string
	onReport    func(*Report)
	defaultLang string
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) { c.log = log }
}

// WithResearchers replaces the default researcher registry.
func WithResearchers(r *researcher.Registry) Option {
	return func(c *config) { c.researchers = r }
}

// WithAssessments replaces the default assessment registry.
func WithAssessments(r *assessments.Registry) Option {
	return func(c *config) { c.registry = r }
}

// WithDeep includes assessments that need an AI backend.
func WithDeep(deep bool) Option {
	return func(c *config) { c.deep = deep }
}

// WithOnly restricts the run to the named assessments.
func WithOnly(names ...string) Option {
	return func(c *config) { c.only = names }
}

// WithReportHook sets a function called with every report AnalyzeBatch
// produces. It may be called from several goroutines at once.
func WithReportHook(fn func(*Report)) Option {
	return func(c *config) { c.onReport = fn }
}

// WithDefaultLanguage sets the language assumed for papers that have
// neither a requested language nor a locale. Detection is skipped then.
func WithDefaultLanguage(code string) Option {
	return func(c *config) { c.defaultLang = code }
}

// New creates an Analyzer. It fails when WithOnly names an unknown
// assessment.
func New(opts ...Option) (*Analyzer, error) {
	c := config{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&c)
	}
	if c.researchers == nil {
		c.researchers = researcher.DefaultRegistry()
	}
	if c.registry == nil {
		c.registry = assessments.DefaultRegistry(nil)
	}

	list := c.registry.Assessments(c.deep)
	if len(c.only) > 0 {
		var err error
		if list, err = c.registry.Subset(c.only); err != nil {
			return nil, err
		}
	}
	return &Analyzer{
		researchers: c.researchers,
		assessments: list,
		log:         c.log,
		onReport:    c.onReport,
		defaultLang: c.defaultLang,
	}, nil
}

// Assessments returns the assessments the analyzer runs, in order.
func (a *Analyzer) Assessments() []assessments.Assessment {
	return a.assessments
}

// Researchers returns the researcher registry.
func (a *Analyzer) Researchers() *researcher.Registry {
	return a.researchers
}

// Analyze builds a paper from body and options and analyzes it.
func (a *Analyzer) Analyze(ctx context.Context, body, languageTag string, o Options) *Report {
	return a.AnalyzePaper(ctx, o.Paper(body), languageTag)
}

// Researcher selects the researcher for p. An empty tag falls back to the
// paper's locale, then to the analyzer's default language and then to
// language detection. When no researcher can be built for the resulting
// language the default researcher is returned together with the reason.
func (a *Analyzer) Researcher(p *paper.Paper, tag string) (*researcher.Researcher, string) {
	lang := tag
	if lang == "" {
		lang = p.Language()
	}
	if lang == "" {
		lang = a.defaultLang
	}
	if lang == "" {
		lang = language.Detect(text.Plain(p.Text()))
	}

	var reason string
	if lang == "" {
		lang = researcher.DefaultLanguage
		reason = "no language given and none detected"
	}
	r, err := a.researchers.Select(lang, p)
	if err != nil {
		reason = err.Error()
	}
	if reason != "" {
		a.log.Warn().
			Str("paper", p.ID()).
			Str("requested", lang).
			Str("reason", reason).
			Msg("using default researcher")
	}
	return r, reason
}

// AnalyzePaper analyzes p with the researcher Researcher selects. A
// fallback is recorded on the report.
func (a *Analyzer) AnalyzePaper(ctx context.Context, p *paper.Paper, tag string) *Report {
	rep := &Report{ID: p.ID(), Keyword: p.Keyword(), RequestedLanguage: tag}

	var r *researcher.Researcher
	r, rep.FallbackReason = a.Researcher(p, tag)
	rep.Language = r.Language()

	rep.Results = assessments.Run(assessments.NewContext(ctx, r), a.assessments)
	rep.ReadabilityScore, rep.HasReadabilityScore = assessments.OverallScore(rep.Results, assessments.Readability)
	rep.SEOScore, rep.HasSEOScore = assessments.OverallScore(rep.Results, assessments.SEO)
	rep.Stats = Stats{Words: research.WordCount(r), Sentences: len(research.Sentences(r))}

	for _, res := range rep.Results {
		switch {
		case res.ID == "flesch-reading-ease" && res.Value != nil:
			v := *res.Value
			rep.FleschReadingEase = &v
		case res.Status == assessments.Failed:
			a.log.Warn().Str("paper", p.ID()).Str("assessment", res.ID).Str("error", res.Message).Msg("assessment failed")
		}
	}

	a.log.Debug().
		Str("paper", p.ID()).
		Str("language", rep.Language).
		Int("words", rep.Stats.Words).
		Int("sentences", rep.Stats.Sentences).
		Int("readability", rep.ReadabilityScore).
		Msg("analysis done")

	return rep
}
