package assessments

import (
	"fmt"
	"strings"

	"github.com/pthm/contentlint/internal/research"
	"github.com/pthm/contentlint/internal/researcher"
)

// TextLength rates the total word count.
type TextLength struct{}

func (a *TextLength) Name() string { return "text-length" }

func (a *TextLength) Description() string {
	return "Checks that the text is long enough to rank"
}

func (a *TextLength) Config() AssessmentConfig {
	return AssessmentConfig{
		Category:     SEO,
		Requirements: needs(nil, researcher.TextLength),
	}
}

func (a *TextLength) Run(ctx *Context) (Result, error) {
	limits, err := researcher.ConfigValue[researcher.TextLengthLimits](ctx.Researcher, researcher.TextLength)
	if err != nil {
		return Result{}, err
	}
	words := research.WordCount(ctx.Researcher)

	out := Result{Value: value(float64(words))}
	switch {
	case words >= limits.Recommended:
		out.Score = 9
		out.Message = fmt.Sprintf("The text contains %d words. Good job!", words)
	case words >= limits.SlightlyBelow:
		out.Score = 6
		out.Message = fmt.Sprintf("The text contains %d words. This is slightly below the recommended minimum of %d words.", words, limits.Recommended)
	case words >= limits.Below:
		out.Score = 3
		out.Message = fmt.Sprintf("The text contains %d words. This is below the recommended minimum of %d words.", words, limits.Recommended)
	case words >= limits.FarBelow:
		out.Score = 2
		out.Message = fmt.Sprintf("The text contains %d words. This is far below the recommended minimum of %d words.", words, limits.Recommended)
	default:
		out.Score = 1
		out.Message = fmt.Sprintf("The text contains %d words. This is far below the recommended minimum of %d words. Add more content.", words, limits.Recommended)
	}
	return out, nil
}

// KeywordDensity rates how often the keyphrase occurs.
type KeywordDensity struct{}

func (a *KeywordDensity) Name() string { return "keyword-density" }

func (a *KeywordDensity) Description() string {
	return "Checks that the keyphrase density is within the recommended range"
}

func (a *KeywordDensity) Config() AssessmentConfig {
	return AssessmentConfig{
		Category:        SEO,
		Requirements:    needs([]research.Name{research.KeywordCountName}, researcher.KeywordDensity),
		RequiresKeyword: true,
	}
}

func (a *KeywordDensity) Run(ctx *Context) (Result, error) {
	limits, err := researcher.ConfigValue[researcher.DensityLimits](ctx.Researcher, researcher.KeywordDensity)
	if err != nil {
		return Result{}, err
	}
	res, err := research.KeywordCount(ctx.Researcher)
	if err != nil {
		return Result{}, err
	}
	if res.Words == 0 {
		return Result{Message: "Add some text to check the keyphrase density."}, nil
	}

	evidence := make([]Evidence, 0, len(res.Matches))
	for _, m := range res.Matches {
		evidence = append(evidence, Evidence{Sentence: m.Sentence})
	}
	out := Result{Value: value(res.Density), Evidence: evidence}
	switch {
	case res.Count == 0:
		out.Score = 4
		out.Message = "The focus keyphrase was not found in the text. Use it a few times."
	case res.Density < limits.Min:
		out.Score = 4
		out.Message = fmt.Sprintf("The focus keyphrase was found %d times, a density of %.1f%%. That's less than the recommended minimum of %.1f%%.", res.Count, res.Density, limits.Min)
	case res.Density > limits.Max:
		out.Score = 4
		out.Message = fmt.Sprintf("The focus keyphrase was found %d times, a density of %.1f%%. That's more than the recommended maximum of %.1f%%. Don't overoptimize!", res.Count, res.Density, limits.Max)
	default:
		out.Score = 9
		out.Message = fmt.Sprintf("The focus keyphrase was found %d times. This is great!", res.Count)
	}
	return out, nil
}

// KeyphraseLength rates the number of content words in the keyphrase.
type KeyphraseLength struct{}

func (a *KeyphraseLength) Name() string { return "keyphrase-length" }

func (a *KeyphraseLength) Description() string {
	return "Checks that the keyphrase is neither empty nor too long"
}

func (a *KeyphraseLength) Config() AssessmentConfig {
	return AssessmentConfig{
		Category:        SEO,
		Requirements:    needs([]research.Name{research.KeyphraseContentWordsName}, researcher.KeyphraseLength),
		RequiresKeyword: true,
	}
}

func (a *KeyphraseLength) Run(ctx *Context) (Result, error) {
	limits, err := researcher.ConfigValue[researcher.KeyphraseLengthLimits](ctx.Researcher, researcher.KeyphraseLength)
	if err != nil {
		return Result{}, err
	}
	kp, err := research.KeyphraseContentWords(ctx.Researcher)
	if err != nil {
		return Result{}, err
	}
	n := len(kp.Content)
	if n == 0 {
		n = len(kp.Words)
	}

	out := Result{Value: value(float64(n))}
	switch {
	case n <= limits.Recommended:
		out.Score = 9
		out.Message = "Good job!"
	case n <= limits.Acceptable:
		out.Score = 6
		out.Message = fmt.Sprintf("The keyphrase contains %d content words. That's more than the recommended maximum of %d.", n, limits.Recommended)
	default:
		out.Score = 3
		out.Message = fmt.Sprintf("The keyphrase contains %d content words. That's way more than the recommended maximum of %d. Make it shorter!", n, limits.Recommended)
	}
	return out, nil
}

// FunctionWordsInKeyphrase flags keyphrases made only of function words.
type FunctionWordsInKeyphrase struct{}

func (a *FunctionWordsInKeyphrase) Name() string { return "function-words-in-keyphrase" }

func (a *FunctionWordsInKeyphrase) Description() string {
	return "Checks that the keyphrase contains at least one content word"
}

func (a *FunctionWordsInKeyphrase) Config() AssessmentConfig {
	return AssessmentConfig{
		Category:        SEO,
		Requirements:    needs([]research.Name{research.KeyphraseContentWordsName}),
		RequiresKeyword: true,
	}
}

func (a *FunctionWordsInKeyphrase) Run(ctx *Context) (Result, error) {
	kp, err := research.KeyphraseContentWords(ctx.Researcher)
	if err != nil {
		return Result{}, err
	}
	if len(kp.Content) == 0 {
		return Result{
			Score:   3,
			Message: fmt.Sprintf("Your keyphrase %q contains function words only. Add a word that says what the page is about.", strings.Join(kp.Words, " ")),
		}, nil
	}
	return Result{Score: 9, Message: "The keyphrase contains content words."}, nil
}

// KeyphraseInTitle rates where the keyphrase appears in the SEO title.
type KeyphraseInTitle struct{}

func (a *KeyphraseInTitle) Name() string { return "keyphrase-in-title" }

func (a *KeyphraseInTitle) Description() string {
	return "Checks that the SEO title starts with the exact keyphrase"
}

func (a *KeyphraseInTitle) Config() AssessmentConfig {
	return AssessmentConfig{Category: SEO, RequiresKeyword: true}
}

func (a *KeyphraseInTitle) Run(ctx *Context) (Result, error) {
	if !ctx.Researcher.Paper().HasTitle() {
		return Result{Message: "Add an SEO title to check for the keyphrase."}, nil
	}
	m := research.KeyphraseInTitle(ctx.Researcher)
	switch {
	case m.AtStart:
		return Result{Score: 9, Message: "The exact match of the keyphrase appears at the beginning of the SEO title. Good job!"}, nil
	case m.Exact:
		return Result{Score: 6, Message: "The exact match of the keyphrase appears in the SEO title, but not at the beginning. Move it to the beginning."}, nil
	case m.AllWords:
		return Result{Score: 4, Message: "The SEO title contains all words of the keyphrase, but not as an exact match."}, nil
	default:
		return Result{Score: 2, Message: "The SEO title does not contain the keyphrase. Try to use it at the beginning."}, nil
	}
}

// KeyphraseInIntroduction rates the first paragraph.
type KeyphraseInIntroduction struct{}

func (a *KeyphraseInIntroduction) Name() string { return "keyphrase-in-introduction" }

func (a *KeyphraseInIntroduction) Description() string {
	return "Checks that the keyphrase or a synonym appears in the first paragraph"
}

func (a *KeyphraseInIntroduction) Config() AssessmentConfig {
	return AssessmentConfig{
		Category:        SEO,
		Requirements:    needs([]research.Name{research.KeyphraseInIntroductionName}),
		RequiresKeyword: true,
	}
}

func (a *KeyphraseInIntroduction) Run(ctx *Context) (Result, error) {
	m, err := research.KeyphraseInIntroduction(ctx.Researcher)
	if err != nil {
		return Result{}, err
	}
	switch {
	case m.InSentence:
		return Result{
			Score:    9,
			Message:  "Well done! The first paragraph contains the focus keyphrase.",
			Evidence: []Evidence{{Sentence: m.Sentence}},
		}, nil
	case m.InParagraph:
		return Result{Score: 6, Message: "The first paragraph contains all words of the keyphrase, but not within one sentence."}, nil
	default:
		return Result{Score: 3, Message: "The keyphrase does not appear in the first paragraph. Make sure the topic is clear immediately."}, nil
	}
}

// MetaDescriptionKeyword rates keyphrase use in the meta description.
type MetaDescriptionKeyword struct{}

func (a *MetaDescriptionKeyword) Name() string { return "meta-description-keyword" }

func (a *MetaDescriptionKeyword) Description() string {
	return "Checks that the meta description mentions the keyphrase once or twice"
}

func (a *MetaDescriptionKeyword) Config() AssessmentConfig {
	return AssessmentConfig{
		Category:        SEO,
		Requirements:    needs([]research.Name{research.KeyphraseInDescriptionName}),
		RequiresKeyword: true,
	}
}

func (a *MetaDescriptionKeyword) Run(ctx *Context) (Result, error) {
	if !ctx.Researcher.Paper().HasDescription() {
		return Result{Message: "Add a meta description to check for the keyphrase."}, nil
	}
	n, err := research.KeyphraseInDescription(ctx.Researcher)
	if err != nil {
		return Result{}, err
	}

	out := Result{Value: value(float64(n))}
	switch {
	case n == 0:
		out.Score = 3
		out.Message = "The meta description has been specified, but it does not contain the keyphrase."
	case n <= 2:
		out.Score = 9
		out.Message = "Keyphrase or synonym appear in the meta description. Well done!"
	default:
		out.Score = 3
		out.Message = fmt.Sprintf("The meta description contains the keyphrase %d times, which is over the advised maximum of 2 times.", n)
	}
	return out, nil
}

// OutboundLinks rates links to other sites.
type OutboundLinks struct{}

func (a *OutboundLinks) Name() string { return "outbound-links" }

func (a *OutboundLinks) Description() string {
	return "Checks that the text links to other sites"
}

func (a *OutboundLinks) Config() AssessmentConfig {
	return AssessmentConfig{Category: SEO}
}

func (a *OutboundLinks) Run(ctx *Context) (Result, error) {
	stats := research.Links(ctx.Researcher)
	n := len(stats.Outbound)

	out := Result{Value: value(float64(n))}
	for _, l := range stats.Outbound {
		out.Evidence = append(out.Evidence, Evidence{Text: l.Href, Sentence: l.Text})
	}
	switch {
	case n == 0:
		out.Score = 3
		out.Message = "No outbound links appear in this page. Add some where appropriate."
	case stats.OutboundNoFollow == n:
		out.Score = 7
		out.Message = "All outbound links on this page are nofollowed. Add some normal links."
	default:
		out.Score = 8
		out.Message = "Good job!"
	}
	return out, nil
}

// InternalLinks rates links to the same site.
type InternalLinks struct{}

func (a *InternalLinks) Name() string { return "internal-links" }

func (a *InternalLinks) Description() string {
	return "Checks that the text links to other pages of the same site"
}

func (a *InternalLinks) Config() AssessmentConfig {
	return AssessmentConfig{Category: SEO}
}

func (a *InternalLinks) Run(ctx *Context) (Result, error) {
	stats := research.Links(ctx.Researcher)
	n := len(stats.Internal)
	if n == 0 {
		return Result{Score: 3, Value: value(0), Message: "No internal links appear in this page. Make sure to add some!"}, nil
	}
	return Result{Score: 9, Value: value(float64(n)), Message: "You have enough internal links. Good job!"}, nil
}
