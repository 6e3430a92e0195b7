package assessments

import (
	"fmt"

	"github.com/pthm/contentlint/internal/research"
	"github.com/pthm/contentlint/internal/researcher"
)

// FleschReadingEase rates the language's reading ease formula.
type FleschReadingEase struct{}

func (a *FleschReadingEase) Name() string { return "flesch-reading-ease" }

func (a *FleschReadingEase) Description() string {
	return "Scores how easy the text is to read using the language's Flesch formula"
}

func (a *FleschReadingEase) Config() AssessmentConfig {
	return AssessmentConfig{
		Category:     Readability,
		Requirements: needs([]research.Name{research.FleschReadingEaseName}, researcher.FleschTiers),
	}
}

func (a *FleschReadingEase) Run(ctx *Context) (Result, error) {
	res, err := research.FleschReadingEase(ctx.Researcher)
	if err != nil {
		return Result{}, err
	}
	if !res.Defined {
		return Result{Tier: res.Tier, Message: "Add some text to calculate the reading ease."}, nil
	}

	out := Result{Value: value(res.Score), Tier: res.Tier}
	switch {
	case res.Score >= 60:
		out.Score = 9
		out.Message = fmt.Sprintf("The copy scores %.1f in the reading ease test, which is considered %s to read.", res.Score, res.Tier)
	case res.Score >= 50:
		out.Score = 6
		out.Message = fmt.Sprintf("The copy scores %.1f in the reading ease test, which is considered %s to read. Try shorter sentences.", res.Score, res.Tier)
	default:
		out.Score = 3
		out.Message = fmt.Sprintf("The copy scores %.1f in the reading ease test, which is considered %s to read. Try shorter sentences and words.", res.Score, res.Tier)
	}
	return out, nil
}

// PassiveVoice rates the share of passive sentences.
type PassiveVoice struct{}

func (a *PassiveVoice) Name() string { return "passive-voice" }

func (a *PassiveVoice) Description() string {
	return "Checks that at most 10% of the sentences use the passive voice"
}

func (a *PassiveVoice) Config() AssessmentConfig {
	return AssessmentConfig{
		Category:     Readability,
		Requirements: needs([]research.Name{research.PassiveVoiceName}),
	}
}

func (a *PassiveVoice) Run(ctx *Context) (Result, error) {
	res, err := research.PassiveVoice(ctx.Researcher)
	if err != nil {
		return Result{}, err
	}
	if res.Sentences == 0 {
		return Result{Message: "Add some text to check for passive voice."}, nil
	}

	pct := res.Percentage()
	out := Result{Value: value(pct), Evidence: sentenceEvidence(res.Passives)}
	switch {
	case pct <= 10:
		out.Score = 9
		out.Message = "You are using enough active voice."
	case pct <= 15:
		out.Score = 6
		out.Message = fmt.Sprintf("%.1f%% of the sentences contain passive voice, which is more than the recommended maximum of 10%%.", pct)
	default:
		out.Score = 3
		out.Message = fmt.Sprintf("%.1f%% of the sentences contain passive voice, which is more than the recommended maximum of 10%%. Try to use their active counterparts.", pct)
	}
	return out, nil
}

// minTransitionWords is the text length from which transition words are
// assessed.
const minTransitionWords = 200

// TransitionWords rates the share of sentences with a transition word.
type TransitionWords struct{}

func (a *TransitionWords) Name() string { return "transition-words" }

func (a *TransitionWords) Description() string {
	return "Checks that at least 30% of the sentences contain a transition word"
}

func (a *TransitionWords) Config() AssessmentConfig {
	return AssessmentConfig{
		Category:     Readability,
		Requirements: needs([]research.Name{research.TransitionWordsName}),
	}
}

func (a *TransitionWords) Run(ctx *Context) (Result, error) {
	if research.WordCount(ctx.Researcher) < minTransitionWords {
		return Result{Message: fmt.Sprintf("Transition words are checked from %d words on.", minTransitionWords)}, nil
	}
	res, err := research.TransitionWords(ctx.Researcher)
	if err != nil {
		return Result{}, err
	}

	pct := res.Percentage()
	out := Result{Value: value(pct), Evidence: sentenceEvidence(res.Transitions)}
	switch {
	case pct >= 30:
		out.Score = 9
		out.Message = "Well done! Enough sentences contain transition words."
	case pct >= 20:
		out.Score = 6
		out.Message = fmt.Sprintf("Only %.1f%% of the sentences contain transition words, which is not enough. Use more of them.", pct)
	default:
		out.Score = 3
		out.Message = fmt.Sprintf("Only %.1f%% of the sentences contain transition words, which is not enough. Use more of them.", pct)
	}
	return out, nil
}

// SentenceLength rates the share of long sentences.
type SentenceLength struct{}

func (a *SentenceLength) Name() string { return "sentence-length" }

func (a *SentenceLength) Description() string {
	return "Checks the share of sentences longer than the recommended word count"
}

func (a *SentenceLength) Config() AssessmentConfig {
	return AssessmentConfig{
		Category:     Readability,
		Requirements: needs(nil, researcher.SentenceLength),
	}
}

func (a *SentenceLength) Run(ctx *Context) (Result, error) {
	limits, err := researcher.ConfigValue[researcher.SentenceLengthLimits](ctx.Researcher, researcher.SentenceLength)
	if err != nil {
		return Result{}, err
	}
	lengths := research.SentenceLengths(ctx.Researcher)
	if len(lengths) == 0 {
		return Result{Message: "Add some text to check sentence length."}, nil
	}

	var long []Evidence
	for _, l := range lengths {
		if l.Words > limits.RecommendedWords {
			long = append(long, Evidence{Sentence: l.Sentence, End: l.Words})
		}
	}
	pct := float64(len(long)) / float64(len(lengths)) * 100

	out := Result{Value: value(pct), Evidence: long}
	switch {
	case pct <= limits.SlightlyTooMany:
		out.Score = 9
		out.Message = "Great! Your sentences have a good length."
	case pct <= limits.FarTooMany:
		out.Score = 6
		out.Message = fmt.Sprintf("%.1f%% of the sentences contain more than %d words, which is more than the recommended maximum of %.0f%%.", pct, limits.RecommendedWords, limits.SlightlyTooMany)
	default:
		out.Score = 3
		out.Message = fmt.Sprintf("%.1f%% of the sentences contain more than %d words, which is more than the recommended maximum of %.0f%%. Try to shorten them.", pct, limits.RecommendedWords, limits.SlightlyTooMany)
	}
	return out, nil
}

// ParagraphLength rates the longest paragraph.
type ParagraphLength struct{}

func (a *ParagraphLength) Name() string { return "paragraph-length" }

func (a *ParagraphLength) Description() string {
	return "Checks that no paragraph is longer than the recommended maximum"
}

func (a *ParagraphLength) Config() AssessmentConfig {
	return AssessmentConfig{
		Category:     Readability,
		Requirements: needs(nil, researcher.ParagraphLength),
	}
}

func (a *ParagraphLength) Run(ctx *Context) (Result, error) {
	limits, err := researcher.ConfigValue[researcher.ParagraphLengthLimits](ctx.Researcher, researcher.ParagraphLength)
	if err != nil {
		return Result{}, err
	}
	paras := research.ParagraphLengths(ctx.Researcher)
	if len(paras) == 0 {
		return Result{Message: "Add some text to check paragraph length."}, nil
	}

	longest := 0
	var tooLong []Evidence
	for _, p := range paras {
		longest = max(longest, p.Words)
		if p.Words > limits.Recommended {
			tooLong = append(tooLong, Evidence{Sentence: p.Paragraph, End: p.Words})
		}
	}

	out := Result{Value: value(float64(longest)), Evidence: tooLong}
	switch {
	case longest <= limits.Recommended:
		out.Score = 9
		out.Message = "None of the paragraphs are too long. Great job!"
	case longest <= limits.Maximum:
		out.Score = 6
		out.Message = fmt.Sprintf("%d of the paragraphs contain more than the recommended maximum of %d words.", len(tooLong), limits.Recommended)
	default:
		out.Score = 3
		out.Message = fmt.Sprintf("%d of the paragraphs contain more than the recommended maximum of %d words. Shorten them.", len(tooLong), limits.Recommended)
	}
	return out, nil
}

// maxConsecutive is the longest acceptable run of sentences starting with
// the same word.
const maxConsecutive = 2

// ConsecutiveSentences flags runs of sentences that start with the same word.
type ConsecutiveSentences struct{}

func (a *ConsecutiveSentences) Name() string { return "consecutive-sentences" }

func (a *ConsecutiveSentences) Description() string {
	return "Checks for three or more consecutive sentences starting with the same word"
}

func (a *ConsecutiveSentences) Config() AssessmentConfig {
	return AssessmentConfig{
		Category:     Readability,
		Requirements: needs([]research.Name{research.SentenceBeginningsName}),
	}
}

func (a *ConsecutiveSentences) Run(ctx *Context) (Result, error) {
	runs, err := research.SentenceBeginnings(ctx.Researcher)
	if err != nil {
		return Result{}, err
	}
	if len(runs) == 0 {
		return Result{Message: "Add some text to check sentence beginnings."}, nil
	}

	var repeated []Evidence
	longest := 0
	for _, run := range runs {
		longest = max(longest, run.Count)
		if run.Count > maxConsecutive {
			repeated = append(repeated, Evidence{Text: run.Word, Start: run.Start, End: run.Start + run.Count})
		}
	}

	out := Result{Value: value(float64(longest)), Evidence: repeated}
	if len(repeated) == 0 {
		out.Score = 9
		out.Message = "There is enough variety in your sentences."
		return out, nil
	}
	out.Score = 3
	out.Message = fmt.Sprintf("The text contains %d instances where %d or more consecutive sentences start with the same word. Mix things up!", len(repeated), maxConsecutive+1)
	return out, nil
}

// SubheadingDistribution rates the text between subheadings.
type SubheadingDistribution struct{}

func (a *SubheadingDistribution) Name() string { return "subheading-distribution" }

func (a *SubheadingDistribution) Description() string {
	return "Checks that long texts are broken up by subheadings"
}

func (a *SubheadingDistribution) Config() AssessmentConfig {
	return AssessmentConfig{
		Category:     Readability,
		Requirements: needs(nil, researcher.SubheadingDistribution),
	}
}

func (a *SubheadingDistribution) Run(ctx *Context) (Result, error) {
	limits, err := researcher.ConfigValue[researcher.SubheadingLimits](ctx.Researcher, researcher.SubheadingDistribution)
	if err != nil {
		return Result{}, err
	}
	sections := research.SubheadingSections(ctx.Researcher)
	if len(sections) == 0 {
		return Result{Message: "Add some text to check subheadings."}, nil
	}

	headings, longest := 0, 0
	var tooLong []Evidence
	for _, s := range sections {
		if s.Heading != "" {
			headings++
		}
		longest = max(longest, s.Words)
		if s.Words > limits.Maximum {
			tooLong = append(tooLong, Evidence{Text: s.Heading, End: s.Words})
		}
	}

	out := Result{Value: value(float64(longest)), Evidence: tooLong}
	switch {
	case headings == 0 && longest <= limits.Maximum:
		out.Score = 9
		out.Message = "You are not using any subheadings, but your text is short enough and probably doesn't need them."
	case headings == 0:
		out.Score = 2
		out.Message = "You are not using any subheadings, although your text is rather long. Add subheadings."
	case longest <= limits.Recommended:
		out.Score = 9
		out.Message = "Great job distributing your text!"
	case longest <= limits.Maximum:
		out.Score = 6
		out.Message = fmt.Sprintf("A section of your text is longer than the recommended %d words.", limits.Recommended)
	default:
		out.Score = 3
		out.Message = fmt.Sprintf("%d sections of your text are longer than %d words and are not separated by subheadings.", len(tooLong), limits.Maximum)
	}
	return out, nil
}
