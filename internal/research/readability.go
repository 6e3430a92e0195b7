package research

import (
	"strings"

	"github.com/pthm/contentlint/internal/flesch"
	"github.com/pthm/contentlint/internal/researcher"
	"github.com/pthm/contentlint/internal/text"
)

// Syllables returns the total syllable count of the paper text.
func Syllables(r *researcher.Researcher) (int, error) {
	counter, err := r.SyllableCounter()
	if err != nil {
		return 0, err
	}
	return counter.CountWords(Words(r)), nil
}

// FleschResult is a reading ease score with the statistics behind it.
// Defined is false for text without words or sentences; Score is then 0
// and Tier is flesch.Undefined.
type FleschResult struct {
	Score   float64           `json:"score"`
	Defined bool              `json:"defined"`
	Tier    string            `json:"tier"`
	Stats   flesch.Statistics `json:"stats"`
}

// FleschReadingEase scores the paper text with the language's formula.
func FleschReadingEase(r *researcher.Researcher) (FleschResult, error) {
	counter, err := r.SyllableCounter()
	if err != nil {
		return FleschResult{}, err
	}
	score, err := r.FleschScorer()
	if err != nil {
		return FleschResult{}, err
	}
	tiers, err := researcher.ConfigValue[[]flesch.Tier](r, researcher.FleschTiers)
	if err != nil {
		return FleschResult{}, err
	}

	words := Words(r)
	stats := flesch.Statistics{
		Words:     len(words),
		Sentences: len(Sentences(r)),
		Syllables: counter.CountWords(words),
	}
	res := FleschResult{Stats: stats, Tier: flesch.Undefined}
	if s, ok := score(stats); ok {
		res.Score = s
		res.Defined = true
		res.Tier = flesch.Classify(s, tiers)
	}
	return res, nil
}

// PassiveResult lists the passive sentences of a text.
type PassiveResult struct {
	Sentences int             `json:"sentences"`
	Passives  []SentenceMatch `json:"passives"`
}

// Percentage of passive sentences, 0 for empty text.
func (p PassiveResult) Percentage() float64 {
	if p.Sentences == 0 {
		return 0
	}
	return float64(len(p.Passives)) / float64(p.Sentences) * 100
}

// PassiveVoice runs the passive detector over every sentence.
func PassiveVoice(r *researcher.Researcher) (PassiveResult, error) {
	detector, err := r.PassiveDetector()
	if err != nil {
		return PassiveResult{}, err
	}

	sentences := Sentences(r)
	res := PassiveResult{Sentences: len(sentences)}
	for i, s := range sentences {
		toks := text.Words(s, r.HyphensAreWordBoundaries())
		m := detector.Detect(toks)
		if !m.Passive {
			continue
		}
		res.Passives = append(res.Passives, SentenceMatch{
			Index:    i,
			Sentence: s,
			Match:    strings.Join(toks[m.Start:m.End], " "),
			Start:    m.Start,
			End:      m.End,
		})
	}
	return res, nil
}

// TransitionResult lists the sentences that contain a transition word.
type TransitionResult struct {
	Sentences   int             `json:"sentences"`
	Transitions []SentenceMatch `json:"transitions"`
}

// Percentage of sentences with a transition, 0 for empty text.
func (t TransitionResult) Percentage() float64 {
	if t.Sentences == 0 {
		return 0
	}
	return float64(len(t.Transitions)) / float64(t.Sentences) * 100
}

// TransitionWords finds sentences containing a transition word or phrase.
// Two-part transitions ("either ... or") count when the second part follows
// the first in the same sentence. They are optional.
func TransitionWords(r *researcher.Researcher) (TransitionResult, error) {
	single, err := r.WordList(researcher.TransitionWords)
	if err != nil {
		return TransitionResult{}, err
	}
	pairs, _ := researcher.ConfigValue[[][2]string](r, researcher.TwoPartTransitionWords)
	phrases := transitionPhrases(r, single, pairs)

	sentences := Sentences(r)
	res := TransitionResult{Sentences: len(sentences)}
	for i, s := range sentences {
		line := padded(tokens(r, s))
		if match := findTransition(line, phrases); match != "" {
			res.Transitions = append(res.Transitions, SentenceMatch{Index: i, Sentence: s, Match: match})
		}
	}
	return res, nil
}

// transitionPhrase is a list entry tokenized the way sentences are, so
// entries such as "во-первых" or "e.g." match the words they split into.
type transitionPhrase struct {
	label  string
	first  string
	second string
}

func transitionPhrases(r *researcher.Researcher, single []string, pairs [][2]string) []transitionPhrase {
	var out []transitionPhrase
	for _, pair := range pairs {
		first, second := tokens(r, pair[0]), tokens(r, pair[1])
		if len(first) == 0 || len(second) == 0 {
			continue
		}
		out = append(out, transitionPhrase{
			label:  text.Lower(pair[0], r.Language()) + " ... " + text.Lower(pair[1], r.Language()),
			first:  padded(first),
			second: padded(second),
		})
	}
	for _, w := range single {
		words := tokens(r, w)
		if len(words) == 0 {
			continue
		}
		out = append(out, transitionPhrase{label: text.Lower(w, r.Language()), first: padded(words)})
	}
	return out
}

func findTransition(line string, phrases []transitionPhrase) string {
	for _, p := range phrases {
		i := strings.Index(line, p.first)
		if i < 0 {
			continue
		}
		if p.second == "" {
			return p.label
		}
		// the spaces around both parts overlap by one
		if strings.Contains(line[i+len(p.first)-1:], p.second) {
			return p.label
		}
	}
	return ""
}

// BeginningRun is a run of consecutive sentences starting with Word.
type BeginningRun struct {
	Word  string `json:"word"`
	Start int    `json:"start"`
	Count int    `json:"count"`
}

// SentenceBeginnings groups consecutive sentences by their first word. A
// leading word from the first-word exception list ("the", "a") is skipped
// in favour of the word after it.
func SentenceBeginnings(r *researcher.Researcher) ([]BeginningRun, error) {
	exceptions, err := r.WordList(researcher.FirstWordExceptions)
	if err != nil {
		return nil, err
	}
	skip := toSet(text.LowerAll(exceptions, r.Language()))

	var runs []BeginningRun
	for i, s := range Sentences(r) {
		words := tokens(r, s)
		if len(words) == 0 {
			continue
		}
		first := words[0]
		if _, ok := skip[first]; ok && len(words) > 1 {
			first = words[1]
		}
		if n := len(runs); n > 0 && runs[n-1].Word == first && runs[n-1].Start+runs[n-1].Count == i {
			runs[n-1].Count++
			continue
		}
		runs = append(runs, BeginningRun{Word: first, Start: i, Count: 1})
	}
	return runs, nil
}

// SentenceLength is a sentence with its word count.
type SentenceLength struct {
	Sentence string `json:"sentence"`
	Words    int    `json:"words"`
}

// SentenceLengths counts the words of every sentence.
func SentenceLengths(r *researcher.Researcher) []SentenceLength {
	sentences := Sentences(r)
	out := make([]SentenceLength, len(sentences))
	for i, s := range sentences {
		out[i] = SentenceLength{Sentence: s, Words: len(text.Words(s, r.HyphensAreWordBoundaries()))}
	}
	return out
}

// ParagraphLength is a paragraph with its word count.
type ParagraphLength struct {
	Paragraph string `json:"paragraph"`
	Words     int    `json:"words"`
}

// ParagraphLengths counts the words of every paragraph.
func ParagraphLengths(r *researcher.Researcher) []ParagraphLength {
	paras := Paragraphs(r)
	out := make([]ParagraphLength, len(paras))
	for i, p := range paras {
		out[i] = ParagraphLength{Paragraph: p, Words: len(text.Words(p, r.HyphensAreWordBoundaries()))}
	}
	return out
}

// Section is the text under one subheading.
type Section struct {
	Heading string `json:"heading,omitempty"`
	Level   int    `json:"level,omitempty"`
	Words   int    `json:"words"`
}

// SubheadingSections splits the paper on its HTML headings and counts the
// words below each one.
func SubheadingSections(r *researcher.Researcher) []Section {
	var out []Section
	for _, s := range text.Sections(r.Paper().Text()) {
		out = append(out, Section{
			Heading: text.Normalize(s.Heading),
			Level:   s.Level,
			Words:   len(text.Words(text.Normalize(s.Text), r.HyphensAreWordBoundaries())),
		})
	}
	return out
}
