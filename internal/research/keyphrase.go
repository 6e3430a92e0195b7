package research

import (
	"cmp"
	"slices"
	"strings"
	"unicode"

	"github.com/pthm/contentlint/internal/researcher"
	"github.com/pthm/contentlint/internal/stemmer"
	"github.com/pthm/contentlint/internal/text"
)

// Keyphrase is the focus keyphrase split into words. Content holds the
// words that are not function words; it is empty when the keyphrase
// consists only of function words.
type Keyphrase struct {
	Words   []string `json:"words"`
	Content []string `json:"content"`
}

// KeyphraseContentWords splits the focus keyphrase and drops function words.
func KeyphraseContentWords(r *researcher.Researcher) (Keyphrase, error) {
	functionWords, err := r.WordList(researcher.FunctionWords)
	if err != nil {
		return Keyphrase{}, err
	}
	return splitKeyphrase(r, r.Paper().Keyword(), toSet(text.LowerAll(functionWords, r.Language()))), nil
}

func splitKeyphrase(r *researcher.Researcher, phrase string, functionWords map[string]struct{}) Keyphrase {
	kp := Keyphrase{Words: tokens(r, text.Normalize(phrase))}
	for _, w := range kp.Words {
		if _, ok := functionWords[w]; !ok {
			kp.Content = append(kp.Content, w)
		}
	}
	return kp
}

// matcher compares sentences with the stemmed content words of the
// keyphrase and its synonyms.
type matcher struct {
	r    *researcher.Researcher
	stem stemmer.Func
	// forms[0] is the keyphrase, the rest are synonyms
	forms [][]string
}

func newMatcher(r *researcher.Researcher) (*matcher, error) {
	stem, err := r.Stemmer()
	if err != nil {
		return nil, err
	}
	functionWords, err := r.WordList(researcher.FunctionWords)
	if err != nil {
		return nil, err
	}
	fw := toSet(text.LowerAll(functionWords, r.Language()))

	m := &matcher{r: r, stem: stem}
	phrases := append([]string{r.Paper().Keyword()}, r.Paper().Synonyms()...)
	for _, phrase := range phrases {
		kp := splitKeyphrase(r, phrase, fw)
		words := kp.Content
		if len(words) == 0 {
			words = kp.Words
		}
		m.forms = append(m.forms, stem.StemAll(words))
	}
	return m, nil
}

// hits returns how often form occurs in the stemmed sentence: the lowest
// occurrence count among its stems, 0 when any stem is missing.
func hits(sentence, form []string) int {
	if len(form) == 0 {
		return 0
	}
	counts := make(map[string]int, len(sentence))
	for _, s := range sentence {
		counts[s]++
	}
	n := -1
	for _, f := range form {
		c := counts[f]
		if n < 0 || c < n {
			n = c
		}
	}
	return n
}

func (m *matcher) stems(sentence string) []string {
	return m.stem.StemAll(tokens(m.r, sentence))
}

// keyphraseHits counts occurrences of the keyphrase itself.
func (m *matcher) keyphraseHits(stems []string) int {
	return hits(stems, m.forms[0])
}

// synonymHits counts occurrences of any synonym.
func (m *matcher) synonymHits(stems []string) int {
	n := 0
	for _, form := range m.forms[1:] {
		n += hits(stems, form)
	}
	return n
}

func (m *matcher) matches(sentence string) bool {
	stems := m.stems(sentence)
	return m.keyphraseHits(stems) > 0 || m.synonymHits(stems) > 0
}

// KeywordCountResult is the number of keyphrase occurrences in the text and
// the resulting density.
type KeywordCountResult struct {
	Count        int             `json:"count"`
	SynonymCount int             `json:"synonym_count"`
	Words        int             `json:"words"`
	Density      float64         `json:"density"`
	Matches      []SentenceMatch `json:"matches,omitempty"`
}

// KeywordCount counts sentences containing every content-word stem of the
// keyphrase or of a synonym. Density is keyphrase occurrences per hundred
// words. Without a keyphrase the result is empty.
func KeywordCount(r *researcher.Researcher) (KeywordCountResult, error) {
	m, err := newMatcher(r)
	if err != nil {
		return KeywordCountResult{}, err
	}
	res := KeywordCountResult{Words: WordCount(r)}
	if !r.Paper().HasKeyword() {
		return res, nil
	}

	for i, s := range Sentences(r) {
		stems := m.stems(s)
		k, syn := m.keyphraseHits(stems), m.synonymHits(stems)
		if k == 0 && syn == 0 {
			continue
		}
		res.Count += k
		res.SynonymCount += syn
		res.Matches = append(res.Matches, SentenceMatch{Index: i, Sentence: s})
	}
	if res.Words > 0 {
		res.Density = float64(res.Count) / float64(res.Words) * 100
	}
	return res, nil
}

// TitleMatch reports how the keyphrase appears in the title.
type TitleMatch struct {
	Exact    bool `json:"exact"`
	AtStart  bool `json:"at_start"`
	AllWords bool `json:"all_words"`
}

// KeyphraseInTitle compares the title with the keyphrase literally, ignoring
// case. It needs no language support.
func KeyphraseInTitle(r *researcher.Researcher) TitleMatch {
	p := r.Paper()
	if !p.HasKeyword() || !p.HasTitle() {
		return TitleMatch{}
	}
	title := tokens(r, text.Normalize(p.Title()))
	keyword := tokens(r, text.Normalize(p.Keyword()))
	if len(keyword) == 0 {
		return TitleMatch{}
	}

	var m TitleMatch
	if i := strings.Index(padded(title), padded(keyword)); i >= 0 {
		m.Exact = true
		m.AtStart = i == 0
	}
	words := toSet(title)
	m.AllWords = true
	for _, w := range keyword {
		if _, ok := words[w]; !ok {
			m.AllWords = false
			break
		}
	}
	return m
}

// IntroductionMatch reports whether the first paragraph mentions the
// keyphrase, either inside a single sentence or spread over the paragraph.
type IntroductionMatch struct {
	InSentence  bool   `json:"in_sentence"`
	InParagraph bool   `json:"in_paragraph"`
	Sentence    string `json:"sentence,omitempty"`
}

// KeyphraseInIntroduction checks the first paragraph for the keyphrase or a
// synonym.
func KeyphraseInIntroduction(r *researcher.Researcher) (IntroductionMatch, error) {
	m, err := newMatcher(r)
	if err != nil {
		return IntroductionMatch{}, err
	}
	paras := Paragraphs(r)
	if !r.Paper().HasKeyword() || len(paras) == 0 {
		return IntroductionMatch{}, nil
	}

	intro := paras[0]
	for _, s := range text.Sentences(intro, r.Abbreviations()) {
		if m.matches(s) {
			return IntroductionMatch{InSentence: true, InParagraph: true, Sentence: s}, nil
		}
	}
	return IntroductionMatch{InParagraph: m.matches(intro)}, nil
}

// KeyphraseInDescription counts the meta description sentences containing
// the keyphrase or a synonym.
func KeyphraseInDescription(r *researcher.Researcher) (int, error) {
	m, err := newMatcher(r)
	if err != nil {
		return 0, err
	}
	p := r.Paper()
	if !p.HasKeyword() || !p.HasDescription() {
		return 0, nil
	}
	n := 0
	for _, s := range text.Sentences(text.Normalize(p.Description()), r.Abbreviations()) {
		if m.matches(s) {
			n++
		}
	}
	return n, nil
}

// WordFrequency is a stem with its most common surface form.
type WordFrequency struct {
	Stem  string `json:"stem"`
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// ProminentWords returns the most frequent content stems, stop words
// removed, ordered by count and then alphabetically. limit <= 0 returns all.
func ProminentWords(r *researcher.Researcher, limit int) ([]WordFrequency, error) {
	filter, err := r.StopWordFilter()
	if err != nil {
		return nil, err
	}
	stem, err := r.Stemmer()
	if err != nil {
		return nil, err
	}

	type entry struct {
		count int
		forms map[string]int
	}
	byStem := map[string]*entry{}
	for _, w := range text.LowerAll(Words(r), r.Language()) {
		if !hasLetter(w) || strings.TrimSpace(filter(w)) == "" {
			continue
		}
		s := stem(w)
		e, ok := byStem[s]
		if !ok {
			e = &entry{forms: map[string]int{}}
			byStem[s] = e
		}
		e.count++
		e.forms[w]++
	}

	out := make([]WordFrequency, 0, len(byStem))
	for s, e := range byStem {
		out = append(out, WordFrequency{Stem: s, Word: mostCommon(e.forms), Count: e.count})
	}
	slices.SortFunc(out, func(a, b WordFrequency) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Stem, b.Stem)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func mostCommon(forms map[string]int) string {
	best, n := "", 0
	for w, c := range forms {
		if c > n || (c == n && w < best) {
			best, n = w, c
		}
	}
	return best
}

func hasLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}
