// Package research computes linguistic facts about a Paper through a
// Researcher. Every research declares the configuration and helpers it
// needs. A research whose requirements are missing returns the
// researcher's *UnsupportedError and never an approximation.
package research

import (
	"strings"

	"github.com/pthm/contentlint/internal/researcher"
	"github.com/pthm/contentlint/internal/text"
)

// Name identifies a research.
type Name string

const (
	WordCountName               Name = "wordCount"
	SentencesName               Name = "sentences"
	ParagraphsName              Name = "paragraphs"
	SyllablesName               Name = "syllables"
	FleschReadingEaseName       Name = "fleschReadingEase"
	PassiveVoiceName            Name = "passiveVoice"
	TransitionWordsName         Name = "transitionWords"
	SentenceBeginningsName      Name = "sentenceBeginnings"
	SentenceLengthsName         Name = "sentenceLengths"
	ParagraphLengthsName        Name = "paragraphLengths"
	SubheadingSectionsName      Name = "subheadingSections"
	KeyphraseContentWordsName   Name = "keyphraseContentWords"
	KeywordCountName            Name = "keywordCount"
	KeyphraseInTitleName        Name = "keyphraseInTitle"
	KeyphraseInIntroductionName Name = "keyphraseInIntroduction"
	KeyphraseInDescriptionName  Name = "keyphraseInDescription"
	ProminentWordsName          Name = "prominentWords"
	LinksName                   Name = "links"
)

var keyphraseMatching = researcher.Requirements{
	Config:  []researcher.ConfigKey{researcher.FunctionWords},
	Helpers: []researcher.HelperName{researcher.GetStemmer},
}

var requirements = map[Name]researcher.Requirements{
	SyllablesName: {Config: []researcher.ConfigKey{researcher.Syllables}},
	FleschReadingEaseName: {
		Config:  []researcher.ConfigKey{researcher.Syllables},
		Helpers: []researcher.HelperName{researcher.FleschReadingScore},
	},
	PassiveVoiceName:            {Helpers: []researcher.HelperName{researcher.IsPassiveSentence}},
	TransitionWordsName:         {Config: []researcher.ConfigKey{researcher.TransitionWords}},
	SentenceBeginningsName:      {Config: []researcher.ConfigKey{researcher.FirstWordExceptions}},
	KeyphraseContentWordsName:   {Config: []researcher.ConfigKey{researcher.FunctionWords}},
	KeywordCountName:            keyphraseMatching,
	KeyphraseInIntroductionName: keyphraseMatching,
	KeyphraseInDescriptionName:  keyphraseMatching,
	ProminentWordsName: {
		Helpers: []researcher.HelperName{researcher.RemoveStopWords, researcher.GetStemmer},
	},
}

// Requirements returns what the named research needs. Researches that work
// for every language need nothing.
func Requirements(n Name) researcher.Requirements {
	return requirements[n]
}

// SentenceMatch points at a sentence and, for token-level matches, the
// half-open token span inside it.
type SentenceMatch struct {
	Index    int    `json:"index"`
	Sentence string `json:"sentence"`
	Match    string `json:"match,omitempty"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
}

// Plain returns the paper text with markup stripped and normalized.
func Plain(r *researcher.Researcher) string {
	return text.Plain(r.Paper().Text())
}

// Words returns the words of the paper text.
func Words(r *researcher.Researcher) []string {
	return text.Words(Plain(r), r.HyphensAreWordBoundaries())
}

// WordCount returns the number of words in the paper text.
func WordCount(r *researcher.Researcher) int {
	return len(Words(r))
}

// Sentences returns the sentences of the paper text.
func Sentences(r *researcher.Researcher) []string {
	return text.Sentences(Plain(r), r.Abbreviations())
}

// Paragraphs returns the paragraphs of the paper text.
func Paragraphs(r *researcher.Researcher) []string {
	paras := text.Paragraphs(text.StripHTML(r.Paper().Text()))
	for i, p := range paras {
		paras[i] = text.Normalize(p)
	}
	return paras
}

// tokens splits a sentence into lowercased words.
func tokens(r *researcher.Researcher, s string) []string {
	return text.LowerAll(text.Words(s, r.HyphensAreWordBoundaries()), r.Language())
}

// padded joins lowercased words so that phrases can be matched on word
// boundaries with strings.Contains.
func padded(words []string) string {
	return " " + strings.Join(words, " ") + " "
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
