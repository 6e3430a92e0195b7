package researcher

import "github.com/pthm/contentlint/internal/flesch"

// SentenceLengthLimits mark a sentence as long above RecommendedWords. The
// other two fields are the shares of long sentences, in percent, above which
// the text drops to ok and to bad.
type SentenceLengthLimits struct {
	RecommendedWords int     `json:"recommended_words"`
	SlightlyTooMany  float64 `json:"slightly_too_many"`
	FarTooMany       float64 `json:"far_too_many"`
}

// ParagraphLengthLimits are word counts per paragraph.
type ParagraphLengthLimits struct {
	Recommended int `json:"recommended"`
	Maximum     int `json:"maximum"`
}

// SubheadingLimits are word counts per text section between subheadings.
type SubheadingLimits struct {
	Recommended int `json:"recommended"`
	Maximum     int `json:"maximum"`
}

// KeyphraseLengthLimits count content words in the keyphrase.
type KeyphraseLengthLimits struct {
	Recommended int `json:"recommended"`
	Acceptable  int `json:"acceptable"`
}

// TextLengthLimits are total word counts, from best to worst.
type TextLengthLimits struct {
	Recommended   int `json:"recommended"`
	SlightlyBelow int `json:"slightly_below"`
	Below         int `json:"below"`
	FarBelow      int `json:"far_below"`
}

// DensityLimits bound keyphrase density in percent.
type DensityLimits struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// abstractDefaults are the values every researcher starts from before its
// language variant is merged in.
func abstractDefaults() Config {
	return Config{
		Abbreviations:            []string{},
		AreHyphensWordBoundaries: true,
		SentenceLength:           SentenceLengthLimits{RecommendedWords: 20, SlightlyTooMany: 25, FarTooMany: 30},
		ParagraphLength:          ParagraphLengthLimits{Recommended: 150, Maximum: 200},
		SubheadingDistribution:   SubheadingLimits{Recommended: 250, Maximum: 300},
		KeyphraseLength:          KeyphraseLengthLimits{Recommended: 4, Acceptable: 8},
		TextLength:               TextLengthLimits{Recommended: 300, SlightlyBelow: 250, Below: 200, FarBelow: 100},
		KeywordDensity:           DensityLimits{Min: 0.5, Max: 3},
		FleschTiers:              flesch.DefaultTiers(),
	}
}
