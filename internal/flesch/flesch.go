// Package flesch computes Flesch-style reading ease scores with per-language
// coefficients and maps them onto difficulty tiers.
package flesch

import (
	"fmt"
	"math"
)

// SyllableUnit selects how the syllable term of the formula is expressed.
type SyllableUnit string

const (
	// PerWord uses average syllables per word (Flesch, Oborneva, Amstad...).
	PerWord SyllableUnit = "per_word"
	// Per100Words uses syllables per hundred words (Fernández Huerta, Franchina-Vacca).
	Per100Words SyllableUnit = "per_100_words"
)

// Coefficients parameterize
//
//	score = Base - SentenceWeight*wordsPerSentence - SyllableWeight*syllableTerm
type Coefficients struct {
	Base           float64      `yaml:"base" toml:"base" json:"base"`
	SentenceWeight float64      `yaml:"sentence_weight" toml:"sentence_weight" json:"sentence_weight"`
	SyllableWeight float64      `yaml:"syllable_weight" toml:"syllable_weight" json:"syllable_weight"`
	SyllableUnit   SyllableUnit `yaml:"syllable_unit" toml:"syllable_unit" json:"syllable_unit"`
}

// Validate rejects coefficient sets that would break monotonicity.
func (c Coefficients) Validate() error {
	if c.SentenceWeight < 0 || c.SyllableWeight < 0 {
		return fmt.Errorf("flesch weights must be non-negative")
	}
	if c.SentenceWeight == 0 && c.SyllableWeight == 0 {
		return fmt.Errorf("flesch weights are both zero")
	}
	switch c.SyllableUnit {
	case PerWord, Per100Words, "":
	default:
		return fmt.Errorf("unknown syllable unit %q", c.SyllableUnit)
	}
	return nil
}

// Statistics are the text counts the formula consumes.
type Statistics struct {
	Words     int `json:"words"`
	Sentences int `json:"sentences"`
	Syllables int `json:"syllables"`
}

// WordsPerSentence is 0 when there are no sentences.
func (s Statistics) WordsPerSentence() float64 {
	if s.Sentences == 0 {
		return 0
	}
	return float64(s.Words) / float64(s.Sentences)
}

// SyllablesPerWord is 0 when there are no words.
func (s Statistics) SyllablesPerWord() float64 {
	if s.Words == 0 {
		return 0
	}
	return float64(s.Syllables) / float64(s.Words)
}

// Scorer turns statistics into a score. The boolean is false when the score
// is undefined (no words or no sentences).
type Scorer func(Statistics) (float64, bool)

// Formula builds a Scorer from coefficients. Scores are rounded to one
// decimal and clamped to [0, 100].
func Formula(c Coefficients) Scorer {
	return func(s Statistics) (float64, bool) {
		if s.Words <= 0 || s.Sentences <= 0 {
			return 0, false
		}
		syllableTerm := s.SyllablesPerWord()
		if c.SyllableUnit == Per100Words {
			syllableTerm *= 100
		}
		score := c.Base - c.SentenceWeight*s.WordsPerSentence() - c.SyllableWeight*syllableTerm
		return clamp(math.Round(score*10) / 10), true
	}
}

func clamp(score float64) float64 {
	return math.Max(0, math.Min(100, score))
}
