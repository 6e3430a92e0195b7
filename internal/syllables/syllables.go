// Package syllables counts syllables from per-language tables of vowels and
// deviations.
package syllables

import (
	"fmt"
	"regexp"
	"strings"
)

// Config describes how a language forms syllables.
type Config struct {
	// Vowels lists every vowel letter of the language.
	Vowels string `yaml:"vowels" toml:"vowels" json:"vowels"`
	// SeparateVowels counts every vowel as its own syllable instead of
	// counting runs of adjacent vowels.
	SeparateVowels bool       `yaml:"separate_vowels" toml:"separate_vowels" json:"separate_vowels,omitempty"`
	Deviations     Deviations `yaml:"deviations" toml:"deviations" json:"deviations"`
}

// Deviations are corrections applied on top of vowel counting.
type Deviations struct {
	Vowels []VowelDeviation `yaml:"vowels" toml:"vowels" json:"vowels,omitempty"`
	Words  WordDeviations   `yaml:"words" toml:"words" json:"words"`
}

// VowelDeviation adjusts the count by CountModifier for every match of any
// fragment. Fragments are regular expressions.
type VowelDeviation struct {
	Fragments     []string `yaml:"fragments" toml:"fragments" json:"fragments"`
	CountModifier int      `yaml:"count_modifier" toml:"count_modifier" json:"count_modifier"`
}

// WordDeviations hold whole words and word parts with known counts.
type WordDeviations struct {
	Full      []WordDeviation     `yaml:"full" toml:"full" json:"full,omitempty"`
	Fragments []FragmentDeviation `yaml:"fragments" toml:"fragments" json:"fragments,omitempty"`
}

type WordDeviation struct {
	Word      string `yaml:"word" toml:"word" json:"word"`
	Syllables int    `yaml:"syllables" toml:"syllables" json:"syllables"`
}

// FragmentDeviation is a word part with a fixed count. Position is one of
// "prefix", "suffix" or "global".
type FragmentDeviation struct {
	Word      string `yaml:"word" toml:"word" json:"word"`
	Syllables int    `yaml:"syllables" toml:"syllables" json:"syllables"`
	Position  string `yaml:"position" toml:"position" json:"position"`
}

type vowelRule struct {
	re       *regexp.Regexp
	modifier int
}

type fragmentRule struct {
	re        *regexp.Regexp
	syllables int
	// replacement keeps a gap for global fragments so the vowels around
	// them are not merged into one group
	replacement string
}

// Counter counts syllables for one language. It is safe for concurrent use.
type Counter struct {
	vowels    *regexp.Regexp
	vowelDevs []vowelRule
	full      map[string]int
	fragments []fragmentRule
}

// NewCounter compiles cfg. It fails when cfg has no vowels or a deviation
// is not a valid expression.
func NewCounter(cfg *Config) (*Counter, error) {
	if cfg == nil || strings.TrimSpace(cfg.Vowels) == "" {
		return nil, fmt.Errorf("syllable config has no vowels")
	}

	pattern := "[" + regexp.QuoteMeta(cfg.Vowels) + "]"
	if !cfg.SeparateVowels {
		pattern += "+"
	}
	c := &Counter{
		vowels: regexp.MustCompile(pattern),
		full:   make(map[string]int, len(cfg.Deviations.Words.Full)),
	}

	for _, dev := range cfg.Deviations.Vowels {
		for _, frag := range dev.Fragments {
			re, err := regexp.Compile(frag)
			if err != nil {
				return nil, fmt.Errorf("vowel deviation %q: %w", frag, err)
			}
			c.vowelDevs = append(c.vowelDevs, vowelRule{re: re, modifier: dev.CountModifier})
		}
	}

	for _, w := range cfg.Deviations.Words.Full {
		c.full[strings.ToLower(w.Word)] = w.Syllables
	}

	for _, f := range cfg.Deviations.Words.Fragments {
		quoted := regexp.QuoteMeta(strings.ToLower(f.Word))
		var expr, replacement string
		switch f.Position {
		case "prefix":
			expr = "^" + quoted
		case "suffix":
			expr = quoted + "$"
		case "global", "":
			expr, replacement = quoted, " "
		default:
			return nil, fmt.Errorf("fragment %q: unknown position %q", f.Word, f.Position)
		}
		c.fragments = append(c.fragments, fragmentRule{
			re:          regexp.MustCompile(expr),
			syllables:   f.Syllables,
			replacement: replacement,
		})
	}

	return c, nil
}

// Count returns the syllables in a single word. A word with at least one
// vowel has at least one syllable; a word without vowels has none.
func (c *Counter) Count(word string) int {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return 0
	}
	if n, ok := c.full[word]; ok {
		return n
	}

	hasVowel := c.vowels.MatchString(word)
	count := 0
	for _, f := range c.fragments {
		if n := len(f.re.FindAllStringIndex(word, -1)); n > 0 {
			count += n * f.syllables
			word = f.re.ReplaceAllString(word, f.replacement)
		}
	}

	count += len(c.vowels.FindAllStringIndex(word, -1))
	for _, d := range c.vowelDevs {
		count += d.modifier * len(d.re.FindAllStringIndex(word, -1))
	}

	if count < 1 && hasVowel {
		return 1
	}
	if count < 0 {
		return 0
	}
	return count
}

// CountWords sums Count over words.
func (c *Counter) CountWords(words []string) int {
	total := 0
	for _, w := range words {
		total += c.Count(w)
	}
	return total
}
