// Package language holds the read-only linguistic tables each supported
// language is built from: word lists, syllable rules, passive rules and
// readability coefficients.
package language

import (
	"fmt"
	"strings"

	"github.com/pthm/contentlint/internal/flesch"
	"github.com/pthm/contentlint/internal/passive"
	"github.com/pthm/contentlint/internal/syllables"
)

// Table is the data for one language.
type Table struct {
	// Language is the base language code, e.g. "ru".
	Language string `yaml:"language" toml:"language"`

	// Name is the English display name.
	Name string `yaml:"name" toml:"name"`

	// Stemmer names the Snowball algorithm, empty when none exists.
	Stemmer string `yaml:"stemmer" toml:"stemmer"`

	// StopWords enables the stop-word filter for this language code.
	StopWords bool `yaml:"stop_words" toml:"stop_words"`

	PassiveConstructionType passive.ConstructionType `yaml:"passive_construction_type" toml:"passive_construction_type"`
	Passive                 PassiveRules             `yaml:"passive" toml:"passive"`

	FunctionWords          []string   `yaml:"function_words" toml:"function_words"`
	TransitionWords        []string   `yaml:"transition_words" toml:"transition_words"`
	TwoPartTransitionWords [][]string `yaml:"two_part_transition_words" toml:"two_part_transition_words"`
	FirstWordExceptions    []string   `yaml:"first_word_exceptions" toml:"first_word_exceptions"`
	Abbreviations          []string   `yaml:"abbreviations" toml:"abbreviations"`

	// HyphensAreWordBoundaries overrides the default when set.
	HyphensAreWordBoundaries *bool `yaml:"hyphens_are_word_boundaries" toml:"hyphens_are_word_boundaries"`

	Syllables   *syllables.Config    `yaml:"syllables" toml:"syllables"`
	Flesch      *flesch.Coefficients `yaml:"flesch" toml:"flesch"`
	FleschTiers []flesch.Tier        `yaml:"flesch_tiers" toml:"flesch_tiers"`
}

// PassiveRules holds the detector configuration matching the construction type.
type PassiveRules struct {
	List          *passive.ListConfig          `yaml:"list" toml:"list"`
	Morphological *passive.MorphologicalConfig `yaml:"morphological" toml:"morphological"`
}

// Validate checks that every section present is usable.
func (t *Table) Validate() error {
	if strings.TrimSpace(t.Language) == "" {
		return fmt.Errorf("language code is required")
	}

	switch t.PassiveConstructionType {
	case "":
	case passive.Periphrastic:
		if t.Passive.List == nil || len(t.Passive.List.Auxiliaries) == 0 {
			return fmt.Errorf("%s: periphrastic passive needs auxiliaries", t.Language)
		}
	case passive.Morphological:
		if t.Passive.Morphological == nil || len(t.Passive.Morphological.Suffixes) == 0 {
			return fmt.Errorf("%s: morphological passive needs suffixes", t.Language)
		}
	default:
		return fmt.Errorf("%s: unknown passive construction type %q", t.Language, t.PassiveConstructionType)
	}

	for i, pair := range t.TwoPartTransitionWords {
		if len(pair) != 2 {
			return fmt.Errorf("%s: two-part transition word %d has %d parts", t.Language, i, len(pair))
		}
	}

	if t.Syllables != nil && strings.TrimSpace(t.Syllables.Vowels) == "" {
		return fmt.Errorf("%s: syllables section has no vowels", t.Language)
	}

	if t.Flesch != nil {
		if t.Syllables == nil {
			return fmt.Errorf("%s: flesch coefficients need a syllables section", t.Language)
		}
		if err := t.Flesch.Validate(); err != nil {
			return fmt.Errorf("%s: %w", t.Language, err)
		}
	}

	return nil
}

// DisplayName returns Name, or the code when no name is set.
func (t *Table) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	return t.Language
}
