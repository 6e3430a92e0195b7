// Package passive detects passive-voice sentences, either from auxiliary and
// participle lists or from passive word endings.
package passive

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ConstructionType is how a language forms the passive.
type ConstructionType string

const (
	// Periphrastic passives combine an auxiliary with a participle ("was built").
	Periphrastic ConstructionType = "periphrastic"
	// Morphological passives are marked on the word itself ("построен", "byggs").
	Morphological ConstructionType = "morphological"
)

// Valid reports whether t is a known construction type.
func (t ConstructionType) Valid() bool {
	return t == Periphrastic || t == Morphological
}

// Match describes a detection. Start and End are a half-open token range
// covering the passive construction.
type Match struct {
	Passive bool `json:"passive"`
	Start   int  `json:"start"`
	End     int  `json:"end"`
}

// Detector classifies a tokenized sentence.
type Detector interface {
	Type() ConstructionType
	Detect(tokens []string) Match
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

func lowerAll(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = strings.ToLower(t)
	}
	return out
}

func hasAnySuffix(w string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(w, s) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(w string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(w, p) {
			return true
		}
	}
	return false
}

// ListConfig configures a periphrastic detector.
type ListConfig struct {
	Auxiliaries []string `yaml:"auxiliaries" toml:"auxiliaries"`
	// ParticiplePrefixes, when set, must also match for a regular
	// participle ("ge-baut").
	ParticiplePrefixes   []string `yaml:"participle_prefixes" toml:"participle_prefixes"`
	ParticipleSuffixes   []string `yaml:"participle_suffixes" toml:"participle_suffixes"`
	IrregularParticiples []string `yaml:"irregular_participles" toml:"irregular_participles"`
	NonParticiples       []string `yaml:"non_participles" toml:"non_participles"`
	ClauseBreakers       []string `yaml:"clause_breakers" toml:"clause_breakers"`
	// Window is how many tokens after the auxiliary may hold the participle.
	Window              int `yaml:"window" toml:"window"`
	MinParticipleLength int `yaml:"min_participle_length" toml:"min_participle_length"`
}

// List detects periphrastic passives.
type List struct {
	auxiliaries map[string]struct{}
	prefixes    []string
	suffixes    []string
	irregular   map[string]struct{}
	non         map[string]struct{}
	breakers    map[string]struct{}
	window      int
	minLength   int
}

// NewList builds a periphrastic detector. At least one auxiliary is required.
func NewList(cfg ListConfig) (*List, error) {
	if len(cfg.Auxiliaries) == 0 {
		return nil, fmt.Errorf("periphrastic passive needs auxiliaries")
	}
	if len(cfg.ParticipleSuffixes) == 0 && len(cfg.IrregularParticiples) == 0 {
		return nil, fmt.Errorf("periphrastic passive needs participle suffixes or irregular participles")
	}
	l := &List{
		auxiliaries: toSet(cfg.Auxiliaries),
		prefixes:    lowerAll(cfg.ParticiplePrefixes),
		suffixes:    lowerAll(cfg.ParticipleSuffixes),
		irregular:   toSet(cfg.IrregularParticiples),
		non:         toSet(cfg.NonParticiples),
		breakers:    toSet(cfg.ClauseBreakers),
		window:      cfg.Window,
		minLength:   cfg.MinParticipleLength,
	}
	if l.window <= 0 {
		l.window = 4
	}
	if l.minLength <= 0 {
		l.minLength = 4
	}
	return l, nil
}

func (l *List) Type() ConstructionType { return Periphrastic }

// Detect finds an auxiliary followed by a participle within the window,
// without crossing a clause breaker.
func (l *List) Detect(tokens []string) Match {
	if len(tokens) < 2 {
		return Match{}
	}
	words := lowerAll(tokens)
	for i, w := range words {
		if _, ok := l.auxiliaries[w]; !ok {
			continue
		}
		for j := i + 1; j < len(words) && j <= i+l.window; j++ {
			if _, ok := l.breakers[words[j]]; ok {
				break
			}
			if l.isParticiple(words[j]) {
				return Match{Passive: true, Start: i, End: j + 1}
			}
		}
	}
	return Match{}
}

func (l *List) isParticiple(w string) bool {
	if _, ok := l.non[w]; ok {
		return false
	}
	if _, ok := l.irregular[w]; ok {
		return true
	}
	if utf8.RuneCountInString(w) < l.minLength || !hasAnySuffix(w, l.suffixes) {
		return false
	}
	return len(l.prefixes) == 0 || hasAnyPrefix(w, l.prefixes)
}

// MorphologicalConfig configures a morphological detector.
type MorphologicalConfig struct {
	Suffixes      []string `yaml:"suffixes" toml:"suffixes"`
	Exceptions    []string `yaml:"exceptions" toml:"exceptions"`
	MinWordLength int      `yaml:"min_word_length" toml:"min_word_length"`
}

// Morph detects passives marked by word endings.
type Morph struct {
	suffixes   []string
	exceptions map[string]struct{}
	minLength  int
}

// NewMorphological builds a morphological detector. At least one suffix is
// required.
func NewMorphological(cfg MorphologicalConfig) (*Morph, error) {
	if len(cfg.Suffixes) == 0 {
		return nil, fmt.Errorf("morphological passive needs suffixes")
	}
	m := &Morph{
		suffixes:   lowerAll(cfg.Suffixes),
		exceptions: toSet(cfg.Exceptions),
		minLength:  cfg.MinWordLength,
	}
	if m.minLength <= 0 {
		m.minLength = 5
	}
	return m, nil
}

func (m *Morph) Type() ConstructionType { return Morphological }

// Detect reports the first word carrying a passive ending.
func (m *Morph) Detect(tokens []string) Match {
	for i, w := range lowerAll(tokens) {
		if utf8.RuneCountInString(w) < m.minLength {
			continue
		}
		if _, ok := m.exceptions[w]; ok {
			continue
		}
		if hasAnySuffix(w, m.suffixes) {
			return Match{Passive: true, Start: i, End: i + 1}
		}
	}
	return Match{}
}
