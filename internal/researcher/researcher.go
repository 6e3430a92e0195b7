// Package researcher assembles per-language linguistic capabilities behind
// a single contract. A Researcher pairs a Paper with configuration values
// and helper functions. Values supplied by a language variant override the
// abstract defaults, and anything neither provides is reported as
// unsupported instead of silently defaulting.
package researcher

import (
	"fmt"
	"maps"
	"slices"

	"github.com/pthm/contentlint/internal/flesch"
	"github.com/pthm/contentlint/internal/paper"
	"github.com/pthm/contentlint/internal/passive"
	"github.com/pthm/contentlint/internal/stemmer"
	"github.com/pthm/contentlint/internal/syllables"
)

// ConfigKey names a configuration slot.
type ConfigKey string

const (
	Language                 ConfigKey = "language"
	PassiveConstructionType  ConfigKey = "passiveConstructionType"
	FunctionWords            ConfigKey = "functionWords"
	TransitionWords          ConfigKey = "transitionWords"
	TwoPartTransitionWords   ConfigKey = "twoPartTransitionWords"
	FirstWordExceptions      ConfigKey = "firstWordExceptions"
	Syllables                ConfigKey = "syllables"
	Abbreviations            ConfigKey = "abbreviations"
	AreHyphensWordBoundaries ConfigKey = "areHyphensWordBoundaries"
	SentenceLength           ConfigKey = "sentenceLength"
	ParagraphLength          ConfigKey = "paragraphLength"
	SubheadingDistribution   ConfigKey = "subheadingDistribution"
	KeyphraseLength          ConfigKey = "keyphraseLength"
	TextLength               ConfigKey = "textLength"
	KeywordDensity           ConfigKey = "keywordDensity"
	FleschTiers              ConfigKey = "fleschTiers"
)

// HelperName names a helper slot.
type HelperName string

const (
	GetStemmer         HelperName = "getStemmer"
	IsPassiveSentence  HelperName = "isPassiveSentence"
	FleschReadingScore HelperName = "fleschReadingScore"
	RemoveStopWords    HelperName = "removeStopWords"
)

// StopWordFilter removes stop words from a text.
type StopWordFilter func(text string) string

// Config maps keys to values. Value types per key:
//
//	language                 string
//	passiveConstructionType  passive.ConstructionType
//	functionWords            []string
//	transitionWords          []string
//	twoPartTransitionWords   [][2]string
//	firstWordExceptions      []string
//	syllables                *syllables.Counter
//	abbreviations            []string
//	areHyphensWordBoundaries bool
//	sentenceLength           SentenceLengthLimits
//	paragraphLength          ParagraphLengthLimits
//	subheadingDistribution   SubheadingLimits
//	keyphraseLength          KeyphraseLengthLimits
//	textLength               TextLengthLimits
//	keywordDensity           DensityLimits
//	fleschTiers              []flesch.Tier
type Config map[ConfigKey]any

// Helpers maps names to functions. Value types per name:
//
//	getStemmer         stemmer.Func
//	isPassiveSentence  passive.Detector
//	fleschReadingScore flesch.Scorer
//	removeStopWords    StopWordFilter
type Helpers map[HelperName]any

// Variant is what a language contributes on top of the abstract defaults.
type Variant struct {
	Config  Config
	Helpers Helpers
}

// Requirements lists the capabilities a research or assessment needs.
type Requirements struct {
	Config  []ConfigKey
	Helpers []HelperName
}

// Merge combines requirement lists.
func (r Requirements) Merge(other Requirements) Requirements {
	return Requirements{
		Config:  append(slices.Clone(r.Config), other.Config...),
		Helpers: append(slices.Clone(r.Helpers), other.Helpers...),
	}
}

// Researcher is immutable after construction and safe for concurrent use.
type Researcher struct {
	paper   *paper.Paper
	config  Config
	helpers Helpers
}

// New builds a Researcher for p: abstract defaults first, then the
// variant's values on top.
func New(p *paper.Paper, v Variant) *Researcher {
	config := abstractDefaults()
	maps.Copy(config, v.Config)
	helpers := make(Helpers, len(v.Helpers))
	maps.Copy(helpers, v.Helpers)
	return &Researcher{paper: p, config: config, helpers: helpers}
}

// WithPaper returns a Researcher sharing r's configuration for another Paper.
func (r *Researcher) WithPaper(p *paper.Paper) *Researcher {
	return &Researcher{paper: p, config: r.config, helpers: r.helpers}
}

func (r *Researcher) Paper() *paper.Paper { return r.paper }

// Language returns the language code, "default" for the fallback researcher.
func (r *Researcher) Language() string {
	lang, _ := r.config[Language].(string)
	return lang
}

// Config returns the value for key, or an *UnsupportedError.
func (r *Researcher) Config(key ConfigKey) (any, error) {
	v, ok := r.config[key]
	if !ok {
		return nil, &UnsupportedError{Language: r.Language(), Kind: "config", Name: string(key)}
	}
	return v, nil
}

func (r *Researcher) HasConfig(key ConfigKey) bool {
	_, ok := r.config[key]
	return ok
}

// Helper returns the helper for name, or an *UnsupportedError.
func (r *Researcher) Helper(name HelperName) (any, error) {
	h, ok := r.helpers[name]
	if !ok {
		return nil, &UnsupportedError{Language: r.Language(), Kind: "helper", Name: string(name)}
	}
	return h, nil
}

func (r *Researcher) HasHelper(name HelperName) bool {
	_, ok := r.helpers[name]
	return ok
}

// ConfigKeys returns the keys present, sorted.
func (r *Researcher) ConfigKeys() []ConfigKey {
	return slices.Sorted(maps.Keys(r.config))
}

// HelperNames returns the helpers present, sorted.
func (r *Researcher) HelperNames() []HelperName {
	return slices.Sorted(maps.Keys(r.helpers))
}

// Missing returns the requirements r cannot satisfy, as "config:key" and
// "helper:name" strings.
func (r *Researcher) Missing(req Requirements) []string {
	var missing []string
	for _, key := range req.Config {
		if !r.HasConfig(key) {
			missing = append(missing, "config:"+string(key))
		}
	}
	for _, name := range req.Helpers {
		if !r.HasHelper(name) {
			missing = append(missing, "helper:"+string(name))
		}
	}
	return missing
}

// Supports reports whether every requirement is present.
func (r *Researcher) Supports(req Requirements) bool {
	return len(r.Missing(req)) == 0
}

// ConfigValue returns the value for key as T. Values are shared between
// researchers and must not be modified.
func ConfigValue[T any](r *Researcher, key ConfigKey) (T, error) {
	var zero T
	v, err := r.Config(key)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("config %q holds %T, not %T", key, v, zero)
	}
	return t, nil
}

// HelperValue returns the helper for name as T.
func HelperValue[T any](r *Researcher, name HelperName) (T, error) {
	var zero T
	h, err := r.Helper(name)
	if err != nil {
		return zero, err
	}
	t, ok := h.(T)
	if !ok {
		return zero, fmt.Errorf("helper %q holds %T, not %T", name, h, zero)
	}
	return t, nil
}

// Stemmer returns the getStemmer helper.
func (r *Researcher) Stemmer() (stemmer.Func, error) {
	return HelperValue[stemmer.Func](r, GetStemmer)
}

// PassiveDetector returns the isPassiveSentence helper.
func (r *Researcher) PassiveDetector() (passive.Detector, error) {
	return HelperValue[passive.Detector](r, IsPassiveSentence)
}

// FleschScorer returns the fleschReadingScore helper.
func (r *Researcher) FleschScorer() (flesch.Scorer, error) {
	return HelperValue[flesch.Scorer](r, FleschReadingScore)
}

// StopWordFilter returns the removeStopWords helper.
func (r *Researcher) StopWordFilter() (StopWordFilter, error) {
	return HelperValue[StopWordFilter](r, RemoveStopWords)
}

// SyllableCounter returns the syllables config.
func (r *Researcher) SyllableCounter() (*syllables.Counter, error) {
	return ConfigValue[*syllables.Counter](r, Syllables)
}

// WordList returns a copy of a []string config value.
func (r *Researcher) WordList(key ConfigKey) ([]string, error) {
	words, err := ConfigValue[[]string](r, key)
	if err != nil {
		return nil, err
	}
	return slices.Clone(words), nil
}

// HyphensAreWordBoundaries returns the areHyphensWordBoundaries value.
func (r *Researcher) HyphensAreWordBoundaries() bool {
	b, err := ConfigValue[bool](r, AreHyphensWordBoundaries)
	return err != nil || b
}

// Abbreviations returns the abbreviation list, empty when none is set.
func (r *Researcher) Abbreviations() []string {
	a, _ := r.WordList(Abbreviations)
	return a
}
