package researcher

import (
	"fmt"

	"github.com/bbalet/stopwords"

	"github.com/pthm/contentlint/internal/flesch"
	"github.com/pthm/contentlint/internal/language"
	"github.com/pthm/contentlint/internal/passive"
	"github.com/pthm/contentlint/internal/stemmer"
	"github.com/pthm/contentlint/internal/syllables"
)

// Constructor builds a language variant from its table. The table is nil
// for the fallback researcher.
type Constructor func(t *language.Table) (Variant, error)

// capability attaches one helper to a variant.
type capability func(t *language.Table, v *Variant) error

// tableVariant copies every word list and rule set the table provides into
// config. Lists the table leaves empty stay absent, so requesting them
// reports unsupported.
func tableVariant(t *language.Table) (Variant, error) {
	v := Variant{
		Config:  Config{Language: t.Language},
		Helpers: Helpers{},
	}

	setList := func(key ConfigKey, words []string) {
		if len(words) > 0 {
			v.Config[key] = words
		}
	}
	setList(FunctionWords, t.FunctionWords)
	setList(TransitionWords, t.TransitionWords)
	setList(FirstWordExceptions, t.FirstWordExceptions)
	setList(Abbreviations, t.Abbreviations)

	if len(t.TwoPartTransitionWords) > 0 {
		pairs := make([][2]string, 0, len(t.TwoPartTransitionWords))
		for _, p := range t.TwoPartTransitionWords {
			if len(p) != 2 {
				return Variant{}, fmt.Errorf("two-part transition word %v needs two parts", p)
			}
			pairs = append(pairs, [2]string{p[0], p[1]})
		}
		v.Config[TwoPartTransitionWords] = pairs
	}

	if t.HyphensAreWordBoundaries != nil {
		v.Config[AreHyphensWordBoundaries] = *t.HyphensAreWordBoundaries
	}

	if t.Syllables != nil {
		counter, err := syllables.NewCounter(t.Syllables)
		if err != nil {
			return Variant{}, err
		}
		v.Config[Syllables] = counter
	}

	if len(t.FleschTiers) > 0 {
		v.Config[FleschTiers] = t.FleschTiers
	}

	return v, nil
}

// build runs tableVariant and then each capability in order.
func build(t *language.Table, caps ...capability) (Variant, error) {
	if t == nil {
		return Variant{}, fmt.Errorf("missing language table")
	}
	v, err := tableVariant(t)
	if err != nil {
		return Variant{}, err
	}
	for _, c := range caps {
		if err := c(t, &v); err != nil {
			return Variant{}, err
		}
	}
	return v, nil
}

func withStemmer(t *language.Table, v *Variant) error {
	if t.Stemmer == "" {
		return fmt.Errorf("%s table names no stemmer", t.Language)
	}
	stem, err := stemmer.Snowball(t.Stemmer)
	if err != nil {
		return err
	}
	v.Helpers[GetStemmer] = stem
	return nil
}

func withPassive(t *language.Table, v *Variant) error {
	var (
		d   passive.Detector
		err error
	)
	switch t.PassiveConstructionType {
	case passive.Periphrastic:
		if t.Passive.List == nil {
			return fmt.Errorf("%s table has no passive list", t.Language)
		}
		d, err = passive.NewList(*t.Passive.List)
	case passive.Morphological:
		if t.Passive.Morphological == nil {
			return fmt.Errorf("%s table has no passive suffixes", t.Language)
		}
		d, err = passive.NewMorphological(*t.Passive.Morphological)
	default:
		return fmt.Errorf("%s table has no passive construction type", t.Language)
	}
	if err != nil {
		return err
	}
	v.Config[PassiveConstructionType] = t.PassiveConstructionType
	v.Helpers[IsPassiveSentence] = d
	return nil
}

func withFlesch(t *language.Table, v *Variant) error {
	if t.Flesch == nil {
		return fmt.Errorf("%s table has no flesch coefficients", t.Language)
	}
	if _, ok := v.Config[Syllables]; !ok {
		return fmt.Errorf("%s table has no syllable rules", t.Language)
	}
	v.Helpers[FleschReadingScore] = flesch.Formula(*t.Flesch)
	return nil
}

func withStopWords(t *language.Table, v *Variant) error {
	if !t.StopWords {
		return fmt.Errorf("%s table has no stop word list", t.Language)
	}
	code := t.Language
	v.Helpers[RemoveStopWords] = StopWordFilter(func(s string) string {
		return stopwords.CleanString(s, code, false)
	})
	return nil
}

func withConfig(key ConfigKey, value any) capability {
	return func(_ *language.Table, v *Variant) error {
		v.Config[key] = value
		return nil
	}
}

// custom builds a variant for a language pack registered at runtime,
// attaching whichever helpers its table supports.
func custom(t *language.Table) (Variant, error) {
	var caps []capability
	if t != nil {
		if t.Stemmer != "" {
			caps = append(caps, withStemmer)
		}
		if t.PassiveConstructionType != "" {
			caps = append(caps, withPassive)
		}
		if t.Flesch != nil {
			caps = append(caps, withFlesch)
		}
		if t.StopWords {
			caps = append(caps, withStopWords)
		}
	}
	return build(t, caps...)
}

// fallback is the researcher used when no language-specific one applies.
func fallback(*language.Table) (Variant, error) {
	return Variant{Config: Config{Language: DefaultLanguage}, Helpers: Helpers{}}, nil
}
