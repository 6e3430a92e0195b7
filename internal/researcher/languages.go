package researcher

import "github.com/pthm/contentlint/internal/language"

// English: stemmer, auxiliary-based passive, Flesch.
func english(t *language.Table) (Variant, error) {
	return build(t, withStemmer, withPassive, withFlesch, withStopWords)
}

// Russian: stemmer, passive participles, Oborneva's Flesch adaptation.
// Russian sentences read as long earlier than English ones.
func russian(t *language.Table) (Variant, error) {
	return build(t, withStemmer, withPassive, withFlesch, withStopWords,
		withConfig(SentenceLength, SentenceLengthLimits{RecommendedWords: 15, SlightlyTooMany: 25, FarTooMany: 30}),
	)
}

// German: no Snowball stemmer, so keyphrase matching is unavailable.
// Compound words make keyphrases shorter.
func german(t *language.Table) (Variant, error) {
	return build(t, withPassive, withFlesch, withStopWords,
		withConfig(KeyphraseLength, KeyphraseLengthLimits{Recommended: 3, Acceptable: 6}),
	)
}

func spanish(t *language.Table) (Variant, error) {
	return build(t, withStemmer, withPassive, withFlesch, withStopWords,
		withConfig(SentenceLength, SentenceLengthLimits{RecommendedWords: 25, SlightlyTooMany: 25, FarTooMany: 30}),
	)
}

func french(t *language.Table) (Variant, error) {
	return build(t, withStemmer, withPassive, withFlesch, withStopWords)
}

func italian(t *language.Table) (Variant, error) {
	return build(t, withPassive, withFlesch, withStopWords,
		withConfig(SentenceLength, SentenceLengthLimits{RecommendedWords: 25, SlightlyTooMany: 25, FarTooMany: 30}),
	)
}

func dutch(t *language.Table) (Variant, error) {
	return build(t, withPassive, withFlesch, withStopWords)
}

func portuguese(t *language.Table) (Variant, error) {
	return build(t, withPassive, withFlesch, withStopWords,
		withConfig(SentenceLength, SentenceLengthLimits{RecommendedWords: 25, SlightlyTooMany: 25, FarTooMany: 30}),
	)
}

// Swedish has no readability formula.
func swedish(t *language.Table) (Variant, error) {
	return build(t, withStemmer, withPassive, withStopWords)
}
