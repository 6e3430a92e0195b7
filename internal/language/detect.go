package language

import (
	"unicode"

	"github.com/pthm/contentlint/internal/text"
)

// minDetectHits is the fewest function-word hits accepted as evidence.
const minDetectHits = 2

// Detect guesses the language of plain or HTML text from its script and its
// function words. It returns an empty string when nothing is convincing.
func Detect(s string) string {
	words := text.LowerAll(text.Words(text.Plain(s), true), "")
	if len(words) == 0 {
		return ""
	}

	if isMostlyCyrillic(words) {
		if _, err := Load("ru"); err == nil {
			return "ru"
		}
	}

	best, bestHits := "", 0
	for _, code := range Available() {
		t, err := Load(code)
		if err != nil || len(t.FunctionWords) == 0 {
			continue
		}
		set := make(map[string]struct{}, len(t.FunctionWords))
		for _, w := range t.FunctionWords {
			set[w] = struct{}{}
		}
		hits := 0
		for _, w := range words {
			if _, ok := set[w]; ok {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = code, hits
		}
	}

	if bestHits < minDetectHits {
		return ""
	}
	return best
}

func isMostlyCyrillic(words []string) bool {
	cyrillic, total := 0, 0
	for _, w := range words {
		for _, r := range w {
			if !unicode.IsLetter(r) {
				continue
			}
			total++
			if unicode.Is(unicode.Cyrillic, r) {
				cyrillic++
			}
		}
	}
	return total > 0 && cyrillic*2 > total
}
