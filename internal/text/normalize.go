package text

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var punctuationReplacer = strings.NewReplacer(
	"\u2018", "'", "\u2019", "'", "\u201A", "'", "\u02BC", "'",
	"\u201C", "\"", "\u201D", "\"", "\u201E", "\"", "\u00AB", "\"", "\u00BB", "\"",
	"\u00A0", " ", "\u202F", " ", "\u2009", " ",
	"\u2010", "-", "\u2011", "-",
	"\u00AD", "",
)

// Normalize composes s to NFC and folds typographic quotes, apostrophes,
// non-breaking spaces and soft hyphens to their plain forms.
func Normalize(s string) string {
	out, _, err := transform.String(transform.Chain(norm.NFC), s)
	if err != nil {
		out = s
	}
	return punctuationReplacer.Replace(out)
}

// Plain is the standard cleanup applied before any research: strip markup,
// then normalize.
func Plain(s string) string {
	return Normalize(StripHTML(s))
}

// Lower lowercases s using the casing rules of lang. An empty or unknown
// lang uses language-neutral rules.
func Lower(s, lang string) string {
	return caser(lang).String(s)
}

// LowerAll lowercases every word with a single caser.
func LowerAll(words []string, lang string) []string {
	c := caser(lang)
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = c.String(w)
	}
	return out
}

func caser(lang string) cases.Caser {
	tag := language.Und
	if lang != "" {
		if t, err := language.Parse(lang); err == nil {
			tag = t
		}
	}
	return cases.Lower(tag)
}
