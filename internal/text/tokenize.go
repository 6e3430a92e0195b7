// Package text implements the tokenizer every research relies on: markup
// stripping, normalization, and splitting into paragraphs, sentences and
// words. All functions are pure and accept empty input.
package text

import (
	"strings"
	"unicode"
)

// Sentences splits s into sentences. A sentence ends at a run of terminal
// punctuation followed by whitespace and a capital letter, digit or opening
// quote, or at the end of a paragraph. No split happens after a listed
// abbreviation or a single capital initial.
func Sentences(s string, abbreviations []string) []string {
	abbr := make(map[string]struct{}, len(abbreviations))
	for _, a := range abbreviations {
		if a = normalizeAbbreviation(a); a != "" {
			abbr[a] = struct{}{}
		}
	}

	var out []string
	for _, para := range Paragraphs(s) {
		out = append(out, splitParagraph(para, abbr)...)
	}
	return out
}

func splitParagraph(p string, abbr map[string]struct{}) []string {
	runes := []rune(p)
	var out []string
	start := 0

	for i := 0; i < len(runes); i++ {
		if !isTerminator(runes[i]) {
			continue
		}
		end := i + 1
		for end < len(runes) && (isTerminator(runes[end]) || isClosing(runes[end])) {
			end++
		}
		if end == len(runes) || !unicode.IsSpace(runes[end]) {
			i = end - 1
			continue
		}
		next := end
		for next < len(runes) && unicode.IsSpace(runes[next]) {
			next++
		}
		if next == len(runes) || !startsSentence(runes[next]) {
			i = end - 1
			continue
		}
		if runes[i] == '.' && end == i+1 && endsWithAbbreviation(runes[start:i], abbr) {
			i = end - 1
			continue
		}
		out = appendSentence(out, runes[start:end])
		start = next
		i = next - 1
	}
	return appendSentence(out, runes[start:])
}

func appendSentence(out []string, r []rune) []string {
	if s := strings.TrimSpace(string(r)); s != "" {
		return append(out, s)
	}
	return out
}

func isTerminator(r rune) bool {
	switch r {
	case '.', '!', '?', '…', '。', '؟':
		return true
	}
	return false
}

func isClosing(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '»', '”', '’':
		return true
	}
	return false
}

func startsSentence(r rune) bool {
	if unicode.IsUpper(r) || unicode.IsDigit(r) {
		return true
	}
	switch r {
	case '"', '\'', '(', '[', '«', '“', '‘', '¿', '¡', '-', '—':
		return true
	}
	return false
}

func endsWithAbbreviation(prefix []rune, abbr map[string]struct{}) bool {
	ws := len(prefix) - 1
	for ws >= 0 && !unicode.IsSpace(prefix[ws]) {
		ws--
	}
	word := strings.TrimLeft(string(prefix[ws+1:]), "\"'([«")
	if word == "" {
		return false
	}
	if r := []rune(word); len(r) == 1 && unicode.IsUpper(r[0]) {
		return true
	}
	_, ok := abbr[normalizeAbbreviation(word)]
	return ok
}

func normalizeAbbreviation(a string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(a), "."))
}

// Words splits s into words. Punctuation separates words, apostrophes inside
// a word are kept, and hyphens separate words only when hyphensAreBoundaries
// is set. Tokens without a letter or digit are dropped.
func Words(s string, hyphensAreBoundaries bool) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsMark(r):
			return false
		case r == '\'':
			return false
		case r == '-':
			return hyphensAreBoundaries
		}
		return true
	})

	words := fields[:0]
	for _, w := range fields {
		w = strings.Trim(w, "'-")
		if w != "" && hasLetterOrDigit(w) {
			words = append(words, w)
		}
	}
	return words
}

// CountWords is len(Words(s, true)).
func CountWords(s string) int {
	return len(Words(s, true))
}

func hasLetterOrDigit(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
