// Package stemmer reduces words to stems with the Snowball algorithms.
package stemmer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kljensen/snowball"
)

// Func maps a word to its stem. It is deterministic and has no side effects.
type Func func(word string) string

var algorithms = map[string]bool{
	"english": true,
	"french":  true,
	"russian": true,
	"spanish": true,
	"swedish": true,
}

// Algorithms lists the supported Snowball algorithm names.
func Algorithms() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snowball returns a stemmer for the named algorithm, e.g. "english".
func Snowball(algorithm string) (Func, error) {
	algorithm = strings.ToLower(strings.TrimSpace(algorithm))
	if !algorithms[algorithm] {
		return nil, fmt.Errorf("no snowball stemmer for %q", algorithm)
	}
	return func(word string) string {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			return ""
		}
		stem, err := snowball.Stem(word, algorithm, true)
		if err != nil || stem == "" {
			return word
		}
		return stem
	}, nil
}

// StemAll applies f to every word.
func (f Func) StemAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = f(w)
	}
	return out
}
