package syllables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var englishConfig = &Config{
	Vowels: "aeiouy",
	Deviations: Deviations{
		Vowels: []VowelDeviation{
			{Fragments: []string{"[^aeiouy]e$", "[^dt]ed$", "[^aeioucgsxz]es$"}, CountModifier: -1},
			{Fragments: []string{"[^aeiouy]le$", "[^ct]ia", "[^ct]io", "eo"}, CountModifier: 1},
		},
		Words: WordDeviations{
			Full:      []WordDeviation{{Word: "business", Syllables: 2}},
			Fragments: []FragmentDeviation{{Word: "every", Syllables: 2, Position: "prefix"}},
		},
	},
}

func TestCount(t *testing.T) {
	c, err := NewCounter(englishConfig)
	require.NoError(t, err)

	tests := []struct {
		word string
		want int
	}{
		{"", 0},
		{"cat", 1},
		{"make", 1},
		{"the", 1},
		{"table", 2},
		{"jumped", 1},
		{"wanted", 2},
		{"makes", 1},
		{"boxes", 2},
		{"media", 3},
		{"social", 2},
		{"radio", 3},
		{"nation", 2},
		{"video", 3},
		{"Business", 2},
		{"everyone", 3},
		{"rhythm", 1},
		{"hmm", 0},
		{"2024", 0},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := c.Count(tt.word); got != tt.want {
				t.Errorf("Count(%q) = %d, want %d", tt.word, got, tt.want)
			}
		})
	}
}

func TestSeparateVowels(t *testing.T) {
	c, err := NewCounter(&Config{Vowels: "аоиеёэыуюя", SeparateVowels: true})
	require.NoError(t, err)

	assert.Equal(t, 3, c.Count("молоко"))
	assert.Equal(t, 2, c.Count("поэт"))
	assert.Equal(t, 0, c.Count("в"))
	assert.Equal(t, 5, c.CountWords([]string{"молоко", "поэт", "в"}))
}

func TestNewCounterErrors(t *testing.T) {
	_, err := NewCounter(nil)
	assert.Error(t, err)

	_, err = NewCounter(&Config{Vowels: " "})
	assert.Error(t, err)

	_, err = NewCounter(&Config{Vowels: "a", Deviations: Deviations{Vowels: []VowelDeviation{{Fragments: []string{"("}}}}})
	assert.Error(t, err)

	_, err = NewCounter(&Config{Vowels: "a", Deviations: Deviations{Words: WordDeviations{
		Fragments: []FragmentDeviation{{Word: "x", Position: "middle"}},
	}}})
	assert.Error(t, err)
}

func TestCountNeverNegative(t *testing.T) {
	c, err := NewCounter(&Config{
		Vowels:     "aeiou",
		Deviations: Deviations{Vowels: []VowelDeviation{{Fragments: []string{"[a-z]"}, CountModifier: -5}}},
	})
	require.NoError(t, err)

	for _, w := range []string{"strength", "a", "xyz", "queueing"} {
		assert.GreaterOrEqual(t, c.Count(w), 0, w)
	}
}
