package flesch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	english = Coefficients{Base: 206.835, SentenceWeight: 1.015, SyllableWeight: 84.6, SyllableUnit: PerWord}
	russian = Coefficients{Base: 206.835, SentenceWeight: 1.3, SyllableWeight: 60.1, SyllableUnit: PerWord}
	spanish = Coefficients{Base: 206.84, SentenceWeight: 1.02, SyllableWeight: 0.6, SyllableUnit: Per100Words}
)

func TestFormula(t *testing.T) {
	tests := []struct {
		name   string
		coeffs Coefficients
		stats  Statistics
		want   float64
	}{
		// 206.835 - 1.015*10 - 84.6*1.5 = 69.785
		{"english", english, Statistics{Words: 100, Sentences: 10, Syllables: 150}, 69.8},
		// 206.835 - 1.3*10 - 60.1*2 = 73.635
		{"russian", russian, Statistics{Words: 100, Sentences: 10, Syllables: 200}, 73.6},
		// 206.84 - 1.02*10 - 0.6*150 = 106.64, clamped
		{"spanish clamp", spanish, Statistics{Words: 100, Sentences: 10, Syllables: 150}, 100},
		// 206.835 - 1.015*50 - 84.6*3 = -97.7, clamped
		{"floor", english, Statistics{Words: 50, Sentences: 1, Syllables: 150}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Formula(tt.coeffs)(tt.stats)
			assert.True(t, ok)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestFormulaUndefined(t *testing.T) {
	score := Formula(english)
	for _, s := range []Statistics{{}, {Words: 10}, {Sentences: 2}} {
		_, ok := score(s)
		assert.False(t, ok, "%+v", s)
	}
}

func TestFormulaMonotonicInSyllables(t *testing.T) {
	for _, c := range []Coefficients{english, russian, spanish} {
		score := Formula(c)
		prev := 101.0
		for syllables := 100; syllables <= 400; syllables += 10 {
			got, ok := score(Statistics{Words: 100, Sentences: 8, Syllables: syllables})
			assert.True(t, ok)
			assert.LessOrEqual(t, got, prev, "syllables=%d", syllables)
			prev = got
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, VeryEasy},
		{90, VeryEasy},
		{89.9, Easy},
		{72, FairlyEasy},
		{60, Okay},
		{55, FairlyDifficult},
		{30, Difficult},
		{10, VeryDifficult},
		{-5, VeryDifficult},
	}

	for _, tt := range tests {
		if got := Classify(tt.score, nil); got != tt.want {
			t.Errorf("Classify(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, english.Validate())
	assert.Error(t, Coefficients{Base: 1, SentenceWeight: -1, SyllableWeight: 1}.Validate())
	assert.Error(t, Coefficients{Base: 1}.Validate())
	assert.Error(t, Coefficients{Base: 1, SentenceWeight: 1, SyllableUnit: "per_line"}.Validate())
}
