package passive

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func englishDetector(t *testing.T) *List {
	t.Helper()
	d, err := NewList(ListConfig{
		Auxiliaries:          []string{"am", "is", "are", "was", "were", "be", "been", "being", "get", "got"},
		ParticipleSuffixes:   []string{"ed"},
		IrregularParticiples: []string{"written", "built", "seen", "done"},
		NonParticiples:       []string{"red", "bed", "indeed", "need"},
		ClauseBreakers:       []string{"and", "but", "because", "which"},
	})
	require.NoError(t, err)
	return d
}

func TestListDetect(t *testing.T) {
	d := englishDetector(t)

	tests := []struct {
		sentence string
		passive  bool
		start    int
		end      int
	}{
		{"The house was built in 1900", true, 2, 4},
		{"The letter was carefully written", true, 2, 5},
		{"Mistakes were made and corrected", false, 0, 0},
		{"The cake is baked daily", true, 2, 4},
		{"The car is red", false, 0, 0},
		{"She writes letters", false, 0, 0},
		{"was", false, 0, 0},
		{"", false, 0, 0},
		{"It was cold but we walked", false, 0, 0},
		{"It was very very very very finished", false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.sentence, func(t *testing.T) {
			got := d.Detect(strings.Fields(tt.sentence))
			assert.Equal(t, tt.passive, got.Passive)
			if tt.passive {
				assert.Equal(t, tt.start, got.Start)
				assert.Equal(t, tt.end, got.End)
			}
		})
	}
}

func TestListRequiresAuxiliaries(t *testing.T) {
	_, err := NewList(ListConfig{ParticipleSuffixes: []string{"ed"}})
	assert.Error(t, err)

	_, err = NewList(ListConfig{Auxiliaries: []string{"is"}})
	assert.Error(t, err)
}

func TestMorphologicalDetect(t *testing.T) {
	d, err := NewMorphological(MorphologicalConfig{
		Suffixes:      []string{"ан", "ен", "ён", "нный", "нная", "емый", "имый", "ыт"},
		Exceptions:    []string{"стакан", "должен"},
		MinWordLength: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, Morphological, d.Type())

	tests := []struct {
		sentence string
		passive  bool
		index    int
	}{
		{"Дом построен в прошлом году", true, 1},
		{"Окно было открыт", true, 2},
		{"Я люблю читать", false, 0},
		{"Это прочитанная книга", true, 1},
		{"На столе стакан", false, 0},
		{"Он должен прийти", false, 0},
		{"Я иду домой", false, 0},
		{"", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.sentence, func(t *testing.T) {
			got := d.Detect(strings.Fields(tt.sentence))
			assert.Equal(t, tt.passive, got.Passive)
			if tt.passive {
				assert.Equal(t, tt.index, got.Start)
				assert.Equal(t, tt.index+1, got.End)
			}
		})
	}
}

func TestMorphologicalRequiresSuffixes(t *testing.T) {
	_, err := NewMorphological(MorphologicalConfig{})
	assert.Error(t, err)
}

func TestShortSentencesNeverPassive(t *testing.T) {
	d := englishDetector(t)
	for _, tokens := range [][]string{nil, {}, {"built"}} {
		assert.False(t, d.Detect(tokens).Passive)
	}
}
