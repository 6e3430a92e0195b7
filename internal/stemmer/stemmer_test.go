package stemmer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnowball(t *testing.T) {
	tests := []struct {
		algorithm string
		words     []string
	}{
		{"english", []string{"running", "runs"}},
		{"english", []string{"Connection", "connections", "connected"}},
		{"russian", []string{"книга", "книги", "книгу"}},
		{"spanish", []string{"gatos", "gato"}},
	}

	for _, tt := range tests {
		t.Run(tt.algorithm, func(t *testing.T) {
			stem, err := Snowball(tt.algorithm)
			require.NoError(t, err)

			want := stem(tt.words[0])
			assert.NotEmpty(t, want)
			for _, w := range tt.words[1:] {
				assert.Equal(t, want, stem(w), "stem(%q)", w)
			}
		})
	}
}

func TestSnowballDeterministic(t *testing.T) {
	stem, err := Snowball("english")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		assert.Equal(t, stem("readability"), stem("readability"))
	}
	assert.Equal(t, "", stem("  "))
}

func TestSnowballUnknown(t *testing.T) {
	_, err := Snowball("klingon")
	assert.Error(t, err)
}

func TestStemAll(t *testing.T) {
	stem, err := Snowball("english")
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog"}, stem.StemAll([]string{"cats", "dogs"}))
}
