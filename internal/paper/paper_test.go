package paper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	p := New("<p>Hello.</p>",
		WithID("post-1"),
		WithKeyword("  hello world "),
		WithSynonyms("hi", " ", "greeting"),
		WithLocale("en_US"),
		WithTitle("Hello world"),
		WithDescription("A greeting."),
		WithURL("https://example.com/hello"),
	)

	assert.Equal(t, "post-1", p.ID())
	assert.Equal(t, "hello world", p.Keyword())
	assert.Equal(t, []string{"hi", "greeting"}, p.Synonyms())
	assert.Equal(t, "en", p.Language())
	assert.True(t, p.HasKeyword())
	assert.True(t, p.HasTitle())
	assert.True(t, p.HasDescription())
	assert.True(t, p.HasURL())
}

func TestSynonymsAreCopied(t *testing.T) {
	p := New("text", WithSynonyms("a", "b"))
	s := p.Synonyms()
	s[0] = "changed"
	assert.Equal(t, "a", p.Synonyms()[0])
}

func TestBaseLanguage(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"ru_RU", "ru"},
		{"ru-RU", "ru"},
		{"en", "en"},
		{"pt_BR", "pt"},
		{"", ""},
		{"not a locale!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			if got := BaseLanguage(tt.locale); got != tt.want {
				t.Errorf("BaseLanguage(%q) = %q, want %q", tt.locale, got, tt.want)
			}
		})
	}
}

func TestEmptyPaper(t *testing.T) {
	p := New("   ")
	assert.False(t, p.HasText())
	assert.False(t, p.HasKeyword())
	assert.Equal(t, "", p.Language())
}

func TestWithCopies(t *testing.T) {
	p := New("Текст.", WithID("a"), WithSynonyms("один"), WithLocale("ru_RU"))
	q := p.With(WithKeyword("текст"), WithSynonyms("два"))

	assert.Equal(t, "", p.Keyword())
	assert.Equal(t, []string{"один"}, p.Synonyms())
	assert.Equal(t, "текст", q.Keyword())
	assert.Equal(t, []string{"два"}, q.Synonyms())
	assert.Equal(t, "a", q.ID())
	assert.Equal(t, "ru", q.Language())
}
