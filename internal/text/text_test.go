package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentences(t *testing.T) {
	abbreviations := []string{"e.g.", "Mr.", "т.е."}

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single", "One sentence", []string{"One sentence"}},
		{"two", "The cat sat. The dog ran!", []string{"The cat sat.", "The dog ran!"}},
		{"abbreviation", "Ask Mr. Smith. He knows.", []string{"Ask Mr. Smith.", "He knows."}},
		{"initial", "Written by J. Smith in 1999. Read it.", []string{"Written by J. Smith in 1999.", "Read it."}},
		{"decimal", "It costs 3.5 euros. Cheap.", []string{"It costs 3.5 euros.", "Cheap."}},
		{"lowercase continuation", "Apples, pears, etc. and more.", []string{"Apples, pears, etc. and more."}},
		{"quote", `He said "stop." Then he left.`, []string{`He said "stop."`, "Then he left."}},
		{"ellipsis", "Wait... What happened?", []string{"Wait...", "What happened?"}},
		{"paragraphs", "No period here\n\nNew paragraph", []string{"No period here", "New paragraph"}},
		{"russian", "Дом был построен. Мы живём в нём, т.е. давно.", []string{"Дом был построен.", "Мы живём в нём, т.е. давно."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sentences(tt.in, abbreviations))
		})
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		hyphens bool
		want    []string
	}{
		{"empty", "", true, []string{}},
		{"punctuation", "Hello, world! (Really?)", true, []string{"Hello", "world", "Really"}},
		{"apostrophe", "don't 'quote'", true, []string{"don't", "quote"}},
		{"hyphen boundary", "well-known", true, []string{"well", "known"}},
		{"hyphen kept", "well-known", false, []string{"well-known"}},
		{"numbers", "In 2024 we grew 3.5x", true, []string{"In", "2024", "we", "grew", "3", "5x"}},
		{"only punctuation", "-- ... !!", true, []string{}},
		{"cyrillic", "Привет, мир.", true, []string{"Привет", "мир"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Words(tt.in, tt.hyphens)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStripHTML(t *testing.T) {
	in := `<h2>Title</h2><p>First &amp; <b>bold</b>.</p><script>var x = 1;</script><!-- note --><p>Second</p>`
	assert.Equal(t, "Title\n\nFirst & bold.\n\nSecond", StripHTML(in))
	assert.Equal(t, "", StripHTML(""))
}

func TestParagraphs(t *testing.T) {
	got := Paragraphs("one\n  two\n\n\n three  \n \nfour")
	assert.Equal(t, []string{"one two", "three", "four"}, got)
}

func TestSections(t *testing.T) {
	in := `<p>Intro text.</p><h2>First</h2><p>Body one.</p><h3>Second</h3><p>Body two.</p>`
	got := Sections(in)

	assert.Len(t, got, 3)
	assert.Equal(t, Section{Text: "Intro text."}, got[0])
	assert.Equal(t, Section{Heading: "First", Level: 2, Text: "Body one."}, got[1])
	assert.Equal(t, Section{Heading: "Second", Level: 3, Text: "Body two."}, got[2])

	assert.Equal(t, []Section{{Text: "Plain"}}, Sections("Plain"))
	assert.Nil(t, Sections(""))
}

func TestLinks(t *testing.T) {
	in := `<a href="/about">About</a> and <a rel="nofollow noopener" href='https://other.org'>x</a> <a name="anchor">no href</a>`
	got := Links(in)

	assert.Equal(t, []Link{
		{Href: "/about", Text: "About"},
		{Href: "https://other.org", Text: "x", NoFollow: true},
	}, got)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, `It's "fine"`, Normalize("It\u2019s \u201cfine\u201d"))
	// e + combining acute composes to a single rune
	assert.Equal(t, "caf\u00e9", Normalize("cafe\u0301"))
}

func TestLower(t *testing.T) {
	assert.Equal(t, "привет", Lower("ПРИВЕТ", "ru"))
	assert.Equal(t, []string{"the", "cat"}, LowerAll([]string{"The", "CAT"}, "en"))
}
