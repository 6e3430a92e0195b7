package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func TestGetFileType(t *testing.T) {
	tests := []struct {
		path     string
		expected FileType
	}{
		{"/site/post.md", FileTypeMarkdown},
		{"/site/POST.MARKDOWN", FileTypeMarkdown},
		{"/site/index.html", FileTypeHTML},
		{"/site/index.htm", FileTypeHTML},
		{"/site/notes.txt", FileTypeText},
		{"/site/papers.json", FileTypeJSON},
		{"/site/papers.yml", FileTypeYAML},
		{"/site/papers.yaml", FileTypeYAML},
		{"/site/main.go", FileTypeUnknown},
		{"/site/Makefile", FileTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := GetFileType(tt.path); got != tt.expected {
				t.Errorf("GetFileType(%q) = %v, want %v", tt.path, got, tt.expected)
			}
			if got := Supported(tt.path); got != (tt.expected != FileTypeUnknown) {
				t.Errorf("Supported(%q) = %v", tt.path, got)
			}
		})
	}
}

func TestFileTypeString(t *testing.T) {
	tests := []struct {
		fileType FileType
		expected string
	}{
		{FileTypeMarkdown, "markdown"},
		{FileTypeHTML, "html"},
		{FileTypeText, "text"},
		{FileTypeJSON, "json"},
		{FileTypeYAML, "yaml"},
		{FileTypeUnknown, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.fileType.String(); got != tt.expected {
				t.Errorf("FileType.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseFrontmatter(t *testing.T) {
	content := []byte("---\ntitle: Hello\nsynonyms: [a, b]\n---\n# Body\n")
	fm, rest := ParseFrontmatter(content)
	if fm["title"] != "Hello" {
		t.Errorf("title = %v, want Hello", fm["title"])
	}
	if string(rest) != "# Body\n" {
		t.Errorf("rest = %q", rest)
	}

	fm, rest = ParseFrontmatter([]byte("# No frontmatter"))
	if fm != nil || string(rest) != "# No frontmatter" {
		t.Errorf("unexpected frontmatter %v / %q", fm, rest)
	}

	fm, _ = ParseFrontmatter([]byte("---\ntitle: unterminated\n"))
	if fm != nil {
		t.Errorf("unterminated frontmatter parsed: %v", fm)
	}
}

func TestParseMarkdown(t *testing.T) {
	content := `---
title: Борщ
description: Рецепт борща
keyphrase: рецепт борща
synonyms: "борщ, суп"
lang: ru_RU
slug: borscht
---
# Как приготовить борщ

Это [рецепт](https://example.com/recipe) борща.

## Ингредиенты

Свёкла и капуста.
`
	parsed, err := ParseBytes("borscht.md", []byte(content), Options{})
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}
	if parsed.FileType != FileTypeMarkdown {
		t.Errorf("FileType = %v", parsed.FileType)
	}
	if len(parsed.Papers) != 1 {
		t.Fatalf("got %d papers, want 1", len(parsed.Papers))
	}

	p := parsed.Papers[0]
	if p.ID() != "borscht.md" {
		t.Errorf("ID = %q", p.ID())
	}
	if p.Title() != "Борщ" || p.Description() != "Рецепт борща" || p.Slug() != "borscht" {
		t.Errorf("title/description/slug = %q/%q/%q", p.Title(), p.Description(), p.Slug())
	}
	if p.Keyword() != "рецепт борща" {
		t.Errorf("Keyword = %q", p.Keyword())
	}
	if got := p.Synonyms(); len(got) != 2 || got[0] != "борщ" || got[1] != "суп" {
		t.Errorf("Synonyms = %v", got)
	}
	if p.Language() != "ru" {
		t.Errorf("Language = %q", p.Language())
	}
	for _, want := range []string{"<h1>", "<h2>", `<a href="https://example.com/recipe">`} {
		if !strings.Contains(p.Text(), want) {
			t.Errorf("rendered text is missing %s:\n%s", want, p.Text())
		}
	}
}

func TestParseMarkdownTitleFromHeading(t *testing.T) {
	parsed, err := ParseBytes("post.md", []byte("Intro.\n\n# The *real* title\n\nBody."), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got := parsed.Papers[0].Title(); got != "The real title" {
		t.Errorf("Title = %q", got)
	}
}

func TestParseHTML(t *testing.T) {
	content := `<!DOCTYPE html>
<html lang="de-DE">
<head>
  <title>Apfel &amp; Birne</title>
  <meta content="Alles über Obst" name="description">
  <meta name="keywords" content="obst, apfel">
  <link rel="canonical" href="https://example.de/obst">
  <style>body { color: red }</style>
</head>
<body><h1>Obst</h1><p>Der Apfel ist rot.</p></body>
</html>`

	parsed, err := ParseBytes("obst.html", []byte(content), Options{})
	if err != nil {
		t.Fatal(err)
	}
	p := parsed.Papers[0]
	if p.Title() != "Apfel & Birne" {
		t.Errorf("Title = %q", p.Title())
	}
	if p.Description() != "Alles über Obst" {
		t.Errorf("Description = %q", p.Description())
	}
	if p.Keyword() != "obst" {
		t.Errorf("Keyword = %q", p.Keyword())
	}
	if p.URL() != "https://example.de/obst" {
		t.Errorf("URL = %q", p.URL())
	}
	if p.Language() != "de" {
		t.Errorf("Language = %q", p.Language())
	}
	if strings.Contains(p.Text(), "color") || !strings.Contains(p.Text(), "Der Apfel ist rot.") {
		t.Errorf("Text = %q", p.Text())
	}
}

func TestParseHTMLDeclaredCharset(t *testing.T) {
	src := `<html><head><meta charset="windows-1251"></head><body><p>Привет, мир.</p></body></html>`
	encoded, err := charmap.Windows1251.NewEncoder().String(src)
	if err != nil {
		t.Fatal(err)
	}
	parsed, err := ParseBytes("ru.html", []byte(encoded), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(parsed.Papers[0].Text(), "Привет, мир.") {
		t.Errorf("Text = %q", parsed.Papers[0].Text())
	}
}

func TestParsePlainWithEncoding(t *testing.T) {
	encoded, err := charmap.KOI8R.NewEncoder().String("Дом был построен.")
	if err != nil {
		t.Fatal(err)
	}
	parsed, err := ParseBytes("note.txt", []byte(encoded), Options{Encoding: "KOI8-R"})
	if err != nil {
		t.Fatal(err)
	}
	if got := parsed.Papers[0].Text(); got != "Дом был построен." {
		t.Errorf("Text = %q", got)
	}

	if _, err := ParseBytes("note.txt", []byte("x"), Options{Encoding: "ebcdic"}); err == nil {
		t.Error("expected an error for an unknown encoding")
	}
}

func TestDecodeStripsBOM(t *testing.T) {
	out, err := Decode([]byte("\xEF\xBB\xBFhello"), "")
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "hello" {
		t.Errorf("Decode = %q", out)
	}
}

func TestParseDefinitions(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
		ids     []string
		wantErr bool
	}{
		{
			name:    "json object",
			path:    "one.json",
			content: `{"text": "Hello world.", "keyword": "hello"}`,
			ids:     []string{"one.json"},
		},
		{
			name:    "json list",
			path:    "many.json",
			content: `[{"id": "a", "text": "One."}, {"text": "Two."}]`,
			ids:     []string{"a", "many.json#2"},
		},
		{
			name:    "yaml mapping",
			path:    "one.yaml",
			content: "id: home\ntext: Hello.\nlocale: en_US\n",
			ids:     []string{"home"},
		},
		{
			name:    "yaml sequence",
			path:    "many.yml",
			content: "- text: One.\n- id: b\n  text: Two.\n",
			ids:     []string{"many.yml#1", "b"},
		},
		{
			name:    "invalid json",
			path:    "bad.json",
			content: `{"text": `,
			wantErr: true,
		},
		{
			name:    "empty json",
			path:    "empty.json",
			content: "  ",
			wantErr: true,
		},
		{
			name:    "yaml scalar",
			path:    "scalar.yaml",
			content: "just a string",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseBytes(tt.path, []byte(tt.content), Options{})
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBytes: %v", err)
			}
			if len(parsed.Papers) != len(tt.ids) {
				t.Fatalf("got %d papers, want %d", len(parsed.Papers), len(tt.ids))
			}
			for i, id := range tt.ids {
				if got := parsed.Papers[i].ID(); got != id {
					t.Errorf("paper %d ID = %q, want %q", i, got, id)
				}
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.txt")
	if err := os.WriteFile(path, []byte("Some text."), 0o644); err != nil {
		t.Fatal(err)
	}
	parsed, err := Parse(path, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if parsed.FileType != FileTypeText || parsed.Papers[0].Text() != "Some text." {
		t.Errorf("unexpected parse result: %+v", parsed)
	}

	if _, err := Parse(filepath.Join(t.TempDir(), "missing.txt"), Options{}); err == nil {
		t.Error("expected an error for a missing file")
	}
}
