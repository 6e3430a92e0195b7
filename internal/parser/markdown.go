package parser

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"

	"github.com/pthm/contentlint/internal/paper"
)

// MarkdownParser parses markdown pages. The body is rendered to HTML so
// headings and links reach the researches.
type MarkdownParser struct{}

// CanParse returns true if this parser can handle the file
func (p *MarkdownParser) CanParse(path string) bool {
	return GetFileType(path) == FileTypeMarkdown
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// Parse parses a markdown file into a single paper
func (p *MarkdownParser) Parse(path string, content []byte) (*ParsedFile, error) {
	frontmatter, body := ParseFrontmatter(content)

	doc := markdown.Parser().Parse(text.NewReader(body))
	var buf bytes.Buffer
	if err := markdown.Renderer().Render(&buf, body, doc); err != nil {
		return nil, err
	}

	def := fromFrontmatter(frontmatter)
	def.Text = buf.String()
	if def.Title == "" {
		def.Title = firstHeading(doc, body)
	}

	return &ParsedFile{
		Path:        path,
		FileType:    FileTypeMarkdown,
		Papers:      []*paper.Paper{def.Paper(path)},
		Frontmatter: frontmatter,
	}, nil
}

// firstHeading returns the text of the first level 1 heading.
func firstHeading(doc ast.Node, source []byte) string {
	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			title = string(h.Text(source))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return title
}
