package parser

import (
	"html"
	"regexp"
	"strings"

	"github.com/pthm/contentlint/internal/paper"
)

var (
	titleRe    = regexp.MustCompile(`(?is)<title\b[^>]*>(.*?)</title\s*>`)
	metaRe     = regexp.MustCompile(`(?is)<meta\b([^>]*)>`)
	linkRe     = regexp.MustCompile(`(?is)<link\b([^>]*)>`)
	htmlTagRe  = regexp.MustCompile(`(?is)<html\b([^>]*)>`)
	bodyRe     = regexp.MustCompile(`(?is)<body\b[^>]*>(.*?)(?:</body\s*>|$)`)
	headRe     = regexp.MustCompile(`(?is)<head\b.*?</head\s*>`)
	attrRe     = regexp.MustCompile(`(?s)([\w:-]+)\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>]+))`)
	markupTags = regexp.MustCompile(`<[^>]*>`)
)

// HTMLParser parses HTML pages. The title, meta description, canonical URL
// and document language are read from the head, and the first meta keyword
// becomes the focus keyphrase. The body becomes the text.
type HTMLParser struct{}

// CanParse returns true if this parser can handle the file
func (p *HTMLParser) CanParse(path string) bool {
	return GetFileType(path) == FileTypeHTML
}

// Parse parses an HTML document into a single paper
func (p *HTMLParser) Parse(path string, content []byte) (*ParsedFile, error) {
	s := string(content)

	var def Definition
	if m := titleRe.FindStringSubmatch(s); m != nil {
		def.Title = cleanText(m[1])
	}
	for _, m := range metaRe.FindAllStringSubmatch(s, -1) {
		attrs := attributes(m[1])
		switch strings.ToLower(firstNonEmpty(attrs["name"], attrs["property"])) {
		case "description", "og:description":
			if def.Description == "" {
				def.Description = cleanText(attrs["content"])
			}
		case "keywords":
			if def.Keyword == "" {
				def.Keyword, _, _ = strings.Cut(cleanText(attrs["content"]), ",")
				def.Keyword = strings.TrimSpace(def.Keyword)
			}
		}
	}
	for _, m := range linkRe.FindAllStringSubmatch(s, -1) {
		attrs := attributes(m[1])
		if strings.EqualFold(attrs["rel"], "canonical") {
			def.URL = attrs["href"]
			break
		}
	}
	if m := htmlTagRe.FindStringSubmatch(s); m != nil {
		def.Locale = attributes(m[1])["lang"]
	}

	if m := bodyRe.FindStringSubmatch(s); m != nil {
		def.Text = m[1]
	} else {
		def.Text = headRe.ReplaceAllString(s, "")
	}

	return &ParsedFile{
		Path:     path,
		FileType: FileTypeHTML,
		Papers:   []*paper.Paper{def.Paper(path)},
	}, nil
}

// attributes parses the attribute list of a tag. Names are lowercased.
func attributes(s string) map[string]string {
	attrs := make(map[string]string)
	for _, m := range attrRe.FindAllStringSubmatch(s, -1) {
		attrs[strings.ToLower(m[1])] = html.UnescapeString(firstNonEmpty(m[2:]...))
	}
	return attrs
}

func cleanText(s string) string {
	s = markupTags.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(html.UnescapeString(s)), " ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
