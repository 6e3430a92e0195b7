package text

import (
	"html"
	"regexp"
	"strings"
)

var (
	scriptStyleRe = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>|<style\b[^>]*>.*?</style>`)
	commentRe     = regexp.MustCompile(`(?s)<!--.*?-->`)
	blockTagRe    = regexp.MustCompile(`(?i)</?(p|div|h[1-6]|li|ul|ol|dl|dt|dd|blockquote|pre|table|thead|tbody|tr|td|th|section|article|aside|header|footer|figure|figcaption|br|hr)\b[^>]*>`)
	tagRe         = regexp.MustCompile(`<[^>]*>`)
	headingRe     = regexp.MustCompile(`(?is)<h([1-6])\b[^>]*>(.*?)</h[1-6]\s*>`)
	anchorRe      = regexp.MustCompile(`(?is)<a\b([^>]*)>(.*?)</a\s*>`)
	hrefRe        = regexp.MustCompile(`(?i)\bhref\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s>]+))`)
	relRe         = regexp.MustCompile(`(?i)\brel\s*=\s*(?:"([^"]*)"|'([^']*)')`)
	blankLineRe   = regexp.MustCompile(`\n[ \t\r\f\v]*\n`)
)

// StripHTML removes markup from s. Scripts, styles and comments are dropped
// with their content, block-level tags become paragraph breaks, and entities
// are unescaped. Whitespace inside each paragraph is collapsed.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	s = scriptStyleRe.ReplaceAllString(s, " ")
	s = commentRe.ReplaceAllString(s, " ")
	s = blockTagRe.ReplaceAllString(s, "\n\n")
	s = tagRe.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return strings.Join(Paragraphs(s), "\n\n")
}

// Paragraphs splits s on blank lines and collapses whitespace within each
// paragraph. Empty paragraphs are dropped.
func Paragraphs(s string) []string {
	var out []string
	for _, block := range blankLineRe.Split(s, -1) {
		if p := strings.Join(strings.Fields(block), " "); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Section is a run of text together with the heading that introduces it.
// The first section has an empty heading when the text does not start with one.
type Section struct {
	Heading string
	Level   int
	Text    string
}

// Sections splits HTML on h1-h6 headings. Text without headings yields a
// single section.
func Sections(s string) []Section {
	matches := headingRe.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		if body := StripHTML(s); body != "" {
			return []Section{{Text: body}}
		}
		return nil
	}

	var sections []Section
	if lead := StripHTML(s[:matches[0][0]]); lead != "" {
		sections = append(sections, Section{Text: lead})
	}
	for i, m := range matches {
		end := len(s)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		sections = append(sections, Section{
			Heading: StripHTML(s[m[4]:m[5]]),
			Level:   int(s[m[2]] - '0'),
			Text:    StripHTML(s[m[1]:end]),
		})
	}
	return sections
}

// Link is an anchor found in HTML.
type Link struct {
	Href     string
	Text     string
	NoFollow bool
}

// Links returns every anchor with an href, in document order.
func Links(s string) []Link {
	var links []Link
	for _, m := range anchorRe.FindAllStringSubmatch(s, -1) {
		attrs := m[1]
		hm := hrefRe.FindStringSubmatch(attrs)
		if hm == nil {
			continue
		}
		href := firstNonEmpty(hm[1:]...)
		if href == "" {
			continue
		}
		link := Link{Href: html.UnescapeString(href), Text: StripHTML(m[2])}
		if rm := relRe.FindStringSubmatch(attrs); rm != nil {
			for _, rel := range strings.Fields(strings.ToLower(firstNonEmpty(rm[1:]...))) {
				if rel == "nofollow" {
					link.NoFollow = true
				}
			}
		}
		links = append(links, link)
	}
	return links
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
