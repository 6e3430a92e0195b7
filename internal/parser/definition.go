package parser

import (
	"fmt"
	"strings"

	"github.com/pthm/contentlint/internal/paper"
)

// Definition is a paper as written in JSON, YAML or frontmatter.
type Definition struct {
	ID          string   `json:"id,omitempty" yaml:"id,omitempty"`
	Text        string   `json:"text" yaml:"text"`
	Keyword     string   `json:"keyword,omitempty" yaml:"keyword,omitempty"`
	Synonyms    []string `json:"synonyms,omitempty" yaml:"synonyms,omitempty"`
	Locale      string   `json:"locale,omitempty" yaml:"locale,omitempty"`
	Title       string   `json:"title,omitempty" yaml:"title,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Slug        string   `json:"slug,omitempty" yaml:"slug,omitempty"`
	URL         string   `json:"url,omitempty" yaml:"url,omitempty"`
}

// Paper builds the paper. defaultID is used when the definition has no ID.
func (d Definition) Paper(defaultID string) *paper.Paper {
	id := d.ID
	if id == "" {
		id = defaultID
	}
	return paper.New(d.Text,
		paper.WithID(id),
		paper.WithKeyword(d.Keyword),
		paper.WithSynonyms(d.Synonyms...),
		paper.WithLocale(d.Locale),
		paper.WithTitle(d.Title),
		paper.WithDescription(d.Description),
		paper.WithSlug(d.Slug),
		paper.WithURL(d.URL),
	)
}

// papersFrom converts a list of definitions; entries without an ID are named
// after the file and their position.
func papersFrom(path string, defs []Definition) []*paper.Paper {
	papers := make([]*paper.Paper, 0, len(defs))
	for i, d := range defs {
		papers = append(papers, d.Paper(fmt.Sprintf("%s#%d", path, i+1)))
	}
	return papers
}

// fromFrontmatter reads the paper fields of a frontmatter block. Both
// "keyword" and "keyphrase", and both "locale" and "lang" are accepted.
func fromFrontmatter(fm map[string]interface{}) Definition {
	return Definition{
		ID:          stringField(fm, "id"),
		Keyword:     stringField(fm, "keyword", "keyphrase", "focus_keyword"),
		Synonyms:    listField(fm, "synonyms"),
		Locale:      stringField(fm, "locale", "lang", "language"),
		Title:       stringField(fm, "title"),
		Description: stringField(fm, "description"),
		Slug:        stringField(fm, "slug"),
		URL:         stringField(fm, "url"),
	}
}

func stringField(fm map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		v, ok := fm[k]
		if !ok || v == nil {
			continue
		}
		if s := strings.TrimSpace(fmt.Sprint(v)); s != "" {
			return s
		}
	}
	return ""
}

// listField accepts a YAML list or a comma separated string.
func listField(fm map[string]interface{}, key string) []string {
	var out []string
	switch v := fm[key].(type) {
	case []interface{}:
		for _, item := range v {
			if s := strings.TrimSpace(fmt.Sprint(item)); s != "" {
				out = append(out, s)
			}
		}
	case string:
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
