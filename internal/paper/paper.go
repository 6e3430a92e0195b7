// Package paper defines the immutable unit of content that gets analyzed.
package paper

import (
	"strings"

	"golang.org/x/text/language"
)

// Paper is a piece of content plus its metadata. A Paper is never modified
// after New returns, so it can be shared across goroutines.
type Paper struct {
	id          string
	text        string
	keyword     string
	synonyms    []string
	locale      string
	title       string
	description string
	slug        string
	url         string
}

// Option configures a Paper at construction time.
type Option func(*Paper)

// WithID sets the identifier used when storing results.
func WithID(id string) Option {
	return func(p *Paper) { p.id = id }
}

// WithKeyword sets the focus keyphrase.
func WithKeyword(keyword string) Option {
	return func(p *Paper) { p.keyword = strings.TrimSpace(keyword) }
}

// WithSynonyms sets alternative keyphrases.
func WithSynonyms(synonyms ...string) Option {
	return func(p *Paper) {
		p.synonyms = nil
		for _, s := range synonyms {
			if s = strings.TrimSpace(s); s != "" {
				p.synonyms = append(p.synonyms, s)
			}
		}
	}
}

// WithLocale sets the locale, e.g. "ru_RU" or "en-US".
func WithLocale(locale string) Option {
	return func(p *Paper) { p.locale = strings.TrimSpace(locale) }
}

// WithTitle sets the SEO title.
func WithTitle(title string) Option {
	return func(p *Paper) { p.title = title }
}

// WithDescription sets the meta description.
func WithDescription(description string) Option {
	return func(p *Paper) { p.description = description }
}

// WithSlug sets the URL slug.
func WithSlug(slug string) Option {
	return func(p *Paper) { p.slug = slug }
}

// WithURL sets the canonical URL, used to tell internal from outbound links.
func WithURL(url string) Option {
	return func(p *Paper) { p.url = strings.TrimSpace(url) }
}

// New creates a Paper.
func New(text string, opts ...Option) *Paper {
	p := &Paper{text: text}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// With returns a copy of p with opts applied. p itself is unchanged.
func (p *Paper) With(opts ...Option) *Paper {
	c := *p
	c.synonyms = append([]string(nil), p.synonyms...)
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}

func (p *Paper) ID() string          { return p.id }
func (p *Paper) Text() string        { return p.text }
func (p *Paper) Keyword() string     { return p.keyword }
func (p *Paper) Locale() string      { return p.locale }
func (p *Paper) Title() string       { return p.title }
func (p *Paper) Description() string { return p.description }
func (p *Paper) Slug() string        { return p.slug }
func (p *Paper) URL() string         { return p.url }

// Synonyms returns a copy of the synonym list.
func (p *Paper) Synonyms() []string {
	return append([]string(nil), p.synonyms...)
}

func (p *Paper) HasText() bool        { return strings.TrimSpace(p.text) != "" }
func (p *Paper) HasKeyword() bool     { return p.keyword != "" }
func (p *Paper) HasTitle() bool       { return strings.TrimSpace(p.title) != "" }
func (p *Paper) HasDescription() bool { return strings.TrimSpace(p.description) != "" }
func (p *Paper) HasURL() bool         { return p.url != "" }

// Language returns the base language of the locale ("ru" for "ru_RU"), or
// an empty string when the locale is unset or cannot be parsed.
func (p *Paper) Language() string {
	return BaseLanguage(p.locale)
}

// BaseLanguage reduces a locale or BCP 47 tag to its base language code.
func BaseLanguage(locale string) string {
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if locale == "" {
		return ""
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}
	base, conf := tag.Base()
	if conf == language.No {
		return ""
	}
	return base.String()
}
