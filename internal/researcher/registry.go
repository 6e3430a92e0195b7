package researcher

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/pthm/contentlint/internal/language"
	"github.com/pthm/contentlint/internal/paper"
)

// DefaultLanguage is the code of the fallback researcher.
const DefaultLanguage = "default"

// Registry maps language codes to constructors. Variants are built on
// first use and cached; construction failures are not cached.
type Registry struct {
	mu           sync.Mutex
	constructors map[string]Constructor
	variants     map[string]Variant
	tables       func(code string) (*language.Table, error)
}

// NewRegistry creates a registry holding only the fallback researcher.
func NewRegistry() *Registry {
	r := &Registry{
		constructors: make(map[string]Constructor),
		variants:     make(map[string]Variant),
		tables:       language.Load,
	}
	r.Register(DefaultLanguage, fallback)
	return r
}

// Register adds or replaces the constructor for code.
func (r *Registry) Register(code string, c Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructors[code] = c
	delete(r.variants, code)
}

// Languages returns the registered codes, sorted, including tables loaded
// from custom language packs.
func (r *Registry) Languages() []string {
	r.mu.Lock()
	seen := make(map[string]bool, len(r.constructors))
	for code := range r.constructors {
		seen[code] = true
	}
	r.mu.Unlock()

	for _, code := range language.Available() {
		seen[code] = true
	}
	codes := make([]string, 0, len(seen))
	for code := range seen {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Normalize reduces a locale or tag to the code researchers are registered
// under ("ru_RU" -> "ru").
func Normalize(tag string) string {
	tag = strings.TrimSpace(tag)
	if strings.EqualFold(tag, DefaultLanguage) {
		return DefaultLanguage
	}
	if base := paper.BaseLanguage(tag); base != "" {
		return base
	}
	return strings.ToLower(tag)
}

func (r *Registry) variant(code string) (Variant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.variants[code]; ok {
		return v, nil
	}

	ctor, ok := r.constructors[code]
	var table *language.Table
	if code != DefaultLanguage {
		t, err := r.tables(code)
		switch {
		case err == nil:
			table = t
			if !ok {
				ctor = custom
			}
		case !ok && errors.Is(err, language.ErrUnknownLanguage):
			return Variant{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
		default:
			return Variant{}, &ConstructionError{Language: code, Err: err}
		}
	}

	v, err := ctor(table)
	if err != nil {
		return Variant{}, &ConstructionError{Language: code, Err: err}
	}
	r.variants[code] = v
	return v, nil
}

// Build returns the researcher for tag. It fails with ErrUnknownLanguage or
// a *ConstructionError; it never falls back.
func (r *Registry) Build(tag string, p *paper.Paper) (*Researcher, error) {
	code := Normalize(tag)
	if code == "" {
		return nil, fmt.Errorf("%w: empty tag", ErrUnknownLanguage)
	}
	v, err := r.variant(code)
	if err != nil {
		return nil, err
	}
	return New(p, v), nil
}

// Select always returns a researcher. When the one for tag cannot be built
// it returns the fallback researcher together with the reason.
func (r *Registry) Select(tag string, p *paper.Paper) (*Researcher, error) {
	res, err := r.Build(tag, p)
	if err == nil {
		return res, nil
	}
	def, defErr := r.Build(DefaultLanguage, p)
	if defErr != nil {
		v, _ := fallback(nil)
		def = New(p, v)
	}
	return def, err
}

// Capabilities describes what a language supports.
type Capabilities struct {
	Language    string       `json:"language"`
	Name        string       `json:"name,omitempty"`
	PassiveType string       `json:"passive_construction_type,omitempty"`
	Config      []ConfigKey  `json:"config"`
	Helpers     []HelperName `json:"helpers"`
}

// Capabilities builds the researcher for code and reports its keys.
func (r *Registry) Capabilities(code string) (Capabilities, error) {
	res, err := r.Build(code, paper.New(""))
	if err != nil {
		return Capabilities{}, err
	}
	c := Capabilities{
		Language: res.Language(),
		Config:   res.ConfigKeys(),
		Helpers:  res.HelperNames(),
	}
	if t, err := r.tables(c.Language); err == nil {
		c.Name = t.DisplayName()
	}
	if pt, err := res.Config(PassiveConstructionType); err == nil {
		c.PassiveType = fmt.Sprint(pt)
	}
	return c, nil
}

// DefaultRegistry registers every builtin language.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("en", english)
	r.Register("ru", russian)
	r.Register("de", german)
	r.Register("es", spanish)
	r.Register("fr", french)
	r.Register("it", italian)
	r.Register("nl", dutch)
	r.Register("pt", portuguese)
	r.Register("sv", swedish)
	return r
}
