package assessments

import (
	"fmt"

	"github.com/pthm/contentlint/internal/llm"
)

// Registry holds assessments in registration order.
type Registry struct {
	assessments []Assessment
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{assessments: make([]Assessment, 0)}
}

// Register adds an assessment to the registry.
func (r *Registry) Register(a Assessment) {
	r.assessments = append(r.assessments, a)
}

// Assessments returns all registered assessments. If includeAI is false,
// assessments with RequiresAI=true are excluded.
func (r *Registry) Assessments(includeAI bool) []Assessment {
	var result []Assessment
	for _, a := range r.assessments {
		if includeAI || !a.Config().RequiresAI {
			result = append(result, a)
		}
	}
	return result
}

// Get returns an assessment by name, or nil.
func (r *Registry) Get(name string) Assessment {
	for _, a := range r.assessments {
		if a.Name() == name {
			return a
		}
	}
	return nil
}

// Subset returns the named assessments in the order given.
func (r *Registry) Subset(names []string) ([]Assessment, error) {
	out := make([]Assessment, 0, len(names))
	for _, name := range names {
		a := r.Get(name)
		if a == nil {
			return nil, fmt.Errorf("unknown assessment %q", name)
		}
		out = append(out, a)
	}
	return out, nil
}

// DefaultRegistry returns a registry with every builtin assessment. The AI
// review is registered only when client is non-nil.
func DefaultRegistry(client llm.Client) *Registry {
	r := NewRegistry()

	// readability
	r.Register(&FleschReadingEase{})
	r.Register(&PassiveVoice{})
	r.Register(&TransitionWords{})
	r.Register(&SentenceLength{})
	r.Register(&ParagraphLength{})
	r.Register(&ConsecutiveSentences{})
	r.Register(&SubheadingDistribution{})

	// seo
	r.Register(&TextLength{})
	r.Register(&KeywordDensity{})
	r.Register(&KeyphraseLength{})
	r.Register(&FunctionWordsInKeyphrase{})
	r.Register(&KeyphraseInTitle{})
	r.Register(&KeyphraseInIntroduction{})
	r.Register(&MetaDescriptionKeyword{})
	r.Register(&OutboundLinks{})
	r.Register(&InternalLinks{})

	// ai, only with --deep
	if a := NewAIClarity(client); a != nil {
		r.Register(a)
	}

	return r
}
