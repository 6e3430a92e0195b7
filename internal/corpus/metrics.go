package corpus

import (
	"github.com/pthm/contentlint/internal/analysis"
	"github.com/pthm/contentlint/internal/assessments"
)

// Metrics summarizes the reports of a corpus.
type Metrics struct {
	Documents       int                                                 `json:"documents"`
	Papers          int                                                 `json:"papers"`
	Words           int                                                 `json:"words"`
	Sentences       int                                                 `json:"sentences"`
	MeanReadability float64                                             `json:"mean_readability"`
	MeanSEO         float64                                             `json:"mean_seo"`
	Languages       map[string]int                                      `json:"languages"`
	Fallbacks       int                                                 `json:"fallbacks"`
	FilesByType     map[string]int                                      `json:"files_by_type,omitempty"`
	Ratings         map[assessments.Category]map[assessments.Rating]int `json:"ratings"`
	Skipped         int                                                 `json:"skipped"`
	Failed          int                                                 `json:"failed"`
	References      int                                                 `json:"references"`
	UnresolvedRefs  int                                                 `json:"unresolved_references"`
	ParseErrors     int                                                 `json:"parse_errors"`
}

// ComputeMetrics summarizes reports. Mean scores only count reports that
// have a score in the category.
func ComputeMetrics(reports []*analysis.Report) *Metrics {
	m := &Metrics{
		Languages: make(map[string]int),
		Ratings:   make(map[assessments.Category]map[assessments.Rating]int),
	}

	var readability, seo, nReadability, nSEO int
	for _, rep := range reports {
		if rep == nil {
			continue
		}
		m.Papers++
		m.Words += rep.Stats.Words
		m.Sentences += rep.Stats.Sentences
		m.Languages[rep.Language]++
		if rep.FallbackReason != "" {
			m.Fallbacks++
		}
		if rep.HasReadabilityScore {
			readability += rep.ReadabilityScore
			nReadability++
		}
		if rep.HasSEOScore {
			seo += rep.SEOScore
			nSEO++
		}

		for _, res := range rep.Results {
			switch res.Status {
			case assessments.Skipped:
				m.Skipped++
			case assessments.Failed:
				m.Failed++
			case assessments.Scored:
				byRating, ok := m.Ratings[res.Category]
				if !ok {
					byRating = make(map[assessments.Rating]int)
					m.Ratings[res.Category] = byRating
				}
				byRating[res.Rating]++
			}
		}
	}

	if nReadability > 0 {
		m.MeanReadability = float64(readability) / float64(nReadability)
	}
	if nSEO > 0 {
		m.MeanSEO = float64(seo) / float64(nSEO)
	}
	return m
}

// Metrics adds the corpus facts to ComputeMetrics.
func (c *Corpus) Metrics(reports []*analysis.Report) *Metrics {
	m := ComputeMetrics(reports)
	m.Documents = len(c.Documents)
	m.ParseErrors = len(c.Errors)
	m.FilesByType = make(map[string]int)
	for _, doc := range c.Documents {
		m.FilesByType[doc.Parsed.FileType.String()]++
	}
	for _, ref := range c.AllReferences() {
		m.References++
		if !ref.Resolved {
			m.UnresolvedRefs++
		}
	}
	return m
}
