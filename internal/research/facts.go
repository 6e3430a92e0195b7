package research

import (
	"errors"

	"github.com/pthm/contentlint/internal/researcher"
)

// Facts is every research that applies to a paper, for display and
// debugging. Researches the language does not support are listed in
// Unsupported and left nil.
type Facts struct {
	Language           string              `json:"language"`
	Words              int                 `json:"words"`
	Sentences          int                 `json:"sentences"`
	Paragraphs         int                 `json:"paragraphs"`
	Syllables          *int                `json:"syllables,omitempty"`
	Flesch             *FleschResult       `json:"flesch,omitempty"`
	Passive            *PassiveResult      `json:"passive,omitempty"`
	Transitions        *TransitionResult   `json:"transitions,omitempty"`
	SentenceBeginnings []BeginningRun      `json:"sentence_beginnings,omitempty"`
	Sections           []Section           `json:"sections,omitempty"`
	Keyphrase          *Keyphrase          `json:"keyphrase,omitempty"`
	KeywordCount       *KeywordCountResult `json:"keyword_count,omitempty"`
	Title              TitleMatch          `json:"title"`
	Introduction       *IntroductionMatch  `json:"introduction,omitempty"`
	Description        *int                `json:"description_matches,omitempty"`
	ProminentWords     []WordFrequency     `json:"prominent_words,omitempty"`
	Links              LinkStats           `json:"links"`
	Unsupported        []Name              `json:"unsupported,omitempty"`
}

// prominentLimit caps the prominent words listed in Facts.
const prominentLimit = 10

// Collect runs every research against r. Only unsupported-feature errors
// are tolerated; any other error is returned.
func Collect(r *researcher.Researcher) (*Facts, error) {
	f := &Facts{
		Language:   r.Language(),
		Words:      WordCount(r),
		Sentences:  len(Sentences(r)),
		Paragraphs: len(Paragraphs(r)),
		Sections:   SubheadingSections(r),
		Title:      KeyphraseInTitle(r),
		Links:      Links(r),
	}

	check := func(name Name, err error) error {
		if err != nil && errors.Is(err, researcher.ErrUnsupported) {
			f.Unsupported = append(f.Unsupported, name)
			return nil
		}
		return err
	}

	if n, err := Syllables(r); err != nil {
		if err := check(SyllablesName, err); err != nil {
			return nil, err
		}
	} else {
		f.Syllables = &n
	}

	if v, err := FleschReadingEase(r); err != nil {
		if err := check(FleschReadingEaseName, err); err != nil {
			return nil, err
		}
	} else {
		f.Flesch = &v
	}

	if v, err := PassiveVoice(r); err != nil {
		if err := check(PassiveVoiceName, err); err != nil {
			return nil, err
		}
	} else {
		f.Passive = &v
	}

	if v, err := TransitionWords(r); err != nil {
		if err := check(TransitionWordsName, err); err != nil {
			return nil, err
		}
	} else {
		f.Transitions = &v
	}

	runs, err := SentenceBeginnings(r)
	if err := check(SentenceBeginningsName, err); err != nil {
		return nil, err
	}
	f.SentenceBeginnings = runs

	if v, err := KeyphraseContentWords(r); err != nil {
		if err := check(KeyphraseContentWordsName, err); err != nil {
			return nil, err
		}
	} else if len(v.Words) > 0 {
		f.Keyphrase = &v
	}

	if v, err := KeywordCount(r); err != nil {
		if err := check(KeywordCountName, err); err != nil {
			return nil, err
		}
	} else {
		f.KeywordCount = &v
	}

	if v, err := KeyphraseInIntroduction(r); err != nil {
		if err := check(KeyphraseInIntroductionName, err); err != nil {
			return nil, err
		}
	} else {
		f.Introduction = &v
	}

	if v, err := KeyphraseInDescription(r); err != nil {
		if err := check(KeyphraseInDescriptionName, err); err != nil {
			return nil, err
		}
	} else {
		f.Description = &v
	}

	words, err := ProminentWords(r, prominentLimit)
	if err := check(ProminentWordsName, err); err != nil {
		return nil, err
	}
	f.ProminentWords = words

	return f, nil
}
