package assessments

import (
	"context"
	"errors"
	"reflect"
	"slices"
	"testing"

	"github.com/pthm/contentlint/internal/flesch"
	"github.com/pthm/contentlint/internal/paper"
	"github.com/pthm/contentlint/internal/researcher"
)

var researchers = researcher.DefaultRegistry()

func newContext(t *testing.T, lang, body string, opts ...paper.Option) *Context {
	t.Helper()
	r, err := researchers.Build(lang, paper.New(body, opts...))
	if err != nil {
		t.Fatalf("Build(%q) error = %v", lang, err)
	}
	return NewContext(context.Background(), r)
}

func find(t *testing.T, results []Result, id string) Result {
	t.Helper()
	for _, r := range results {
		if r.ID == id {
			return r
		}
	}
	t.Fatalf("no result for %q", id)
	return Result{}
}

func TestRatingFor(t *testing.T) {
	tests := []struct {
		score int
		want  Rating
	}{
		{0, Feedback},
		{1, Bad},
		{4, Bad},
		{5, OK},
		{7, OK},
		{8, Good},
		{9, Good},
	}
	for _, tt := range tests {
		if got := RatingFor(tt.score); got != tt.want {
			t.Errorf("RatingFor(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestOverallScore(t *testing.T) {
	results := []Result{
		{Category: Readability, Status: Scored, Score: 9, Rating: Good},
		{Category: Readability, Status: Scored, Score: 3, Rating: Bad},
		{Category: Readability, Status: Skipped},
		{Category: Readability, Status: Scored, Rating: Feedback},
		{Category: SEO, Status: Scored, Score: 9, Rating: Good},
	}
	got, ok := OverallScore(results, Readability)
	if !ok || got != 67 {
		t.Errorf("OverallScore(readability) = %d, %v; want 67, true", got, ok)
	}
	if _, ok := OverallScore(results, AI); ok {
		t.Error("OverallScore(ai) should report nothing scored")
	}
}

func TestRun_SkipsUnsupported(t *testing.T) {
	ctx := newContext(t, "de", "Die Laufschuhe sind gut.", paper.WithKeyword("Laufschuhe"))
	res := Run(ctx, []Assessment{&KeywordDensity{}})[0]

	if res.Status != Skipped {
		t.Fatalf("Status = %q, want skipped", res.Status)
	}
	if !slices.Contains(res.Missing, "helper:getStemmer") {
		t.Errorf("Missing = %v, want helper:getStemmer", res.Missing)
	}
	if res.Rating != "" || res.Score != 0 {
		t.Errorf("skipped result carries a rating: %+v", res)
	}
}

func TestRun_NoKeyword(t *testing.T) {
	ctx := newContext(t, "en", "Some text.")
	res := Run(ctx, []Assessment{&KeywordDensity{}})[0]
	if res.Status != Scored || res.Rating != Feedback {
		t.Errorf("got %q/%q, want scored/feedback", res.Status, res.Rating)
	}
}

type panicking struct{}

func (panicking) Name() string             { return "panics" }
func (panicking) Description() string      { return "" }
func (panicking) Config() AssessmentConfig { return AssessmentConfig{Category: Readability} }
func (panicking) Run(*Context) (Result, error) {
	panic("boom")
}

type failing struct{}

func (failing) Name() string             { return "fails" }
func (failing) Description() string      { return "" }
func (failing) Config() AssessmentConfig { return AssessmentConfig{Category: Readability} }
func (failing) Run(*Context) (Result, error) {
	return Result{Score: 9}, errors.New("broken")
}

func TestRun_ContainsFailures(t *testing.T) {
	ctx := newContext(t, "en", "The cat sat on the mat.")
	results := Run(ctx, []Assessment{panicking{}, failing{}, &TextLength{}})

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	wantIDs := []string{"panics", "fails", "text-length"}
	for i, id := range wantIDs {
		if results[i].ID != id {
			t.Errorf("results[%d].ID = %q, want %q", i, results[i].ID, id)
		}
	}
	if results[0].Status != Failed || results[1].Status != Failed {
		t.Errorf("statuses = %q, %q; want failed", results[0].Status, results[1].Status)
	}
	if results[1].Score != 0 {
		t.Errorf("failed result kept a score: %d", results[1].Score)
	}
	if results[2].Status != Scored {
		t.Errorf("text-length status = %q, want scored", results[2].Status)
	}
}

func TestRun_EmptyTextFlesch(t *testing.T) {
	ctx := newContext(t, "en", "")
	res := Run(ctx, []Assessment{&FleschReadingEase{}})[0]

	if res.Status != Scored || res.Rating != Feedback {
		t.Errorf("got %q/%q, want scored/feedback", res.Status, res.Rating)
	}
	if res.Tier != flesch.Undefined {
		t.Errorf("Tier = %q, want %q", res.Tier, flesch.Undefined)
	}
	if res.Value != nil {
		t.Errorf("Value = %v, want nil", *res.Value)
	}
}

func TestRun_DefaultLanguageCoverage(t *testing.T) {
	ctx := newContext(t, researcher.DefaultLanguage, "Some words in a text.", paper.WithKeyword("words"))
	results := Run(ctx, DefaultRegistry(nil).Assessments(false))

	skipped := []string{"flesch-reading-ease", "passive-voice", "transition-words", "consecutive-sentences", "keyword-density", "keyphrase-in-introduction"}
	for _, id := range skipped {
		if got := find(t, results, id).Status; got != Skipped {
			t.Errorf("%s status = %q, want skipped", id, got)
		}
	}
	scored := []string{"sentence-length", "paragraph-length", "text-length", "keyphrase-in-title", "outbound-links"}
	for _, id := range scored {
		if got := find(t, results, id).Status; got != Scored {
			t.Errorf("%s status = %q, want scored", id, got)
		}
	}
}

const article = `<p>Running shoes matter for every runner. However, many people buy the wrong pair.</p>
<h2>Choosing a pair</h2>
<p>The fit was tested by experts. Look for a snug heel and room for your toes. As a result, your feet stay healthy.</p>
<p>Read the <a href="https://example.org/guide">guide</a> or see our <a href="/shop">shop</a>.</p>`

func TestRun_Idempotent(t *testing.T) {
	ctx := newContext(t, "en", article,
		paper.WithKeyword("running shoes"),
		paper.WithTitle("Running shoes for beginners"),
		paper.WithURL("https://example.com/blog"))
	list := DefaultRegistry(nil).Assessments(false)

	first := Run(ctx, list)
	second := Run(ctx, list)
	if !reflect.DeepEqual(first, second) {
		t.Error("running the same assessments twice gave different results")
	}
}

func TestRun_SubsetIndependent(t *testing.T) {
	ctx := newContext(t, "en", article,
		paper.WithKeyword("running shoes"),
		paper.WithURL("https://example.com/blog"))
	list := DefaultRegistry(nil).Assessments(false)
	all := Run(ctx, list)

	for i, a := range list {
		alone := Run(ctx, []Assessment{a})[0]
		if !reflect.DeepEqual(alone, all[i]) {
			t.Errorf("%s alone = %+v, in full run = %+v", a.Name(), alone, all[i])
		}
	}
}

func TestAssessmentRatings(t *testing.T) {
	tests := []struct {
		name string
		a    Assessment
		body string
		opts []paper.Option
		want Rating
	}{
		{"passive heavy", &PassiveVoice{}, "The book was written. The car was stolen. She smiled.", nil, Bad},
		{"active", &PassiveVoice{}, "She wrote the book. He drove the car.", nil, Good},
		{"repeated beginnings", &ConsecutiveSentences{}, "The cat ran. The cat sat. The cat slept.", nil, Bad},
		{"varied beginnings", &ConsecutiveSentences{}, "Cats run. Dogs sit. Birds fly.", nil, Good},
		{"short text", &TextLength{}, "Too short.", nil, Bad},
		{"title start", &KeyphraseInTitle{}, "", []paper.Option{paper.WithKeyword("running shoes"), paper.WithTitle("Running shoes guide")}, Good},
		{"title missing keyphrase", &KeyphraseInTitle{}, "", []paper.Option{paper.WithKeyword("running shoes"), paper.WithTitle("Hiking boots")}, Bad},
		{"only function words", &FunctionWordsInKeyphrase{}, "", []paper.Option{paper.WithKeyword("on the")}, Bad},
		{"no outbound", &OutboundLinks{}, "<p>No links.</p>", nil, Bad},
		{"nofollow outbound", &OutboundLinks{}, `<a href="https://x.org" rel="nofollow">x</a>`, nil, OK},
		{"intro", &KeyphraseInIntroduction{}, "<p>Good running shoes help.</p>", []paper.Option{paper.WithKeyword("running shoes")}, Good},
		{"description", &MetaDescriptionKeyword{}, "", []paper.Option{paper.WithKeyword("running shoes"), paper.WithDescription("Buy running shoes.")}, Good},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newContext(t, "en", tt.body, tt.opts...)
			res := Run(ctx, []Assessment{tt.a})[0]
			if res.Rating != tt.want {
				t.Errorf("Rating = %q, want %q (%s)", res.Rating, tt.want, res.Message)
			}
		})
	}
}

func TestRussianReadability(t *testing.T) {
	ctx := newContext(t, "ru", "Дом был построен в прошлом году. Мы живём в нём.")
	results := Run(ctx, DefaultRegistry(nil).Assessments(false))

	fre := find(t, results, "flesch-reading-ease")
	if fre.Status != Scored || fre.Value == nil {
		t.Fatalf("flesch-reading-ease = %+v, want a scored value", fre)
	}
	pv := find(t, results, "passive-voice")
	if pv.Status != Scored || len(pv.Evidence) != 1 {
		t.Errorf("passive-voice = %+v, want one passive sentence", pv)
	}
}

func TestSwedishSkipsFlesch(t *testing.T) {
	ctx := newContext(t, "sv", "Katten sitter på mattan.")
	res := Run(ctx, []Assessment{&FleschReadingEase{}})[0]
	if res.Status != Skipped {
		t.Errorf("Status = %q, want skipped", res.Status)
	}
}

func TestRegistry(t *testing.T) {
	reg := DefaultRegistry(nil)
	if got := len(reg.Assessments(true)); got != 16 {
		t.Errorf("builtin assessments = %d, want 16", got)
	}
	if reg.Get("ai-clarity") != nil {
		t.Error("ai-clarity registered without a client")
	}

	sub, err := reg.Subset([]string{"text-length", "passive-voice"})
	if err != nil {
		t.Fatalf("Subset() error = %v", err)
	}
	if sub[0].Name() != "text-length" || sub[1].Name() != "passive-voice" {
		t.Errorf("Subset() order = %s, %s", sub[0].Name(), sub[1].Name())
	}
	if _, err := reg.Subset([]string{"nope"}); err == nil {
		t.Error("Subset(nope) should fail")
	}

	withAI := DefaultRegistry(&fakeClient{})
	if len(withAI.Assessments(false)) != 16 || len(withAI.Assessments(true)) != 17 {
		t.Error("ai-clarity should only be listed with includeAI")
	}
}

type fakeClient struct {
	response string
	err      error
	prompts  []string
}

func (c *fakeClient) Name() string { return "fake" }

func (c *fakeClient) Complete(_ context.Context, prompt string) (string, error) {
	c.prompts = append(c.prompts, prompt)
	return c.response, c.err
}

func TestAIClarity(t *testing.T) {
	client := &fakeClient{response: "```json\n" + `{"score": 7, "summary": "Mostly clear.", "issues": [{"sentence": "It was done.", "message": "unclear subject"}]}` + "\n```"}
	ctx := newContext(t, "en", "It was done. The team shipped the release.")

	res := Run(ctx, []Assessment{NewAIClarity(client)})[0]
	if res.Status != Scored || res.Score != 7 || res.Rating != OK {
		t.Errorf("got %+v, want scored 7/ok", res)
	}
	if len(res.Evidence) != 1 || res.Evidence[0].Sentence != "It was done." {
		t.Errorf("Evidence = %+v", res.Evidence)
	}
	if len(client.prompts) != 1 {
		t.Errorf("prompts = %d, want 1", len(client.prompts))
	}

	client.err = errors.New("rate limited")
	if res := Run(ctx, []Assessment{NewAIClarity(client)})[0]; res.Status != Failed {
		t.Errorf("Status = %q, want failed", res.Status)
	}
}
