package assessments

import (
	"encoding/json"
	"fmt"

	"github.com/pthm/contentlint/internal/llm"
	"github.com/pthm/contentlint/internal/research"
)

// maxPromptText caps the page text sent to the model, in bytes.
const maxPromptText = 8000

// AIClarity asks a model to review the text for unclear sentences.
type AIClarity struct {
	client llm.Client
}

// NewAIClarity returns nil when client is nil.
func NewAIClarity(client llm.Client) *AIClarity {
	if client == nil {
		return nil
	}
	return &AIClarity{client: client}
}

func (a *AIClarity) Name() string { return "ai-clarity" }

func (a *AIClarity) Description() string {
	return "Uses AI to find unclear, ambiguous or hard to follow sentences"
}

func (a *AIClarity) Config() AssessmentConfig {
	return AssessmentConfig{Category: AI, RequiresAI: true}
}

type clarityVerdict struct {
	Score  int `json:"score"`
	Issues []struct {
		Sentence   string `json:"sentence"`
		Message    string `json:"message"`
		Suggestion string `json:"suggestion,omitempty"`
	} `json:"issues"`
	Summary string `json:"summary"`
}

func (a *AIClarity) Run(ctx *Context) (Result, error) {
	if a == nil || a.client == nil {
		return Result{}, fmt.Errorf("ai review not initialized")
	}
	body := research.Plain(ctx.Researcher)
	if body == "" {
		return Result{Message: "Add some text for the AI review."}, nil
	}

	prompt := fmt.Sprintf(`Review the following web page text for CLARITY.

Language: %s
Focus keyphrase: %s

Text:
%s

Identify sentences a reader would struggle with:
1. Ambiguous wording or unclear references
2. Jargon that is not explained
3. Sentences that pack several ideas together
4. Statements that can be read in more than one way

Return ONLY valid JSON with this structure:
{
  "score": 0-9,
  "summary": "one sentence overall verdict",
  "issues": [
    {
      "sentence": "the exact sentence from the text",
      "message": "what is unclear",
      "suggestion": "a clearer rewrite"
    }
  ]
}

A score of 9 means perfectly clear text, 1 means very hard to follow.
Return ONLY valid JSON, no markdown, no explanatory text.`,
		ctx.Researcher.Language(),
		ctx.Researcher.Paper().Keyword(),
		llm.Truncate(body, maxPromptText))

	responseText, err := a.client.Complete(ctx.Context, prompt)
	if err != nil {
		return Result{}, err
	}

	jsonStr := llm.ExtractJSON(responseText)
	var verdict clarityVerdict
	if err := json.Unmarshal([]byte(jsonStr), &verdict); err != nil {
		return Result{}, fmt.Errorf("failed to parse response: %w (response: %s)", err, llm.Truncate(jsonStr, 200))
	}

	out := Result{
		Score:   max(1, min(MaxScore, verdict.Score)),
		Message: verdict.Summary,
	}
	if out.Message == "" {
		out.Message = fmt.Sprintf("The AI review found %d unclear sentences.", len(verdict.Issues))
	}
	for _, issue := range verdict.Issues {
		msg := issue.Message
		if issue.Suggestion != "" {
			msg = fmt.Sprintf("%s (Suggestion: %s)", issue.Message, issue.Suggestion)
		}
		out.Evidence = append(out.Evidence, Evidence{Text: msg, Sentence: issue.Sentence})
	}
	return out, nil
}
