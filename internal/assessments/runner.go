package assessments

import (
	"fmt"
	"math"
)

// Run executes each assessment against ctx and returns one result per
// assessment, in the order given. Missing capabilities yield a skipped
// result, a missing keyphrase yields feedback, and an error or panic yields
// a failed result; none of these stop the remaining assessments.
func Run(ctx *Context, list []Assessment) []Result {
	results := make([]Result, 0, len(list))
	for _, a := range list {
		results = append(results, runOne(ctx, a))
	}
	return results
}

func runOne(ctx *Context, a Assessment) (res Result) {
	cfg := a.Config()
	base := Result{ID: a.Name(), Category: cfg.Category}

	if missing := ctx.Researcher.Missing(cfg.Requirements); len(missing) > 0 {
		base.Status = Skipped
		base.Missing = missing
		base.Message = fmt.Sprintf("Not applicable for language %q", ctx.Researcher.Language())
		return base
	}

	if cfg.RequiresKeyword && !ctx.Researcher.Paper().HasKeyword() {
		base.Status = Scored
		base.Rating = Feedback
		base.Message = "No focus keyphrase was set for this page. Set a keyphrase to calculate this score."
		return base
	}

	defer func() {
		if p := recover(); p != nil {
			res = failed(base, fmt.Errorf("panic: %v", p))
		}
	}()

	out, err := a.Run(ctx)
	if err != nil {
		return failed(base, err)
	}

	out.ID = base.ID
	out.Category = base.Category
	out.Status = Scored
	out.Score = max(0, min(MaxScore, out.Score))
	out.Rating = RatingFor(out.Score)
	return out
}

func failed(base Result, err error) Result {
	base.Status = Failed
	base.Message = err.Error()
	return base
}

// OverallScore combines the scored results of a category into a 0-100
// score: round(sum / (9 * n) * 100). Feedback results carry no points and
// are left out. It reports false when nothing in the category was scored.
func OverallScore(results []Result, category Category) (int, bool) {
	sum, n := 0, 0
	for _, r := range results {
		if r.Category != category || r.Status != Scored || r.Rating == Feedback {
			continue
		}
		sum += r.Score
		n++
	}
	if n == 0 {
		return 0, false
	}
	return int(math.Round(float64(sum) / float64(MaxScore*n) * 100)), true
}
