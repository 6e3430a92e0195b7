package analysis

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/pthm/contentlint/internal/paper"
)

// AnalyzeBatch analyzes papers on up to workers goroutines and returns the
// reports in input order. workers <= 0 uses GOMAXPROCS. The context is
// checked before each paper; an analysis in progress is never interrupted.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, papers []*paper.Paper, tag string, workers int) ([]*Report, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	reports := make([]*Report, len(papers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, p := range papers {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rep := a.AnalyzePaper(gctx, p, tag)
			reports[i] = rep
			if a.onReport != nil {
				a.onReport(rep)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return reports, nil
}
