package cli

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dunkelmpl/textjustification/justify"
)

// justifyAll justifies each paragraph independently, at most workers at a
// time, and returns the results in input order. The first failure cancels
// the paragraphs that have not started yet.
func justifyAll(ctx context.Context, paragraphs [][]string, width, workers int, opts ...justify.Option) ([]justify.Result, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]justify.Result, len(paragraphs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range paragraphs {
		i := i
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			res, err := justify.Solve(paragraphs[i], width, opts...)
			if err != nil {
				return fmt.Errorf("paragraph %d: %w", i+1, err)
			}
			// Each goroutine owns results[i].
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
