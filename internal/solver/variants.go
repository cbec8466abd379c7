package solver

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack-ev/internal/rules"
)

// SolveVariants solves several rule sets concurrently. Each solve is
// independent, so the results are identical to solving them one at a time.
// Results are returned in the order of variants.
func SolveVariants(ctx context.Context, variants []rules.Rules, opts ...Option) ([]*Result, error) {
	results := make([]*Result, len(variants))
	g, ctx := errgroup.WithContext(ctx)

	for i, r := range variants {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := New(r, opts...).Solve()
			if err != nil {
				return fmt.Errorf("variant %d (%s): %w", i, r.Name(), err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
