package edge

import (
	"context"

	"github.com/lox/blackjack-ev/internal/rules"
	"github.com/lox/blackjack-ev/internal/solver"
)

// Variant is the outcome of solving one rule set.
type Variant struct {
	Rules  rules.Rules
	Result *solver.Result
	Report Report
}

// Compare solves every rule set concurrently and reports each one's
// expected value, in the order given.
func Compare(ctx context.Context, variants []rules.Rules, opts ...solver.Option) ([]Variant, error) {
	results, err := solver.SolveVariants(ctx, variants, opts...)
	if err != nil {
		return nil, err
	}

	out := make([]Variant, len(results))
	for i, res := range results {
		out[i] = Variant{Rules: res.Rules, Result: res, Report: Compute(res)}
	}
	return out, nil
}
