package estimator

import (
	"context"

	"github.com/vk/xplatform-core/internal/estimate"
)

// CoefficientAwareEstimator derives an output cardinality from a
// selectivity PIE carrying an optional growth coefficient. When Coeff is
// zero it behaves as plain multiplicative selectivity. When Coeff is
// non-zero, each bound instead grows with the square of the matching
// input bound (lo·coeff·lo, hi·coeff·hi), modeling operators (e.g.
// certain join or dedup shapes) whose cost scales worse than linearly
// with input size.
type CoefficientAwareEstimator struct {
	Selectivity estimate.PIE
}

// Kind identifies this estimator as KindCoefficientAware.
func (CoefficientAwareEstimator) Kind() Kind { return KindCoefficientAware }

// Estimate implements Estimator for a single-input operator.
func (e CoefficientAwareEstimator) Estimate(ctx context.Context, in []estimate.Cardinality) (estimate.Cardinality, error) {
	if len(in) != 1 {
		panic("estimator: CoefficientAwareEstimator requires exactly one input estimate")
	}
	input := in[0]
	sel := e.Selectivity

	var lower, upper float64
	if sel.Coeff == 0 {
		lower = input.Lower * sel.Lower
		upper = input.Upper * sel.Upper
	} else {
		lower = input.Lower * sel.Coeff * input.Lower
		upper = input.Upper * sel.Coeff * input.Upper
	}

	return estimate.NewCardinality(lower, upper, input.P*sel.P), nil
}
