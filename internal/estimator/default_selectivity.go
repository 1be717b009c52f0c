package estimator

import (
	"context"

	"github.com/vk/xplatform-core/internal/estimate"
)

// DefaultSelectivityEstimator applies a fixed selectivity and confidence to
// a single input estimate: output = (lo*s, hi*s, c*inputP). The bounds are
// kept fractional; the output's LowerCount/UpperCount give floor(lo*s) and
// floor(hi*s).
// It is the baseline used when no specification was configured, e.g. the
// deduplication default of s=0.7, c=0.7.
type DefaultSelectivityEstimator struct {
	Selectivity float64
	Confidence  float64
}

// Kind identifies this estimator as KindDefaultSelectivity.
func (DefaultSelectivityEstimator) Kind() Kind { return KindDefaultSelectivity }

// Estimate implements Estimator for a single-input operator.
func (e DefaultSelectivityEstimator) Estimate(ctx context.Context, in []estimate.Cardinality) (estimate.Cardinality, error) {
	if len(in) != 1 {
		panic("estimator: DefaultSelectivityEstimator requires exactly one input estimate")
	}
	input := in[0]
	return estimate.NewCardinality(
		input.Lower*e.Selectivity,
		input.Upper*e.Selectivity,
		e.Confidence*input.P,
	), nil
}

// DeduplicationDefault is the baseline selectivity/confidence pair used
// when a deduplication operator has no configured specification.
func DeduplicationDefault() DefaultSelectivityEstimator {
	return DefaultSelectivityEstimator{Selectivity: 0.7, Confidence: 0.7}
}
