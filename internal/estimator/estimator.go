// Package estimator implements operator-level cardinality estimation: the
// per-operator factories that, given a configuration, produce an Estimator
// capable of turning input cardinality estimates into an output estimate.
package estimator

import (
	"context"

	"github.com/vk/xplatform-core/internal/estimate"
)

// Kind tags the variant of an Estimator so callers can introspect without
// a dynamic type switch.
type Kind int

const (
	KindDefaultSelectivity Kind = iota
	KindCoefficientAware
	KindCustom
)

// Estimator turns a set of input cardinality estimates into an output
// cardinality estimate for one operator.
type Estimator interface {
	Kind() Kind
	Estimate(ctx context.Context, in []estimate.Cardinality) (estimate.Cardinality, error)
}

// Operator is the external contract an operator implementation exposes to
// the estimation substrate. NumInputs/NumOutputs bound the output index a
// Factory is asked for and the estimates Estimate is allowed to see.
type Operator interface {
	NumInputs() int
	NumOutputs() int
}

// Factory builds an Estimator for one output of one operator, given a
// configuration to read selectivity specifications from. The bool return
// mirrors an optional: false means no estimator could be built (the
// specification was absent), and callers should fall back to a default.
type Factory func(outputIndex int, cfg Configuration) (Estimator, bool)

// ValidateInputCount is a programmer-error assertion: the number of
// estimates passed to Estimate must match the operator's declared input
// count. It panics, since a mismatch indicates a corrupt plan rather than
// a recoverable runtime condition.
func ValidateInputCount(op Operator, in []estimate.Cardinality) {
	if len(in) != op.NumInputs() {
		panic("estimator: input estimate count does not match operator.NumInputs()")
	}
}
