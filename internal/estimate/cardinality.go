package estimate

// Cardinality specializes PIE to a non-negative element-count quantity.
type Cardinality struct {
	PIE
}

// NewCardinality builds a Cardinality estimate from integer-valued bounds.
func NewCardinality(lower, upper, p float64, opts ...Option) Cardinality {
	return Cardinality{PIE: New(lower, upper, p, opts...)}
}

// ExactCardinality builds a fully-certain cardinality of v elements.
func ExactCardinality(v float64) Cardinality {
	return Cardinality{PIE: Exact(v)}
}

// LowerCount truncates the lower bound to a whole element count.
func (c Cardinality) LowerCount() int64 { return TruncateTowardZero(c.Lower) }

// UpperCount truncates the upper bound to a whole element count.
func (c Cardinality) UpperCount() int64 { return TruncateTowardZero(c.Upper) }

// Plus adds two cardinality estimates.
func (c Cardinality) Plus(other Cardinality) Cardinality {
	return Cardinality{PIE: c.PIE.Plus(other.PIE)}
}

// Times scales a cardinality estimate by a selectivity-like factor.
func (c Cardinality) Times(scalar float64) Cardinality {
	return Cardinality{PIE: c.PIE.Times(scalar)}
}
