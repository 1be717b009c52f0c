// Package estimate implements the probabilistic interval estimate (PIE)
// algebra used to reason about cardinalities and timings before and after
// a stage has actually run.
package estimate

import (
	"fmt"
	"math"
)

// PIE is a probabilistic interval estimate: a claim that the true value of
// some quantity lies in [Lower, Upper] with subjective probability P.
// Lower and Upper are float64 so the same type can represent either a
// fractional selectivity ratio or (after rounding at the specialization
// boundary) an integer count or duration.
//
// Coeff and Key are carried through for selectivity specifications (see
// ParseSelectivitySpec) and are otherwise zero-valued.
type PIE struct {
	Lower, Upper float64
	P            float64
	Coeff        float64
	Key          string
	Override     bool
}

// Option configures a PIE at construction time, replacing the source
// material's several overlapping constructors with one builder.
type Option func(*PIE)

// WithOverride marks the estimate as one that should win when merging with
// a non-override estimate for the same quantity.
func WithOverride() Option {
	return func(p *PIE) { p.Override = true }
}

// WithKey attaches the configuration key string this estimate was derived
// from, for diagnostics.
func WithKey(key string) Option {
	return func(p *PIE) { p.Key = key }
}

// WithCoeff attaches a selectivity growth coefficient.
func WithCoeff(coeff float64) Option {
	return func(p *PIE) { p.Coeff = coeff }
}

// New builds a PIE from its three defining fields plus any options.
func New(lower, upper, p float64, opts ...Option) PIE {
	e := PIE{Lower: lower, Upper: upper, P: p}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Exact builds a fully-certain point estimate: lower == upper == v, p == 1.
func Exact(v float64) PIE {
	return PIE{Lower: v, Upper: v, P: 1}
}

// Plus adds two estimates. The resulting interval is the sum of the two
// intervals; the resulting probability is the weaker (smaller) of the two,
// since a sum of independent estimates can never be more certain than its
// least certain operand.
func (e PIE) Plus(other PIE) PIE {
	return PIE{
		Lower: e.Lower + other.Lower,
		Upper: e.Upper + other.Upper,
		P:     math.Min(e.P, other.P),
	}
}

// PlusScalar shifts the interval by a constant, leaving P unchanged.
func (e PIE) PlusScalar(k float64) PIE {
	return PIE{Lower: e.Lower + k, Upper: e.Upper + k, P: e.P}
}

// Times scales the interval by a constant factor. A scalar of exactly 1
// returns e unchanged, avoiding pointless floating-point noise on the
// common identity case.
func (e PIE) Times(scalar float64) PIE {
	if scalar == 1 {
		return e
	}
	return PIE{
		Lower: e.Lower * scalar,
		Upper: e.Upper * scalar,
		P:     e.P,
	}
}

// IsExactly reports whether this estimate is a fully-certain point estimate
// equal to v.
func (e PIE) IsExactly(v float64) bool {
	return e.P == 1 && e.Lower == v && e.Upper == v
}

// Average returns the midpoint of the interval.
func (e PIE) Average() float64 {
	return (e.Lower + e.Upper) / 2
}

// GeometricMean returns round(sqrt(lower*upper)), the quantity the
// expectation-value comparator ranks on. Rounding to a whole unit before
// comparing means two estimates whose geometric means differ only in the
// fractional part compare as equal, matching the rounded definition of
// this derived quantity.
func (e PIE) GeometricMean() float64 {
	return math.Round(math.Sqrt(e.Lower * e.Upper))
}

// Equals compares the three defining fields structurally. Key, Coeff and
// Override are metadata, not part of the estimate's identity.
func (e PIE) Equals(other PIE) bool {
	return e.Lower == other.Lower && e.Upper == other.Upper && e.P == other.P
}

// EqualsWithinDelta compares the three defining fields with a separate
// tolerance per field, since they live on different natural scales.
func (e PIE) EqualsWithinDelta(other PIE, deltaLower, deltaUpper, deltaP float64) bool {
	return math.Abs(e.Lower-other.Lower) <= deltaLower &&
		math.Abs(e.Upper-other.Upper) <= deltaUpper &&
		math.Abs(e.P-other.P) <= deltaP
}

// String renders a generic interval as "(lo..hi ~ pp.p%)".
func (e PIE) String() string {
	return fmt.Sprintf("(%g..%g ~ %.1f%%)", e.Lower, e.Upper, e.P*100)
}

// RoundHalfUp rounds v to the nearest integer, ties toward positive
// infinity (floor(v + 0.5)). It is
// exported so TimeEstimate can round milliseconds at its own accessor
// boundary.
func RoundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}

// TruncateTowardZero truncates v toward zero, the element-count rounding
// rule Cardinality uses at its accessor boundary (⌊lo·s⌋ for a
// non-negative count).
func TruncateTowardZero(v float64) int64 {
	return int64(v)
}
