package estimate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComparatorUninformativeIsWorst(t *testing.T) {
	a := New(100, 200, 0.9)
	b := New(1000, 1000, 0)
	require.Negative(t, ExpectationValueComparator(a, b))
	require.Positive(t, ExpectationValueComparator(b, a))
}

func TestComparatorBothUninformativeIsEqual(t *testing.T) {
	a := New(0, 0, 0)
	b := New(0, 0, 0)
	require.Zero(t, ExpectationValueComparator(a, b))
}

func TestComparatorGeometricMeanTie(t *testing.T) {
	a := New(100, 400, 0.5)
	b := New(200, 200, 0.5)
	require.Zero(t, ExpectationValueComparator(a, b))
}

func TestComparatorRoundsGeometricMeanBeforeComparing(t *testing.T) {
	// sqrt(100*400.8) ≈ 200.2, sqrt(100*401.6) ≈ 200.4; both round to 200.
	a := New(100, 400.8, 0.5)
	b := New(100, 401.6, 0.5)
	require.Zero(t, ExpectationValueComparator(a, b))
}

func TestComparatorIsTransitive(t *testing.T) {
	a := New(1, 2, 0.9)
	b := New(10, 20, 0.9)
	c := New(100, 200, 0.9)
	require.Negative(t, ExpectationValueComparator(a, b))
	require.Negative(t, ExpectationValueComparator(b, c))
	require.Negative(t, ExpectationValueComparator(a, c))
}
