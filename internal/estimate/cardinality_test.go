package estimate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCardinalityCountsTruncateTowardZero(t *testing.T) {
	c := NewCardinality(300.7, 1000.9, 0.72)
	require.Equal(t, int64(300), c.LowerCount())
	require.Equal(t, int64(1000), c.UpperCount())
}

func TestTruncateTowardZero(t *testing.T) {
	require.Equal(t, int64(2), TruncateTowardZero(2.9))
	require.Equal(t, int64(0), TruncateTowardZero(0.9))
}
