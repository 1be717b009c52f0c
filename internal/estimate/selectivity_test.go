package estimate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSelectivitySpecJuel(t *testing.T) {
	pie, err := ParseSelectivitySpec("dedup.selectivity", `{"type":"juel","p":0.9,"lower":0.3,"upper":0.5,"coeff":0}`)
	require.NoError(t, err)
	require.Equal(t, 0.3, pie.Lower)
	require.Equal(t, 0.5, pie.Upper)
	require.Equal(t, 0.9, pie.P)
}

func TestParseSelectivitySpecTypeIsCaseInsensitive(t *testing.T) {
	pie, err := ParseSelectivitySpec("k", `{"type":"JUEL","p":0.9,"lower":0.3,"upper":0.5}`)
	require.NoError(t, err)
	require.Equal(t, 0.3, pie.Lower)
}

func TestParseSelectivitySpecDefaultsType(t *testing.T) {
	pie, err := ParseSelectivitySpec("k", `{"p":0.5,"lower":1,"upper":2}`)
	require.NoError(t, err)
	require.Equal(t, 0.5, pie.P)
}

func TestParseSelectivitySpecUnknownType(t *testing.T) {
	_, err := ParseSelectivitySpec("k", `{"type":"bogus"}`)
	require.Error(t, err)
	var specErr *SpecificationError
	require.ErrorAs(t, err, &specErr)
	require.Equal(t, "k", specErr.Key)
}

func TestParseSelectivitySpecMalformedJSON(t *testing.T) {
	_, err := ParseSelectivitySpec("k", `not json`)
	require.Error(t, err)
	var specErr *SpecificationError
	require.ErrorAs(t, err, &specErr)
}
