package estimate

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SpecificationError reports that a selectivity specification string could
// not be parsed, either because its JSON was malformed or because it named
// an unrecognized type. The offending key is carried for diagnostics.
type SpecificationError struct {
	Key string
	Err error
}

func (e *SpecificationError) Error() string {
	return fmt.Sprintf("could not initialize estimate from specification %q: %v", e.Key, e.Err)
}

func (e *SpecificationError) Unwrap() error {
	return e.Err
}

type selectivitySpec struct {
	Type  string  `json:"type"`
	P     float64 `json:"p"`
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Coeff float64 `json:"coeff"`
}

// juelType is the only recognized specification type. The name is
// inherited from the expression-language marker the source format uses;
// nothing in this implementation depends on an expression evaluator.
const juelType = "juel"

// ParseSelectivitySpec decodes a selectivity specification, as documented
// in the external configuration format, into a PIE. key is the
// configuration key the raw string was read from, carried into any error
// and attached to the resulting estimate via WithKey.
func ParseSelectivitySpec(key, raw string) (PIE, error) {
	var spec selectivitySpec
	if err := json.Unmarshal([]byte(raw), &spec); err != nil {
		return PIE{}, &SpecificationError{Key: key, Err: err}
	}
	if spec.Type == "" {
		spec.Type = juelType
	}
	if !strings.EqualFold(spec.Type, juelType) {
		return PIE{}, &SpecificationError{Key: key, Err: fmt.Errorf("unknown specification type %q", spec.Type)}
	}
	return New(spec.Lower, spec.Upper, spec.P, WithKey(key), WithCoeff(spec.Coeff)), nil
}
