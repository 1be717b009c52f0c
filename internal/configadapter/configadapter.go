// Package configadapter is a reference estimator.Configuration backed by
// an HCL body, mirroring this codebase's existing hcl_adapter conversion
// helpers. It is glue/example code: the driver and estimator packages
// never import it directly, only the small Configuration interface they
// declare.
package configadapter

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/xplatform-core/internal/estimate"
	"github.com/vk/xplatform-core/internal/estimator"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Configuration decodes selectivity specifications and other string
// properties out of an hcl.Body, evaluated against ctx.
type Configuration struct {
	body        hcl.Body
	ctx         *hcl.EvalContext
	udfProvider estimator.UDFSelectivityProvider
}

// New returns a Configuration reading attributes off body, evaluated
// against ctx. A nil udfProvider falls back to
// estimator.NoUDFSelectivityProvider.
func New(body hcl.Body, ctx *hcl.EvalContext, udfProvider estimator.UDFSelectivityProvider) *Configuration {
	return &Configuration{body: body, ctx: ctx, udfProvider: udfProvider}
}

// GetOptionalStringProperty implements estimator.Configuration.
func (c *Configuration) GetOptionalStringProperty(key string) (string, bool) {
	attrs, diags := c.body.JustAttributes()
	if diags.HasErrors() {
		return "", false
	}
	attr, ok := attrs[key]
	if !ok {
		return "", false
	}
	val, diags := attr.Expr.Value(c.ctx)
	if diags.HasErrors() || val.IsNull() {
		return "", false
	}
	var s string
	if err := gocty.FromCtyValue(val, &s); err != nil {
		return "", false
	}
	return s, true
}

// GetUDFSelectivityProvider implements estimator.Configuration.
func (c *Configuration) GetUDFSelectivityProvider() estimator.UDFSelectivityProvider {
	if c.udfProvider == nil {
		return estimator.NoUDFSelectivityProvider{}
	}
	return c.udfProvider
}

// ToCtyValue converts a native Go value into its corresponding cty.Value,
// inferring the type via gocty, the same pattern this codebase's HCL
// adapter uses for converting step outputs. FunctionUDFProvider uses it
// to pass native Go arguments (e.g. an observed row count) into a UDF
// function's cty call.
func ToCtyValue(v any) (cty.Value, error) {
	if v == nil {
		return cty.NilVal, nil
	}
	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return cty.NilVal, fmt.Errorf("configadapter: unable to infer cty.Type: %w", err)
	}
	return gocty.ToCtyValue(v, ty)
}

// FunctionUDFProvider evaluates a named cty function from ctx's function
// table for each UDF predicate descriptor, treating the function name as
// the descriptor and its result as a three-element tuple
// (lower, upper, p). Args are native Go values, converted to cty.Value via
// ToCtyValue and passed to the function call in order.
type FunctionUDFProvider struct {
	ctx  *hcl.EvalContext
	args []any
}

// NewFunctionUDFProvider returns a provider evaluating functions in ctx,
// calling each with args converted to cty.Value.
func NewFunctionUDFProvider(ctx *hcl.EvalContext, args ...any) FunctionUDFProvider {
	return FunctionUDFProvider{ctx: ctx, args: args}
}

// ProvideFor implements estimator.UDFSelectivityProvider.
func (p FunctionUDFProvider) ProvideFor(predicateDescriptor string) (estimate.PIE, error) {
	fn, ok := p.ctx.Functions[predicateDescriptor]
	if !ok {
		return estimate.PIE{}, &estimate.SpecificationError{
			Key: predicateDescriptor,
			Err: fmt.Errorf("no UDF function registered for descriptor %q", predicateDescriptor),
		}
	}
	argVals := make([]cty.Value, len(p.args))
	for i, a := range p.args {
		v, err := ToCtyValue(a)
		if err != nil {
			return estimate.PIE{}, &estimate.SpecificationError{Key: predicateDescriptor, Err: err}
		}
		argVals[i] = v
	}
	result, err := fn.Call(argVals)
	if err != nil {
		return estimate.PIE{}, &estimate.SpecificationError{Key: predicateDescriptor, Err: err}
	}
	if result.LengthInt() != 3 {
		return estimate.PIE{}, &estimate.SpecificationError{
			Key: predicateDescriptor,
			Err: fmt.Errorf("UDF result must be a 3-element tuple (lower, upper, p), got length %d", result.LengthInt()),
		}
	}
	var lower, upper, prob float64
	elems := result.AsValueSlice()
	if err := gocty.FromCtyValue(elems[0], &lower); err != nil {
		return estimate.PIE{}, &estimate.SpecificationError{Key: predicateDescriptor, Err: err}
	}
	if err := gocty.FromCtyValue(elems[1], &upper); err != nil {
		return estimate.PIE{}, &estimate.SpecificationError{Key: predicateDescriptor, Err: err}
	}
	if err := gocty.FromCtyValue(elems[2], &prob); err != nil {
		return estimate.PIE{}, &estimate.SpecificationError{Key: predicateDescriptor, Err: err}
	}
	return estimate.New(lower, upper, prob, estimate.WithKey(predicateDescriptor)), nil
}
