package estimator

import "github.com/vk/xplatform-core/internal/estimate"

// Configuration is the abstract external collaborator the estimation
// substrate reads selectivity specifications and UDF-provided estimates
// from. It deliberately exposes only the two capabilities estimators need,
// not a general-purpose config-file reader.
type Configuration interface {
	// GetOptionalStringProperty returns the raw value of key and true if
	// present, or ("", false) if the key is absent.
	GetOptionalStringProperty(key string) (string, bool)
	// GetUDFSelectivityProvider returns the provider used to derive
	// estimates for user-defined-function predicates.
	GetUDFSelectivityProvider() UDFSelectivityProvider
}

// UDFSelectivityProvider derives a selectivity estimate for a
// user-defined-function predicate, identified by an opaque descriptor
// string the operator library assigns.
type UDFSelectivityProvider interface {
	ProvideFor(predicateDescriptor string) (estimate.PIE, error)
}

// MapConfiguration is a minimal in-memory Configuration, useful for tests
// and for hosts that already have their properties as a flat map. A nil
// Provider is replaced with NoUDFSelectivityProvider.
type MapConfiguration struct {
	Properties map[string]string
	Provider   UDFSelectivityProvider
}

// GetOptionalStringProperty implements Configuration.
func (c MapConfiguration) GetOptionalStringProperty(key string) (string, bool) {
	v, ok := c.Properties[key]
	return v, ok
}

// GetUDFSelectivityProvider implements Configuration.
func (c MapConfiguration) GetUDFSelectivityProvider() UDFSelectivityProvider {
	if c.Provider == nil {
		return NoUDFSelectivityProvider{}
	}
	return c.Provider
}

// NoUDFSelectivityProvider rejects every UDF predicate; it is the default
// when a host has not wired a real provider.
type NoUDFSelectivityProvider struct{}

// ProvideFor implements UDFSelectivityProvider by always failing.
func (NoUDFSelectivityProvider) ProvideFor(predicateDescriptor string) (estimate.PIE, error) {
	return estimate.PIE{}, &estimate.SpecificationError{
		Key: predicateDescriptor,
		Err: errNoUDFProvider,
	}
}

var errNoUDFProvider = errNoUDFProviderType{}

type errNoUDFProviderType struct{}

func (errNoUDFProviderType) Error() string {
	return "no UDF selectivity provider configured"
}
