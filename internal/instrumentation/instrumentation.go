// Package instrumentation lets a host mark channels for measurement before
// a stage actually executes.
package instrumentation

import "github.com/vk/xplatform-core/internal/stage"

// Strategy is applied once before each actual (non-fast-forward) execution
// of a stage.
type Strategy interface {
	ApplyTo(s *stage.Stage)
}

// NoOp is the default strategy: it does nothing. Hosts that do not need
// runtime measurement pass this to the driver.
type NoOp struct{}

// ApplyTo satisfies Strategy by doing nothing.
func (NoOp) ApplyTo(*stage.Stage) {}
