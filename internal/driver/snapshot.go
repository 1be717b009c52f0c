package driver

import (
	"github.com/vk/xplatform-core/internal/stage"
	"github.com/vk/xplatform-core/internal/xstate"
)

// Snapshot is an immutable, independently-copyable view of a driver's
// progress at some point in time.
type Snapshot struct {
	State     xstate.State
	Completed map[stage.ID]struct{}
	Suspended map[stage.ID]struct{}

	// Diagnostics holds stage.Stage.ToExtensiveString() for every
	// currently suspended stage, in no particular order (it is built by
	// iterating a map). Tests and operators grep these lines
	// rather than reconstructing them from raw ids.
	Diagnostics []string
}

// IsComplete reports whether every stage the driver has touched has
// resolved: no stage remains suspended.
func (s Snapshot) IsComplete() bool {
	return len(s.Suspended) == 0
}
