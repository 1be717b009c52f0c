package stage

import (
	"context"

	"github.com/vk/xplatform-core/internal/xstate"
)

// Job is an opaque handle describing the run an executor is being created
// for. Platforms are free to assert it to whatever concrete type their
// ExecutorFactory expects; the driver never inspects it.
type Job any

// ExecutorFactory creates the single Executor that will serve every stage
// in one platform execution group. Create is called at most once per group
// per run, lazily, on the group's first actually-executing stage.
type ExecutorFactory interface {
	Create(job Job) (Executor, error)
}

// Executor is a platform-specific worker bound to one platform execution.
// Execute runs a single stage against the accumulated execution state and
// returns the state produced by that stage, to be merged into the running
// total. Dispose releases any resources the executor is holding and is
// called exactly once, after the group's last member stage completes.
type Executor interface {
	Execute(ctx context.Context, s *Stage, in xstate.State) (xstate.State, error)
	Dispose() error
}
