// Package localplatform is a reference, in-process platform used by tests
// and examples. It demonstrates that a platform may parallelize its own
// internal work across goroutines even though the driver itself never
// dispatches more than one stage at a time.
package localplatform

import (
	"context"
	"fmt"

	"github.com/vk/xplatform-core/internal/stage"
	"github.com/vk/xplatform-core/internal/xstate"
)

// Handler runs one stage's work for a local execution. It receives the
// accumulated execution state and returns the state this stage produced.
type Handler func(ctx context.Context, s *stage.Stage, in xstate.State) (xstate.State, error)

// Job is the local platform's job handle: a table of handlers keyed by
// stage description, looked up each time the executor runs a stage.
type Job struct {
	Handlers map[string]Handler
}

// Factory creates Executors for local jobs.
type Factory struct{}

// Create implements stage.ExecutorFactory.
func (Factory) Create(job stage.Job) (stage.Executor, error) {
	j, ok := job.(Job)
	if !ok {
		return nil, fmt.Errorf("localplatform: job must be a localplatform.Job, got %T", job)
	}
	return &Executor{job: j}, nil
}

// Executor dispatches each stage to its registered Handler.
type Executor struct {
	job      Job
	disposed bool
}

// Execute implements stage.Executor.
func (e *Executor) Execute(ctx context.Context, s *stage.Stage, in xstate.State) (xstate.State, error) {
	h, ok := e.job.Handlers[s.Description()]
	if !ok {
		return xstate.State{}, fmt.Errorf("localplatform: no handler registered for stage %q", s.Description())
	}
	return h(ctx, s, in)
}

// Dispose implements stage.Executor.
func (e *Executor) Dispose() error {
	e.disposed = true
	return nil
}
