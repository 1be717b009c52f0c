// Package driver implements the single-threaded cooperative scheduler
// that walks an execution plan stage by stage, honoring breakpoints,
// managing platform executor lifecycles, and accumulating execution
// state across one or more calls to ExecuteUntilBreakpoint.
package driver

import (
	"context"
	"time"

	"github.com/vk/xplatform-core/internal/breakpoint"
	"github.com/vk/xplatform-core/internal/ctxlog"
	"github.com/vk/xplatform-core/internal/instrumentation"
	"github.com/vk/xplatform-core/internal/stage"
	"github.com/vk/xplatform-core/internal/xstate"
)

// Driver is the cross-platform scheduler. It owns an execution-status map
// keyed by stage id rather than mutating plan-owned stages, per the
// separation of immutable topology from mutable run state used throughout
// this codebase's store/graph packages.
type Driver struct {
	job             stage.Job
	instrumentation instrumentation.Strategy

	conjunction *breakpoint.Conjunction
	executors   *executorTable

	executedStatus map[stage.ID]bool
	suspended      map[stage.ID]struct{}

	state xstate.State

	// plan is the most recent plan passed to ExecuteUntilBreakpoint, kept
	// only so CaptureState can resolve suspended ids back to *stage.Stage
	// for diagnostics. It is never mutated.
	plan *stage.Plan
}

// New returns a driver for job, applying strategy before each actual
// (non-fast-forward) stage execution.
func New(job stage.Job, strategy instrumentation.Strategy) *Driver {
	if strategy == nil {
		strategy = instrumentation.NoOp{}
	}
	return &Driver{
		job:             job,
		instrumentation: strategy,
		conjunction:     breakpoint.New(),
		executors:       newExecutorTable(),
		executedStatus:  map[stage.ID]bool{},
		suspended:       map[stage.ID]struct{}{},
		state:           xstate.New(),
	}
}

// ExtendBreakpoint appends clause to the conjunction that will gate the
// next call to ExecuteUntilBreakpoint. The conjunction is cleared again
// once that call returns, so breakpoints are per-invocation gates, not
// sticky state.
func (d *Driver) ExtendBreakpoint(clause breakpoint.Clause) {
	d.conjunction.Extend(clause)
}

// Shutdown disposes every executor the driver still holds live, including
// ones whose group never reached its full dispatch count.
func (d *Driver) Shutdown() error {
	return d.executors.shutdown()
}

// CaptureState returns a snapshot of the driver's current progress: a deep
// copy of the accumulated execution state, plus the stages completed and
// suspended so far.
func (d *Driver) CaptureState() Snapshot {
	return d.snapshot()
}

func (d *Driver) snapshot() Snapshot {
	completed := make(map[stage.ID]struct{}, len(d.executedStatus))
	for id, done := range d.executedStatus {
		if done {
			completed[id] = struct{}{}
		}
	}
	suspended := make(map[stage.ID]struct{}, len(d.suspended))
	for id := range d.suspended {
		suspended[id] = struct{}{}
	}
	var diagnostics []string
	if d.plan != nil {
		for id := range d.suspended {
			diagnostics = append(diagnostics, d.plan.Stage(id).ToExtensiveString())
		}
	}
	return Snapshot{
		State:       d.state.Copy(),
		Completed:   completed,
		Suspended:   suspended,
		Diagnostics: diagnostics,
	}
}

// ExecuteUntilBreakpoint runs plan forward from its starting stages,
// fast-forwarding any stage the driver has already dispatched in a
// previous call, until either the activated queue is exhausted or a
// breakpoint clause suspends the remaining work. It returns a snapshot of
// the resulting state.
func (d *Driver) ExecuteUntilBreakpoint(ctx context.Context, plan *stage.Plan) (Snapshot, error) {
	start := time.Now()
	logger := ctxlog.FromContext(ctx)
	d.plan = plan

	totalDispatched, err := d.runPasses(ctx, plan, logger)

	elapsed := time.Since(start)
	d.state = d.state.WithTiming("__scheduler.elapsed_ms", elapsed)

	d.conjunction = breakpoint.New()

	if err != nil {
		return d.snapshot(), err
	}

	logger.Info("scheduler pass complete",
		"dispatched", totalDispatched,
		"suspended", len(d.suspended),
		"elapsed", elapsed)

	if totalDispatched == 0 {
		return d.snapshot(), &PlanError{Message: "could not execute a single stage"}
	}

	return d.snapshot(), nil
}

// runPasses implements the per-pass algorithm described by the scheduler
// design: drain the activated queue, suspend anything a breakpoint
// denies, and when an entire pass suspends everything without the call
// having made any progress at all, disable breakpoints for the remainder
// of this call and retry. Once any stage has been dispatched during this
// call, a pass that suspends the rest of the work simply ends the call
// (the remaining stages stay suspended; that is ordinary breakpoint
// gating, not a live-lock). This is a deliberate reading of "disable
// breakpoints for one pass": disabling them for a single drain-to-empty
// sweep, rather than re-enabling and re-suspending each freshly activated
// successor one at a time, is what lets a whole blocked chain escape the
// live-lock in one recovery rather than one stage per call.
func (d *Driver) runPasses(ctx context.Context, plan *stage.Plan, logger interface {
	Warn(msg string, args ...any)
}) (int, error) {
	activated := stageIDs(plan.StartingStages())
	predecessorCounter := map[stage.ID]int{}
	totalDispatched := 0
	breakpointsDisabled := false

	for len(activated) > 0 {
		dispatchedThisPass := 0
		var newlyActivated []stage.ID

		for len(activated) > 0 {
			id := activated[0]
			activated = activated[1:]
			s := plan.Stage(id)

			if !d.executedStatus[id] && !breakpointsDisabled && !d.conjunction.Permits(s) {
				d.suspended[id] = struct{}{}
				continue
			}

			delete(d.suspended, id)
			dispatchedThisPass++
			totalDispatched++

			if !d.executedStatus[id] {
				if err := d.dispatchActual(ctx, plan, s); err != nil {
					return totalDispatched, err
				}
				d.executedStatus[id] = true

				if err := d.executors.recordDispatch(s.Group(), len(plan.Group(s.Group()).Stages())); err != nil {
					return totalDispatched, &ExecutorError{StageDescription: s.Description(), Err: err}
				}
			}

			for _, succID := range s.Successors() {
				succStage := plan.Stage(succID)
				predecessorCounter[succID]++
				if predecessorCounter[succID] > len(succStage.Predecessors()) {
					return totalDispatched, assertOrPanic(&ErrCorruptPlan{StageDescription: succStage.Description()})
				}
				if predecessorCounter[succID] == len(succStage.Predecessors()) {
					newlyActivated = append(newlyActivated, succID)
					delete(predecessorCounter, succID)
				}
			}
		}

		if dispatchedThisPass == 0 {
			if totalDispatched == 0 && len(d.suspended) > 0 {
				stuck := make([]string, 0, len(d.suspended))
				for id := range d.suspended {
					stuck = append(stuck, plan.Stage(id).ToExtensiveString())
				}
				logger.Warn("breakpoint live-lock detected, disabling breakpoints for the rest of this call",
					"stages", stuck)
				breakpointsDisabled = true
				for id := range d.suspended {
					activated = append(activated, id)
				}
				d.suspended = map[stage.ID]struct{}{}
				continue
			}
			break
		}

		activated = newlyActivated
	}

	return totalDispatched, nil
}

// dispatchActual runs a stage that has never been dispatched before:
// applies instrumentation, obtains the group's executor, executes, and
// merges the resulting state.
func (d *Driver) dispatchActual(ctx context.Context, plan *stage.Plan, s *stage.Stage) error {
	d.instrumentation.ApplyTo(s)

	group := plan.Group(s.Group())
	executor, err := d.executors.getOrCreate(d.job, s.Group(), group.Platform().ExecutorFactory)
	if err != nil {
		return &ExecutorError{StageDescription: s.Description(), Err: err}
	}

	out, err := executor.Execute(ctx, s, d.state)
	if err != nil {
		return &ExecutorError{StageDescription: s.Description(), Err: err}
	}
	d.state = d.state.Merge(out)
	return nil
}

func stageIDs(stages []*stage.Stage) []stage.ID {
	ids := make([]stage.ID, len(stages))
	for i, s := range stages {
		ids[i] = s.ID()
	}
	return ids
}
