package driver

import (
	"sync"

	"github.com/vk/xplatform-core/internal/stage"
)

// executorTable tracks the single live executor per platform execution
// group, lazily created and disposed exactly once when the group's last
// member stage is dispatched. It mirrors the resource lifecycle pattern
// used elsewhere in this codebase: a creation on first use, a descendant
// counter, and a dispose guarded against running twice.
type executorTable struct {
	mu          sync.Mutex
	executors   map[stage.GroupID]stage.Executor
	remaining   map[stage.GroupID]int
	initialized map[stage.GroupID]bool
	disposed    map[stage.GroupID]bool
}

func newExecutorTable() *executorTable {
	return &executorTable{
		executors:   map[stage.GroupID]stage.Executor{},
		remaining:   map[stage.GroupID]int{},
		initialized: map[stage.GroupID]bool{},
		disposed:    map[stage.GroupID]bool{},
	}
}

// getOrCreate returns the executor for group, creating it via factory if
// this is the group's first actually-executing stage.
func (t *executorTable) getOrCreate(job stage.Job, group stage.GroupID, factory stage.ExecutorFactory) (stage.Executor, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if ex, ok := t.executors[group]; ok {
		return ex, nil
	}
	ex, err := factory.Create(job)
	if err != nil {
		return nil, err
	}
	t.executors[group] = ex
	return ex, nil
}

// recordDispatch accounts for one more stage of group having actually
// executed. Fast-forwarded stages are not recorded again, since each was
// already counted by the call that executed it. When every member stage
// has been accounted for, the group's executor, if any was created, is
// disposed exactly once.
func (t *executorTable) recordDispatch(group stage.GroupID, groupSize int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized[group] {
		t.remaining[group] = groupSize
		t.initialized[group] = true
	}
	t.remaining[group]--

	if t.remaining[group] > 0 || t.disposed[group] {
		return nil
	}
	return t.disposeLocked(group)
}

// shutdown disposes every executor still alive, regardless of whether its
// group ever reached its full dispatch count.
func (t *executorTable) shutdown() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var firstErr error
	for group := range t.executors {
		if t.disposed[group] {
			continue
		}
		if err := t.disposeLocked(group); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (t *executorTable) disposeLocked(group stage.GroupID) error {
	t.disposed[group] = true
	ex, ok := t.executors[group]
	if !ok {
		return nil
	}
	delete(t.executors, group)
	return ex.Dispose()
}
