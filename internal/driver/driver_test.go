package driver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/xplatform-core/internal/breakpoint"
	"github.com/vk/xplatform-core/internal/ctxlog"
	"github.com/vk/xplatform-core/internal/driver"
	"github.com/vk/xplatform-core/internal/stage"
	"github.com/vk/xplatform-core/internal/xstate"
	"github.com/vk/xplatform-core/internal/xtestutil"
)

type fakeExecutor struct {
	executed *[]string
	disposed *int
	failOn   map[string]bool
}

func (f *fakeExecutor) Execute(ctx context.Context, s *stage.Stage, in xstate.State) (xstate.State, error) {
	*f.executed = append(*f.executed, s.Description())
	if f.failOn[s.Description()] {
		return xstate.State{}, errBoom
	}
	return xstate.New().WithCardinality(s.Description(), 1), nil
}

func (f *fakeExecutor) Dispose() error {
	*f.disposed++
	return nil
}

type fakeFactory struct {
	created  *int
	executor *fakeExecutor
}

func (f *fakeFactory) Create(job stage.Job) (stage.Executor, error) {
	*f.created++
	return f.executor, nil
}

var errBoom = &boomError{}

type boomError struct{}

func (*boomError) Error() string { return "boom" }

func newFixture() (*stage.Builder, *fakeExecutor, *fakeFactory, stage.Platform) {
	executed := []string{}
	disposed := 0
	ex := &fakeExecutor{executed: &executed, disposed: &disposed, failOn: map[string]bool{}}
	created := 0
	factory := &fakeFactory{created: &created, executor: ex}
	platform := stage.Platform{Name: "local", ExecutorFactory: factory}
	return stage.NewBuilder(), ex, factory, platform
}

func TestLinearChain(t *testing.T) {
	b, ex, _, platform := newFixture()
	g := b.AddGroup(platform)
	a := b.AddStage("A", g)
	bID := b.AddStage("B", g, a)
	b.AddStage("C", g, bID)
	plan := b.Build()

	d := driver.New(nil, nil)
	snap, err := d.ExecuteUntilBreakpoint(context.Background(), plan)
	require.NoError(t, err)
	require.True(t, snap.IsComplete())
	require.Len(t, snap.Completed, 3)
	require.Equal(t, []string{"A", "B", "C"}, *ex.executed)
}

func TestDiamond(t *testing.T) {
	b, ex, _, platform := newFixture()
	g := b.AddGroup(platform)
	a := b.AddStage("A", g)
	bID := b.AddStage("B", g, a)
	c := b.AddStage("C", g, a)
	b.AddStage("D", g, bID, c)
	plan := b.Build()

	d := driver.New(nil, nil)
	snap, err := d.ExecuteUntilBreakpoint(context.Background(), plan)
	require.NoError(t, err)
	require.True(t, snap.IsComplete())
	require.Equal(t, []string{"A", "B", "C", "D"}, *ex.executed)
}

func TestBreakpointGatingAndResume(t *testing.T) {
	b, ex, _, platform := newFixture()
	g := b.AddGroup(platform)
	a := b.AddStage("A", g)
	bID := b.AddStage("B", g, a)
	c := b.AddStage("C", g, bID)
	b.AddStage("D", g, c)
	plan := b.Build()

	d := driver.New(nil, nil)
	d.ExtendBreakpoint(breakpoint.DenyStageByID(c))

	snap, err := d.ExecuteUntilBreakpoint(context.Background(), plan)
	require.NoError(t, err)
	require.False(t, snap.IsComplete())
	require.Len(t, snap.Completed, 2)
	require.Len(t, snap.Suspended, 1)
	require.Equal(t, []string{"A", "B"}, *ex.executed)
	require.Len(t, snap.Diagnostics, 1)
	require.Contains(t, snap.Diagnostics[0], "\"C\"")

	snap, err = d.ExecuteUntilBreakpoint(context.Background(), plan)
	require.NoError(t, err)
	require.True(t, snap.IsComplete())
	require.Len(t, snap.Completed, 4)
	require.Equal(t, []string{"A", "B", "C", "D"}, *ex.executed)
}

func TestLiveLockRecoversAndWarns(t *testing.T) {
	b, ex, _, platform := newFixture()
	g := b.AddGroup(platform)
	a := b.AddStage("A", g)
	b.AddStage("B", g, a)
	plan := b.Build()

	var buf xtestutil.SafeBuffer
	logger := ctxlog.NewLogger("debug", "text", &buf)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	d := driver.New(nil, nil)
	d.ExtendBreakpoint(breakpoint.DenyAll())

	snap, err := d.ExecuteUntilBreakpoint(ctx, plan)
	require.NoError(t, err)
	require.True(t, snap.IsComplete())
	require.Equal(t, []string{"A", "B"}, *ex.executed)

	logged := buf.String()
	require.Contains(t, logged, "breakpoint live-lock detected")
	require.Contains(t, logged, "stage#0")
}

func TestExecutorLifecycleSharedAcrossGroup(t *testing.T) {
	b, ex, factory, platform := newFixture()
	g := b.AddGroup(platform)
	b.AddStage("A", g)
	b.AddStage("B", g)
	plan := b.Build()

	d := driver.New(nil, nil)
	_, err := d.ExecuteUntilBreakpoint(context.Background(), plan)
	require.NoError(t, err)

	require.Equal(t, 1, *factory.created)
	require.Equal(t, 1, *ex.disposed)
}

func TestFastForwardResumeDoesNotReexecute(t *testing.T) {
	b, ex, factory, platform := newFixture()
	g := b.AddGroup(platform)
	a := b.AddStage("A", g)
	b.AddStage("B", g, a)
	plan := b.Build()

	d := driver.New(nil, nil)
	_, err := d.ExecuteUntilBreakpoint(context.Background(), plan)
	require.NoError(t, err)
	require.Len(t, *ex.executed, 2)

	snap, err := d.ExecuteUntilBreakpoint(context.Background(), plan)
	require.NoError(t, err)
	require.True(t, snap.IsComplete())
	require.Len(t, *ex.executed, 2)
	require.Equal(t, 1, *factory.created)
}

func TestShutdownDisposesStragglers(t *testing.T) {
	b, ex, _, platform := newFixture()
	g := b.AddGroup(platform)
	a := b.AddStage("A", g)
	b.AddStage("B", g, a)
	plan := b.Build()

	d := driver.New(nil, nil)
	d.ExtendBreakpoint(breakpoint.DenyStageByID(1))
	_, err := d.ExecuteUntilBreakpoint(context.Background(), plan)
	require.NoError(t, err)
	require.Equal(t, 0, *ex.disposed)

	require.NoError(t, d.Shutdown())
	require.Equal(t, 1, *ex.disposed)
}

func TestExecutorErrorPropagatesAndDoesNotMarkExecuted(t *testing.T) {
	b, ex, _, platform := newFixture()
	ex.failOn["A"] = true
	g := b.AddGroup(platform)
	b.AddStage("A", g)
	plan := b.Build()

	d := driver.New(nil, nil)
	snap, err := d.ExecuteUntilBreakpoint(context.Background(), plan)
	require.Error(t, err)
	var execErr *driver.ExecutorError
	require.ErrorAs(t, err, &execErr)
	require.Empty(t, snap.Completed)
}

func TestEmptyPlanIsPlanError(t *testing.T) {
	b := stage.NewBuilder()
	plan := b.Build()
	d := driver.New(nil, nil)
	_, err := d.ExecuteUntilBreakpoint(context.Background(), plan)
	require.Error(t, err)
	var planErr *driver.PlanError
	require.ErrorAs(t, err, &planErr)
}
