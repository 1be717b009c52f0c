package breakpoint_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/xplatform-core/internal/breakpoint"
	"github.com/vk/xplatform-core/internal/stage"
)

func plan() *stage.Plan {
	b := stage.NewBuilder()
	g := b.AddGroup(stage.Platform{Name: "local"})
	b.AddStage("A", g)
	return b.Build()
}

func TestEmptyConjunctionPermitsEverything(t *testing.T) {
	p := plan()
	c := breakpoint.New()
	require.True(t, c.Permits(p.Stage(0)))
}

func TestDenyStageByID(t *testing.T) {
	p := plan()
	c := breakpoint.New()
	c.Extend(breakpoint.DenyStageByID(0))
	require.False(t, c.Permits(p.Stage(0)))
}

func TestDenyAll(t *testing.T) {
	p := plan()
	c := breakpoint.New()
	c.Extend(breakpoint.DenyAll())
	require.False(t, c.Permits(p.Stage(0)))
}

func TestConjunctionIsAnd(t *testing.T) {
	p := plan()
	c := breakpoint.New()
	c.Extend(func(*stage.Stage) bool { return true })
	c.Extend(func(*stage.Stage) bool { return false })
	require.False(t, c.Permits(p.Stage(0)))
}
