// Package stage models the execution plan as a DAG of stages grouped into
// platform executions. Stages and groups are identified by stable integer
// ids held in per-plan arenas rather than by direct pointers to each other,
// so that a stage never needs a back-reference into the group that
// contains it and the group never needs a cyclic reference back.
package stage

import "fmt"

// ID identifies a stage within a Plan.
type ID int

// GroupID identifies a platform execution within a Plan.
type GroupID int

// Stage is a single unit of dispatch. Its predecessor and successor sets
// are stored as ids, resolved against the owning Plan's arena.
type Stage struct {
	id           ID
	description  string
	predecessors []ID
	successors   []ID
	group        GroupID
}

// ID returns the stage's stable identifier.
func (s *Stage) ID() ID { return s.id }

// Description returns the stage's human-readable diagnostic label.
func (s *Stage) Description() string { return s.description }

// Predecessors returns the ids of stages that must execute before this one.
func (s *Stage) Predecessors() []ID { return s.predecessors }

// Successors returns the ids of stages this stage unblocks on completion.
func (s *Stage) Successors() []ID { return s.successors }

// Group returns the id of the platform execution this stage belongs to.
func (s *Stage) Group() GroupID { return s.group }

// ToExtensiveString renders a diagnostic line naming the stage, its group,
// and its predecessor/successor ids, used by live-lock warnings and
// snapshot diagnostics.
func (s *Stage) ToExtensiveString() string {
	return fmt.Sprintf("stage#%d %q group=%d predecessors=%v successors=%v",
		s.id, s.description, s.group, s.predecessors, s.successors)
}

// Group describes a maximal set of stages served by one executor instance.
type Group struct {
	id       GroupID
	platform Platform
	stages   []ID
}

// ID returns the group's stable identifier.
func (g *Group) ID() GroupID { return g.id }

// Platform returns the platform handle serving this group.
func (g *Group) Platform() Platform { return g.platform }

// Stages returns the ids of every stage belonging to this group.
func (g *Group) Stages() []ID { return g.stages }

// Platform names the executor factory responsible for a group of stages.
// It is a thin value carried by a Group; the factory it wraps is consumed
// by the executor lifecycle, not by the stage graph itself.
type Platform struct {
	Name            string
	ExecutorFactory ExecutorFactory
}
