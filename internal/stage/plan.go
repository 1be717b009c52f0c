package stage

import "fmt"

// Plan is an arena of stages and groups forming one execution plan. Plans
// are built with a Builder and are immutable once constructed; the driver
// never mutates a Plan's topology at run time.
type Plan struct {
	stages []*Stage
	groups []*Group
}

// Stage resolves a stage id against the plan's arena. Panics on an id the
// plan never issued, since that indicates a corrupt plan rather than a
// recoverable runtime condition.
func (p *Plan) Stage(id ID) *Stage {
	if int(id) < 0 || int(id) >= len(p.stages) {
		panic(fmt.Sprintf("stage: id %d out of range for plan with %d stages", id, len(p.stages)))
	}
	return p.stages[id]
}

// Group resolves a group id against the plan's arena.
func (p *Plan) Group(id GroupID) *Group {
	if int(id) < 0 || int(id) >= len(p.groups) {
		panic(fmt.Sprintf("stage: group id %d out of range for plan with %d groups", id, len(p.groups)))
	}
	return p.groups[id]
}

// Stages returns every stage in the plan, in construction order.
func (p *Plan) Stages() []*Stage {
	return p.stages
}

// StartingStages returns the stages that have no predecessors, i.e. the
// roots the driver seeds its activated queue with.
func (p *Plan) StartingStages() []*Stage {
	var starting []*Stage
	for _, s := range p.stages {
		if len(s.predecessors) == 0 {
			starting = append(starting, s)
		}
	}
	return starting
}

// Builder constructs a Plan incrementally. A Builder is not safe for
// concurrent use; plans are assembled single-threaded before a run starts.
type Builder struct {
	plan *Plan
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{plan: &Plan{}}
}

// AddGroup registers a new platform execution and returns its id. Stages
// are attached to the group afterward via AddStage.
func (b *Builder) AddGroup(platform Platform) GroupID {
	id := GroupID(len(b.plan.groups))
	b.plan.groups = append(b.plan.groups, &Group{id: id, platform: platform})
	return id
}

// AddStage registers a new stage belonging to group and returns its id.
// Predecessors must already have been added; the builder records the
// reverse successor edges automatically.
func (b *Builder) AddStage(description string, group GroupID, predecessors ...ID) ID {
	id := ID(len(b.plan.stages))
	s := &Stage{id: id, description: description, group: group, predecessors: predecessors}
	b.plan.stages = append(b.plan.stages, s)

	g := b.plan.groups[group]
	g.stages = append(g.stages, id)

	for _, pred := range predecessors {
		predStage := b.plan.stages[pred]
		predStage.successors = append(predStage.successors, id)
	}
	return id
}

// Build returns the finished plan. The builder must not be reused
// afterward.
func (b *Builder) Build() *Plan {
	return b.plan
}
