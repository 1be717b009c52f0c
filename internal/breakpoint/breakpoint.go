// Package breakpoint implements the composable admission gate that governs
// which stages the driver is allowed to dispatch during a pass.
package breakpoint

import "github.com/vk/xplatform-core/internal/stage"

// Clause is a single predicate over a stage. Go's first-class functions
// let any func(*stage.Stage) bool satisfy this without an adapter, but the
// named type documents intent and gives hand-written fakes something to
// implement.
type Clause func(s *stage.Stage) bool

// Conjunction is an ordered list of clauses; Permits is their logical AND.
// An empty conjunction permits every stage.
type Conjunction struct {
	clauses []Clause
}

// New returns an empty conjunction that permits everything.
func New() *Conjunction {
	return &Conjunction{}
}

// Extend appends a clause to the conjunction.
func (c *Conjunction) Extend(clause Clause) {
	c.clauses = append(c.clauses, clause)
}

// Permits reports whether every clause in the conjunction admits s.
func (c *Conjunction) Permits(s *stage.Stage) bool {
	for _, clause := range c.clauses {
		if !clause(s) {
			return false
		}
	}
	return true
}

// Len reports how many clauses are currently installed.
func (c *Conjunction) Len() int {
	return len(c.clauses)
}

// DenyStageByID returns a clause that rejects exactly the named stage ids.
func DenyStageByID(ids ...stage.ID) Clause {
	denied := make(map[stage.ID]struct{}, len(ids))
	for _, id := range ids {
		denied[id] = struct{}{}
	}
	return func(s *stage.Stage) bool {
		_, isDenied := denied[s.ID()]
		return !isDenied
	}
}

// DenyAll returns a clause that rejects every stage, used to pause a
// driver between ExecuteUntilBreakpoint calls.
func DenyAll() Clause {
	return func(*stage.Stage) bool { return false }
}
