// Package xstate models the append/merge-only bag of execution
// observations a run accumulates: measured channel cardinalities, stage
// timings, and other profiling values.
package xstate

import "time"

// State is an immutable-by-convention snapshot of everything observed
// during a run so far. Callers must treat a returned State as read-only;
// use Merge to combine observations rather than mutating the maps
// in place.
type State struct {
	Cardinalities map[string]int64
	Timings       map[string]time.Duration
}

// New returns an empty state.
func New() State {
	return State{
		Cardinalities: map[string]int64{},
		Timings:       map[string]time.Duration{},
	}
}

// Merge returns a new State containing every observation from s and other.
// On a key collision the value from other wins, mirroring the driver's
// last-writer-wins policy for conflicts that should not legitimately occur
// given the plan's structure.
func (s State) Merge(other State) State {
	merged := State{
		Cardinalities: make(map[string]int64, len(s.Cardinalities)+len(other.Cardinalities)),
		Timings:       make(map[string]time.Duration, len(s.Timings)+len(other.Timings)),
	}
	for k, v := range s.Cardinalities {
		merged.Cardinalities[k] = v
	}
	for k, v := range other.Cardinalities {
		merged.Cardinalities[k] = v
	}
	for k, v := range s.Timings {
		merged.Timings[k] = v
	}
	for k, v := range other.Timings {
		merged.Timings[k] = v
	}
	return merged
}

// WithCardinality returns a copy of s with one additional cardinality
// observation recorded.
func (s State) WithCardinality(channel string, n int64) State {
	return s.Merge(State{Cardinalities: map[string]int64{channel: n}, Timings: map[string]time.Duration{}})
}

// WithTiming returns a copy of s with one additional timing observation
// recorded.
func (s State) WithTiming(stageDescription string, d time.Duration) State {
	return s.Merge(State{Cardinalities: map[string]int64{}, Timings: map[string]time.Duration{stageDescription: d}})
}

// Copy returns a deep copy of s with respect to its top-level containers:
// mutating the returned maps never affects s. Individual values stored in
// the maps are already immutable, so they are not separately cloned.
func (s State) Copy() State {
	cp := State{
		Cardinalities: make(map[string]int64, len(s.Cardinalities)),
		Timings:       make(map[string]time.Duration, len(s.Timings)),
	}
	for k, v := range s.Cardinalities {
		cp.Cardinalities[k] = v
	}
	for k, v := range s.Timings {
		cp.Timings[k] = v
	}
	return cp
}
