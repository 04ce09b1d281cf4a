package sim

import (
	"sort"

	"github.com/verticore/liftsim/core/arrivals"
	"github.com/verticore/liftsim/core/model"
)

// ArrivalSource produces at most one call per simulation step.
type ArrivalSource interface {
	Next(step, hour int) (model.Call, bool)
}

// RandomArrivals draws arrivals from an hour-of-day frequency model and a
// random call generator.
type RandomArrivals struct {
	freq *arrivals.FrequencyModel
	gen  *arrivals.Generator
	rng  arrivals.RandomSource
}

// NewRandomArrivals combines the frequency model, generator and random source
// into an arrival source.
func NewRandomArrivals(freq *arrivals.FrequencyModel, gen *arrivals.Generator, rng arrivals.RandomSource) *RandomArrivals {
	return &RandomArrivals{freq: freq, gen: gen, rng: rng}
}

// Next draws one uniform value against the hour's arrival probability and, on
// a hit, asks the generator for a call. Degenerate draws (origin equals
// destination) are discarded silently.
func (r *RandomArrivals) Next(_, hour int) (model.Call, bool) {
	if r.rng.Float64() >= r.freq.Frequency(hour) {
		return model.Call{}, false
	}
	return r.gen.Generate(hour)
}

// ScriptedCall schedules a call at an exact step.
type ScriptedCall struct {
	Step int
	Call model.Call
}

// ScriptedArrivals replays a fixed call schedule. It is used by scenario
// replay and by tests that need exact traces.
type ScriptedArrivals struct {
	calls []ScriptedCall
	next  int
}

// NewScriptedArrivals creates a source replaying the given calls in step
// order. The input slice is sorted by step; relative order of calls sharing a
// step is preserved, though only the first can fire on that step.
func NewScriptedArrivals(calls []ScriptedCall) *ScriptedArrivals {
	sorted := make([]ScriptedCall, len(calls))
	copy(sorted, calls)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Step < sorted[j].Step })
	return &ScriptedArrivals{calls: sorted}
}

// Next emits the scheduled call for the step, if any. The engine admits one
// arrival per step, so extra calls scheduled on the same step are dropped.
func (s *ScriptedArrivals) Next(step, _ int) (model.Call, bool) {
	for s.next < len(s.calls) && s.calls[s.next].Step < step {
		s.next++
	}
	if s.next >= len(s.calls) || s.calls[s.next].Step != step {
		return model.Call{}, false
	}
	c := s.calls[s.next]
	s.next++
	return c.Call, true
}
