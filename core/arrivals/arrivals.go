// Package arrivals models time-of-day passenger demand: an hour-of-day
// frequency lookup and a random request generator.
package arrivals

import "github.com/verticore/liftsim/core/model"

// PeakWindow is a half-open [Start,End) hour range with elevated demand.
type PeakWindow struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Contains reports whether the hour falls inside the window.
func (w PeakWindow) Contains(hour int) bool {
	return hour >= w.Start && hour < w.End
}

// FrequencyModel maps an hour of day to an arrival probability per step.
type FrequencyModel struct {
	base  float64
	mult  float64
	peaks []PeakWindow
}

// NewFrequencyModel builds a model with the given base per-step probability,
// peak multiplier and peak windows.
func NewFrequencyModel(base, mult float64, peaks []PeakWindow) *FrequencyModel {
	return &FrequencyModel{base: base, mult: mult, peaks: peaks}
}

// Frequency returns the arrival probability for the hour, in [0,1).
func (m *FrequencyModel) Frequency(hour int) float64 {
	for _, w := range m.peaks {
		if w.Contains(hour) {
			return m.base * m.mult
		}
	}
	return m.base
}

// RandomSource produces the uniform draws the simulation needs. *rand.Rand
// satisfies it; tests may substitute a scripted source.
type RandomSource interface {
	Float64() float64
	Intn(n int) int
}

// Generator synthesizes origin/destination pairs. Destinations are biased
// upward before noon and downward after, mirroring commuter traffic.
type Generator struct {
	floors int
	rng    RandomSource
}

// NewGenerator creates a generator for a building with the given floor count.
func NewGenerator(floors int, rng RandomSource) *Generator {
	return &Generator{floors: floors, rng: rng}
}

// Generate draws one candidate call for the hour. Draws whose origin equals
// their destination are discarded and reported with ok=false.
func (g *Generator) Generate(hour int) (model.Call, bool) {
	from := g.rng.Intn(g.floors)
	var to int
	if hour < 12 {
		to = from + g.rng.Intn(g.floors-from)
	} else {
		to = g.rng.Intn(from + 1)
	}
	if from == to {
		return model.Call{}, false
	}
	return model.Call{From: from, To: to}, true
}
