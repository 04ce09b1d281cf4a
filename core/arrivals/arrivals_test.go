package arrivals

import (
	"math/rand"
	"testing"
)

func TestFrequencyPeakHours(t *testing.T) {
	m := NewFrequencyModel(0.1, 3.0, []PeakWindow{{Start: 8, End: 10}, {Start: 17, End: 19}})
	cases := []struct {
		hour int
		want float64
	}{
		{0, 0.1},
		{7, 0.1},
		{8, 0.3},
		{9, 0.3},
		{10, 0.1},
		{17, 0.3},
		{18, 0.3},
		{19, 0.1},
		{23, 0.1},
	}
	for _, c := range cases {
		if got := m.Frequency(c.hour); got != c.want {
			t.Errorf("hour %d: frequency %v, want %v", c.hour, got, c.want)
		}
	}
}

// scriptedRand replays fixed values for Intn, in order.
type scriptedRand struct {
	ints []int
	i    int
}

func (s *scriptedRand) Float64() float64 { return 0 }

func (s *scriptedRand) Intn(int) int {
	v := s.ints[s.i]
	s.i++
	return v
}

func TestGeneratorDiscardsDegenerateDraws(t *testing.T) {
	// Morning draw: from=2, then Intn(floors-from) returns 0 so to == from.
	g := NewGenerator(5, &scriptedRand{ints: []int{2, 0}})
	if _, ok := g.Generate(9); ok {
		t.Fatal("expected degenerate draw to be discarded")
	}
}

func TestGeneratorMorningBiasUp(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g := NewGenerator(10, rng)
	for i := 0; i < 500; i++ {
		call, ok := g.Generate(9)
		if !ok {
			continue
		}
		if call.To < call.From {
			t.Fatalf("morning draw went down: %d -> %d", call.From, call.To)
		}
		if call.From == call.To {
			t.Fatalf("degenerate call emitted: %d -> %d", call.From, call.To)
		}
	}
}

func TestGeneratorEveningBiasDown(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	g := NewGenerator(10, rng)
	for i := 0; i < 500; i++ {
		call, ok := g.Generate(18)
		if !ok {
			continue
		}
		if call.To > call.From {
			t.Fatalf("evening draw went up: %d -> %d", call.From, call.To)
		}
	}
}

func TestGeneratorStaysInBuilding(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g := NewGenerator(6, rng)
	for hour := 0; hour < 24; hour++ {
		for i := 0; i < 200; i++ {
			call, ok := g.Generate(hour)
			if !ok {
				continue
			}
			if call.From < 0 || call.From >= 6 || call.To < 0 || call.To >= 6 {
				t.Fatalf("call outside building: %d -> %d", call.From, call.To)
			}
		}
	}
}
