package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verticore/liftsim/core/sim"
)

func sampleStats() *sim.Stats {
	stats := &sim.Stats{
		Steps:          7200,
		Arrivals:       5,
		Delivered:      4,
		TotalEnergy:    42.5,
		TotalWaitSteps: 20,
	}
	stats.WaitByHour[8] = []float64{2, 4}
	stats.WaitByHour[9] = []float64{6, 8}
	return stats
}

func TestBuild(t *testing.T) {
	r := Build("run-1", sampleStats())
	if r.RunID != "run-1" || r.Steps != 7200 || r.Arrivals != 5 || r.Delivered != 4 {
		t.Fatalf("unexpected header fields: %+v", r)
	}
	if r.AverageWaitSteps != 5 {
		t.Fatalf("average wait %v, want 5", r.AverageWaitSteps)
	}
	if r.MedianWaitSteps != 4 {
		t.Fatalf("median wait %v, want 4", r.MedianWaitSteps)
	}
	if r.P95WaitSteps != 8 {
		t.Fatalf("p95 wait %v, want 8", r.P95WaitSteps)
	}
	if len(r.Hourly) != 2 {
		t.Fatalf("hourly rows %d, want 2 (empty hours omitted)", len(r.Hourly))
	}
	if r.Hourly[0].Hour != 8 || r.Hourly[0].Deliveries != 2 || r.Hourly[0].AverageWaitSteps != 3 {
		t.Fatalf("hour 8 row: %+v", r.Hourly[0])
	}
	if r.Hourly[1].Hour != 9 || r.Hourly[1].AverageWaitSteps != 7 {
		t.Fatalf("hour 9 row: %+v", r.Hourly[1])
	}
}

func TestBuildEmptyRun(t *testing.T) {
	r := Build("run-2", &sim.Stats{Steps: 100})
	if r.Delivered != 0 || r.AverageWaitSteps != 0 || r.MedianWaitSteps != 0 {
		t.Fatalf("empty run should produce zero waits: %+v", r)
	}
	if len(r.Hourly) != 0 {
		t.Fatalf("empty run should have no hourly rows")
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := Build("run-1", sampleStats()).WriteText(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"run-1", "delivered:          4", "total energy:       42.5 units", "08:00", "09:00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
