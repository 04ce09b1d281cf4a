// Package report turns final simulation aggregates into a textual summary.
package report

import (
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/verticore/liftsim/core/sim"
)

// HourlyWait summarizes the deliveries of one simulated hour of day.
type HourlyWait struct {
	Hour             int     `json:"hour"`
	Deliveries       int     `json:"deliveries"`
	AverageWaitSteps float64 `json:"average_wait_steps"`
}

// Report is the final outcome of a simulation run.
type Report struct {
	RunID            string       `json:"run_id"`
	Steps            int          `json:"steps"`
	Arrivals         int          `json:"arrivals"`
	Delivered        int          `json:"delivered"`
	TotalEnergy      float64      `json:"total_energy_units"`
	AverageWaitSteps float64      `json:"average_wait_steps"`
	MedianWaitSteps  float64      `json:"median_wait_steps"`
	P95WaitSteps     float64      `json:"p95_wait_steps"`
	Hourly           []HourlyWait `json:"hourly"`
}

// Build computes the report from run statistics. Hours without deliveries are
// omitted from the hourly breakdown.
func Build(runID string, stats *sim.Stats) Report {
	r := Report{
		RunID:            runID,
		Steps:            stats.Steps,
		Arrivals:         stats.Arrivals,
		Delivered:        stats.Delivered,
		TotalEnergy:      stats.TotalEnergy,
		AverageWaitSteps: stats.AverageWaitSteps(),
	}
	samples := stats.WaitSamples()
	if len(samples) > 0 {
		sort.Float64s(samples)
		r.MedianWaitSteps = stat.Quantile(0.5, stat.Empirical, samples, nil)
		r.P95WaitSteps = stat.Quantile(0.95, stat.Empirical, samples, nil)
	}
	for hour := 0; hour < sim.HoursPerDay; hour++ {
		bucket := stats.WaitByHour[hour]
		if len(bucket) == 0 {
			continue
		}
		r.Hourly = append(r.Hourly, HourlyWait{
			Hour:             hour,
			Deliveries:       len(bucket),
			AverageWaitSteps: stat.Mean(bucket, nil),
		})
	}
	return r
}

// WriteText renders the report for humans.
func (r Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Simulation %s\n", r.RunID); err != nil {
		return err
	}
	lines := []string{
		fmt.Sprintf("  steps:              %d", r.Steps),
		fmt.Sprintf("  arrivals:           %d", r.Arrivals),
		fmt.Sprintf("  delivered:          %d", r.Delivered),
		fmt.Sprintf("  total energy:       %.1f units", r.TotalEnergy),
		fmt.Sprintf("  avg wait:           %.1f steps", r.AverageWaitSteps),
		fmt.Sprintf("  median wait:        %.1f steps", r.MedianWaitSteps),
		fmt.Sprintf("  p95 wait:           %.1f steps", r.P95WaitSteps),
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	if len(r.Hourly) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Average wait by hour:"); err != nil {
		return err
	}
	for _, h := range r.Hourly {
		if _, err := fmt.Fprintf(w, "  %02d:00  %6.1f steps  (%d delivered)\n",
			h.Hour, h.AverageWaitSteps, h.Deliveries); err != nil {
			return err
		}
	}
	return nil
}
