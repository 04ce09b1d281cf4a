package config

import (
	"fmt"

	"github.com/verticore/liftsim/core/arrivals"
)

// PeakWindowConfig is a half-open [start,end) hour range.
type PeakWindowConfig struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ArrivalsConfig configures the hour-of-day demand model.
type ArrivalsConfig struct {
	// BaseFrequency is the off-peak arrival probability per step.
	BaseFrequency float64 `json:"base_frequency"`
	// PeakMultiplier scales the base frequency inside peak windows.
	PeakMultiplier float64            `json:"peak_multiplier"`
	PeakHours      []PeakWindowConfig `json:"peak_hours"`
}

// SetDefaults applies the reference demand profile: morning and evening rush.
func (c *ArrivalsConfig) SetDefaults() {
	if c.BaseFrequency == 0 {
		c.BaseFrequency = 0.1
	}
	if c.PeakMultiplier == 0 {
		c.PeakMultiplier = 3.0
	}
	if len(c.PeakHours) == 0 {
		c.PeakHours = []PeakWindowConfig{{Start: 8, End: 10}, {Start: 17, End: 19}}
	}
}

// Validate keeps every hour's arrival probability inside [0,1).
func (c ArrivalsConfig) Validate() error {
	if c.BaseFrequency < 0 || c.BaseFrequency >= 1 {
		return fmt.Errorf("arrivals.base_frequency must be in [0,1)")
	}
	if c.PeakMultiplier < 1 {
		return fmt.Errorf("arrivals.peak_multiplier must be at least 1")
	}
	if c.BaseFrequency*c.PeakMultiplier >= 1 {
		return fmt.Errorf("arrivals.base_frequency x peak_multiplier must stay below 1")
	}
	for _, w := range c.PeakHours {
		if w.Start < 0 || w.End > 24 || w.Start >= w.End {
			return fmt.Errorf("arrivals.peak_hours window [%d,%d) is invalid", w.Start, w.End)
		}
	}
	return nil
}

// Model builds the frequency model from the configuration.
func (c ArrivalsConfig) Model() *arrivals.FrequencyModel {
	peaks := make([]arrivals.PeakWindow, len(c.PeakHours))
	for i, w := range c.PeakHours {
		peaks[i] = arrivals.PeakWindow{Start: w.Start, End: w.End}
	}
	return arrivals.NewFrequencyModel(c.BaseFrequency, c.PeakMultiplier, peaks)
}
