// Package scenarios replays scripted call schedules through the simulation
// engine and checks the outcome against expectations.
package scenarios

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CallDef schedules one request at an exact step.
type CallDef struct {
	Step int `yaml:"step"`
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// Expected states the outcome a scenario must reach.
type Expected struct {
	Delivered    int `yaml:"delivered"`
	MaxWaitSteps int `yaml:"max_wait_steps,omitempty"`
}

// Scenario describes a deterministic replay: a small building, a fleet and a
// fixed call schedule.
type Scenario struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description,omitempty"`
	Floors      int       `yaml:"floors"`
	Cars        int       `yaml:"cars"`
	StartFloor  int       `yaml:"start_floor"`
	Capacity    int       `yaml:"capacity"`
	LoadFactor  float64   `yaml:"load_factor,omitempty"`
	Steps       int       `yaml:"steps"`
	Calls       []CallDef `yaml:"calls"`
	Expected    Expected  `yaml:"expected"`
}

// Load reads a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	if err := sc.validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &sc, nil
}

func (sc *Scenario) validate() error {
	if sc.Floors < 2 {
		return fmt.Errorf("floors must be at least 2")
	}
	if sc.Cars < 1 {
		return fmt.Errorf("cars must be at least 1")
	}
	if sc.Steps < 1 {
		return fmt.Errorf("steps must be positive")
	}
	for _, c := range sc.Calls {
		if c.From == c.To {
			return fmt.Errorf("call at step %d: origin equals destination", c.Step)
		}
		if c.From < 0 || c.From >= sc.Floors || c.To < 0 || c.To >= sc.Floors {
			return fmt.Errorf("call at step %d: floors outside building", c.Step)
		}
	}
	return nil
}
