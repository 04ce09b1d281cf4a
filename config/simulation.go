package config

import (
	"fmt"
	"math"
)

// SimulationConfig controls the length and reproducibility of a run.
type SimulationConfig struct {
	// Hours is the number of simulated hours to run.
	Hours int `json:"hours"`
	// StepsPerHour fixes the granularity of the discrete clock.
	StepsPerHour int `json:"steps_per_hour"`
	// Seed makes runs reproducible; 0 seeds from the wall clock.
	Seed int64 `json:"seed"`
}

// SetDefaults applies sane defaults.
func (c *SimulationConfig) SetDefaults() {
	if c.Hours == 0 {
		c.Hours = 24
	}
	if c.StepsPerHour == 0 {
		c.StepsPerHour = 3600
	}
}

// Validate checks ranges.
func (c SimulationConfig) Validate() error {
	if c.Hours < 1 {
		return fmt.Errorf("simulation.hours must be positive")
	}
	if c.StepsPerHour < 1 {
		return fmt.Errorf("simulation.steps_per_hour must be positive")
	}
	return nil
}

// BuildingConfig describes the serviced building.
type BuildingConfig struct {
	Floors int `json:"floors"`
}

// Validate rejects buildings an elevator bank cannot service.
func (c BuildingConfig) Validate() error {
	if c.Floors < 2 {
		return fmt.Errorf("building.floors must be at least 2")
	}
	return nil
}

// FleetConfig describes the elevator bank.
type FleetConfig struct {
	Count      int     `json:"count"`
	StartFloor int     `json:"start_floor"`
	Capacity   int     `json:"capacity"`
	LoadFactor float64 `json:"load_factor"`
	DoorSteps  int     `json:"door_steps"`
}

// SetDefaults applies the standard car parameters.
func (c *FleetConfig) SetDefaults() {
	if c.Count == 0 {
		c.Count = 2
	}
	if c.Capacity == 0 {
		c.Capacity = 10
	}
	if c.LoadFactor == 0 {
		c.LoadFactor = 0.8
	}
	if c.DoorSteps == 0 {
		c.DoorSteps = 3
	}
}

// Validate rejects fleets that could never serve a passenger. In particular a
// capacity whose load-factor-limited occupancy truncates to zero would leave
// every passenger waiting forever and is refused here.
func (c FleetConfig) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("fleet.count must be at least 1")
	}
	if c.Capacity < 1 {
		return fmt.Errorf("fleet.capacity must be at least 1")
	}
	if c.LoadFactor <= 0 || c.LoadFactor > 1 {
		return fmt.Errorf("fleet.load_factor must be in (0,1]")
	}
	if int(math.Floor(float64(c.Capacity)*c.LoadFactor)) < 1 {
		return fmt.Errorf("fleet.capacity %d with load_factor %.2f leaves no usable slots",
			c.Capacity, c.LoadFactor)
	}
	if c.DoorSteps < 1 {
		return fmt.Errorf("fleet.door_steps must be at least 1")
	}
	return nil
}

// EnergyConfig parameterizes the energy model.
type EnergyConfig struct {
	Acceleration     float64 `json:"acceleration"`
	DoorCycle        float64 `json:"door_cycle"`
	MoveBase         float64 `json:"move_base"`
	MovePerPassenger float64 `json:"move_per_passenger"`
}

// SetDefaults applies the reference cost constants.
func (c *EnergyConfig) SetDefaults() {
	if c.Acceleration == 0 {
		c.Acceleration = 2
	}
	if c.DoorCycle == 0 {
		c.DoorCycle = 3
	}
	if c.MoveBase == 0 {
		c.MoveBase = 1
	}
	if c.MovePerPassenger == 0 {
		c.MovePerPassenger = 0.1
	}
}

// Validate checks that costs are non-negative.
func (c EnergyConfig) Validate() error {
	if c.Acceleration < 0 || c.DoorCycle < 0 || c.MoveBase < 0 || c.MovePerPassenger < 0 {
		return fmt.Errorf("energy costs must be non-negative")
	}
	return nil
}
