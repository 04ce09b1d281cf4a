// Package elevator implements the per-car state machine: position, sweep
// direction, door cycle, onboard passengers and the energy ledger. The
// package is pure domain logic; it never touches clocks, channels or I/O.
package elevator

import (
	"fmt"
	"math"

	"github.com/verticore/liftsim/core/model"
)

// Phase is the tagged state of a car. A car with open doors cannot move and a
// car without pending stops cannot have a direction, so the phase is derived
// from the door countdown and the direction rather than stored separately.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseMoving
	PhaseDoorOpen
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseMoving:
		return "moving"
	case PhaseDoorOpen:
		return "door_open"
	default:
		return "unknown"
	}
}

// EnergyCosts parameterizes the energy model of a car.
type EnergyCosts struct {
	// Acceleration is charged when a move follows a tick that did not move.
	Acceleration float64
	// DoorCycle is charged once per door open event.
	DoorCycle float64
	// MoveBase is the per-floor movement cost with an empty cabin.
	MoveBase float64
	// MovePerPassenger is added per onboard passenger per floor moved.
	MovePerPassenger float64
}

// Config holds the immutable parameters of a single car.
type Config struct {
	ID         int
	StartFloor int
	Capacity   int
	LoadFactor float64
	DoorSteps  int
	Energy     EnergyCosts
}

// Arena resolves passenger indices to passengers. The simulation engine owns
// the arena; cars only hold indices into it.
type Arena interface {
	Passenger(id int) *model.Passenger
}

// Car is one elevator in the bank.
type Car struct {
	cfg Config

	floor         int
	direction     model.Direction
	doorCountdown int
	stops         map[int]bool
	onboard       []int
	usable        int
	energy        float64

	// wasMoving records whether the previous tick performed a floor move,
	// so acceleration can be charged when movement (re)starts.
	wasMoving bool
}

// New creates an idle car at its configured starting floor.
func New(cfg Config) (*Car, error) {
	if cfg.Capacity < 1 {
		return nil, fmt.Errorf("car %d: capacity must be at least 1", cfg.ID)
	}
	if cfg.LoadFactor <= 0 || cfg.LoadFactor > 1 {
		return nil, fmt.Errorf("car %d: load factor must be in (0,1]", cfg.ID)
	}
	usable := int(math.Floor(float64(cfg.Capacity) * cfg.LoadFactor))
	if usable < 1 {
		return nil, fmt.Errorf("car %d: capacity %d with load factor %.2f leaves no usable slots",
			cfg.ID, cfg.Capacity, cfg.LoadFactor)
	}
	if cfg.DoorSteps < 1 {
		return nil, fmt.Errorf("car %d: door cycle must last at least 1 step", cfg.ID)
	}
	return &Car{
		cfg:       cfg,
		floor:     cfg.StartFloor,
		direction: model.DirectionIdle,
		stops:     make(map[int]bool),
		usable:    usable,
	}, nil
}

// ID returns the stable fleet index of the car.
func (c *Car) ID() int { return c.cfg.ID }

// Floor returns the current floor.
func (c *Car) Floor() int { return c.floor }

// Direction returns the current sweep direction.
func (c *Car) Direction() model.Direction { return c.direction }

// Energy returns the cumulative energy consumed so far.
func (c *Car) Energy() float64 { return c.energy }

// OnboardCount returns the number of passengers in the cabin.
func (c *Car) OnboardCount() int { return len(c.onboard) }

// UsableSlots returns floor(capacity * loadFactor).
func (c *Car) UsableSlots() int { return c.usable }

// Phase reports the tagged state of the car.
func (c *Car) Phase() Phase {
	switch {
	case c.doorCountdown > 0:
		return PhaseDoorOpen
	case c.direction != model.DirectionIdle:
		return PhaseMoving
	default:
		return PhaseIdle
	}
}

// DoorCountdown returns the remaining door-open steps, zero when closed.
func (c *Car) DoorCountdown() int { return c.doorCountdown }

// HasStop reports whether the floor is in the pending-stop set.
func (c *Car) HasStop(floor int) bool { return c.stops[floor] }

// PendingStops returns the number of pending stop floors.
func (c *Car) PendingStops() int { return len(c.stops) }

// CanAccept reports whether the car has headroom under its load-factor limit.
func (c *Car) CanAccept() bool {
	return len(c.onboard) < c.usable
}

// Board adds the passenger to the cabin, marks it in transit and registers
// its destination as a pending stop. Callers must check CanAccept first.
func (c *Car) Board(p *model.Passenger) error {
	if !c.CanAccept() {
		return fmt.Errorf("car %d: cabin full (%d/%d)", c.cfg.ID, len(c.onboard), c.usable)
	}
	p.MarkBoarded(c.cfg.ID)
	c.onboard = append(c.onboard, p.ID)
	c.AddStop(p.Destination)
	if c.direction == model.DirectionIdle {
		c.recomputeDirection()
	}
	return nil
}

// AddStop inserts a floor into the pending-stop set. Adding a floor that is
// already pending is a no-op.
func (c *Car) AddStop(floor int) {
	c.stops[floor] = true
}

// Tick advances the car by one simulated time unit and returns the energy
// consumed during the tick. Exactly one of three actions happens, in priority
// order: run down the door countdown, open the doors at a pending stop, or
// move one floor in the current direction.
func (c *Car) Tick(arena Arena) float64 {
	before := c.energy
	switch {
	case c.doorCountdown > 0:
		c.doorCountdown--
		if c.doorCountdown == 0 {
			c.release(arena)
			delete(c.stops, c.floor)
			c.recomputeDirection()
		}
		c.wasMoving = false
	case c.stops[c.floor]:
		c.doorCountdown = c.cfg.DoorSteps
		c.energy += c.cfg.Energy.DoorCycle
		c.wasMoving = false
	case c.direction != model.DirectionIdle:
		if !c.wasMoving {
			c.energy += c.cfg.Energy.Acceleration
		}
		if c.direction == model.DirectionUp {
			c.floor++
		} else {
			c.floor--
		}
		c.energy += c.cfg.Energy.MoveBase + c.cfg.Energy.MovePerPassenger*float64(len(c.onboard))
		c.wasMoving = true
	default:
		// Idle with no pending stops.
		c.wasMoving = false
	}
	return c.energy - before
}

// release marks every onboard passenger destined for the current floor as
// delivered and removes it from the cabin.
func (c *Car) release(arena Arena) {
	kept := c.onboard[:0]
	for _, id := range c.onboard {
		p := arena.Passenger(id)
		if p.Destination == c.floor {
			p.MarkDelivered()
			continue
		}
		kept = append(kept, id)
	}
	c.onboard = kept
}

// recomputeDirection applies the continue-until-exhausted sweep: keep the
// current direction while a pending stop lies ahead, otherwise reverse. An
// idle car heads toward its nearest pending stop.
func (c *Car) recomputeDirection() {
	if len(c.stops) == 0 {
		c.direction = model.DirectionIdle
		return
	}
	switch c.direction {
	case model.DirectionUp:
		if !c.hasStopAbove() {
			c.direction = model.DirectionDown
		}
	case model.DirectionDown:
		if !c.hasStopBelow() {
			c.direction = model.DirectionUp
		}
	default:
		if c.nearestStop() > c.floor {
			c.direction = model.DirectionUp
		} else {
			c.direction = model.DirectionDown
		}
	}
}

func (c *Car) hasStopAbove() bool {
	for f := range c.stops {
		if f > c.floor {
			return true
		}
	}
	return false
}

func (c *Car) hasStopBelow() bool {
	for f := range c.stops {
		if f < c.floor {
			return true
		}
	}
	return false
}

func (c *Car) nearestStop() int {
	best := 0
	bestDist := math.MaxInt
	for f := range c.stops {
		dist := f - c.floor
		if dist < 0 {
			dist = -dist
		}
		if dist < bestDist {
			bestDist = dist
			best = f
		}
	}
	return best
}
