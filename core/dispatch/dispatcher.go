// Package dispatch selects which car serves a passenger request. The
// dispatcher is a stateless scoring function; the simulation engine owns the
// retry loop for passengers no car can take.
package dispatch

import (
	"math"

	"github.com/verticore/liftsim/core/elevator"
	"github.com/verticore/liftsim/core/model"
)

// Dispatcher picks a car for a passenger, or reports that none has headroom.
type Dispatcher interface {
	Assign(p *model.Passenger, fleet []*elevator.Car) (carID int, ok bool)
}

// NearestCarDispatcher scores every car with headroom by its distance to the
// passenger's origin weighted by direction agreement and picks the minimum.
// Ties break to the lowest car id, so a fleet iterated in ascending id order
// yields a deterministic assignment.
type NearestCarDispatcher struct{}

// Assign returns the id of the best-scoring car, or ok=false when no car can
// accept the passenger.
func (NearestCarDispatcher) Assign(p *model.Passenger, fleet []*elevator.Car) (int, bool) {
	bestID := model.NoCar
	bestScore := math.MaxFloat64
	for _, car := range fleet {
		if !car.CanAccept() {
			continue
		}
		if s := Score(car, p); s < bestScore {
			bestScore = s
			bestID = car.ID()
		}
	}
	if bestID == model.NoCar {
		return 0, false
	}
	return bestID, true
}

// Score computes the assignment cost of a car for a passenger. Distance is
// weighted by an extra energy term (half the distance) and multiplied by a
// directional preference: cars sweeping the passenger's way are favoured,
// cars sweeping against it are penalized, idle cars are neutral.
func Score(car *elevator.Car, p *model.Passenger) float64 {
	distance := math.Abs(float64(car.Floor() - p.Origin))
	mult := 1.0
	if dir := car.Direction(); dir != model.DirectionIdle {
		if dir == p.Direction() {
			mult = 0.5
		} else {
			mult = 2.0
		}
	}
	return (distance + 0.5*distance) * mult
}
