package model

import "fmt"

// Direction is the vertical travel direction of a car or a passenger.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionIdle
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionIdle:
		return "idle"
	default:
		return "unknown"
	}
}

// PassengerState tracks the delivery lifecycle of a request. Transitions only
// move forward: Waiting -> InTransit -> Delivered.
type PassengerState int

const (
	StateWaiting PassengerState = iota
	StateInTransit
	StateDelivered
)

func (s PassengerState) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StateInTransit:
		return "in_transit"
	case StateDelivered:
		return "delivered"
	default:
		return "unknown"
	}
}

// NoCar marks a passenger that has not been assigned to any car yet.
const NoCar = -1

// Call is a travel request from one floor to another.
type Call struct {
	From int `json:"from" yaml:"from"`
	To   int `json:"to" yaml:"to"`
}

// Passenger is a single trip request through the bank. Passengers live in the
// engine's arena and are referenced by index; they hold a car id, never a
// pointer to a car.
type Passenger struct {
	ID          int
	Origin      int
	Destination int
	RequestStep int
	State       PassengerState
	CarID       int
}

// NewPassenger creates a waiting passenger stamped with the step it arrived on.
func NewPassenger(id, origin, destination, step int) *Passenger {
	return &Passenger{
		ID:          id,
		Origin:      origin,
		Destination: destination,
		RequestStep: step,
		State:       StateWaiting,
		CarID:       NoCar,
	}
}

// Direction derives the travel direction from origin and destination.
func (p *Passenger) Direction() Direction {
	if p.Destination > p.Origin {
		return DirectionUp
	}
	return DirectionDown
}

// MarkBoarded transitions the passenger to InTransit. Boarding a passenger
// that is not waiting indicates a dispatcher bug and panics.
func (p *Passenger) MarkBoarded(carID int) {
	if p.State != StateWaiting {
		panic(fmt.Sprintf("passenger %d boarded in state %s", p.ID, p.State))
	}
	p.State = StateInTransit
	p.CarID = carID
}

// MarkDelivered transitions the passenger to Delivered. Delivering a passenger
// that is not in transit indicates a state machine bug and panics.
func (p *Passenger) MarkDelivered() {
	if p.State != StateInTransit {
		panic(fmt.Sprintf("passenger %d delivered in state %s", p.ID, p.State))
	}
	p.State = StateDelivered
}
