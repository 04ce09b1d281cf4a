// Package events defines the messages the engine publishes on the event bus.
// Subscribers observe the simulation; they can never mutate it.
package events

// PassengerArrived signals a new request entering the system.
type PassengerArrived struct {
	PassengerID int
	From        int
	To          int
	Step        int
}

// PassengerBoarded signals a successful dispatch.
type PassengerBoarded struct {
	PassengerID int
	CarID       int
	Step        int
}

// PassengerDelivered signals a completed trip.
type PassengerDelivered struct {
	PassengerID int
	CarID       int
	Floor       int
	WaitSteps   int
	Step        int
}
