// Package metrics defines the sink interfaces the simulation records into.
// Implementations live under infra/metrics.
package metrics

// DeliveryEvent is recorded when a passenger reaches its destination.
type DeliveryEvent struct {
	PassengerID int
	CarID       int
	Floor       int
	WaitSteps   int
	Hour        int
}

// EnergyEvent is recorded for every car tick that consumed energy.
type EnergyEvent struct {
	CarID int
	Units float64
	Step  int
}

// ArrivalEvent is recorded when a new request enters the system.
type ArrivalEvent struct {
	From int
	To   int
	Hour int
}

// Sink records simulation events for observability purposes. Sinks must not
// influence the simulation; errors are logged and ignored by the engine.
type Sink interface {
	RecordDelivery(ev DeliveryEvent) error
	RecordEnergy(ev EnergyEvent) error
	RecordArrival(ev ArrivalEvent) error
}

// OccupancyRecorder is implemented by sinks able to track cabin occupancy.
type OccupancyRecorder interface {
	RecordOccupancy(carID, onboard int) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordDelivery(DeliveryEvent) error { return nil }
func (NopSink) RecordEnergy(EnergyEvent) error     { return nil }
func (NopSink) RecordArrival(ArrivalEvent) error   { return nil }
func (NopSink) RecordOccupancy(int, int) error     { return nil }
