package metrics

import coremetrics "github.com/verticore/liftsim/core/metrics"

// MultiSink fans simulation events out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordDelivery forwards the event to all sinks, returning the first error.
func (m *MultiSink) RecordDelivery(ev coremetrics.DeliveryEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordDelivery(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordEnergy forwards the event to all sinks.
func (m *MultiSink) RecordEnergy(ev coremetrics.EnergyEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordEnergy(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordArrival forwards the event to all sinks.
func (m *MultiSink) RecordArrival(ev coremetrics.ArrivalEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordArrival(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordOccupancy forwards occupancy to sinks that support it.
func (m *MultiSink) RecordOccupancy(carID, onboard int) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.OccupancyRecorder); ok {
			if err := rec.RecordOccupancy(carID, onboard); err != nil {
				return err
			}
		}
	}
	return nil
}
