package metrics

import (
	"testing"

	coremetrics "github.com/verticore/liftsim/core/metrics"
)

type recordSink struct {
	count int
}

func (r *recordSink) RecordDelivery(coremetrics.DeliveryEvent) error {
	r.count++
	return nil
}

func (r *recordSink) RecordEnergy(coremetrics.EnergyEvent) error {
	r.count++
	return nil
}

func (r *recordSink) RecordArrival(coremetrics.ArrivalEvent) error {
	r.count++
	return nil
}

type occupancySink struct {
	recordSink
	occupancy int
}

func (o *occupancySink) RecordOccupancy(_, onboard int) error {
	o.occupancy = onboard
	return nil
}

func TestMultiSink(t *testing.T) {
	s1 := &recordSink{}
	s2 := &recordSink{}
	m := NewMultiSink(s1, s2)
	if err := m.RecordDelivery(coremetrics.DeliveryEvent{}); err != nil {
		t.Fatalf("record delivery: %v", err)
	}
	if err := m.RecordEnergy(coremetrics.EnergyEvent{}); err != nil {
		t.Fatalf("record energy: %v", err)
	}
	if err := m.RecordArrival(coremetrics.ArrivalEvent{}); err != nil {
		t.Fatalf("record arrival: %v", err)
	}
	if s1.count != 3 || s2.count != 3 {
		t.Fatalf("events not forwarded: %d %d", s1.count, s2.count)
	}
}

func TestMultiSinkOccupancySkipsUnsupported(t *testing.T) {
	plain := &recordSink{}
	occ := &occupancySink{}
	m := NewMultiSink(plain, occ)
	if err := m.RecordOccupancy(0, 4); err != nil {
		t.Fatalf("record occupancy: %v", err)
	}
	if occ.occupancy != 4 {
		t.Fatalf("occupancy not forwarded: %d", occ.occupancy)
	}
	if plain.count != 0 {
		t.Fatalf("plain sink should not have been called")
	}
}
