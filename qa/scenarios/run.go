package scenarios

import (
	"context"
	"fmt"

	"github.com/verticore/liftsim/core/elevator"
	"github.com/verticore/liftsim/core/model"
	"github.com/verticore/liftsim/core/sim"
)

// Run replays the scenario and returns the final statistics.
func Run(sc *Scenario) (*sim.Stats, error) {
	capacity := sc.Capacity
	if capacity == 0 {
		capacity = 10
	}
	loadFactor := sc.LoadFactor
	if loadFactor == 0 {
		loadFactor = 0.8
	}
	cars := make([]elevator.Config, sc.Cars)
	for i := range cars {
		cars[i] = elevator.Config{
			StartFloor: sc.StartFloor,
			Capacity:   capacity,
			LoadFactor: loadFactor,
			DoorSteps:  3,
			Energy:     elevator.EnergyCosts{Acceleration: 2, DoorCycle: 3, MoveBase: 1, MovePerPassenger: 0.1},
		}
	}
	calls := make([]sim.ScriptedCall, len(sc.Calls))
	for i, c := range sc.Calls {
		calls[i] = sim.ScriptedCall{Step: c.Step, Call: model.Call{From: c.From, To: c.To}}
	}
	engine, err := sim.New(sim.Config{
		Floors:       sc.Floors,
		Cars:         cars,
		StepsPerHour: 3600,
		Hours:        1,
	}, sim.NewScriptedArrivals(calls))
	if err != nil {
		return nil, err
	}
	return engine.RunSteps(context.Background(), sc.Steps)
}

// Verify checks the statistics against the scenario's expectations.
func Verify(sc *Scenario, stats *sim.Stats) error {
	if stats.Delivered != sc.Expected.Delivered {
		return fmt.Errorf("scenario %s: delivered %d, expected %d", sc.Name, stats.Delivered, sc.Expected.Delivered)
	}
	if sc.Expected.MaxWaitSteps > 0 {
		for _, w := range stats.WaitSamples() {
			if int(w) > sc.Expected.MaxWaitSteps {
				return fmt.Errorf("scenario %s: wait %d exceeds limit %d", sc.Name, int(w), sc.Expected.MaxWaitSteps)
			}
		}
	}
	return nil
}
