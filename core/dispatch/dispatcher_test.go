package dispatch

import (
	"math"
	"testing"

	"github.com/verticore/liftsim/core/elevator"
	"github.com/verticore/liftsim/core/model"
)

type testArena map[int]*model.Passenger

func (a testArena) Passenger(id int) *model.Passenger { return a[id] }

func newCar(t *testing.T, id, floor int) *elevator.Car {
	t.Helper()
	car, err := elevator.New(elevator.Config{
		ID:         id,
		StartFloor: floor,
		Capacity:   10,
		LoadFactor: 0.8,
		DoorSteps:  3,
	})
	if err != nil {
		t.Fatalf("new car: %v", err)
	}
	return car
}

// movingCar returns a car sweeping in the given direction by boarding a
// passenger headed that way.
func movingCar(t *testing.T, arena testArena, id, floor int, dir model.Direction) *elevator.Car {
	t.Helper()
	car := newCar(t, id, floor)
	dest := floor + 1
	if dir == model.DirectionDown {
		dest = floor - 1
	}
	p := model.NewPassenger(100+id, floor, dest, 0)
	arena[p.ID] = p
	if err := car.Board(p); err != nil {
		t.Fatalf("board: %v", err)
	}
	return car
}

func TestScoreArithmetic(t *testing.T) {
	arena := testArena{}
	p := model.NewPassenger(0, 5, 6, 0) // heading up

	idle := newCar(t, 0, 0)
	if got := Score(idle, p); got != 7.5 {
		t.Fatalf("idle score %v, want 7.5 (distance 5, multiplier 1)", got)
	}

	same := movingCar(t, arena, 1, 1, model.DirectionUp)
	if got := Score(same, p); got != 3 {
		t.Fatalf("same-direction score %v, want 3 (distance 4, multiplier 0.5)", got)
	}

	opposite := movingCar(t, arena, 2, 9, model.DirectionDown)
	if got := Score(opposite, p); got != 12 {
		t.Fatalf("opposite-direction score %v, want 12 (distance 4, multiplier 2)", got)
	}
}

func TestAssignPrefersLowestScore(t *testing.T) {
	arena := testArena{}
	p := model.NewPassenger(0, 5, 6, 0)
	fleet := []*elevator.Car{
		newCar(t, 0, 0),                                  // score 7.5
		movingCar(t, arena, 1, 1, model.DirectionUp),     // score 3
		movingCar(t, arena, 2, 9, model.DirectionDown),   // score 12
	}
	id, ok := NearestCarDispatcher{}.Assign(p, fleet)
	if !ok || id != 1 {
		t.Fatalf("assigned car %d ok=%v, want car 1", id, ok)
	}
}

func TestAssignTieBreaksToLowestID(t *testing.T) {
	// Two idle cars equidistant from the origin: floor 0 and floor 10
	// around origin 5. Exact same score, lowest id must win.
	p := model.NewPassenger(0, 5, 6, 0)
	fleet := []*elevator.Car{newCar(t, 0, 0), newCar(t, 1, 10)}
	a := Score(fleet[0], p)
	b := Score(fleet[1], p)
	if math.Abs(a-b) > 1e-12 {
		t.Fatalf("expected tie, got %v vs %v", a, b)
	}
	for i := 0; i < 10; i++ {
		id, ok := NearestCarDispatcher{}.Assign(p, fleet)
		if !ok || id != 0 {
			t.Fatalf("tie broken to car %d ok=%v, want car 0", id, ok)
		}
	}
}

func TestAssignSkipsFullCars(t *testing.T) {
	arena := testArena{}
	near, err := elevator.New(elevator.Config{ID: 0, StartFloor: 5, Capacity: 2, LoadFactor: 0.8, DoorSteps: 3})
	if err != nil {
		t.Fatalf("new car: %v", err)
	}
	rider := model.NewPassenger(50, 5, 7, 0)
	arena[rider.ID] = rider
	if err := near.Board(rider); err != nil {
		t.Fatalf("board: %v", err)
	}
	far := newCar(t, 1, 9)

	p := model.NewPassenger(0, 5, 6, 0)
	id, ok := NearestCarDispatcher{}.Assign(p, []*elevator.Car{near, far})
	if !ok || id != 1 {
		t.Fatalf("assigned car %d ok=%v, want the car with headroom", id, ok)
	}
}

func TestAssignReportsNoHeadroom(t *testing.T) {
	arena := testArena{}
	full, err := elevator.New(elevator.Config{ID: 0, StartFloor: 0, Capacity: 2, LoadFactor: 0.8, DoorSteps: 3})
	if err != nil {
		t.Fatalf("new car: %v", err)
	}
	rider := model.NewPassenger(50, 0, 2, 0)
	arena[rider.ID] = rider
	if err := full.Board(rider); err != nil {
		t.Fatalf("board: %v", err)
	}

	p := model.NewPassenger(0, 1, 3, 0)
	if _, ok := (NearestCarDispatcher{}).Assign(p, []*elevator.Car{full}); ok {
		t.Fatal("expected no assignment when every car is full")
	}
	if p.State != model.StateWaiting {
		t.Fatalf("unassigned passenger mutated: %s", p.State)
	}
}
