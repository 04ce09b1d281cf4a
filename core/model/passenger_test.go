package model

import "testing"

func TestPassengerDirection(t *testing.T) {
	up := NewPassenger(0, 1, 5, 0)
	if up.Direction() != DirectionUp {
		t.Fatalf("expected up, got %s", up.Direction())
	}
	down := NewPassenger(1, 5, 1, 0)
	if down.Direction() != DirectionDown {
		t.Fatalf("expected down, got %s", down.Direction())
	}
}

func TestPassengerLifecycle(t *testing.T) {
	p := NewPassenger(7, 0, 3, 42)
	if p.State != StateWaiting || p.CarID != NoCar {
		t.Fatalf("unexpected initial state %s car %d", p.State, p.CarID)
	}
	p.MarkBoarded(2)
	if p.State != StateInTransit || p.CarID != 2 {
		t.Fatalf("unexpected boarded state %s car %d", p.State, p.CarID)
	}
	p.MarkDelivered()
	if p.State != StateDelivered {
		t.Fatalf("unexpected delivered state %s", p.State)
	}
}

func TestPassengerForwardOnlyTransitions(t *testing.T) {
	p := NewPassenger(0, 0, 3, 0)

	mustPanic(t, "deliver a waiting passenger", func() { p.MarkDelivered() })

	p.MarkBoarded(0)
	mustPanic(t, "board an in-transit passenger", func() { p.MarkBoarded(1) })

	p.MarkDelivered()
	mustPanic(t, "deliver a delivered passenger", func() { p.MarkDelivered() })
}

func mustPanic(t *testing.T, what string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic: %s", what)
		}
	}()
	fn()
}
