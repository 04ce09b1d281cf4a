// Package sim drives the discrete time-stepped simulation: it owns the fleet,
// the passenger arena and all aggregates, and advances them one step at a
// time in a fixed, deterministic order.
package sim

import (
	"context"
	"fmt"

	"github.com/verticore/liftsim/core/dispatch"
	"github.com/verticore/liftsim/core/elevator"
	"github.com/verticore/liftsim/core/events"
	"github.com/verticore/liftsim/core/logger"
	"github.com/verticore/liftsim/core/metrics"
	"github.com/verticore/liftsim/core/model"
	"github.com/verticore/liftsim/internal/eventbus"
)

// Config holds the engine parameters.
type Config struct {
	Floors       int
	Cars         []elevator.Config
	StepsPerHour int
	Hours        int
}

// Validate rejects configurations the simulation cannot run with.
func (c Config) Validate() error {
	if c.Floors < 2 {
		return fmt.Errorf("building needs at least 2 floors, got %d", c.Floors)
	}
	if len(c.Cars) < 1 {
		return fmt.Errorf("fleet needs at least 1 car")
	}
	if c.StepsPerHour < 1 {
		return fmt.Errorf("steps per hour must be positive, got %d", c.StepsPerHour)
	}
	if c.Hours < 1 {
		return fmt.Errorf("simulated hours must be positive, got %d", c.Hours)
	}
	for _, cc := range c.Cars {
		if cc.StartFloor < 0 || cc.StartFloor >= c.Floors {
			return fmt.Errorf("car %d: start floor %d outside building [0,%d)", cc.ID, cc.StartFloor, c.Floors)
		}
	}
	return nil
}

// Option configures optional engine collaborators.
type Option func(*Engine)

// WithSink sets the metrics sink. Defaults to a no-op sink.
func WithSink(s metrics.Sink) Option {
	return func(e *Engine) { e.sink = s }
}

// WithBus sets the event bus simulation events are published on.
func WithBus(b eventbus.EventBus) Option {
	return func(e *Engine) { e.bus = b }
}

// WithLogger sets the engine logger.
func WithLogger(l logger.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithDispatcher overrides the assignment heuristic.
func WithDispatcher(d dispatch.Dispatcher) Option {
	return func(e *Engine) { e.dispatcher = d }
}

// Engine owns the fleet and every undelivered passenger. Nothing else mutates
// them; the whole run is single-threaded and deterministic.
type Engine struct {
	cfg        Config
	fleet      []*elevator.Car
	source     ArrivalSource
	dispatcher dispatch.Dispatcher

	arena  []*model.Passenger
	active []int

	step  int
	stats Stats

	sink metrics.Sink
	bus  eventbus.EventBus
	log  logger.Logger
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

// New builds an engine with its fleet parked at the configured start floors.
// Cars are created and kept in ascending id order; dispatch tie-breaking
// depends on that order.
func New(cfg Config, source ArrivalSource, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}
	if source == nil {
		return nil, fmt.Errorf("arrival source is required")
	}
	e := &Engine{
		cfg:        cfg,
		source:     source,
		dispatcher: dispatch.NearestCarDispatcher{},
		sink:       metrics.NopSink{},
		log:        nopLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}
	for i, cc := range cfg.Cars {
		cc.ID = i
		car, err := elevator.New(cc)
		if err != nil {
			return nil, err
		}
		e.fleet = append(e.fleet, car)
	}
	return e, nil
}

// Passenger resolves an arena index. It implements elevator.Arena.
func (e *Engine) Passenger(id int) *model.Passenger {
	return e.arena[id]
}

// Fleet returns the cars in ascending id order.
func (e *Engine) Fleet() []*elevator.Car { return e.fleet }

// Step returns the number of steps executed so far.
func (e *Engine) Step() int { return e.step }

// Hour returns the simulated hour of day for the current step.
func (e *Engine) Hour() int {
	return (e.step / e.cfg.StepsPerHour) % HoursPerDay
}

// Tick advances the simulation by one step. Ordering is part of the
// observable contract: arrivals, car ticks, dispatch retries for waiting
// passengers, then delivery reaping.
func (e *Engine) Tick() {
	hour := e.Hour()

	if call, ok := e.source.Next(e.step, hour); ok {
		e.admit(call, hour)
	}

	for _, car := range e.fleet {
		delta := car.Tick(e)
		if delta == 0 {
			continue
		}
		e.stats.TotalEnergy += delta
		e.record(e.sink.RecordEnergy(metrics.EnergyEvent{CarID: car.ID(), Units: delta, Step: e.step}))
	}

	for _, id := range e.active {
		p := e.arena[id]
		if p.State != model.StateWaiting {
			continue
		}
		e.stats.TotalWaitSteps++
		e.tryDispatch(p)
	}

	e.reap(hour)

	// Boardings and releases have both settled; publish the cabin counts.
	if rec, ok := e.sink.(metrics.OccupancyRecorder); ok {
		for _, car := range e.fleet {
			e.record(rec.RecordOccupancy(car.ID(), car.OnboardCount()))
		}
	}
	e.step++
}

// RunSteps executes n steps. The context is only consulted at hour
// boundaries; a finished run is always internally consistent.
func (e *Engine) RunSteps(ctx context.Context, n int) (*Stats, error) {
	for i := 0; i < n; i++ {
		if e.step%e.cfg.StepsPerHour == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		e.Tick()
	}
	e.stats.Steps = e.step
	return &e.stats, nil
}

// Run executes the configured hours times stepsPerHour steps and returns the
// final aggregates.
func (e *Engine) Run(ctx context.Context) (*Stats, error) {
	return e.RunSteps(ctx, e.cfg.Hours*e.cfg.StepsPerHour)
}

func (e *Engine) admit(call model.Call, hour int) {
	p := model.NewPassenger(len(e.arena), call.From, call.To, e.step)
	e.arena = append(e.arena, p)
	e.active = append(e.active, p.ID)
	e.stats.Arrivals++
	e.record(e.sink.RecordArrival(metrics.ArrivalEvent{From: call.From, To: call.To, Hour: hour}))
	e.publish(events.PassengerArrived{PassengerID: p.ID, From: call.From, To: call.To, Step: e.step})
	e.tryDispatch(p)
}

func (e *Engine) tryDispatch(p *model.Passenger) {
	carID, ok := e.dispatcher.Assign(p, e.fleet)
	if !ok {
		return
	}
	car := e.fleet[carID]
	if err := car.Board(p); err != nil {
		// Assign only returns cars with headroom.
		e.log.Errorf("board passenger %d on car %d: %v", p.ID, carID, err)
		return
	}
	e.publish(events.PassengerBoarded{PassengerID: p.ID, CarID: carID, Step: e.step})
}

// reap removes delivered passengers from the active list and folds their wait
// time into the hour-of-day buckets.
func (e *Engine) reap(hour int) {
	kept := e.active[:0]
	for _, id := range e.active {
		p := e.arena[id]
		if p.State != model.StateDelivered {
			kept = append(kept, id)
			continue
		}
		wait := e.step - p.RequestStep
		e.stats.recordDelivery(hour, wait)
		e.record(e.sink.RecordDelivery(metrics.DeliveryEvent{
			PassengerID: p.ID,
			CarID:       p.CarID,
			Floor:       p.Destination,
			WaitSteps:   wait,
			Hour:        hour,
		}))
		e.publish(events.PassengerDelivered{
			PassengerID: p.ID,
			CarID:       p.CarID,
			Floor:       p.Destination,
			WaitSteps:   wait,
			Step:        e.step,
		})
	}
	e.active = kept
}

func (e *Engine) publish(ev eventbus.Event) {
	if e.bus != nil {
		e.bus.Publish(ev)
	}
}

func (e *Engine) record(err error) {
	if err != nil {
		e.log.Warnf("metrics sink: %v", err)
	}
}
