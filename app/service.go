// Package app wires the configuration into a runnable simulation service.
package app

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/verticore/liftsim/config"
	"github.com/verticore/liftsim/core/arrivals"
	"github.com/verticore/liftsim/core/elevator"
	"github.com/verticore/liftsim/core/events"
	coremetrics "github.com/verticore/liftsim/core/metrics"
	"github.com/verticore/liftsim/core/report"
	"github.com/verticore/liftsim/core/sim"
	"github.com/verticore/liftsim/infra/logger"
	"github.com/verticore/liftsim/infra/metrics"
	"github.com/verticore/liftsim/internal/eventbus"
)

// Service owns one simulation run: engine, sinks, event bus and reporting.
type Service struct {
	RunID string

	cfg    *config.Config
	engine *sim.Engine
	bus    *eventbus.Bus
	log    logger.Logger
	out    io.Writer
}

// New builds a Service from the configuration. The report is written to out
// when the run finishes.
func New(cfg *config.Config, out io.Writer) (*Service, error) {
	logg := logger.New("service")
	runID := uuid.NewString()

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	source := sim.NewRandomArrivals(
		cfg.Arrivals.Model(),
		arrivals.NewGenerator(cfg.Building.Floors, rng),
		rng,
	)

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink()
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(metrics.InfluxConfig{
			URL:    cfg.Metrics.InfluxURL,
			Token:  cfg.Metrics.InfluxToken,
			Org:    cfg.Metrics.InfluxOrg,
			Bucket: cfg.Metrics.InfluxBucket,
			RunID:  runID,
		}))
	}
	var sink coremetrics.Sink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	cars := make([]elevator.Config, cfg.Fleet.Count)
	for i := range cars {
		cars[i] = elevator.Config{
			StartFloor: cfg.Fleet.StartFloor,
			Capacity:   cfg.Fleet.Capacity,
			LoadFactor: cfg.Fleet.LoadFactor,
			DoorSteps:  cfg.Fleet.DoorSteps,
			Energy: elevator.EnergyCosts{
				Acceleration:     cfg.Energy.Acceleration,
				DoorCycle:        cfg.Energy.DoorCycle,
				MoveBase:         cfg.Energy.MoveBase,
				MovePerPassenger: cfg.Energy.MovePerPassenger,
			},
		}
	}

	bus := eventbus.New()
	engine, err := sim.New(sim.Config{
		Floors:       cfg.Building.Floors,
		Cars:         cars,
		StepsPerHour: cfg.Simulation.StepsPerHour,
		Hours:        cfg.Simulation.Hours,
	}, source,
		sim.WithSink(sink),
		sim.WithBus(bus),
		sim.WithLogger(logg),
	)
	if err != nil {
		return nil, err
	}

	return &Service{RunID: runID, cfg: cfg, engine: engine, bus: bus, log: logg, out: out}, nil
}

// Run executes the simulation, writes the textual report to out and returns
// the report for further export. It blocks until the run completes or the
// context is canceled.
func (s *Service) Run(ctx context.Context) (report.Report, error) {
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	go s.watch(s.bus.Subscribe())

	s.log.Infof("run %s: %d cars, %d floors, %d hours",
		s.RunID, s.cfg.Fleet.Count, s.cfg.Building.Floors, s.cfg.Simulation.Hours)
	stats, err := s.engine.Run(ctx)
	if err != nil {
		return report.Report{}, err
	}
	rep := report.Build(s.RunID, stats)
	if err := rep.WriteText(s.out); err != nil {
		return report.Report{}, err
	}
	return rep, nil
}

// watch drains the event bus, surfacing deliveries at debug level.
func (s *Service) watch(sub <-chan eventbus.Event) {
	for ev := range sub {
		if d, ok := ev.(events.PassengerDelivered); ok {
			s.log.Debugf("passenger %d delivered at floor %d by car %d after %d steps",
				d.PassengerID, d.Floor, d.CarID, d.WaitSteps)
		}
	}
}

// Close releases the event bus.
func (s *Service) Close() error {
	s.bus.Close()
	return nil
}
