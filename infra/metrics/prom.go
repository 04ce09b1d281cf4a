package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coremetrics "github.com/verticore/liftsim/core/metrics"
)

// PromSink records simulation events in Prometheus metrics.
type PromSink struct {
	deliveries *prometheus.CounterVec
	arrivals   *prometheus.CounterVec
	energy     *prometheus.CounterVec
	wait       *prometheus.HistogramVec
	occupancy  *prometheus.GaugeVec
}

// NewPromSink registers simulation metrics on the default Prometheus
// registerer. The HTTP endpoint is started separately via StartPromServer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	deliveries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "liftsim_deliveries_total",
		Help: "Passengers delivered, by car",
	}, []string{"car"})
	arrivals := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "liftsim_arrivals_total",
		Help: "Passenger requests generated, by hour of day",
	}, []string{"hour"})
	energy := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "liftsim_energy_units_total",
		Help: "Energy consumed, by car",
	}, []string{"car"})
	wait := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "liftsim_wait_steps",
		Help:    "Passenger wait time in simulation steps",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"hour"})
	occupancy := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "liftsim_cabin_occupancy",
		Help: "Passengers onboard, by car",
	}, []string{"car"})

	s := &PromSink{deliveries: deliveries, arrivals: arrivals, energy: energy, wait: wait, occupancy: occupancy}
	for _, c := range []prometheus.Collector{deliveries, arrivals, energy, wait, occupancy} {
		if err := register(reg, c, s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func register(reg prometheus.Registerer, c prometheus.Collector, s *PromSink) error {
	err := reg.Register(c)
	if err == nil {
		return nil
	}
	are, ok := err.(prometheus.AlreadyRegisteredError)
	if !ok {
		return err
	}
	switch c {
	case s.deliveries:
		s.deliveries = are.ExistingCollector.(*prometheus.CounterVec)
	case s.arrivals:
		s.arrivals = are.ExistingCollector.(*prometheus.CounterVec)
	case s.energy:
		s.energy = are.ExistingCollector.(*prometheus.CounterVec)
	case s.wait:
		s.wait = are.ExistingCollector.(*prometheus.HistogramVec)
	case s.occupancy:
		s.occupancy = are.ExistingCollector.(*prometheus.GaugeVec)
	}
	return nil
}

// RecordDelivery increments the delivery counter and observes the wait.
func (s *PromSink) RecordDelivery(ev coremetrics.DeliveryEvent) error {
	s.deliveries.WithLabelValues(strconv.Itoa(ev.CarID)).Inc()
	s.wait.WithLabelValues(strconv.Itoa(ev.Hour)).Observe(float64(ev.WaitSteps))
	return nil
}

// RecordEnergy adds the per-tick energy delta to the car's counter.
func (s *PromSink) RecordEnergy(ev coremetrics.EnergyEvent) error {
	s.energy.WithLabelValues(strconv.Itoa(ev.CarID)).Add(ev.Units)
	return nil
}

// RecordArrival increments the arrival counter for the hour.
func (s *PromSink) RecordArrival(ev coremetrics.ArrivalEvent) error {
	s.arrivals.WithLabelValues(strconv.Itoa(ev.Hour)).Inc()
	return nil
}

// RecordOccupancy sets the cabin occupancy gauge.
func (s *PromSink) RecordOccupancy(carID, onboard int) error {
	s.occupancy.WithLabelValues(strconv.Itoa(carID)).Set(float64(onboard))
	return nil
}

// StartPromServer exposes /metrics on the given port until ctx is canceled.
func StartPromServer(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: ":" + port, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
