package metrics

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/verticore/liftsim/core/metrics"
	"github.com/verticore/liftsim/infra/logger"
)

// InfluxConfig identifies the target InfluxDB instance.
type InfluxConfig struct {
	URL    string `json:"url"`
	Token  string `json:"token"`
	Org    string `json:"org"`
	Bucket string `json:"bucket"`
	RunID  string `json:"-"`
}

// InfluxSink writes simulation events to an InfluxDB instance using the
// official client. Points carry the run id so overlapping runs stay separable.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	runID    string
	log      logger.Logger
}

// NewInfluxSink creates a sink for the given InfluxDB endpoint.
func NewInfluxSink(cfg InfluxConfig) *InfluxSink {
	base := strings.TrimSuffix(cfg.URL, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, cfg.Token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.Org, cfg.Bucket),
		runID:    cfg.RunID,
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback pings the InfluxDB instance and returns a NopSink
// when the health check fails, so a missing database never blocks a run.
func NewInfluxSinkWithFallback(cfg InfluxConfig) coremetrics.Sink {
	sink := NewInfluxSink(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// Close flushes and releases the underlying client.
func (s *InfluxSink) Close() {
	s.client.Close()
}

// RecordDelivery writes a delivery point.
func (s *InfluxSink) RecordDelivery(ev coremetrics.DeliveryEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("delivery").
		AddTag("run_id", s.runID).
		AddTag("car", strconv.Itoa(ev.CarID)).
		AddTag("hour", strconv.Itoa(ev.Hour)).
		AddField("wait_steps", ev.WaitSteps).
		AddField("floor", ev.Floor).
		SetTime(time.Now())
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordEnergy writes an energy point.
func (s *InfluxSink) RecordEnergy(ev coremetrics.EnergyEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("energy").
		AddTag("run_id", s.runID).
		AddTag("car", strconv.Itoa(ev.CarID)).
		AddField("units", ev.Units).
		AddField("step", ev.Step).
		SetTime(time.Now())
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordArrival writes an arrival point.
func (s *InfluxSink) RecordArrival(ev coremetrics.ArrivalEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("arrival").
		AddTag("run_id", s.runID).
		AddTag("hour", strconv.Itoa(ev.Hour)).
		AddField("from", ev.From).
		AddField("to", ev.To).
		SetTime(time.Now())
	return s.writeAPI.WritePoint(ctx, p)
}
