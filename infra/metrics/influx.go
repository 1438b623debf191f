package metrics

import (
	"context"
	"net/http"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/tkerdo/portflow/core/metrics"
	"github.com/tkerdo/portflow/infra/logger"
)

// InfluxSink writes planning results to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	client := influxdb2.NewClientWithOptions(url, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback pings the InfluxDB instance and returns a
// NopSink when the health check fails, so planning keeps working without
// the database.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.PlanSink {
	sink := NewInfluxSink(url, token, org, bucket)
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

// RecordPlanResult writes the planning run as a measurement point.
func (s *InfluxSink) RecordPlanResult(res coremetrics.PlanResult) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("plan_result").
		AddTag("run_id", res.RunID).
		AddField("vessels", res.Vessels).
		AddField("assigned", res.Assigned).
		AddField("delayed", res.Delayed).
		AddField("conflicts", res.Conflicts).
		AddField("iterations", res.Iterations).
		AddField("improvements", res.Improvements).
		AddField("objective", res.Objective).
		AddField("efficiency", res.Efficiency).
		AddField("cost", res.Cost).
		AddField("fuel_savings_tons", res.FuelSavingsTons).
		AddField("elapsed_ms", res.Elapsed.Milliseconds()).
		SetTime(res.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordConflict writes one conflict as a measurement point.
func (s *InfluxSink) RecordConflict(ev coremetrics.ConflictEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("schedule_conflict").
		AddTag("run_id", ev.RunID).
		AddTag("kind", ev.Kind).
		AddTag("channel", ev.Channel).
		AddTag("severity", ev.Severity).
		AddField("count", 1).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() {
	s.client.Close()
}
