package metrics

import (
	coremetrics "github.com/tkerdo/portflow/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records planning results in Prometheus metrics.
type PromSink struct {
	runs         prometheus.Counter
	conflicts    *prometheus.CounterVec
	improvements *prometheus.CounterVec
	objective    prometheus.Gauge
	savings      prometheus.Gauge
	duration     prometheus.Histogram
}

// NewPromSink registers planning metrics on the default registerer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "planning_runs_total",
			Help: "Total number of completed planning runs",
		}),
		conflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "schedule_conflicts_total",
			Help: "Conflicts detected in final schedules",
		}, []string{"kind", "channel", "severity"}),
		improvements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "optimizer_improvements_total",
			Help: "Accepted optimizer moves by neighborhood",
		}, []string{"move"}),
		objective: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "plan_objective",
			Help: "Objective value of the last planning run",
		}),
		savings: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "plan_fuel_savings_tons",
			Help: "Projected fuel savings of the last planning run",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "plan_duration_seconds",
			Help:    "Wall time of planning runs",
			Buckets: prometheus.DefBuckets,
		}),
	}

	var err error
	if s.runs, err = registerOrExisting(reg, s.runs); err != nil {
		return nil, err
	}
	if s.conflicts, err = registerOrExisting(reg, s.conflicts); err != nil {
		return nil, err
	}
	if s.improvements, err = registerOrExisting(reg, s.improvements); err != nil {
		return nil, err
	}
	if s.objective, err = registerOrExisting(reg, s.objective); err != nil {
		return nil, err
	}
	if s.savings, err = registerOrExisting(reg, s.savings); err != nil {
		return nil, err
	}
	if s.duration, err = registerOrExisting(reg, s.duration); err != nil {
		return nil, err
	}
	return s, nil
}

// registerOrExisting registers the collector and, when an equal collector
// is already registered, hands back the registered one so every sink on
// the registerer shares the same series.
func registerOrExisting[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(T), nil
		}
		var zero T
		return zero, err
	}
	return c, nil
}

// RecordPlanResult updates run counters and last-run gauges.
func (s *PromSink) RecordPlanResult(res coremetrics.PlanResult) error {
	s.runs.Inc()
	s.objective.Set(res.Objective)
	s.savings.Set(res.FuelSavingsTons)
	s.duration.Observe(res.Elapsed.Seconds())
	return nil
}

// RecordConflict increments the conflict counter.
func (s *PromSink) RecordConflict(ev coremetrics.ConflictEvent) error {
	s.conflicts.WithLabelValues(ev.Kind, ev.Channel, ev.Severity).Inc()
	return nil
}

// RecordImprovement increments the per-neighborhood move counter.
func (s *PromSink) RecordImprovement(ev coremetrics.ImprovementEvent) error {
	s.improvements.WithLabelValues(ev.Move).Inc()
	return nil
}
