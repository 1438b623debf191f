package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	coremetrics "github.com/tkerdo/portflow/core/metrics"
)

func TestPromSinkRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}

	err = sink.RecordPlanResult(coremetrics.PlanResult{
		RunID:     "r1",
		Objective: 42.5,
		Elapsed:   10 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if got := testutil.ToFloat64(sink.runs); got != 1 {
		t.Errorf("runs counter %v want 1", got)
	}
	if got := testutil.ToFloat64(sink.objective); got != 42.5 {
		t.Errorf("objective gauge %v want 42.5", got)
	}

	if err := sink.RecordConflict(coremetrics.ConflictEvent{Kind: "berth_overlap", Channel: "deep", Severity: "high"}); err != nil {
		t.Fatalf("conflict: %v", err)
	}
	if got := testutil.ToFloat64(sink.conflicts.WithLabelValues("berth_overlap", "deep", "high")); got != 1 {
		t.Errorf("conflict counter %v want 1", got)
	}

	if err := sink.RecordImprovement(coremetrics.ImprovementEvent{Move: "swap"}); err != nil {
		t.Fatalf("improvement: %v", err)
	}
	if got := testutil.ToFloat64(sink.improvements.WithLabelValues("swap")); got != 1 {
		t.Errorf("improvement counter %v want 1", got)
	}
}

func TestPromSinkDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPromSinkWithRegistry(reg); err != nil {
		t.Fatalf("first: %v", err)
	}
	if _, err := NewPromSinkWithRegistry(reg); err != nil {
		t.Fatalf("second registration must reuse collectors: %v", err)
	}
}

func TestPromSinkSecondSinkSharesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("second: %v", err)
	}

	if err := second.RecordPlanResult(coremetrics.PlanResult{RunID: "r1"}); err != nil {
		t.Fatalf("record: %v", err)
	}

	// Records through either sink must land in the registered series.
	if got := testutil.ToFloat64(first.runs); got != 1 {
		t.Errorf("runs via first sink %v want 1", got)
	}
	if got := gatherCounter(t, reg, "planning_runs_total"); got != 1 {
		t.Errorf("gathered planning_runs_total %v want 1", got)
	}
}

func gatherCounter(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		var total float64
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
		return total
	}
	return 0
}
