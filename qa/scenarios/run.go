package scenarios

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tkerdo/portflow/app"
	"github.com/tkerdo/portflow/config"
	"github.com/tkerdo/portflow/infra/metrics"
)

// RunScenario executes one planning scenario and checks its expectations.
func RunScenario(t *testing.T, sc *Scenario) {
	reg := prometheus.NewRegistry()
	sink, err := metrics.NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("prom sink: %v", err)
	}

	cfg := config.Default()
	cfg.Engine.Seed = sc.Seed

	planner := app.NewWithSink(cfg, sink)
	defer planner.Close()

	in, err := sc.ToInput()
	if err != nil {
		t.Fatalf("scenario input: %v", err)
	}

	out := planner.Plan(in)

	if got := counterValue(t, reg, "planning_runs_total"); got != 1 {
		t.Errorf("scenario %s: planning_runs_total = %v, want 1", sc.Name, got)
	}
	if out.KPI.Assigned < sc.Expected.MinAssigned {
		t.Errorf("scenario %s: assigned %d vessels, expected at least %d",
			sc.Name, out.KPI.Assigned, sc.Expected.MinAssigned)
	}
	if got := len(out.Report.Conflicts); got > sc.Expected.MaxConflicts {
		t.Errorf("scenario %s: %d conflicts, expected at most %d",
			sc.Name, got, sc.Expected.MaxConflicts)
	}
	for _, v := range out.Vessels {
		if v.Scheduled && v.AssignedBerth == "" {
			t.Errorf("scenario %s: vessel %s scheduled without a berth", sc.Name, v.ID)
		}
	}
}

func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
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
