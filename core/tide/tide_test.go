package tide

import (
	"testing"

	"github.com/tkerdo/portflow/core/model"
)

func clock(t *testing.T, s string) model.Clock {
	t.Helper()
	c, err := model.ParseClock(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return c
}

func sixHourTable(t *testing.T) Table {
	return NewTable([]Sample{
		{Time: clock(t, "00:00"), HeightM: 1.2},
		{Time: clock(t, "06:00"), HeightM: 3.4},
		{Time: clock(t, "12:00"), HeightM: 1.0},
		{Time: clock(t, "18:00"), HeightM: 3.1},
	})
}

func TestHeightAtNearestSample(t *testing.T) {
	tbl := sixHourTable(t)
	if h := tbl.HeightAt(clock(t, "05:00")); h != 3.4 {
		t.Errorf("05:00 nearest 06:00, got %v", h)
	}
	if h := tbl.HeightAt(clock(t, "13:30")); h != 1.0 {
		t.Errorf("13:30 nearest 12:00, got %v", h)
	}
}

func TestHeightAtTieKeepsFirst(t *testing.T) {
	tbl := sixHourTable(t)
	// 03:00 is exactly 3h from both 00:00 and 06:00. The first entry wins.
	if h := tbl.HeightAt(clock(t, "03:00")); h != 1.2 {
		t.Errorf("tie must keep table order, got %v", h)
	}
}

func TestHeightAtEmptyTable(t *testing.T) {
	if h := NewTable(nil).HeightAt(0); h != 0 {
		t.Errorf("empty table should report 0, got %v", h)
	}
}

func TestCheckWindow(t *testing.T) {
	chk := NewChecker(sixHourTable(t))
	berth := model.Berth{ID: "B01", Zone: model.ZoneDeep, LengthM: 450, DepthM: 15}

	// Draft 16.5 requires 17.5m; at 06:00 depth 15 + 3.4 = 18.4 passes.
	w := chk.Check(16.5, berth, clock(t, "06:00"))
	if !w.Feasible {
		t.Fatalf("expected feasible, margin %v", w.MarginM)
	}
	if w.RequiredDepthM != 17.5 {
		t.Errorf("required depth %v want 17.5", w.RequiredDepthM)
	}

	// At 12:00 depth 15 + 1.0 = 16.0 falls short; margin is negative.
	w = chk.Check(16.5, berth, clock(t, "12:00"))
	if w.Feasible {
		t.Fatalf("expected infeasible at low tide")
	}
	if w.MarginM >= 0 {
		t.Errorf("margin should be negative, got %v", w.MarginM)
	}
}
