package conflict

import (
	"reflect"
	"testing"

	"github.com/tkerdo/portflow/core/model"
)

func scheduledVessel(id, berth string, start, duration float64) model.Vessel {
	return model.Vessel{
		ID:            id,
		Category:      model.CategoryContainer,
		LengthM:       200,
		DraftM:        10,
		Priority:      5,
		AssignedBerth: berth,
		StartHour:     start,
		DurationH:     duration,
		Scheduled:     true,
	}
}

func TestDetectBerthOverlap(t *testing.T) {
	zones := map[string]model.Zone{"B01": model.ZoneGeneral}
	vessels := []model.Vessel{
		scheduledVessel("v1", "B01", 0, 4),
		scheduledVessel("v2", "B01", 2, 4),
	}

	report := NewDetector().Detect(vessels, zones)
	if !report.HasConflict() {
		t.Fatalf("expected a conflict")
	}
	found := false
	for _, c := range report.Conflicts {
		if c.Kind == KindBerthOverlap && c.VesselA == "v1" && c.VesselB == "v2" {
			found = true
			if c.Severity != SeverityHigh {
				t.Errorf("berth overlap must be high severity")
			}
		}
	}
	if !found {
		t.Fatalf("missing berth overlap for v1/v2: %+v", report.Conflicts)
	}
}

func TestDetectDeepChannelCollision(t *testing.T) {
	zones := map[string]model.Zone{"D1": model.ZoneDeep, "D2": model.ZoneDeep}
	vessels := []model.Vessel{
		scheduledVessel("v1", "D1", 1, 4),
		scheduledVessel("v2", "D2", 2, 4),
	}

	report := NewDetector().Detect(vessels, zones)
	var rec *Record
	for i, c := range report.Conflicts {
		if c.Kind == KindChannelCollision {
			rec = &report.Conflicts[i]
		}
	}
	if rec == nil {
		t.Fatalf("deep channel capacity 1 must flag the pair")
	}
	if rec.Channel != model.ChannelDeep || rec.Severity != SeverityHigh {
		t.Errorf("deep collision should be high severity, got %+v", rec)
	}
	// Overlap [2,5) has midpoint 3.5h -> slot 1 of 10 over 24h.
	if rec.TimeSlot != 1 {
		t.Errorf("expected slot 1, got %d", rec.TimeSlot)
	}
}

func TestDetectFeederToleratesPairFlagsTriple(t *testing.T) {
	zones := map[string]model.Zone{"F1": model.ZoneFeeder, "F2": model.ZoneFeeder, "G1": model.ZoneGeneral}
	pair := []model.Vessel{
		scheduledVessel("v1", "F1", 1, 4),
		scheduledVessel("v2", "F2", 2, 4),
	}
	report := NewDetector().Detect(pair, zones)
	for _, c := range report.Conflicts {
		if c.Kind == KindChannelCollision {
			t.Fatalf("two vessels fit the feeder channel (capacity 2): %+v", c)
		}
	}

	triple := append(pair, scheduledVessel("v3", "G1", 2, 4))
	report = NewDetector().Detect(triple, zones)
	var collisions int
	for _, c := range report.Conflicts {
		if c.Kind == KindChannelCollision {
			collisions++
			if c.Severity != SeverityMedium {
				t.Errorf("feeder collision should be medium severity")
			}
		}
	}
	if collisions == 0 {
		t.Fatalf("three overlapping feeder transits exceed capacity 2")
	}
}

func TestDetectIdempotent(t *testing.T) {
	zones := map[string]model.Zone{"D1": model.ZoneDeep, "D2": model.ZoneDeep, "B01": model.ZoneGeneral}
	vessels := []model.Vessel{
		scheduledVessel("v1", "D1", 0, 4),
		scheduledVessel("v2", "D2", 2, 6),
		scheduledVessel("v3", "B01", 5, 4),
		scheduledVessel("v4", "B01", 7, 4),
	}

	d := NewDetector()
	first := d.Detect(vessels, zones)
	second := d.Detect(vessels, zones)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("detection must be idempotent")
	}
}

func TestDetectIgnoresUnscheduled(t *testing.T) {
	zones := map[string]model.Zone{"D1": model.ZoneDeep}
	v := scheduledVessel("v1", "D1", 0, 4)
	u := model.Vessel{ID: "u1"}

	report := NewDetector().Detect([]model.Vessel{v, u}, zones)
	if report.HasConflict() {
		t.Fatalf("a single scheduled vessel cannot conflict: %+v", report.Conflicts)
	}
}
