package model

import "testing"

func TestParseClock(t *testing.T) {
	c, err := ParseClock("11:00")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.Hours() != 11 {
		t.Errorf("expected 11h got %v", c.Hours())
	}
	if c.String() != "11:00" {
		t.Errorf("round trip got %s", c.String())
	}
}

func TestParseClockInvalid(t *testing.T) {
	for _, s := range []string{"", "abc", "25:00", "12:75", "-1:30"} {
		if _, err := ParseClock(s); err == nil {
			t.Errorf("expected error for %q", s)
		}
	}
}

func TestClockAddWraps(t *testing.T) {
	c, _ := ParseClock("23:30")
	got := c.Add(45)
	if got.String() != "00:15" {
		t.Errorf("expected 00:15 got %s", got)
	}
	back := got.Add(-45)
	if back.String() != "23:30" {
		t.Errorf("expected 23:30 got %s", back)
	}
}

func TestMinutesUntilSigned(t *testing.T) {
	a, _ := ParseClock("23:00")
	b, _ := ParseClock("01:00")
	if d := a.MinutesUntil(b); d != 120 {
		t.Errorf("expected 120 got %v", d)
	}
	if d := b.MinutesUntil(a); d != -120 {
		t.Errorf("expected -120 got %v", d)
	}
}

func TestIntervalOverlaps(t *testing.T) {
	a := Interval{Start: 0, End: 4}
	b := Interval{Start: 2, End: 6}
	c := Interval{Start: 4, End: 8}
	if !a.Overlaps(b) {
		t.Errorf("[0,4) and [2,6) should overlap")
	}
	if a.Overlaps(c) {
		t.Errorf("[0,4) and [4,8) should not overlap")
	}
}

func TestZonesForPolicy(t *testing.T) {
	tanker := Vessel{Category: CategoryTanker}
	zones := ZonesFor(tanker)
	if len(zones) != 1 || zones[0] != ZoneDeep {
		t.Fatalf("tanker must be deep-only, got %v", zones)
	}
	bulk := Vessel{Category: CategoryBulk}
	zones = ZonesFor(bulk)
	if len(zones) != 3 || zones[0] != ZoneGeneral {
		t.Fatalf("non-tanker should rank general first, got %v", zones)
	}
	if !ZoneEligible(bulk, Berth{Zone: ZoneFeeder}) {
		t.Errorf("bulk vessel should accept a feeder berth")
	}
	if ZoneEligible(tanker, Berth{Zone: ZoneGeneral}) {
		t.Errorf("tanker must not accept a general berth")
	}
}
