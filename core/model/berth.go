package model

import "fmt"

// Zone classifies berths by depth and the traffic they admit.
type Zone string

const (
	ZoneDeep    Zone = "deep"
	ZoneGeneral Zone = "general"
	ZoneFeeder  Zone = "feeder"
)

// ChannelClass identifies which navigation channel serves a berth.
type ChannelClass string

const (
	ChannelDeep   ChannelClass = "deep"
	ChannelFeeder ChannelClass = "feeder"
)

// Channel returns the navigation channel serving the zone. Only the deep
// zone uses the deep-water channel; general and feeder berths share the
// feeder channel.
func (z Zone) Channel() ChannelClass {
	if z == ZoneDeep {
		return ChannelDeep
	}
	return ChannelFeeder
}

// Berth is a quay position. Occupancy is external state the engine reads
// and, after assignment, helps update.
type Berth struct {
	ID         string
	Zone       Zone
	LengthM    float64
	DepthM     float64
	Occupied   bool
	OccupantID string
}

// Validate checks the berth definition.
func (b Berth) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("berth id is required")
	}
	if b.LengthM <= 0 || b.DepthM <= 0 {
		return fmt.Errorf("berth %s: length and depth must be positive", b.ID)
	}
	switch b.Zone {
	case ZoneDeep, ZoneGeneral, ZoneFeeder:
	default:
		return fmt.Errorf("berth %s: unknown zone %q", b.ID, b.Zone)
	}
	return nil
}

// ZonesFor returns the ranked list of zones acceptable for the vessel.
// Tankers are restricted to the deep zone; everything else prefers the
// general zone, falls back to deep, and takes a feeder berth last.
func ZonesFor(v Vessel) []Zone {
	if v.Category == CategoryTanker {
		return []Zone{ZoneDeep}
	}
	return []Zone{ZoneGeneral, ZoneDeep, ZoneFeeder}
}

// ZoneEligible reports whether the berth's zone is acceptable for the vessel.
func ZoneEligible(v Vessel, b Berth) bool {
	for _, z := range ZonesFor(v) {
		if b.Zone == z {
			return true
		}
	}
	return false
}
