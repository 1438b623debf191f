// Package conflict detects temporal and spatial clashes in a berth
// schedule: two vessels on the same berth with overlapping service
// windows, and more vessels in a navigation channel than its capacity
// admits within a discretized time slot.
package conflict

import "github.com/tkerdo/portflow/core/model"

// Kind labels the conflict type.
type Kind string

const (
	KindBerthOverlap     Kind = "berth_overlap"
	KindChannelCollision Kind = "channel_collision"
)

// Severity grades how disruptive a conflict is.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
)

// Record describes one detected conflict between a pair of vessels.
// Records are output-only and never mutated.
type Record struct {
	VesselA  string
	VesselB  string
	Kind     Kind
	TimeSlot int
	Channel  model.ChannelClass
	Severity Severity
}

// Report is the detector output: the conflict list plus the slot-by-channel
// occupancy matrix. Occupancy[slot][0] counts the deep channel,
// Occupancy[slot][1] the feeder channel.
type Report struct {
	Conflicts []Record
	Occupancy [][]int
}

// HasConflict reports whether any conflict was found.
func (r Report) HasConflict() bool { return len(r.Conflicts) > 0 }

// Detector finds schedule conflicts over a discretized 24h horizon.
type Detector struct {
	TimeSlots      int
	DeepCapacity   int
	FeederCapacity int
}

// Default horizon discretization and shared-channel capacity.
const (
	DefaultTimeSlots      = 10
	DefaultDeepCapacity   = 1
	DefaultFeederCapacity = 2
)

// NewDetector returns a Detector with default slots and capacities.
func NewDetector() Detector {
	return Detector{
		TimeSlots:      DefaultTimeSlots,
		DeepCapacity:   DefaultDeepCapacity,
		FeederCapacity: DefaultFeederCapacity,
	}
}

const deepChannelIndex, feederChannelIndex = 0, 1

func channelIndex(c model.ChannelClass) int {
	if c == model.ChannelDeep {
		return deepChannelIndex
	}
	return feederChannelIndex
}

func (d Detector) capacity(c model.ChannelClass) int {
	if c == model.ChannelDeep {
		return d.DeepCapacity
	}
	return d.FeederCapacity
}

// Detect scans all scheduled vessel pairs and returns the conflict report.
// berthZones maps berth ids to zones so each vessel's channel class can be
// resolved. Detection is a pure function of the schedule: rerunning it on
// an unchanged schedule yields an identical report.
func (d Detector) Detect(vessels []model.Vessel, berthZones map[string]model.Zone) Report {
	slots := d.TimeSlots
	if slots <= 0 {
		slots = DefaultTimeSlots
	}
	occupancy := make([][]int, slots)
	for i := range occupancy {
		occupancy[i] = make([]int, 2)
	}
	report := Report{Occupancy: occupancy}

	type entry struct {
		id       string
		interval model.Interval
		berth    string
		channel  model.ChannelClass
	}
	var scheduled []entry
	for _, v := range vessels {
		iv, ok := v.Interval()
		if !ok {
			continue
		}
		zone, ok := berthZones[v.AssignedBerth]
		if !ok {
			continue
		}
		scheduled = append(scheduled, entry{id: v.ID, interval: iv, berth: v.AssignedBerth, channel: zone.Channel()})
	}

	slotHours := 24.0 / float64(slots)
	for i := 0; i < len(scheduled); i++ {
		for j := i + 1; j < len(scheduled); j++ {
			a, b := scheduled[i], scheduled[j]
			if !a.interval.Overlaps(b.interval) {
				continue
			}

			if a.berth == b.berth {
				report.Conflicts = append(report.Conflicts, Record{
					VesselA:  a.id,
					VesselB:  b.id,
					Kind:     KindBerthOverlap,
					TimeSlot: overlapSlot(a.interval, b.interval, slotHours, slots),
					Channel:  a.channel,
					Severity: SeverityHigh,
				})
			}

			if a.channel != b.channel {
				continue
			}
			slot := overlapSlot(a.interval, b.interval, slotHours, slots)
			idx := channelIndex(a.channel)
			occupancy[slot][idx]++
			// The cell counts overlapping pairs, so the implied number of
			// concurrent transits is one more than the count.
			if occupancy[slot][idx]+1 > d.capacity(a.channel) {
				sev := SeverityHigh
				if a.channel == model.ChannelFeeder {
					sev = SeverityMedium
				}
				report.Conflicts = append(report.Conflicts, Record{
					VesselA:  a.id,
					VesselB:  b.id,
					Kind:     KindChannelCollision,
					TimeSlot: slot,
					Channel:  a.channel,
					Severity: sev,
				})
			}
		}
	}
	return report
}

// overlapSlot maps the midpoint of the pair's overlap onto a horizon slot.
func overlapSlot(a, b model.Interval, slotHours float64, slots int) int {
	start := a.Start
	if b.Start > start {
		start = b.Start
	}
	end := a.End
	if b.End < end {
		end = b.End
	}
	mid := (start + end) / 2
	idx := int(mid / slotHours)
	if idx < 0 {
		idx = 0
	}
	if idx >= slots {
		idx = slots - 1
	}
	return idx
}

// HasBerthOverlap reports whether the schedule contains any same-berth
// overlap. Used by the optimizer as its feasibility oracle; channel
// collisions are tolerated during search, berth overlaps never are.
func (d Detector) HasBerthOverlap(vessels []model.Vessel, berthZones map[string]model.Zone) bool {
	for _, c := range d.Detect(vessels, berthZones).Conflicts {
		if c.Kind == KindBerthOverlap {
			return true
		}
	}
	return false
}
