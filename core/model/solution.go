package model

// Interval is a half-open [Start, End) window in fractional hours.
type Interval struct {
	Start float64
	End   float64
}

// Overlaps reports whether two half-open intervals intersect.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && o.Start < i.End
}

// CandidateSlot is a feasible (berth, start, end) option for one vessel.
// Slots are transient: produced per optimization pass, never persisted.
type CandidateSlot struct {
	BerthID       string
	StartHour     float64
	EndHour       float64
	TideFeasible  bool
	TideHeightM   float64
	SafetyMarginM float64
	Channel       ChannelClass
}

// ScheduleSolution is an immutable snapshot of a vessel-to-berth
// assignment. The optimizer replaces snapshots wholesale on improvement
// and never mutates a published one.
type ScheduleSolution struct {
	BerthOf    map[string]string  // vessel id -> berth id
	StartOf    map[string]float64 // vessel id -> start hour
	Objective  float64
	Efficiency float64
	Cost       float64

	// EmissionAvoided is 3x the summed fuel savings of the vessel set the
	// solution was built from. Higher is better: saved fuel is emission
	// that never happens.
	EmissionAvoided float64
}

// Clone returns a deep copy safe to mutate during search.
func (s ScheduleSolution) Clone() ScheduleSolution {
	cp := ScheduleSolution{
		BerthOf:         make(map[string]string, len(s.BerthOf)),
		StartOf:         make(map[string]float64, len(s.StartOf)),
		Objective:       s.Objective,
		Efficiency:      s.Efficiency,
		Cost:            s.Cost,
		EmissionAvoided: s.EmissionAvoided,
	}
	for k, v := range s.BerthOf {
		cp.BerthOf[k] = v
	}
	for k, v := range s.StartOf {
		cp.StartOf[k] = v
	}
	return cp
}

// Apply writes the solution's assignment back onto a copy of the vessel
// slice and returns it. Vessels absent from the solution come back
// unscheduled.
func (s ScheduleSolution) Apply(vessels []Vessel) []Vessel {
	out := make([]Vessel, len(vessels))
	copy(out, vessels)
	for i := range out {
		berth, ok := s.BerthOf[out[i].ID]
		if !ok {
			out[i].AssignedBerth = ""
			out[i].Scheduled = false
			continue
		}
		out[i].AssignedBerth = berth
		out[i].StartHour = s.StartOf[out[i].ID]
		out[i].Scheduled = true
	}
	return out
}
