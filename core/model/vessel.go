package model

import "fmt"

// VesselCategory classifies a vessel by cargo type.
type VesselCategory string

const (
	CategoryContainer VesselCategory = "container"
	CategoryBulk      VesselCategory = "bulk"
	CategoryTanker    VesselCategory = "tanker"
)

// Vessel represents an arriving vessel and the derived planning state the
// pipeline stages attach to it. Stages operate on copies and write only
// their own derived fields.
type Vessel struct {
	ID          string
	Name        string
	Category    VesselCategory
	LengthM     float64
	DraftM      float64
	Priority    int // 1 (lowest) to 10 (highest)
	DeclaredETA Clock

	// Written by the ETA corrector.
	CorrectedETA Clock
	BiasMinutes  float64
	Delayed      bool

	// Written by the operation-time estimator.
	EOT           Clock
	InspectionMin float64
	PilotageMin   float64

	// Written by the virtual-arrival optimizer.
	RecommendedSpeedKn float64
	FuelSavingsTons    float64
	VirtualArrival     bool

	// Written by the berth assignment.
	AssignedBerth string
	StartHour     float64
	DurationH     float64
	Scheduled     bool
}

// Validate checks that the vessel definition is usable for planning.
func (v Vessel) Validate() error {
	if v.ID == "" {
		return fmt.Errorf("vessel id is required")
	}
	if v.LengthM <= 0 {
		return fmt.Errorf("vessel %s: length must be positive", v.ID)
	}
	if v.DraftM <= 0 {
		return fmt.Errorf("vessel %s: draft must be positive", v.ID)
	}
	if v.Priority < 1 || v.Priority > 10 {
		return fmt.Errorf("vessel %s: priority must be in [1,10]", v.ID)
	}
	switch v.Category {
	case CategoryContainer, CategoryBulk, CategoryTanker:
	default:
		return fmt.Errorf("vessel %s: unknown category %q", v.ID, v.Category)
	}
	return nil
}

// Interval returns the scheduled service window in fractional hours.
// The second return is false when the vessel is unscheduled.
func (v Vessel) Interval() (Interval, bool) {
	if !v.Scheduled {
		return Interval{}, false
	}
	return Interval{Start: v.StartHour, End: v.StartHour + v.DurationH}, true
}
