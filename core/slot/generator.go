// Package slot generates feasible berth/time candidates for a vessel,
// combining zone eligibility, length and draft limits, current berth
// occupancy and the tide window at the intended start.
package slot

import (
	"math"

	"github.com/tkerdo/portflow/core/model"
	"github.com/tkerdo/portflow/core/tide"
)

// Generation limits. A berth must exceed the vessel length by the margin
// ratio, and drafts beyond the channel limit cannot be placed at all.
const (
	DefaultLengthMarginRatio = 1.1
	DefaultMaxDraftM         = 15.0

	minServiceHours = 4
)

// Generator produces candidate slots for vessels.
type Generator struct {
	Checker           tide.Checker
	LengthMarginRatio float64
	MaxDraftM         float64
}

// NewGenerator returns a Generator over the tide table with default limits.
func NewGenerator(table tide.Table) Generator {
	return Generator{
		Checker:           tide.NewChecker(table),
		LengthMarginRatio: DefaultLengthMarginRatio,
		MaxDraftM:         DefaultMaxDraftM,
	}
}

// ServiceHours estimates the service duration for a vessel length:
// one hour per 50m, never less than four hours.
func ServiceHours(lengthM float64) float64 {
	h := math.Ceil(lengthM / 50)
	if h < minServiceHours {
		return minServiceHours
	}
	return h
}

// Generate returns the feasible candidate slots for the vessel over the
// given berths. occupancy maps berth ids to their current service window;
// an occupied berth's candidate starts when the occupant leaves, a free
// berth's at the vessel's EOT. Vessels that cannot be placed anywhere get
// an empty list, never an error.
func (g Generator) Generate(v model.Vessel, berths []model.Berth, occupancy map[string]model.Interval) []model.CandidateSlot {
	if v.DraftM > g.MaxDraftM {
		return nil
	}

	duration := ServiceHours(v.LengthM)
	var out []model.CandidateSlot
	for _, b := range berths {
		if b.LengthM < g.LengthMarginRatio*v.LengthM {
			continue
		}
		if !model.ZoneEligible(v, b) {
			continue
		}

		start := v.EOT.Hours()
		if occ, ok := occupancy[b.ID]; ok && b.Occupied {
			start = occ.End
		}

		at := model.Clock(0).Add(start * 60)
		w := g.Checker.Check(v.DraftM, b, at)
		if !w.Feasible {
			continue
		}

		out = append(out, model.CandidateSlot{
			BerthID:       b.ID,
			StartHour:     start,
			EndHour:       start + duration,
			TideFeasible:  true,
			TideHeightM:   w.TideHeightM,
			SafetyMarginM: w.MarginM,
			Channel:       b.Zone.Channel(),
		})
	}
	return out
}
