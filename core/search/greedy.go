package search

import (
	"sort"

	"github.com/tkerdo/portflow/core/model"
	"github.com/tkerdo/portflow/core/slot"
)

// Greedy builds the initial solution: vessels in descending priority order
// each take the first zone-eligible berth not yet claimed, walking the
// vessel's ranked zone list (general before deep for non-tankers). Start
// time comes from the vessel's EOT. Vessels with no eligible free berth
// stay out of the assignment maps.
func Greedy(vessels []model.Vessel, berths []model.Berth) model.ScheduleSolution {
	ordered := make([]model.Vessel, len(vessels))
	copy(ordered, vessels)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})

	sol := model.ScheduleSolution{
		BerthOf: make(map[string]string),
		StartOf: make(map[string]float64),
	}
	taken := make(map[string]bool)

	for _, v := range ordered {
		berthID, ok := firstFreeBerth(v, berths, taken)
		if !ok {
			continue
		}
		taken[berthID] = true
		sol.BerthOf[v.ID] = berthID
		sol.StartOf[v.ID] = v.EOT.Hours()
	}
	return Evaluate(sol, vessels)
}

func firstFreeBerth(v model.Vessel, berths []model.Berth, taken map[string]bool) (string, bool) {
	for _, zone := range model.ZonesFor(v) {
		for _, b := range berths {
			if b.Zone != zone || taken[b.ID] {
				continue
			}
			if b.LengthM < slot.DefaultLengthMarginRatio*v.LengthM {
				continue
			}
			if v.DraftM > slot.DefaultMaxDraftM {
				continue
			}
			return b.ID, true
		}
	}
	return "", false
}
