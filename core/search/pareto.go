package search

import "github.com/tkerdo/portflow/core/model"

// emissionFactor converts saved fuel tons into avoided CO2-equivalent tons.
const emissionFactor = 3.0

// EmissionAvoided computes the avoided-emission objective for a solution
// built over the given vessels: saved approach fuel translates directly
// into emission that never happens.
func EmissionAvoided(vessels []model.Vessel) float64 {
	var savings float64
	for _, v := range vessels {
		savings += v.FuelSavingsTons
	}
	return emissionFactor * savings
}

// dominates reports whether a is at least as good as b on every objective
// and strictly better on at least one. Efficiency and avoided emission are
// maximized, cost is minimized.
func dominates(a, b model.ScheduleSolution) bool {
	if a.Efficiency < b.Efficiency || a.Cost > b.Cost || a.EmissionAvoided < b.EmissionAvoided {
		return false
	}
	return a.Efficiency > b.Efficiency || a.Cost < b.Cost || a.EmissionAvoided > b.EmissionAvoided
}

// ParetoFront returns the non-dominated subset of the candidate solutions,
// preserving input order.
func ParetoFront(candidates []model.ScheduleSolution) []model.ScheduleSolution {
	var front []model.ScheduleSolution
	for i, c := range candidates {
		dominated := false
		for j, other := range candidates {
			if i == j {
				continue
			}
			if dominates(other, c) {
				dominated = true
				break
			}
		}
		if !dominated {
			front = append(front, c)
		}
	}
	return front
}
