// Package search builds an initial berth assignment greedily and improves
// it with a variable neighborhood search over swap, insert and reverse
// moves. Solutions are immutable snapshots; the search clones, mutates the
// clone, and only publishes strict improvements.
package search

import (
	"gonum.org/v1/gonum/floats"

	"github.com/tkerdo/portflow/core/model"
)

// costWeight discounts the waiting-cost term against throughput efficiency.
const costWeight = 0.1

// Evaluate computes the solution objectives from the assignment and the
// vessel set, returning a new snapshot with the scores filled in.
// Efficiency rewards starting high-priority vessels early in the horizon;
// cost is the summed start hours.
func Evaluate(sol model.ScheduleSolution, vessels []model.Vessel) model.ScheduleSolution {
	eff := make([]float64, 0, len(sol.StartOf))
	cost := make([]float64, 0, len(sol.StartOf))
	for _, v := range vessels {
		start, ok := sol.StartOf[v.ID]
		if !ok {
			continue
		}
		eff = append(eff, float64(v.Priority)*(24-start))
		cost = append(cost, start)
	}
	sol.Efficiency = floats.Sum(eff)
	sol.Cost = floats.Sum(cost)
	sol.Objective = sol.Efficiency - costWeight*sol.Cost
	return sol
}
