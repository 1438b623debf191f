package search

import (
	"math/rand"
	"sort"

	"github.com/tkerdo/portflow/core/conflict"
	"github.com/tkerdo/portflow/core/model"
	"github.com/tkerdo/portflow/core/slot"
)

// Default search parameters.
const (
	DefaultIterations = 75
	DefaultInsertProb = 0.3

	insertHorizonHours = 20
	insertCheckHours   = 4
	reverseWindowHours = 6
)

// Neighborhood names the move that produced an improvement.
type Neighborhood string

const (
	MoveSwap    Neighborhood = "swap"
	MoveInsert  Neighborhood = "insert"
	MoveReverse Neighborhood = "reverse"
)

// Acceptance decides whether a candidate replaces the current solution.
// The default (nil) accepts strict objective improvements only, matching
// hill-climbing behavior; callers may plug a different criterion such as
// simulated-annealing acceptance without changing the default.
type Acceptance func(current, candidate model.ScheduleSolution) bool

// Improvement records one accepted move that advanced the best solution.
type Improvement struct {
	Iteration int
	Move      Neighborhood
	Objective float64
}

// Result is the outcome of one optimization run.
type Result struct {
	Initial      model.ScheduleSolution
	Best         model.ScheduleSolution
	Iterations   int
	Improvements []Improvement
}

// Optimizer runs a variable neighborhood search over swap, insert and
// reverse moves. All randomness flows through Rand so a fixed seed replays
// the run exactly.
type Optimizer struct {
	Iterations int
	InsertProb float64
	Rand       *rand.Rand
	Detector   conflict.Detector
	Acceptance Acceptance
}

// NewOptimizer returns an Optimizer with default budgets seeded by rng.
func NewOptimizer(rng *rand.Rand) *Optimizer {
	return &Optimizer{
		Iterations: DefaultIterations,
		InsertProb: DefaultInsertProb,
		Rand:       rng,
		Detector:   conflict.NewDetector(),
	}
}

// Optimize improves the greedy initial assignment for the vessels and
// berths. The search never fails: with no improving move it returns the
// initial solution, and the best snapshot seen is returned regardless of
// where the current solution ends up.
func (o *Optimizer) Optimize(vessels []model.Vessel, berths []model.Berth) Result {
	initial := Greedy(vessels, berths)
	res := Result{Initial: initial, Best: initial, Iterations: o.Iterations}

	berthByID := make(map[string]model.Berth, len(berths))
	zones := make(map[string]model.Zone, len(berths))
	for _, b := range berths {
		berthByID[b.ID] = b
		zones[b.ID] = b.Zone
	}

	accept := o.Acceptance
	if accept == nil {
		accept = func(cur, cand model.ScheduleSolution) bool {
			return cand.Objective > cur.Objective
		}
	}

	current := initial
	for iter := 0; iter < o.Iterations; iter++ {
		for _, move := range []Neighborhood{MoveSwap, MoveInsert, MoveReverse} {
			cand, ok := o.propose(move, current, vessels, berthByID)
			if !ok {
				continue
			}
			if o.Detector.HasBerthOverlap(cand.Apply(withDurations(vessels)), zones) {
				continue
			}
			cand = Evaluate(cand, vessels)
			if !accept(current, cand) {
				continue
			}
			current = cand
			if cand.Objective > res.Best.Objective {
				res.Best = cand
				res.Improvements = append(res.Improvements, Improvement{
					Iteration: iter,
					Move:      move,
					Objective: cand.Objective,
				})
			}
		}
	}
	return res
}

func (o *Optimizer) propose(move Neighborhood, cur model.ScheduleSolution, vessels []model.Vessel, berths map[string]model.Berth) (model.ScheduleSolution, bool) {
	switch move {
	case MoveSwap:
		return o.swapMove(cur, vessels, berths)
	case MoveInsert:
		return o.insertMove(cur)
	case MoveReverse:
		return o.reverseMove(cur)
	}
	return model.ScheduleSolution{}, false
}

// swapMove exchanges the berths of two random assigned vessels. The new
// berths must still fit each vessel's length margin and draft limit.
func (o *Optimizer) swapMove(cur model.ScheduleSolution, vessels []model.Vessel, berths map[string]model.Berth) (model.ScheduleSolution, bool) {
	ids := assignedIDs(cur)
	if len(ids) < 2 {
		return model.ScheduleSolution{}, false
	}
	i := o.Rand.Intn(len(ids))
	j := o.Rand.Intn(len(ids) - 1)
	if j >= i {
		j++
	}
	a, b := ids[i], ids[j]

	cand := cur.Clone()
	cand.BerthOf[a], cand.BerthOf[b] = cand.BerthOf[b], cand.BerthOf[a]

	for _, id := range []string{a, b} {
		v, ok := vesselByID(vessels, id)
		if !ok {
			return model.ScheduleSolution{}, false
		}
		berth, ok := berths[cand.BerthOf[id]]
		if !ok {
			return model.ScheduleSolution{}, false
		}
		if v.LengthM > berth.LengthM/slot.DefaultLengthMarginRatio {
			return model.ScheduleSolution{}, false
		}
		if v.DraftM > slot.DefaultMaxDraftM {
			return model.ScheduleSolution{}, false
		}
	}
	return cand, true
}

// insertMove re-times one random vessel to a fresh start in the first 20
// hours of the horizon. The overlap check against same-berth vessels uses
// a fixed four-hour service window.
func (o *Optimizer) insertMove(cur model.ScheduleSolution) (model.ScheduleSolution, bool) {
	if o.Rand.Float64() >= o.InsertProb {
		return model.ScheduleSolution{}, false
	}
	ids := assignedIDs(cur)
	if len(ids) == 0 {
		return model.ScheduleSolution{}, false
	}
	id := ids[o.Rand.Intn(len(ids))]
	newStart := o.Rand.Float64() * insertHorizonHours

	moved := model.Interval{Start: newStart, End: newStart + insertCheckHours}
	for _, other := range ids {
		if other == id || cur.BerthOf[other] != cur.BerthOf[id] {
			continue
		}
		existing := model.Interval{Start: cur.StartOf[other], End: cur.StartOf[other] + insertCheckHours}
		if moved.Overlaps(existing) {
			return model.ScheduleSolution{}, false
		}
	}

	cand := cur.Clone()
	cand.StartOf[id] = newStart
	return cand, true
}

// reverseMove flips the relative start ordering of every vessel whose
// start falls inside a random six-hour window. Fewer than two affected
// vessels makes the move a no-op.
func (o *Optimizer) reverseMove(cur model.ScheduleSolution) (model.ScheduleSolution, bool) {
	winStart := o.Rand.Float64() * (24 - reverseWindowHours)
	winEnd := winStart + reverseWindowHours

	var affected []string
	for _, id := range assignedIDs(cur) {
		s := cur.StartOf[id]
		if s >= winStart && s < winEnd {
			affected = append(affected, id)
		}
	}
	if len(affected) < 2 {
		return model.ScheduleSolution{}, false
	}

	sortByStart(affected, cur.StartOf)
	starts := make([]float64, len(affected))
	for i, id := range affected {
		starts[i] = cur.StartOf[id]
	}

	cand := cur.Clone()
	for i, id := range affected {
		cand.StartOf[id] = starts[len(starts)-1-i]
	}
	return cand, true
}

// withDurations fills missing service durations from vessel length so the
// conflict oracle sees realistic windows.
func withDurations(vessels []model.Vessel) []model.Vessel {
	out := make([]model.Vessel, len(vessels))
	copy(out, vessels)
	for i := range out {
		if out[i].DurationH == 0 {
			out[i].DurationH = slot.ServiceHours(out[i].LengthM)
		}
	}
	return out
}

// assignedIDs returns the assigned vessel ids in deterministic order so
// random index draws replay under a fixed seed.
func assignedIDs(s model.ScheduleSolution) []string {
	ids := make([]string, 0, len(s.BerthOf))
	for id := range s.BerthOf {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func sortByStart(ids []string, startOf map[string]float64) {
	sort.SliceStable(ids, func(i, j int) bool {
		return startOf[ids[i]] < startOf[ids[j]]
	})
}

func vesselByID(vessels []model.Vessel, id string) (model.Vessel, bool) {
	for _, v := range vessels {
		if v.ID == id {
			return v, true
		}
	}
	return model.Vessel{}, false
}
