package search

import (
	"math/rand"
	"testing"

	"github.com/tkerdo/portflow/core/model"
)

func TestOptimizeNeverWorseThanInitial(t *testing.T) {
	vessels := harborVessels(t)
	berths := harborBerths()

	for seed := int64(0); seed < 5; seed++ {
		o := NewOptimizer(rand.New(rand.NewSource(seed)))
		res := o.Optimize(vessels, berths)
		if res.Best.Objective < res.Initial.Objective {
			t.Fatalf("seed %d: best %v below initial %v", seed, res.Best.Objective, res.Initial.Objective)
		}
	}
}

func TestOptimizeReproducibleUnderSeed(t *testing.T) {
	vessels := harborVessels(t)
	berths := harborBerths()

	a := NewOptimizer(rand.New(rand.NewSource(11))).Optimize(vessels, berths)
	b := NewOptimizer(rand.New(rand.NewSource(11))).Optimize(vessels, berths)

	if a.Best.Objective != b.Best.Objective {
		t.Fatalf("same seed, different objectives: %v vs %v", a.Best.Objective, b.Best.Objective)
	}
	for id, berth := range a.Best.BerthOf {
		if b.Best.BerthOf[id] != berth {
			t.Errorf("assignment for %s differs: %s vs %s", id, berth, b.Best.BerthOf[id])
		}
	}
}

func TestOptimizeBestAssignmentsStayFeasible(t *testing.T) {
	vessels := harborVessels(t)
	berths := harborBerths()
	berthByID := make(map[string]model.Berth)
	for _, b := range berths {
		berthByID[b.ID] = b
	}

	res := NewOptimizer(rand.New(rand.NewSource(3))).Optimize(vessels, berths)
	for id, berthID := range res.Best.BerthOf {
		v, ok := vesselByID(vessels, id)
		if !ok {
			t.Fatalf("unknown vessel %s in solution", id)
		}
		b := berthByID[berthID]
		if b.LengthM < 1.1*v.LengthM {
			t.Errorf("%s on %s violates the length margin", id, berthID)
		}
	}
}

func TestOptimizeEmptyInput(t *testing.T) {
	res := NewOptimizer(rand.New(rand.NewSource(1))).Optimize(nil, nil)
	if len(res.Best.BerthOf) != 0 {
		t.Fatalf("empty input must yield an empty solution")
	}
	if res.Best.Objective != res.Initial.Objective {
		t.Errorf("nothing to improve on empty input")
	}
}

func TestOptimizeAcceptanceHookDefaultUnchanged(t *testing.T) {
	vessels := harborVessels(t)
	berths := harborBerths()

	// A hook that accepts everything may wander, but the returned best must
	// still never fall below the initial objective.
	o := NewOptimizer(rand.New(rand.NewSource(5)))
	o.Acceptance = func(cur, cand model.ScheduleSolution) bool { return true }
	res := o.Optimize(vessels, berths)
	if res.Best.Objective < res.Initial.Objective {
		t.Fatalf("best-so-far tracking must survive a permissive acceptance hook")
	}
}

func TestReverseMoveNeedsTwoVessels(t *testing.T) {
	o := NewOptimizer(rand.New(rand.NewSource(2)))
	sol := model.ScheduleSolution{
		BerthOf: map[string]string{"only": "G1"},
		StartOf: map[string]float64{"only": 5},
	}
	if _, ok := o.reverseMove(sol); ok {
		t.Fatalf("reverse with one vessel must be rejected")
	}
}

func TestSwapMoveRespectsLengthMargin(t *testing.T) {
	// Two vessels where a swap would put the long vessel on the short berth.
	vessels := []model.Vessel{
		{ID: "long", Category: model.CategoryContainer, LengthM: 300, DraftM: 10, Priority: 5},
		{ID: "short", Category: model.CategoryContainer, LengthM: 100, DraftM: 6, Priority: 5},
	}
	berths := map[string]model.Berth{
		"BIG":   {ID: "BIG", Zone: model.ZoneGeneral, LengthM: 340, DepthM: 12},
		"SMALL": {ID: "SMALL", Zone: model.ZoneGeneral, LengthM: 120, DepthM: 10},
	}
	sol := model.ScheduleSolution{
		BerthOf: map[string]string{"long": "BIG", "short": "SMALL"},
		StartOf: map[string]float64{"long": 2, "short": 8},
	}

	o := NewOptimizer(rand.New(rand.NewSource(0)))
	for i := 0; i < 20; i++ {
		if cand, ok := o.swapMove(sol, vessels, berths); ok {
			t.Fatalf("swap placing 300m on a 120m berth must be rejected: %+v", cand.BerthOf)
		}
	}
}
