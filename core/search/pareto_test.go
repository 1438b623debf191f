package search

import (
	"testing"

	"github.com/tkerdo/portflow/core/model"
)

func sol(eff, cost, emission float64) model.ScheduleSolution {
	return model.ScheduleSolution{Efficiency: eff, Cost: cost, EmissionAvoided: emission}
}

func TestParetoFrontDropsDominated(t *testing.T) {
	a := sol(100, 10, 5) // dominates b on every axis
	b := sol(90, 12, 4)
	c := sol(80, 5, 5) // cheaper than a, survives

	front := ParetoFront([]model.ScheduleSolution{a, b, c})
	if len(front) != 2 {
		t.Fatalf("expected 2 non-dominated solutions, got %d", len(front))
	}
	for _, s := range front {
		if s.Efficiency == 90 {
			t.Errorf("dominated solution kept in the front")
		}
	}
}

func TestParetoFrontKeepsIncomparable(t *testing.T) {
	a := sol(100, 20, 0)
	b := sol(50, 5, 0)
	front := ParetoFront([]model.ScheduleSolution{a, b})
	if len(front) != 2 {
		t.Fatalf("incomparable solutions must both survive, got %d", len(front))
	}
}

func TestParetoFrontEmissionAxis(t *testing.T) {
	// Equal efficiency and cost: the solution with more avoided emission
	// dominates.
	a := sol(100, 10, 9)
	b := sol(100, 10, 3)
	front := ParetoFront([]model.ScheduleSolution{a, b})
	if len(front) != 1 || front[0].EmissionAvoided != 9 {
		t.Fatalf("higher avoided emission must dominate, got %+v", front)
	}
}

func TestParetoFrontIdenticalSolutions(t *testing.T) {
	a := sol(100, 10, 5)
	b := sol(100, 10, 5)
	front := ParetoFront([]model.ScheduleSolution{a, b})
	if len(front) != 2 {
		t.Fatalf("identical solutions do not dominate each other, got %d", len(front))
	}
}

func TestEmissionAvoided(t *testing.T) {
	vessels := []model.Vessel{
		{ID: "a", FuelSavingsTons: 2},
		{ID: "b", FuelSavingsTons: 0.5},
	}
	if got := EmissionAvoided(vessels); got != 7.5 {
		t.Fatalf("3x2.5 = 7.5, got %v", got)
	}
}
