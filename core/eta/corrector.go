// Package eta implements the arrival prediction stages: declared-ETA
// correction, earliest-operation-time derivation and virtual-arrival speed
// optimization. All stages are closed-form heuristics over value snapshots;
// randomness comes exclusively from an injected generator so runs replay
// deterministically under a fixed seed.
package eta

import (
	"math/rand"

	"github.com/tkerdo/portflow/core/model"
)

// delayThresholdMinutes marks a correction large enough to flag the vessel
// as delayed.
const delayThresholdMinutes = 30

// Correction is the output of the ETA correction stage.
type Correction struct {
	CorrectedETA model.Clock
	BiasMinutes  float64
	Delayed      bool
}

// Corrector adjusts declared arrival estimates using category and size
// biases plus a bounded random term.
type Corrector struct {
	rand *rand.Rand
}

// NewCorrector creates a Corrector drawing its random term from rng.
func NewCorrector(rng *rand.Rand) *Corrector {
	return &Corrector{rand: rng}
}

func categoryBias(c model.VesselCategory) float64 {
	switch c {
	case model.CategoryTanker:
		return 15
	case model.CategoryBulk:
		return 10
	default:
		return 5
	}
}

// Correct returns the corrected ETA for the vessel. historicalBias carries
// externally observed punctuality for the vessel or route, in minutes;
// pass 0 when no history is available.
func (c *Corrector) Correct(v model.Vessel, historicalBias float64) Correction {
	bias := categoryBias(v.Category)
	if extra := (v.LengthM - 150) / 10; extra > 0 {
		bias += extra
	}
	// Uniform in [-10, +10] minutes.
	bias += c.rand.Float64()*20 - 10
	bias += historicalBias

	return Correction{
		CorrectedETA: v.DeclaredETA.Add(bias),
		BiasMinutes:  bias,
		Delayed:      bias > delayThresholdMinutes,
	}
}
