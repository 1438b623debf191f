// Package tide provides the water-height lookup table and the under-keel
// clearance feasibility check used by candidate slot generation. Heights
// come from a static reference table, not a hydrodynamic model.
package tide

import (
	"math"

	"github.com/tkerdo/portflow/core/model"
)

// Sample is one entry of the tide reference table.
type Sample struct {
	Time    model.Clock
	HeightM float64
}

// Table is an immutable tide lookup table indexed by nearest time of day.
type Table struct {
	samples []Sample
}

// NewTable builds a table from the given samples. The slice is copied so
// callers may reuse theirs.
func NewTable(samples []Sample) Table {
	cp := make([]Sample, len(samples))
	copy(cp, samples)
	return Table{samples: cp}
}

// Len returns the number of samples.
func (t Table) Len() int { return len(t.samples) }

// HeightAt returns the water height of the sample nearest to the target
// time by absolute hour difference. Ties keep the earlier entry in table
// order. An empty table reports height 0.
func (t Table) HeightAt(at model.Clock) float64 {
	if len(t.samples) == 0 {
		return 0
	}
	best := t.samples[0]
	bestDiff := math.Abs(at.Hours() - best.Time.Hours())
	for _, s := range t.samples[1:] {
		d := math.Abs(at.Hours() - s.Time.Hours())
		if d < bestDiff {
			best = s
			bestDiff = d
		}
	}
	return best.HeightM
}
