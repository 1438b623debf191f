package tide

import "github.com/tkerdo/portflow/core/model"

// DefaultUKCMarginM is the under-keel clearance added to the vessel draft
// when computing the depth a berth must offer.
const DefaultUKCMarginM = 1.0

// Window is the result of a depth feasibility check at one berth and time.
type Window struct {
	Feasible       bool
	TideHeightM    float64
	RequiredDepthM float64
	MarginM        float64
}

// Checker tests whether a vessel of a given draft fits a berth at a given
// time, combining charted berth depth with the tide height.
type Checker struct {
	Table      Table
	UKCMarginM float64
}

// NewChecker returns a Checker over the table using the default UKC margin.
func NewChecker(table Table) Checker {
	return Checker{Table: table, UKCMarginM: DefaultUKCMarginM}
}

// Check evaluates depth feasibility for the draft at the berth and time.
// The margin is reported even when negative so callers can rank near
// misses.
func (c Checker) Check(draftM float64, berth model.Berth, at model.Clock) Window {
	height := c.Table.HeightAt(at)
	required := draftM + c.UKCMarginM
	available := berth.DepthM + height
	return Window{
		Feasible:       available >= required,
		TideHeightM:    height,
		RequiredDepthM: required,
		MarginM:        available - required,
	}
}
