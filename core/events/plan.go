package events

import "github.com/tkerdo/portflow/core/conflict"

// PlanEvent is published when a planning run completes.
type PlanEvent struct {
	RunID     string
	Vessels   int
	Assigned  int
	Conflicts int
	Objective float64
}

// ImprovementEvent is published for each optimizer move that advanced the
// best solution.
type ImprovementEvent struct {
	RunID     string
	Iteration int
	Move      string
	Objective float64
}

// ConflictEvent is published for each conflict detected in the final
// schedule.
type ConflictEvent struct {
	RunID  string
	Record conflict.Record
}
