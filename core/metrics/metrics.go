package metrics

import "time"

// PlanResult summarizes one completed planning run for observability.
type PlanResult struct {
	RunID           string
	Vessels         int
	Assigned        int
	Delayed         int
	Conflicts       int
	Iterations      int
	Improvements    int
	Objective       float64
	Efficiency      float64
	Cost            float64
	FuelSavingsTons float64
	Elapsed         time.Duration
	Time            time.Time
}

// PlanSink records planning results for observability purposes.
type PlanSink interface {
	RecordPlanResult(res PlanResult) error
}

// ConflictEvent captures one schedule conflict for recording.
type ConflictEvent struct {
	RunID    string
	Kind     string
	Channel  string
	Severity string
	Time     time.Time
}

// ConflictRecorder is implemented by sinks that track individual conflicts.
type ConflictRecorder interface {
	RecordConflict(ev ConflictEvent) error
}

// ImprovementEvent captures one accepted optimizer move.
type ImprovementEvent struct {
	RunID     string
	Move      string
	Objective float64
	Time      time.Time
}

// ImprovementRecorder is implemented by sinks that track optimizer progress.
type ImprovementRecorder interface {
	RecordImprovement(ev ImprovementEvent) error
}

// NopSink discards all records.
type NopSink struct{}

func (NopSink) RecordPlanResult(PlanResult) error { return nil }
