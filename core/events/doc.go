// Package events defines the planning related events emitted on the event bus.
//
// Available event types:
//   - PlanEvent: a completed planning run
//   - ImprovementEvent: an accepted optimizer move
//   - ConflictEvent: a conflict found in the final schedule
package events
