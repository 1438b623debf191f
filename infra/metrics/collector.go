package metrics

import (
	"context"
	"time"

	"github.com/tkerdo/portflow/core/events"
	coremetrics "github.com/tkerdo/portflow/core/metrics"
	"github.com/tkerdo/portflow/internal/eventbus"
)

// StartEventCollector subscribes to the event bus and records metrics for
// planning events. It stops when the context is canceled.
func StartEventCollector(ctx context.Context, bus eventbus.EventBus, sink coremetrics.PlanSink) {
	if bus == nil || sink == nil {
		return
	}
	sub := bus.Subscribe()
	go func() {
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				switch e := ev.(type) {
				case events.ConflictEvent:
					if r, ok := sink.(coremetrics.ConflictRecorder); ok {
						_ = r.RecordConflict(coremetrics.ConflictEvent{
							RunID:    e.RunID,
							Kind:     string(e.Record.Kind),
							Channel:  string(e.Record.Channel),
							Severity: string(e.Record.Severity),
							Time:     time.Now(),
						})
					}
				case events.ImprovementEvent:
					if r, ok := sink.(coremetrics.ImprovementRecorder); ok {
						_ = r.RecordImprovement(coremetrics.ImprovementEvent{
							RunID:     e.RunID,
							Move:      e.Move,
							Objective: e.Objective,
							Time:      time.Now(),
						})
					}
				}
			}
		}
	}()
}
