package metrics

import "errors"

// MultiSink fans records out to several sinks, collecting every error.
type MultiSink struct {
	sinks []PlanSink
}

// NewMultiSink creates a sink writing to all the given sinks.
func NewMultiSink(sinks ...PlanSink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) RecordPlanResult(res PlanResult) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordPlanResult(res); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiSink) RecordConflict(ev ConflictEvent) error {
	var errs []error
	for _, s := range m.sinks {
		if r, ok := s.(ConflictRecorder); ok {
			if err := r.RecordConflict(ev); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (m *MultiSink) RecordImprovement(ev ImprovementEvent) error {
	var errs []error
	for _, s := range m.sinks {
		if r, ok := s.(ImprovementRecorder); ok {
			if err := r.RecordImprovement(ev); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
