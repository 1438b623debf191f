package metrics

import "github.com/tkerdo/portflow/core/factory"

var sinkRegistry = factory.NewRegistry[PlanSink]()

// RegisterSink adds a metrics sink factory identified by name.
func RegisterSink(name string, f factory.Factory[PlanSink]) error {
	return sinkRegistry.Register(name, f)
}

// NewSink creates a PlanSink from the provided configuration. With no sink
// configured a NopSink is returned; with several, records fan out to all.
func NewSink(cfgs []factory.ModuleConfig) (PlanSink, error) {
	if len(cfgs) == 0 {
		return NopSink{}, nil
	}
	if len(cfgs) == 1 {
		return sinkRegistry.Create(cfgs[0])
	}
	sinks := make([]PlanSink, len(cfgs))
	for i, c := range cfgs {
		s, err := sinkRegistry.Create(c)
		if err != nil {
			return nil, err
		}
		sinks[i] = s
	}
	return NewMultiSink(sinks...), nil
}
