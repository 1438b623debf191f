package metrics

import (
	"github.com/tkerdo/portflow/core/factory"
	coremetrics "github.com/tkerdo/portflow/core/metrics"
)

type influxConf struct {
	URL    string `json:"url"`
	Token  string `json:"token"`
	Org    string `json:"org"`
	Bucket string `json:"bucket"`
}

func init() {
	_ = coremetrics.RegisterSink("nop", func(map[string]any) (coremetrics.PlanSink, error) {
		return coremetrics.NopSink{}, nil
	})
	_ = coremetrics.RegisterSink("prometheus", func(map[string]any) (coremetrics.PlanSink, error) {
		return NewPromSink()
	})
	_ = coremetrics.RegisterSink("influxdb", func(conf map[string]any) (coremetrics.PlanSink, error) {
		var c influxConf
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewInfluxSinkWithFallback(c.URL, c.Token, c.Org, c.Bucket), nil
	})
}
