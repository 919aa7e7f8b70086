package metrics

import (
	coremetrics "github.com/kilianp07/causalkit/core/metrics"
)

// init registers built-in build recorders.
func init() {
	_ = coremetrics.RegisterRecorder("nop", func(map[string]any) (coremetrics.BuildRecorder, error) {
		return coremetrics.NopRecorder{}, nil
	})
	_ = coremetrics.RegisterRecorder("prometheus", func(map[string]any) (coremetrics.BuildRecorder, error) {
		return NewPromRecorder()
	})
}
