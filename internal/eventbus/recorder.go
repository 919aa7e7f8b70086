package eventbus

import (
	"github.com/kilianp07/causalkit/core/metrics"
)

// Recorder publishes build events on a bus.
type Recorder struct {
	Bus *Bus[metrics.BuildEvent]
}

var _ metrics.BuildRecorder = Recorder{}

// RecordBuild never fails; slow subscribers lose events.
func (r Recorder) RecordBuild(ev metrics.BuildEvent) error {
	if r.Bus != nil {
		r.Bus.Publish(ev)
	}
	return nil
}
