package metrics

import "time"

// Build outcomes used as the status of a BuildEvent.
const (
	StatusOK          = "ok"
	StatusMissingRole = "missing_role"
	StatusUnavailable = "unavailable"
	StatusError       = "error"
)

// BuildEvent describes one estimator build.
type BuildEvent struct {
	BuildID  string
	Method   string
	Status   string
	Rows     int
	Duration time.Duration
	Time     time.Time
}

// BuildRecorder records build events.
type BuildRecorder interface {
	RecordBuild(ev BuildEvent) error
}

// NopRecorder discards every event.
type NopRecorder struct{}

func (NopRecorder) RecordBuild(BuildEvent) error { return nil }

// MultiRecorder fans events out to several recorders.
type MultiRecorder struct {
	Recorders []BuildRecorder
}

// NewMultiRecorder creates a MultiRecorder with the provided recorders.
func NewMultiRecorder(recs ...BuildRecorder) *MultiRecorder {
	return &MultiRecorder{Recorders: recs}
}

// RecordBuild forwards the event to all recorders, returning the first error
// encountered.
func (m *MultiRecorder) RecordBuild(ev BuildEvent) error {
	for _, r := range m.Recorders {
		if err := r.RecordBuild(ev); err != nil {
			return err
		}
	}
	return nil
}
