package report

import "github.com/fjglira/GoSpecRunner/pkg/spec"

// EventKind names a sink notification.
type EventKind string

const (
	EventEnterFeature EventKind = "enter_feature"
	EventEnterCase    EventKind = "enter_case"
	EventSuccess      EventKind = "success"
	EventFailure      EventKind = "failure"
	EventRaised       EventKind = "raised"
	EventFinish       EventKind = "finish"
)

// Event is one recorded sink notification.
type Event struct {
	Kind    EventKind
	Feature *spec.Feature
	Case    *spec.Case
	Target  *spec.Target
	Cause   error
}

// Recorder is a sink that only remembers what it was told. It prints
// nothing, which keeps it out of the way of the run it observes.
type Recorder struct {
	EnteredFeature  *spec.Feature
	EnteredCase     *spec.Case
	SucceededTarget *spec.Target
	FailedTarget    *spec.Target
	RaisedCause     error
	Finished        bool
	Events          []Event

	failed int
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// EnterFeature records entering f.
func (r *Recorder) EnterFeature(f *spec.Feature) {
	r.EnteredFeature = f
	r.Events = append(r.Events, Event{Kind: EventEnterFeature, Feature: f})
}

// EnterCase records entering c.
func (r *Recorder) EnterCase(c *spec.Case) {
	r.EnteredCase = c
	r.Events = append(r.Events, Event{Kind: EventEnterCase, Feature: c.Feature(), Case: c})
}

// Success records a passed assertion.
func (r *Recorder) Success(t *spec.Target) {
	r.SucceededTarget = t
	r.Events = append(r.Events, Event{Kind: EventSuccess, Case: t.Case(), Target: t})
}

// Failure records and counts a failed assertion.
func (r *Recorder) Failure(t *spec.Target) {
	r.FailedTarget = t
	r.failed++
	r.Events = append(r.Events, Event{Kind: EventFailure, Case: t.Case(), Target: t})
}

// Raised records and counts a panicking scope body.
func (r *Recorder) Raised(f *spec.Feature, c *spec.Case, cause error) {
	r.RaisedCause = cause
	r.failed++
	r.Events = append(r.Events, Event{Kind: EventRaised, Feature: f, Case: c, Cause: cause})
}

// Finish records the end of the run and resets the failure count.
func (r *Recorder) Finish() {
	r.Finished = true
	r.failed = 0
	r.Events = append(r.Events, Event{Kind: EventFinish})
}

// Failed returns the failures recorded since the last Finish.
func (r *Recorder) Failed() int {
	return r.failed
}

// Count returns how many events of kind were recorded.
func (r *Recorder) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
