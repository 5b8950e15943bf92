package report

import "github.com/fjglira/GoSpecRunner/pkg/spec"

// Tee forwards every notification to several sinks in order. Its failure
// count is the primary sink's.
type Tee struct {
	primary spec.Sink
	sinks   []spec.Sink
}

// NewTee creates a Tee over primary and others.
func NewTee(primary spec.Sink, others ...spec.Sink) *Tee {
	sinks := append([]spec.Sink{primary}, others...)
	return &Tee{primary: primary, sinks: sinks}
}

// EnterFeature forwards entering a feature to every sink.
func (t *Tee) EnterFeature(f *spec.Feature) {
	for _, s := range t.sinks {
		s.EnterFeature(f)
	}
}

// EnterCase forwards entering a case to every sink.
func (t *Tee) EnterCase(c *spec.Case) {
	for _, s := range t.sinks {
		s.EnterCase(c)
	}
}

// Success forwards a passed assertion to every sink.
func (t *Tee) Success(target *spec.Target) {
	for _, s := range t.sinks {
		s.Success(target)
	}
}

// Failure forwards a failed assertion to every sink.
func (t *Tee) Failure(target *spec.Target) {
	for _, s := range t.sinks {
		s.Failure(target)
	}
}

// Raised forwards a panicking scope body to every sink.
func (t *Tee) Raised(f *spec.Feature, c *spec.Case, cause error) {
	for _, s := range t.sinks {
		s.Raised(f, c, cause)
	}
}

// Finish finishes every sink in order.
func (t *Tee) Finish() {
	for _, s := range t.sinks {
		s.Finish()
	}
}

// Failed returns the primary sink's failure count.
func (t *Tee) Failed() int {
	return t.primary.Failed()
}
