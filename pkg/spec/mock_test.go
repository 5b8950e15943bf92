package spec_test

import "github.com/fjglira/GoSpecRunner/pkg/spec"

// mockSink records how the sink interface is used by features, cases and
// targets.
type mockSink struct {
	enteredFeature  *spec.Feature
	enteredCase     *spec.Case
	succeededTarget *spec.Target
	failedTarget    *spec.Target
	raisedCase      *spec.Case
	raisedFeature   *spec.Feature
	raisedCause     error
	successes       int
	failures        int
	finished        bool
}

func (m *mockSink) EnterFeature(f *spec.Feature) { m.enteredFeature = f }
func (m *mockSink) EnterCase(c *spec.Case)       { m.enteredCase = c }

func (m *mockSink) Success(t *spec.Target) {
	m.succeededTarget = t
	m.successes++
}

func (m *mockSink) Failure(t *spec.Target) {
	m.failedTarget = t
	m.failures++
}

func (m *mockSink) Raised(f *spec.Feature, c *spec.Case, cause error) {
	m.raisedFeature = f
	m.raisedCase = c
	m.raisedCause = cause
	m.failures++
}

func (m *mockSink) Finish()     { m.finished = true }
func (m *mockSink) Failed() int { return m.failures }

func (m *mockSink) notifications() int { return m.successes + m.failures }
