package spec

// Sink receives lifecycle and outcome notifications from features, cases
// and targets.
type Sink interface {
	// EnterFeature is called when a Feature scope is entered.
	EnterFeature(f *Feature)
	// EnterCase is called when a Case scope is entered.
	EnterCase(c *Case)
	// Success is called once per assertion that held.
	Success(t *Target)
	// Failure is called once per assertion that did not hold.
	Failure(t *Target)
	// Raised is called when a scope body panicked. c is nil when the panic
	// happened in a feature body outside of any case.
	Raised(f *Feature, c *Case, cause error)
	// Finish ends the run and resets the counters.
	Finish()
	// Failed returns the number of failures recorded since the last Finish.
	Failed() int
}

var defaultSink Sink = NewTextSink(nil)

// DefaultSink returns the process-wide sink used when no WithSink option
// is given.
func DefaultSink() Sink {
	return defaultSink
}

// SetDefaultSink replaces the process-wide sink and returns the previous one.
func SetDefaultSink(s Sink) Sink {
	prev := defaultSink
	if s == nil {
		s = NewTextSink(nil)
	}
	defaultSink = s
	return prev
}
