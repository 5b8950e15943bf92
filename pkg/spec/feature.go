package spec

import "fmt"

// Feature is a named group of cases. It is immutable once created.
type Feature struct {
	what string
	sink Sink
}

// Describe is the entry point for writing specs. It returns a Feature
// reporting to the default sink unless WithSink is given.
func Describe(what string, opts ...Option) *Feature {
	o := buildOptions(opts)
	return &Feature{what: what, sink: o.sink}
}

// What returns the feature description.
func (f *Feature) What() string {
	return f.what
}

// Sink returns the sink the feature and its cases report to.
func (f *Feature) Sink() Sink {
	return f.sink
}

// Enter reports entering the feature scope and returns f.
func (f *Feature) Enter() *Feature {
	f.sink.EnterFeature(f)
	return f
}

// Exit leaves the feature scope.
func (f *Feature) Exit() {}

// Case returns a new case of f describing how it behaves.
func (f *Feature) Case(how string) *Case {
	return &Case{feature: f, how: how}
}

// Run enters the feature scope, runs body and exits. A panic in body that
// is not inside a case is reported through Sink.Raised and does not
// propagate.
func (f *Feature) Run(body func(it *Feature)) {
	f.Enter()
	defer f.Exit()
	defer func() {
		if r := recover(); r != nil {
			f.sink.Raised(f, nil, newPanicError(r))
		}
	}()
	body(f)
}

// It is shorthand for f.Case(how).Run(body).
func (f *Feature) It(how string, body func(then *Case)) {
	f.Case(how).Run(body)
}

func (f *Feature) String() string {
	return fmt.Sprintf("Feature '%s'", f.what)
}
