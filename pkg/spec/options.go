package spec

// Option configures Describe and Done.
type Option func(*options)

type options struct {
	sink Sink
	exit bool
}

func buildOptions(opts []Option) options {
	o := options{sink: defaultSink, exit: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.sink == nil {
		o.sink = defaultSink
	}
	return o
}

// WithSink reports to s instead of the default sink.
func WithSink(s Sink) Option {
	return func(o *options) {
		o.sink = s
	}
}

// WithoutExit makes Done return the failure count instead of terminating
// the process.
func WithoutExit() Option {
	return func(o *options) {
		o.exit = false
	}
}
