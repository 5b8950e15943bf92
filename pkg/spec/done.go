package spec

import "os"

// MaxExitCode is the largest status Done passes to the operating system.
// Larger failure counts are clamped so they never wrap around to success.
const MaxExitCode = 255

// exit is replaced in tests.
var exit = os.Exit

// Done finishes the run: it reads the failure count, lets the sink print its
// summary and, unless WithoutExit is given, terminates the process with
// ExitCode(failures). It returns the failure count.
func Done(opts ...Option) int {
	o := buildOptions(opts)
	failures := o.sink.Failed()
	o.sink.Finish()
	if o.exit {
		exit(ExitCode(failures))
	}
	return failures
}

// ExitCode maps a failure count to a process status: 0 when nothing failed,
// otherwise the count clamped to MaxExitCode.
func ExitCode(failures int) int {
	switch {
	case failures <= 0:
		return 0
	case failures > MaxExitCode:
		return MaxExitCode
	}
	return failures
}
