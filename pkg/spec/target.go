package spec

type void struct{}

func (void) String() string { return "" }

// NoValue is the expected value recorded by assertions that take none.
var NoValue any = void{}

// Target is a subject under test within a case. Assertions evaluate a
// proposition about the subject and report it to the case's sink.
type Target struct {
	kase    *Case
	subject any
	negated bool
	meaning string

	// set by the assertion methods
	verb     string
	expected any
	done     bool
	success  bool
	raised   error
}

func newTarget(c *Case, subject any, negated bool) *Target {
	meaning := "should"
	if negated {
		meaning = "should not"
	}
	return &Target{
		kase:     c,
		subject:  subject,
		negated:  negated,
		meaning:  meaning,
		expected: NoValue,
		// meaningless until done
		success: true,
	}
}

// Should returns a Target expecting the next assertion to hold.
func (t *Target) Should() *Target {
	return newTarget(t.kase, t.subject, false)
}

// ShouldNot returns a Target expecting the next assertion not to hold.
func (t *Target) ShouldNot() *Target {
	return newTarget(t.kase, t.subject, true)
}

// Evaluate records verb and expected, applies negation to condition and
// reports the outcome. It is the single path every assertion takes.
func (t *Target) Evaluate(condition bool, verb string, expected any) bool {
	t.done = true
	t.verb = verb
	t.expected = expected
	if condition != t.negated {
		t.success = true
		t.kase.Sink().Success(t)
		return true
	}
	t.success = false
	t.kase.Sink().Failure(t)
	return false
}

// Case returns the case the target belongs to.
func (t *Target) Case() *Case { return t.kase }

// Subject returns the value under test.
func (t *Target) Subject() any { return t.subject }

// Negated reports whether the target was obtained via ShouldNot.
func (t *Target) Negated() bool { return t.negated }

// Meaning returns "should" or "should not".
func (t *Target) Meaning() string { return t.meaning }

// Verb returns the verb of the last assertion.
func (t *Target) Verb() string { return t.verb }

// Expected returns the right-hand value of the last assertion, or NoValue.
func (t *Target) Expected() any { return t.expected }

// Done reports whether an assertion has been evaluated.
func (t *Target) Done() bool { return t.done }

// Success reports the outcome of the last assertion. It has no meaning
// before Done is true.
func (t *Target) Success() bool { return t.success }

// Raised returns the condition caught by the last Throw, if any.
func (t *Target) Raised() error { return t.raised }
