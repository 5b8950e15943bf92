package spec

import "fmt"

// Case is one behavioral example of a Feature.
type Case struct {
	feature *Feature
	how     string
}

// How returns the description of how the feature behaves.
func (c *Case) How() string {
	return c.how
}

// Feature returns the owning feature.
func (c *Case) Feature() *Feature {
	return c.feature
}

// Sink returns the sink of the owning feature.
func (c *Case) Sink() Sink {
	return c.feature.sink
}

// Enter reports entering the case scope and returns c.
func (c *Case) Enter() *Case {
	c.Sink().EnterCase(c)
	return c
}

// Exit leaves the case scope.
func (c *Case) Exit() {}

// Then wraps subject in a Target.
func (c *Case) Then(subject any) *Target {
	return newTarget(c, subject, false)
}

// Run enters the case scope, runs body and exits. A panic in body is
// reported through Sink.Raised against this case; the caller continues
// with the next case.
func (c *Case) Run(body func(then *Case)) {
	c.Enter()
	defer c.Exit()
	defer func() {
		if r := recover(); r != nil {
			c.Sink().Raised(c.feature, c, newPanicError(r))
		}
	}()
	body(c)
}

func (c *Case) String() string {
	return fmt.Sprintf("Case '%s' of %s", c.how, c.feature)
}
