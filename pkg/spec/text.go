package spec

import (
	"fmt"
	"io"
	"os"
)

// TextSink is the standard result formatter. It prints features, cases and
// failures as they happen and a one-line summary on Finish.
type TextSink struct {
	out    io.Writer
	passed int
	failed int
}

// NewTextSink creates a TextSink writing to w, or to stdout if w is nil.
func NewTextSink(w io.Writer) *TextSink {
	if w == nil {
		w = os.Stdout
	}
	return &TextSink{out: w}
}

// EnterFeature prints the feature description.
func (s *TextSink) EnterFeature(f *Feature) {
	fmt.Fprintln(s.out, f.What())
}

// EnterCase prints the case description, indented.
func (s *TextSink) EnterCase(c *Case) {
	fmt.Fprintln(s.out, "   "+c.How())
}

// ShowTarget prints a target as an English phrase.
func (s *TextSink) ShowTarget(t *Target) {
	fmt.Fprintln(s.out, "      "+Phrase(t))
}

// Success counts a passed assertion. Nothing is printed.
func (s *TextSink) Success(t *Target) {
	s.passed++
}

// Failure prints the failed target and counts it.
func (s *TextSink) Failure(t *Target) {
	s.failed++
	fmt.Fprintln(s.out, "FAILED:")
	s.ShowTarget(t)
}

// Raised prints the cause of a panicking scope body and counts it as a
// failure.
func (s *TextSink) Raised(f *Feature, c *Case, cause error) {
	s.failed++
	fmt.Fprintln(s.out, "RAISED:")
	fmt.Fprintln(s.out, "      "+cause.Error())
}

// Finish prints the summary line and resets both counters.
func (s *TextSink) Finish() {
	if s.failed > 0 {
		fmt.Fprintf(s.out, "%d failed. %d of %d assertions passed.\n",
			s.failed, s.passed, s.failed+s.passed)
	} else {
		fmt.Fprintf(s.out, "%d of %d assertions passed.\n", s.passed, s.passed)
	}
	s.passed, s.failed = 0, 0
}

// Passed returns the number of passed assertions since the last Finish.
func (s *TextSink) Passed() int {
	return s.passed
}

// Failed returns the number of failures since the last Finish.
func (s *TextSink) Failed() int {
	return s.failed
}
