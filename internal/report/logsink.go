package report

import (
	"github.com/sirupsen/logrus"

	"github.com/fjglira/GoSpecRunner/pkg/spec"
)

// LogSink mirrors sink notifications to a logrus logger. Failures are
// logged at warn level, panicking bodies at error level, the rest at debug.
type LogSink struct {
	log    *logrus.Logger
	passed int
	failed int
}

// NewLogSink creates a LogSink writing to log.
func NewLogSink(log *logrus.Logger) *LogSink {
	return &LogSink{log: log}
}

// EnterFeature logs entering f at debug level.
func (s *LogSink) EnterFeature(f *spec.Feature) {
	s.log.WithField("feature", f.What()).Debug("Entering feature")
}

// EnterCase logs entering c at debug level.
func (s *LogSink) EnterCase(c *spec.Case) {
	s.log.WithFields(logrus.Fields{
		"feature": c.Feature().What(),
		"case":    c.How(),
	}).Debug("Entering case")
}

// Success logs a passed assertion at debug level.
func (s *LogSink) Success(t *spec.Target) {
	s.passed++
	s.log.WithFields(targetFields(t)).Debug("Assertion passed")
}

// Failure logs a failed assertion at warn level.
func (s *LogSink) Failure(t *spec.Target) {
	s.failed++
	s.log.WithFields(targetFields(t)).Warn("Assertion failed")
}

// Raised logs a panicking scope body at error level.
func (s *LogSink) Raised(f *spec.Feature, c *spec.Case, cause error) {
	s.failed++
	entry := s.log.WithError(cause)
	if f != nil {
		entry = entry.WithField("feature", f.What())
	}
	if c != nil {
		entry = entry.WithField("case", c.How())
	}
	entry.Error("Scope body panicked")
}

// Finish logs the tally and resets the counters.
func (s *LogSink) Finish() {
	s.log.WithFields(logrus.Fields{
		"passed": s.passed,
		"failed": s.failed,
	}).Info("Run finished")
	s.passed, s.failed = 0, 0
}

// Failed returns the failures logged since the last Finish.
func (s *LogSink) Failed() int {
	return s.failed
}

func targetFields(t *spec.Target) logrus.Fields {
	return logrus.Fields{
		"feature": t.Case().Feature().What(),
		"case":    t.Case().How(),
		"phrase":  spec.Phrase(t),
	}
}
