package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/fjglira/GoSpecRunner/internal/domain"
	"github.com/fjglira/GoSpecRunner/pkg/spec"
)

// Collector is a sink that builds a domain.RunReport. Finish seals the
// current report, makes it available through Report and starts a new one.
type Collector struct {
	title string
	now   func() time.Time

	current *domain.RunReport
	sealed  *domain.RunReport

	feature *spec.Feature
	kase    *spec.Case
}

// NewCollector creates a Collector whose reports carry title.
func NewCollector(title string) *Collector {
	c := &Collector{title: title, now: time.Now}
	c.reset()
	return c
}

// WithClock replaces the time source. It is meant for tests.
func (c *Collector) WithClock(now func() time.Time) *Collector {
	c.now = now
	c.current.StartedAt = now()
	return c
}

func (c *Collector) reset() {
	c.current = &domain.RunReport{
		ID:        uuid.NewString(),
		Title:     c.title,
		StartedAt: c.now(),
	}
	c.feature, c.kase = nil, nil
}

// EnterFeature starts a new feature section.
func (c *Collector) EnterFeature(f *spec.Feature) {
	c.current.Features = append(c.current.Features, domain.FeatureReport{What: f.What()})
	c.feature, c.kase = f, nil
}

// EnterCase starts a new case section in the feature of cs.
func (c *Collector) EnterCase(cs *spec.Case) {
	fr := c.featureFor(cs.Feature())
	fr.Cases = append(fr.Cases, domain.CaseReport{How: cs.How()})
	c.kase = cs
}

// Success records a passed assertion.
func (c *Collector) Success(t *spec.Target) {
	c.record(t)
	c.current.Passed++
}

// Failure records a failed assertion.
func (c *Collector) Failure(t *spec.Target) {
	c.record(t)
	c.current.Failed++
}

// Raised records a panicking scope body as a failure of its case, or of the
// feature when cs is nil.
func (c *Collector) Raised(f *spec.Feature, cs *spec.Case, cause error) {
	if cs != nil {
		c.caseFor(cs).Raised = cause.Error()
	} else if f != nil {
		c.featureFor(f).Raised = cause.Error()
	}
	c.current.Raised++
	c.current.Failed++
}

// Finish seals the current report and starts a new one.
func (c *Collector) Finish() {
	c.current.FinishedAt = c.now()
	c.sealed = c.current
	c.reset()
}

// Failed returns the failures recorded since the last Finish.
func (c *Collector) Failed() int {
	return c.current.Failed
}

// Report returns the report sealed by the last Finish, or nil.
func (c *Collector) Report() *domain.RunReport {
	return c.sealed
}

// Current returns the report being collected.
func (c *Collector) Current() *domain.RunReport {
	return c.current
}

func (c *Collector) record(t *spec.Target) {
	rec := domain.AssertionRecord{
		Subject:  spec.Repr(t.Subject()),
		Meaning:  t.Meaning(),
		Verb:     t.Verb(),
		Expected: spec.Repr(t.Expected()),
		Success:  t.Success(),
	}
	if t.Raised() != nil {
		rec.Caught = t.Raised().Error()
	}
	cr := c.caseFor(t.Case())
	cr.Assertions = append(cr.Assertions, rec)
}

// featureFor returns the report section of f, opening one if f was never
// entered.
func (c *Collector) featureFor(f *spec.Feature) *domain.FeatureReport {
	if f != c.feature || len(c.current.Features) == 0 {
		c.current.Features = append(c.current.Features, domain.FeatureReport{What: f.What()})
		c.feature, c.kase = f, nil
	}
	return &c.current.Features[len(c.current.Features)-1]
}

// caseFor returns the report section of cs, opening one if cs was never
// entered.
func (c *Collector) caseFor(cs *spec.Case) *domain.CaseReport {
	fr := c.featureFor(cs.Feature())
	if cs != c.kase || len(fr.Cases) == 0 {
		fr.Cases = append(fr.Cases, domain.CaseReport{How: cs.How()})
		c.kase = cs
	}
	return &fr.Cases[len(fr.Cases)-1]
}
