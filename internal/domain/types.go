package domain

import "time"

// RunReport holds everything recorded during one run.
type RunReport struct {
	ID         string          `yaml:"id"`
	Title      string          `yaml:"title"`
	StartedAt  time.Time       `yaml:"started_at"`
	FinishedAt time.Time       `yaml:"finished_at"`
	Features   []FeatureReport `yaml:"features"`
	Passed     int             `yaml:"passed"`
	Failed     int             `yaml:"failed"`
	Raised     int             `yaml:"raised"`
}

// Total returns the number of recorded outcomes.
func (r *RunReport) Total() int {
	return r.Passed + r.Failed
}

// FeatureReport is one described feature.
type FeatureReport struct {
	What   string       `yaml:"what"`
	Cases  []CaseReport `yaml:"cases"`
	Raised string       `yaml:"raised,omitempty"` // panic outside of any case
}

// CaseReport is one case of a feature.
type CaseReport struct {
	How        string            `yaml:"how"`
	Assertions []AssertionRecord `yaml:"assertions"`
	Raised     string            `yaml:"raised,omitempty"`
}

// Failed reports whether any assertion of the case failed or its body panicked.
func (c CaseReport) Failed() bool {
	if c.Raised != "" {
		return true
	}
	for _, a := range c.Assertions {
		if !a.Success {
			return true
		}
	}
	return false
}

// AssertionRecord is one evaluated assertion, rendered for humans.
type AssertionRecord struct {
	Subject  string `yaml:"subject"`
	Meaning  string `yaml:"meaning"`          // "should" or "should not"
	Verb     string `yaml:"verb"`             // "be", "contain", ...
	Expected string `yaml:"expected"`         // empty when the assertion takes none
	Success  bool   `yaml:"success"`
	Caught   string `yaml:"caught,omitempty"` // condition caught by a throw assertion
}
