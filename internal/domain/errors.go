package domain

import "fmt"

// SpecRunError is the base error type with context.
type SpecRunError struct {
	Phase      string // "config", "template", "report", "run"
	File       string
	LineNumber int
	Message    string
	Suggestion string
	Cause      error
}

func (e *SpecRunError) Error() string {
	s := fmt.Sprintf("[%s]", e.Phase)
	if e.File != "" {
		s += fmt.Sprintf(" %s", e.File)
	}
	if e.LineNumber > 0 {
		s += fmt.Sprintf(":%d", e.LineNumber)
	}
	s += fmt.Sprintf(": %s", e.Message)
	if e.Cause != nil {
		s += fmt.Sprintf(": %v", e.Cause)
	}
	if e.Suggestion != "" {
		s += fmt.Sprintf(" (hint: %s)", e.Suggestion)
	}
	return s
}

func (e *SpecRunError) Unwrap() error {
	return e.Cause
}

// NewError creates a new SpecRunError.
func NewError(phase, file string, line int, message string, cause error) *SpecRunError {
	return &SpecRunError{
		Phase:      phase,
		File:       file,
		LineNumber: line,
		Message:    message,
		Cause:      cause,
	}
}

// NewErrorWithSuggestion creates a SpecRunError carrying a hint on how to fix it.
func NewErrorWithSuggestion(phase, file string, line int, message, suggestion string, cause error) *SpecRunError {
	err := NewError(phase, file, line, message, cause)
	err.Suggestion = suggestion
	return err
}
