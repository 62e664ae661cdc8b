package solver

import "fmt"

// InvalidInputError reports malformed input detected before any geometric
// computation: too few vertices or a non-finite flow parameter.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

func invalidInputf(format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}
