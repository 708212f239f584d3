// Package pipeline provides the high-level orchestration for one resume
// optimization run.
package pipeline

import "fmt"

// InvalidInputError reports input rejected before any pipeline step ran
type InvalidInputError struct {
	Message string
	Cause   error
}

func (e *InvalidInputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid input: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Cause
}
