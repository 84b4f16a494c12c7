// Package scoring combines keyword, verb and quantification analysis into a weighted composite ATS score.
package scoring

import "fmt"

// InputError represents a malformed input shape rejected before analysis.
type InputError struct {
	Message string
	Cause   error
}

func (e *InputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("scoring input error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("scoring input error: %s", e.Message)
}

func (e *InputError) Unwrap() error {
	return e.Cause
}
