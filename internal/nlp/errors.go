// Package nlp provides the shared natural-language model used for tokenization,
// part-of-speech tagging and lemmatization.
package nlp

import "fmt"

// ModelError represents a failure to initialize or use the shared NLP model.
// Model initialization failures are fatal to callers; there is no fallback
// tokenizer.
type ModelError struct {
	Message string
	Cause   error
}

func (e *ModelError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("nlp model error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("nlp model error: %s", e.Message)
}

func (e *ModelError) Unwrap() error {
	return e.Cause
}
