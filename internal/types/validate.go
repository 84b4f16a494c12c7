// Package types provides type definitions for structured data used throughout the resume-optimizer system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// Validate validates the snapshot's shape using the validator. Sparse
// sections are fine; only structurally broken entries (an experience with no
// company, a skill with no name) fail.
func (s *ResumeSnapshot) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}
