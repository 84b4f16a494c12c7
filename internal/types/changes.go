// Package types provides type definitions for structured data used throughout the resume-optimizer system.
package types

// ChangeType classifies a single resume edit.
type ChangeType string

// Valid change types.
const (
	ChangeAddition     ChangeType = "addition"
	ChangeDeletion     ChangeType = "deletion"
	ChangeModification ChangeType = "modification"
)

// ChangeRecord represents one proposed or applied edit. Records are created
// by a rewrite strategy or by the diff engine and never mutated afterwards.
type ChangeRecord struct {
	Section    string     `json:"section"`
	FieldPath  string     `json:"field_path"`
	OldValue   string     `json:"old_value,omitempty"`
	NewValue   string     `json:"new_value,omitempty"`
	ChangeType ChangeType `json:"change_type"`
	Reason     string     `json:"reason,omitempty"`
}

// OptimizationResult is the immutable outcome of one optimization pass.
type OptimizationResult struct {
	OriginalScore     float64         `json:"original_score"`
	OptimizedSnapshot *ResumeSnapshot `json:"optimized_snapshot"`
	OptimizedScore    float64         `json:"optimized_score"`
	ImprovementDelta  float64         `json:"improvement_delta"`
	Changes           []ChangeRecord  `json:"changes"`
	ChangesByType     map[string]int  `json:"changes_by_type"`
}

// OptimizeOptions toggles individual rewrite strategies for one optimization
// pass. A nil flag means enabled; MaxKeywords <= 0 means the default of 10.
type OptimizeOptions struct {
	RewriteBullets         *bool `json:"rewrite_bullets,omitempty"`
	InjectKeywords         *bool `json:"inject_keywords,omitempty"`
	SuggestQuantifications *bool `json:"suggest_quantifications,omitempty"`
	StandardizeFormatting  *bool `json:"standardize_formatting,omitempty"`
	MaxKeywords            int   `json:"max_keywords,omitempty"`
}

// DefaultMaxKeywords is the number of missing keywords injected when the
// caller does not override it.
const DefaultMaxKeywords = 10

// Enabled reports whether an optional strategy flag is on. Omitted flags
// default to enabled.
func Enabled(flag *bool) bool {
	return flag == nil || *flag
}

// EffectiveMaxKeywords resolves the configured keyword budget.
func (o *OptimizeOptions) EffectiveMaxKeywords() int {
	if o == nil || o.MaxKeywords <= 0 {
		return DefaultMaxKeywords
	}
	return o.MaxKeywords
}
