// Package types provides type definitions for structured data used throughout the resume-optimizer system.
package types

// Fixed component weights for the composite ATS score. The weights sum to 1.0.
const (
	KeywordMatchWeight        = 0.30
	SkillRelevanceWeight      = 0.20
	SectionCompletenessWeight = 0.15
	ExperienceImpactWeight    = 0.15
	QuantificationWeight      = 0.10
	ActionVerbWeight          = 0.10
)

// ScoreBreakdown holds the six component scores and their weighted composite.
// Every value is in [0,100]. FinalScore is always reproducible from the six
// components and the fixed weights.
type ScoreBreakdown struct {
	KeywordMatch        float64 `json:"keyword_match"`
	SkillRelevance      float64 `json:"skill_relevance"`
	SectionCompleteness float64 `json:"section_completeness"`
	ExperienceImpact    float64 `json:"experience_impact"`
	Quantification      float64 `json:"quantification"`
	ActionVerb          float64 `json:"action_verb"`
	FinalScore          float64 `json:"final_score"`
}

// ComputeFinal returns the fixed-weight sum of the six components,
// clamped to [0,100].
func (b *ScoreBreakdown) ComputeFinal() float64 {
	final := KeywordMatchWeight*b.KeywordMatch +
		SkillRelevanceWeight*b.SkillRelevance +
		SectionCompletenessWeight*b.SectionCompleteness +
		ExperienceImpactWeight*b.ExperienceImpact +
		QuantificationWeight*b.Quantification +
		ActionVerbWeight*b.ActionVerb
	return Clamp(final)
}

// WeakVerbOccurrence records an achievement line that opens with a weak verb
// or phrase.
type WeakVerbOccurrence struct {
	Line string `json:"line"`
	Verb string `json:"verb"`
}

// AchievementRef locates one achievement line within a snapshot.
type AchievementRef struct {
	ExperienceIndex  int    `json:"experience_index"`
	AchievementIndex int    `json:"achievement_index"`
	Line             string `json:"line"`
}

// Clamp bounds a score to [0,100].
func Clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
