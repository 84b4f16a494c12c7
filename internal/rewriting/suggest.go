// Package rewriting provides the rule-driven rewrite strategies applied during optimization.
package rewriting

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// metricCategory pairs trigger keywords with a placeholder metric
// suggestion. Categories are checked in table order; the first hit wins.
type metricCategory struct {
	Name        string
	Triggers    []string
	Placeholder string
}

// metricCategories is the ten-category table for quantification suggestions.
var metricCategories = []metricCategory{
	{"performance", []string{"performance", "speed", "latency", "faster", "slower", "throughput", "optimized"},
		"X% faster / reduced latency by X ms"},
	{"scale", []string{"scale", "scaled", "traffic", "requests", "volume", "capacity", "concurrent"},
		"serving X requests per second / X concurrent users"},
	{"team", []string{"team", "mentored", "onboarded", "engineers", "developers", "hired"},
		"team of X engineers"},
	{"financial", []string{"revenue", "cost", "budget", "sales", "savings", "profit"},
		"$X in revenue / saved $X annually"},
	{"time", []string{"time", "deadline", "schedule", "faster", "delivery", "turnaround"},
		"X weeks ahead of schedule / cut turnaround by X days"},
	{"quality", []string{"quality", "bugs", "defects", "errors", "incidents", "reliability"},
		"reduced defects by X% / X% fewer incidents"},
	{"customer", []string{"customer", "client", "user", "satisfaction", "retention", "support"},
		"X customers served / improved satisfaction by X points"},
	{"project", []string{"project", "initiative", "launch", "delivered", "shipped", "release"},
		"X projects delivered / launched in X markets"},
	{"automation", []string{"automated", "automation", "manual", "scripts", "tooling"},
		"automated X manual hours per week"},
	{"code", []string{"code", "refactored", "tests", "coverage", "modules", "services"},
		"X services migrated / raised coverage to X%"},
}

const genericPlaceholder = "quantify the impact (X%, $X, or X items)"

// Suggestion is one proposed metric for an unquantified achievement line.
// Suggestions are proposals only; the snapshot text is never modified.
type Suggestion struct {
	Ref         types.AchievementRef `json:"ref"`
	Category    string               `json:"category"`
	Placeholder string               `json:"placeholder"`
}

// QuantificationSuggester proposes category-specific metric placeholders for
// achievement lines that carry no measurable result.
type QuantificationSuggester struct {
	categories []metricCategory
}

// NewQuantificationSuggester creates a suggester with the default category
// table.
func NewQuantificationSuggester() *QuantificationSuggester {
	return &QuantificationSuggester{categories: metricCategories}
}

// Suggest returns one suggestion per unquantified achievement reference.
func (q *QuantificationSuggester) Suggest(refs []types.AchievementRef) []Suggestion {
	suggestions := make([]Suggestion, 0, len(refs))
	for _, ref := range refs {
		category, placeholder := q.classify(ref.Line)
		suggestions = append(suggestions, Suggestion{
			Ref:         ref,
			Category:    category,
			Placeholder: placeholder,
		})
	}
	return suggestions
}

// AsChangeRecords converts suggestions into proposed (unapplied)
// modification records for the optimization change list.
func AsChangeRecords(suggestions []Suggestion) []types.ChangeRecord {
	records := make([]types.ChangeRecord, 0, len(suggestions))
	for _, s := range suggestions {
		records = append(records, types.ChangeRecord{
			Section:    "experience",
			FieldPath:  fmt.Sprintf("experiences[%d].achievements[%d]", s.Ref.ExperienceIndex, s.Ref.AchievementIndex),
			OldValue:   s.Ref.Line,
			NewValue:   s.Ref.Line + " (" + s.Placeholder + ")",
			ChangeType: types.ChangeModification,
			Reason:     fmt.Sprintf("suggestion: add a %s metric", s.Category),
		})
	}
	return records
}

// classify matches a line against the category table, falling back to the
// generic placeholder.
func (q *QuantificationSuggester) classify(line string) (category, placeholder string) {
	lowered := strings.ToLower(line)
	for _, cat := range q.categories {
		for _, trigger := range cat.Triggers {
			if strings.Contains(lowered, trigger) {
				return cat.Name, cat.Placeholder
			}
		}
	}
	return "general", genericPlaceholder
}
