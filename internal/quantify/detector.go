// Package quantify finds measurable metrics inside achievement statements.
package quantify

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/nlp"
)

// MatchType tags one family of quantification patterns.
type MatchType string

// Detected quantification families.
const (
	TypePercentage MatchType = "percentage"
	TypeCurrency   MatchType = "currency"
	TypeRange      MatchType = "range"
	TypeMultiplier MatchType = "multiplier"
	TypeTimeSpan   MatchType = "time_span"
	TypeNumber     MatchType = "number"
)

// Match is one detected quantification.
type Match struct {
	Type     MatchType `json:"type"`
	Value    string    `json:"value"`
	Position int       `json:"position"`
}

// Summary aggregates the quantifications found in a text.
type Summary struct {
	Total  int               `json:"total"`
	ByType map[MatchType]int `json:"by_type"`
	Items  []Match           `json:"items"`
}

// patternSpec pairs a match type with its compiled pattern. New families are
// added here without touching detection control flow. Order matters: more
// specific families run first and mask their spans from later ones.
type patternSpec struct {
	Type    MatchType
	Pattern *regexp.Regexp
}

var patternTable = []patternSpec{
	{TypePercentage, regexp.MustCompile(`\d+(?:\.\d+)?\s?%|\d+(?:\.\d+)?\s?percent\b`)},
	{TypeCurrency, regexp.MustCompile(`[$€£]\s?\d{1,3}(?:,\d{3})*(?:\.\d+)?\s?[KkMmBb]?|\d+(?:\.\d+)?\s?(?:USD|EUR|GBP)\b`)},
	{TypeRange, regexp.MustCompile(`\d+(?:\.\d+)?\s?[-–~]\s?\d+(?:\.\d+)?`)},
	{TypeMultiplier, regexp.MustCompile(`\d+(?:\.\d+)?[xX]\b`)},
	{TypeTimeSpan, regexp.MustCompile(`(?i)\d+\+?\s?(?:years?|months?|weeks?|days?|hours?|quarters?)\b`)},
	{TypeNumber, regexp.MustCompile(`\d{1,3}(?:,\d{3})+|\d+(?:\.\d+)?\s?[KkMm]\b|\d+(?:\.\d+)?`)},
}

// Detect returns every quantification in text in pattern-family order. Each
// character span is claimed by at most one family. Empty text yields an
// empty slice.
func Detect(text string) []Match {
	matches := []Match{}
	if text == "" {
		return matches
	}

	claimed := make([]bool, len(text))
	for _, spec := range patternTable {
		for _, loc := range spec.Pattern.FindAllStringIndex(text, -1) {
			if overlaps(claimed, loc[0], loc[1]) {
				continue
			}
			claim(claimed, loc[0], loc[1])
			matches = append(matches, Match{
				Type:     spec.Type,
				Value:    strings.TrimSpace(text[loc[0]:loc[1]]),
				Position: loc[0],
			})
		}
	}
	return matches
}

// HasAny reports whether text contains at least one quantification.
func HasAny(text string) bool {
	if text == "" {
		return false
	}
	for _, spec := range patternTable {
		if spec.Pattern.MatchString(text) {
			return true
		}
	}
	return false
}

// Score returns 100 * (achievement lines containing at least one
// quantification) / max(1, total achievement lines).
func Score(text string) float64 {
	lines := nlp.SplitAchievementLines(text)
	total := len(lines)
	if total < 1 {
		total = 1
	}

	quantified := 0
	for _, line := range lines {
		if HasAny(line) {
			quantified++
		}
	}
	return 100.0 * float64(quantified) / float64(total)
}

// Summarize aggregates detections by family.
func Summarize(text string) Summary {
	items := Detect(text)
	summary := Summary{
		Total:  len(items),
		ByType: make(map[MatchType]int),
		Items:  items,
	}
	for _, item := range items {
		summary.ByType[item.Type]++
	}
	return summary
}

func overlaps(claimed []bool, start, end int) bool {
	for i := start; i < end; i++ {
		if claimed[i] {
			return true
		}
	}
	return false
}

func claim(claimed []bool, start, end int) {
	for i := start; i < end; i++ {
		claimed[i] = true
	}
}
