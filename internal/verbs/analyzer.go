// Package verbs classifies the verbs opening achievement statements as strong or weak.
package verbs

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/nlp"
)

// Analysis holds the classification of every achievement line in a text.
type Analysis struct {
	StrongVerbsFound []string `json:"strong_verbs_found"`
	WeakVerbsFound   []string `json:"weak_verbs_found"`
	StrongCount      int      `json:"strong_count"`
	WeakCount        int      `json:"weak_count"`
	TotalCount       int      `json:"total_count"`
}

// Analyzer classifies leading verbs against injected strong/weak tables.
type Analyzer struct {
	strong map[string]bool
	// weak phrases ordered longest-first so "responsible for" wins over a
	// shorter prefix of the same line.
	weak []string
}

// NewAnalyzer creates an Analyzer with the default verb tables.
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithTables(DefaultStrongVerbs, DefaultWeakVerbs)
}

// NewAnalyzerWithTables creates an Analyzer with caller-supplied tables.
// Entries are matched case-insensitively.
func NewAnalyzerWithTables(strong, weak []string) *Analyzer {
	strongSet := make(map[string]bool, len(strong))
	for _, verb := range strong {
		strongSet[strings.ToLower(verb)] = true
	}

	weakOrdered := make([]string, len(weak))
	for i, phrase := range weak {
		weakOrdered[i] = strings.ToLower(phrase)
	}
	sort.SliceStable(weakOrdered, func(i, j int) bool {
		return len(weakOrdered[i]) > len(weakOrdered[j])
	})

	return &Analyzer{strong: strongSet, weak: weakOrdered}
}

// Analyze splits text into achievement lines and classifies each line's
// leading verb. Lines whose lead matches neither table count toward
// TotalCount only.
func (a *Analyzer) Analyze(text string) Analysis {
	analysis := Analysis{
		StrongVerbsFound: []string{},
		WeakVerbsFound:   []string{},
	}

	for _, line := range nlp.SplitAchievementLines(text) {
		analysis.TotalCount++

		if weak := a.WeakLead(line); weak != "" {
			analysis.WeakCount++
			analysis.WeakVerbsFound = append(analysis.WeakVerbsFound, weak)
			continue
		}
		if strong := a.strongLead(line); strong != "" {
			analysis.StrongCount++
			analysis.StrongVerbsFound = append(analysis.StrongVerbsFound, strong)
		}
	}

	return analysis
}

// Score returns 100 * strong / max(1, total) for the achievement lines in text.
func (a *Analyzer) Score(text string) float64 {
	analysis := a.Analyze(text)
	total := analysis.TotalCount
	if total < 1 {
		total = 1
	}
	return 100.0 * float64(analysis.StrongCount) / float64(total)
}

// WeakLead returns the weak verb or phrase opening the line, or "" if the
// line does not start with one. Multi-word phrases match before single verbs.
func (a *Analyzer) WeakLead(line string) string {
	lowered := strings.ToLower(nlp.StripBullet(line))
	for _, phrase := range a.weak {
		if matchesLead(lowered, phrase) {
			return phrase
		}
	}
	return ""
}

// IsStrong reports whether verb is in the strong table.
func (a *Analyzer) IsStrong(verb string) bool {
	return a.strong[strings.ToLower(verb)]
}

// strongLead returns the leading token if it is a strong verb.
func (a *Analyzer) strongLead(line string) string {
	first := LeadingToken(line)
	if first != "" && a.strong[first] {
		return first
	}
	return ""
}

// LeadingToken returns the lowercased first token of a line with trailing
// punctuation removed, after stripping any bullet glyph.
func LeadingToken(line string) string {
	fields := strings.Fields(nlp.StripBullet(line))
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(strings.TrimRight(fields[0], ".,!?;:"))
}

// matchesLead reports whether the lowered line starts with phrase at a word
// boundary.
func matchesLead(lowered, phrase string) bool {
	if !strings.HasPrefix(lowered, phrase) {
		return false
	}
	if len(lowered) == len(phrase) {
		return true
	}
	next := lowered[len(phrase)]
	return next == ' ' || next == ',' || next == ':' || next == ';'
}
