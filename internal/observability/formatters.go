// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/diffing"
	"github.com/jonathan/resume-optimizer/internal/scoring"
	"github.com/jonathan/resume-optimizer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreReport outputs a human-readable summary of a scoring pass.
func (p *Printer) PrintScoreReport(report *scoring.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	b := report.Breakdown
	sb.WriteString(fmt.Sprintf("Keyword match:        %6.1f\n", b.KeywordMatch))
	sb.WriteString(fmt.Sprintf("Skill relevance:      %6.1f\n", b.SkillRelevance))
	sb.WriteString(fmt.Sprintf("Section completeness: %6.1f\n", b.SectionCompleteness))
	sb.WriteString(fmt.Sprintf("Experience impact:    %6.1f\n", b.ExperienceImpact))
	sb.WriteString(fmt.Sprintf("Quantification:       %6.1f\n", b.Quantification))
	sb.WriteString(fmt.Sprintf("Action verbs:         %6.1f\n", b.ActionVerb))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Final score:          %6.1f\n", b.FinalScore))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Matched keywords: %s\n", joinCapped(report.MatchedKeywords)))
	sb.WriteString(fmt.Sprintf("Missing keywords: %s\n", joinCapped(report.MissingKeywords)))
	sb.WriteString(fmt.Sprintf("Weak verb lines:  %d\n", len(report.WeakVerbOccurrences)))
	sb.WriteString(fmt.Sprintf("Unquantified:     %d\n", len(report.UnquantifiedAchievements)))

	p.printBox("ATS Score", sb.String())
}

// PrintOptimizationResult outputs a before/after summary of one optimization
// pass.
func (p *Printer) PrintOptimizationResult(result *types.OptimizationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Original score:  %6.1f\n", result.OriginalScore))
	sb.WriteString(fmt.Sprintf("Optimized score: %6.1f\n", result.OptimizedScore))
	sb.WriteString(fmt.Sprintf("Improvement:     %+6.1f\n", result.ImprovementDelta))
	sb.WriteString("\n")
	for _, changeType := range []types.ChangeType{types.ChangeAddition, types.ChangeModification, types.ChangeDeletion} {
		if count := result.ChangesByType[string(changeType)]; count > 0 {
			sb.WriteString(fmt.Sprintf("%-14s %d\n", string(changeType)+"s:", count))
		}
	}

	shown := 0
	for _, change := range result.Changes {
		if shown >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(result.Changes)-shown))
			break
		}
		sb.WriteString(fmt.Sprintf("- [%s] %s\n", change.ChangeType, change.FieldPath))
		shown++
	}

	p.printBox("Optimization Result", sb.String())
}

// PrintDiff outputs the change list from a snapshot comparison.
func (p *Printer) PrintDiff(diff *diffing.Diff) {
	if diff == nil {
		return
	}

	var sb strings.Builder
	if diff.ScoreDelta != nil {
		sb.WriteString(fmt.Sprintf("Score delta: %+.1f\n\n", *diff.ScoreDelta))
	}
	if len(diff.Changes) == 0 {
		sb.WriteString("No differences\n")
	}
	for _, change := range diff.Changes {
		switch change.ChangeType {
		case types.ChangeAddition:
			sb.WriteString(fmt.Sprintf("+ %s: %s\n", change.FieldPath, change.NewValue))
		case types.ChangeDeletion:
			sb.WriteString(fmt.Sprintf("- %s: %s\n", change.FieldPath, change.OldValue))
		default:
			sb.WriteString(fmt.Sprintf("~ %s: %s -> %s\n", change.FieldPath, change.OldValue, change.NewValue))
		}
	}

	p.printBox("Snapshot Comparison", sb.String())
}

// joinCapped joins up to maxItemsToShow items, noting how many were omitted.
func joinCapped(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	if len(items) <= maxItemsToShow {
		return strings.Join(items, ", ")
	}
	return strings.Join(items[:maxItemsToShow], ", ") +
		fmt.Sprintf(" (+%d more)", len(items)-maxItemsToShow)
}
