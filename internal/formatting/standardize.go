// Package formatting standardizes resume text into ATS-friendly form.
package formatting

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/resume-optimizer/internal/types"
)

var (
	// Recognized date shapes: MM/YYYY and YYYY-MM.
	slashDatePattern = regexp.MustCompile(`^(0?[1-9]|1[0-2])/(\d{4})$`)
	isoDatePattern   = regexp.MustCompile(`^(\d{4})-(0?[1-9]|1[0-2])$`)

	whitespaceRun = regexp.MustCompile(`[ \t]{2,}`)
)

// atsUnfriendlyReplacements strips characters that confuse ATS parsers.
// Applied in order; all replacements are idempotent.
var atsUnfriendlyReplacements = []struct {
	old string
	new string
}{
	{"•", ""}, {"◦", ""}, {"▪", ""}, {"·", ""}, // bullet glyphs
	{"“", `"`}, {"”", `"`}, // smart double quotes
	{"‘", "'"}, {"’", "'"}, // smart single quotes
	{"—", "-"}, {"–", "-"}, // em and en dashes
	{" ", " "}, // non-breaking space
	{"\t", " "},
}

// Standardizer applies ATS-friendly formatting rules across a snapshot.
type Standardizer struct{}

// NewStandardizer creates a Standardizer.
func NewStandardizer() *Standardizer {
	return &Standardizer{}
}

// StandardizeAll returns formatting changes after rewriting every text field
// of the snapshot in place: dates to "Month YYYY", ATS-unfriendly characters
// stripped, whitespace collapsed. Applying it twice yields the same result
// as applying it once.
func (f *Standardizer) StandardizeAll(snapshot *types.ResumeSnapshot) []types.ChangeRecord {
	changes := []types.ChangeRecord{}

	record := func(section, path, old, updated string) {
		if old == updated {
			return
		}
		changes = append(changes, types.ChangeRecord{
			Section:    section,
			FieldPath:  path,
			OldValue:   old,
			NewValue:   updated,
			ChangeType: types.ChangeModification,
			Reason:     "standardized formatting",
		})
	}

	if cleaned := CleanText(snapshot.PersonalInfo.Summary); cleaned != snapshot.PersonalInfo.Summary {
		record("personal_info", "personal_info.summary", snapshot.PersonalInfo.Summary, cleaned)
		snapshot.PersonalInfo.Summary = cleaned
	}

	for i := range snapshot.Experiences {
		exp := &snapshot.Experiences[i]
		prefix := fmt.Sprintf("experiences[%d]", i)

		if date := StandardizeDate(exp.StartDate); date != exp.StartDate {
			record("experience", prefix+".start_date", exp.StartDate, date)
			exp.StartDate = date
		}
		if date := StandardizeDate(exp.EndDate); date != exp.EndDate {
			record("experience", prefix+".end_date", exp.EndDate, date)
			exp.EndDate = date
		}
		for j, line := range exp.Achievements {
			if cleaned := CleanText(line); cleaned != line {
				record("experience", fmt.Sprintf("%s.achievements[%d]", prefix, j), line, cleaned)
				exp.Achievements[j] = cleaned
			}
		}
	}

	for i := range snapshot.Education {
		edu := &snapshot.Education[i]
		prefix := fmt.Sprintf("education[%d]", i)
		if date := StandardizeDate(edu.StartDate); date != edu.StartDate {
			record("education", prefix+".start_date", edu.StartDate, date)
			edu.StartDate = date
		}
		if date := StandardizeDate(edu.EndDate); date != edu.EndDate {
			record("education", prefix+".end_date", edu.EndDate, date)
			edu.EndDate = date
		}
	}

	for i := range snapshot.Projects {
		proj := &snapshot.Projects[i]
		if cleaned := CleanText(proj.Description); cleaned != proj.Description {
			record("projects", fmt.Sprintf("projects[%d].description", i), proj.Description, cleaned)
			proj.Description = cleaned
		}
	}

	return changes
}

// StandardizeDate converts MM/YYYY and YYYY-MM to "Month YYYY". Anything
// else (including already-converted dates and open-ended values like
// "Present") passes through unchanged.
func StandardizeDate(date string) string {
	trimmed := strings.TrimSpace(date)

	if m := slashDatePattern.FindStringSubmatch(trimmed); m != nil {
		return monthYear(m[1], m[2])
	}
	if m := isoDatePattern.FindStringSubmatch(trimmed); m != nil {
		return monthYear(m[2], m[1])
	}
	return date
}

// CleanText strips ATS-unfriendly characters and collapses whitespace runs.
func CleanText(text string) string {
	cleaned := text
	for _, r := range atsUnfriendlyReplacements {
		cleaned = strings.ReplaceAll(cleaned, r.old, r.new)
	}
	cleaned = whitespaceRun.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

func monthYear(month, year string) string {
	monthNum := 0
	_, _ = fmt.Sscanf(month, "%d", &monthNum)
	if monthNum < 1 || monthNum > 12 {
		return month + "/" + year
	}
	return time.Month(monthNum).String() + " " + year
}
