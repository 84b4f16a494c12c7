// Package formatting standardizes resume text into ATS-friendly form.
package formatting

import (
	"github.com/jonathan/resume-optimizer/internal/types"
)

// atsPenaltyPerField is deducted for each text field that still carries
// ATS-unfriendly characters or a non-standard date.
const atsPenaltyPerField = 10.0

// ValidateATSFriendly scores how ATS-compatible the snapshot's formatting
// already is, in [0,100]. A snapshot on which StandardizeAll is a no-op
// scores 100.
func (f *Standardizer) ValidateATSFriendly(snapshot *types.ResumeSnapshot) float64 {
	score := 100.0

	penalize := func(text string) {
		if CleanText(text) != text {
			score -= atsPenaltyPerField
		}
	}
	penalizeDate := func(date string) {
		if StandardizeDate(date) != date {
			score -= atsPenaltyPerField
		}
	}

	penalize(snapshot.PersonalInfo.Summary)
	for _, exp := range snapshot.Experiences {
		penalizeDate(exp.StartDate)
		penalizeDate(exp.EndDate)
		for _, line := range exp.Achievements {
			penalize(line)
		}
	}
	for _, edu := range snapshot.Education {
		penalizeDate(edu.StartDate)
		penalizeDate(edu.EndDate)
	}
	for _, proj := range snapshot.Projects {
		penalize(proj.Description)
	}

	return types.Clamp(score)
}
