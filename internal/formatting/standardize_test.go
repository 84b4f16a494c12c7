package formatting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/types"
)

func TestStandardizeDate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"slash format", "01/2020", "January 2020"},
		{"slash format single digit", "3/2021", "March 2021"},
		{"slash format december", "12/2019", "December 2019"},
		{"iso format", "2020-01", "January 2020"},
		{"iso format single digit month", "2021-9", "September 2021"},
		{"already standardized", "January 2020", "January 2020"},
		{"open ended", "Present", "Present"},
		{"empty", "", ""},
		{"year only", "2020", "2020"},
		{"invalid month", "13/2020", "13/2020"},
		{"full iso date left alone", "2020-01-15", "2020-01-15"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StandardizeDate(tc.in))
		})
	}
}

func TestCleanText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bullet glyph stripped", "• Led the team", "Led the team"},
		{"smart quotes replaced", "“scaled” the ‘platform’", `"scaled" the 'platform'`},
		{"em dash replaced", "2019—2021", "2019-2021"},
		{"en dash replaced", "2019–2021", "2019-2021"},
		{"nbsp and tabs collapsed", "Led\tthe team", "Led the team"},
		{"whitespace runs collapsed", "Led    the  team", "Led the team"},
		{"clean text unchanged", "Led the team", "Led the team"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanText(tc.in))
		})
	}
}

func TestCleanText_Idempotent(t *testing.T) {
	dirty := "• Improved “throughput” — 3x   faster"
	once := CleanText(dirty)
	assert.Equal(t, once, CleanText(once))
}

func TestStandardizeAll(t *testing.T) {
	standardizer := NewStandardizer()
	snapshot := &types.ResumeSnapshot{
		PersonalInfo: types.PersonalInfo{Name: "Ada", Summary: "Engineer — backend"},
		Experiences: []types.Experience{{
			Company:      "Acme",
			Title:        "Engineer",
			StartDate:    "01/2020",
			EndDate:      "2022-06",
			Achievements: []string{"• Led the team", "Shipped the release"},
		}},
		Education: []types.Education{{
			Institution: "State University",
			StartDate:   "09/2012",
			EndDate:     "2016-05",
		}},
		Projects: []types.Project{{Name: "cli", Description: "A “fast” tool"}},
	}

	changes := standardizer.StandardizeAll(snapshot)

	assert.Equal(t, "Engineer - backend", snapshot.PersonalInfo.Summary)
	assert.Equal(t, "January 2020", snapshot.Experiences[0].StartDate)
	assert.Equal(t, "June 2022", snapshot.Experiences[0].EndDate)
	assert.Equal(t, "Led the team", snapshot.Experiences[0].Achievements[0])
	assert.Equal(t, "Shipped the release", snapshot.Experiences[0].Achievements[1])
	assert.Equal(t, "September 2012", snapshot.Education[0].StartDate)
	assert.Equal(t, "May 2016", snapshot.Education[0].EndDate)
	assert.Equal(t, `A "fast" tool`, snapshot.Projects[0].Description)

	// One record per changed field, none for the already-clean achievement.
	require.Len(t, changes, 7)
	for _, change := range changes {
		assert.Equal(t, types.ChangeModification, change.ChangeType)
		assert.Equal(t, "standardized formatting", change.Reason)
		assert.NotEqual(t, change.OldValue, change.NewValue)
	}
}

func TestStandardizeAll_Idempotent(t *testing.T) {
	standardizer := NewStandardizer()
	snapshot := &types.ResumeSnapshot{
		PersonalInfo: types.PersonalInfo{Name: "Ada"},
		Experiences: []types.Experience{{
			Company:      "Acme",
			Title:        "Engineer",
			StartDate:    "01/2020",
			Achievements: []string{"• Led the team"},
		}},
	}

	first := standardizer.StandardizeAll(snapshot)
	require.NotEmpty(t, first)

	second := standardizer.StandardizeAll(snapshot)
	assert.Empty(t, second)
}

func TestStandardizeAll_CleanSnapshotNoChanges(t *testing.T) {
	standardizer := NewStandardizer()
	snapshot := &types.ResumeSnapshot{
		PersonalInfo: types.PersonalInfo{Name: "Ada"},
		Experiences: []types.Experience{{
			Company:      "Acme",
			Title:        "Engineer",
			StartDate:    "January 2020",
			EndDate:      "Present",
			Achievements: []string{"Led the team"},
		}},
	}

	changes := standardizer.StandardizeAll(snapshot)

	assert.NotNil(t, changes)
	assert.Empty(t, changes)
}

func TestValidateATSFriendly(t *testing.T) {
	standardizer := NewStandardizer()

	clean := &types.ResumeSnapshot{
		PersonalInfo: types.PersonalInfo{Name: "Ada"},
		Experiences: []types.Experience{{
			Company:      "Acme",
			Title:        "Engineer",
			StartDate:    "January 2020",
			Achievements: []string{"Led the team"},
		}},
	}
	assert.InDelta(t, 100.0, standardizer.ValidateATSFriendly(clean), 1e-9)

	dirty := clean.Clone()
	dirty.Experiences[0].StartDate = "01/2020"
	dirty.Experiences[0].Achievements[0] = "• Led the team"
	assert.InDelta(t, 80.0, standardizer.ValidateATSFriendly(dirty), 1e-9)
}

func TestValidateATSFriendly_ClampedAtZero(t *testing.T) {
	standardizer := NewStandardizer()

	achievements := make([]string, 12)
	for i := range achievements {
		achievements[i] = "• bullet line"
	}
	snapshot := &types.ResumeSnapshot{
		PersonalInfo: types.PersonalInfo{Name: "Ada"},
		Experiences: []types.Experience{{
			Company:      "Acme",
			Title:        "Engineer",
			Achievements: achievements,
		}},
	}

	assert.InDelta(t, 0.0, standardizer.ValidateATSFriendly(snapshot), 1e-9)
}

func TestCanonicalHeading(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Work Experience", "experience"},
		{"EMPLOYMENT HISTORY", "experience"},
		{"Professional Experience", "experience"},
		{"Academic Background", "education"},
		{"Core Competencies", "skills"},
		{"Tech Stack", "skills"},
		{"Personal Projects", "projects"},
		{"About Me", "summary"},
		{"Career Objective", "summary"},
		{"Licenses and Certifications", "certifications"},
		{"  Skills:  ", "skills"},
		{"Hobbies", "hobbies"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, CanonicalHeading(tc.in))
		})
	}
}
