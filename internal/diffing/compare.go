// Package diffing structurally compares two resume snapshots and classifies differences.
package diffing

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// Diff is the result of comparing two snapshots. ScoreDelta is informational
// and present only when both snapshots carry an associated score.
type Diff struct {
	Changes    []types.ChangeRecord `json:"changes"`
	ScoreDelta *float64             `json:"score_delta,omitempty"`
}

// Compare performs a field-by-field structural comparison of two snapshots.
// Compare(a, b) and Compare(b, a) report the same field pairs with
// addition/deletion swapped and modification old/new swapped.
func Compare(a, b *types.ResumeSnapshot) *Diff {
	diff := &Diff{Changes: []types.ChangeRecord{}}

	comparePersonalInfo(diff, a.PersonalInfo, b.PersonalInfo)
	compareExperiences(diff, a.Experiences, b.Experiences)
	compareEducation(diff, a.Education, b.Education)
	compareSkills(diff, a.Skills, b.Skills)
	compareProjects(diff, a.Projects, b.Projects)

	if a.Score != nil && b.Score != nil {
		delta := *b.Score - *a.Score
		diff.ScoreDelta = &delta
	}
	return diff
}

func comparePersonalInfo(diff *Diff, a, b types.PersonalInfo) {
	fields := []struct {
		name     string
		oldValue string
		newValue string
	}{
		{"name", a.Name, b.Name},
		{"email", a.Email, b.Email},
		{"phone", a.Phone, b.Phone},
		{"location", a.Location, b.Location},
		{"summary", a.Summary, b.Summary},
		{"linkedin", a.LinkedIn, b.LinkedIn},
		{"website", a.Website, b.Website},
	}
	for _, field := range fields {
		if field.oldValue != field.newValue {
			diff.modified("personal_info", "personal_info."+field.name, field.oldValue, field.newValue)
		}
	}
}

func compareExperiences(diff *Diff, a, b []types.Experience) {
	// Company is the identity; a retitled role at the same company is an
	// in-place edit, not a removal plus an addition.
	keyOf := func(exp types.Experience) string {
		return strings.ToLower(exp.Company)
	}

	pairs, aligned := alignByKey(len(a), len(b),
		func(i int) string { return keyOf(a[i]) },
		func(i int) string { return keyOf(b[i]) })
	if !aligned {
		pairs = alignByPosition(len(a), len(b))
	}

	for _, pair := range pairs {
		switch {
		case pair.aIdx < 0:
			exp := b[pair.bIdx]
			diff.added("experience", fmt.Sprintf("experiences[%d]", pair.bIdx),
				describeExperience(exp))
		case pair.bIdx < 0:
			exp := a[pair.aIdx]
			diff.deleted("experience", fmt.Sprintf("experiences[%d]", pair.aIdx),
				describeExperience(exp))
		default:
			compareExperienceFields(diff, pair.aIdx, a[pair.aIdx], b[pair.bIdx])
		}
	}
}

func compareExperienceFields(diff *Diff, idx int, a, b types.Experience) {
	prefix := fmt.Sprintf("experiences[%d]", idx)
	if a.Company != b.Company {
		diff.modified("experience", prefix+".company", a.Company, b.Company)
	}
	if a.Title != b.Title {
		diff.modified("experience", prefix+".title", a.Title, b.Title)
	}
	if a.StartDate != b.StartDate {
		diff.modified("experience", prefix+".start_date", a.StartDate, b.StartDate)
	}
	if a.EndDate != b.EndDate {
		diff.modified("experience", prefix+".end_date", a.EndDate, b.EndDate)
	}
	compareStringLists(diff, "experience", prefix+".achievements", a.Achievements, b.Achievements)
}

func compareEducation(diff *Diff, a, b []types.Education) {
	keyOf := func(edu types.Education) string {
		return strings.ToLower(edu.Institution)
	}

	pairs, aligned := alignByKey(len(a), len(b),
		func(i int) string { return keyOf(a[i]) },
		func(i int) string { return keyOf(b[i]) })
	if !aligned {
		pairs = alignByPosition(len(a), len(b))
	}

	for _, pair := range pairs {
		switch {
		case pair.aIdx < 0:
			edu := b[pair.bIdx]
			diff.added("education", fmt.Sprintf("education[%d]", pair.bIdx),
				edu.Institution+" - "+edu.Degree)
		case pair.bIdx < 0:
			edu := a[pair.aIdx]
			diff.deleted("education", fmt.Sprintf("education[%d]", pair.aIdx),
				edu.Institution+" - "+edu.Degree)
		default:
			compareEducationFields(diff, pair.aIdx, a[pair.aIdx], b[pair.bIdx])
		}
	}
}

func compareEducationFields(diff *Diff, idx int, a, b types.Education) {
	prefix := fmt.Sprintf("education[%d]", idx)
	if a.Institution != b.Institution {
		diff.modified("education", prefix+".institution", a.Institution, b.Institution)
	}
	if a.Degree != b.Degree {
		diff.modified("education", prefix+".degree", a.Degree, b.Degree)
	}
	if a.Field != b.Field {
		diff.modified("education", prefix+".field", a.Field, b.Field)
	}
	if a.StartDate != b.StartDate {
		diff.modified("education", prefix+".start_date", a.StartDate, b.StartDate)
	}
	if a.EndDate != b.EndDate {
		diff.modified("education", prefix+".end_date", a.EndDate, b.EndDate)
	}
}

// compareSkills treats skills as a set keyed by lowercased name: the
// symmetric difference drives additions and deletions directly; a category
// change for a kept name is a modification.
func compareSkills(diff *Diff, a, b []types.Skill) {
	aByName := make(map[string]types.Skill, len(a))
	for _, skill := range a {
		aByName[strings.ToLower(skill.Name)] = skill
	}
	bByName := make(map[string]types.Skill, len(b))
	for _, skill := range b {
		bByName[strings.ToLower(skill.Name)] = skill
	}

	for _, skill := range a {
		key := strings.ToLower(skill.Name)
		other, kept := bByName[key]
		if !kept {
			diff.deleted("skills", "skills."+key, skill.Name)
			continue
		}
		if skill.Category != other.Category {
			diff.modified("skills", "skills."+key+".category", skill.Category, other.Category)
		}
	}
	for _, skill := range b {
		key := strings.ToLower(skill.Name)
		if _, kept := aByName[key]; !kept {
			diff.added("skills", "skills."+key, skill.Name)
		}
	}
}

func compareProjects(diff *Diff, a, b []types.Project) {
	pairs, aligned := alignByKey(len(a), len(b),
		func(i int) string { return strings.ToLower(a[i].Name) },
		func(i int) string { return strings.ToLower(b[i].Name) })
	if !aligned {
		pairs = alignByPosition(len(a), len(b))
	}

	for _, pair := range pairs {
		switch {
		case pair.aIdx < 0:
			diff.added("projects", fmt.Sprintf("projects[%d]", pair.bIdx), b[pair.bIdx].Name)
		case pair.bIdx < 0:
			diff.deleted("projects", fmt.Sprintf("projects[%d]", pair.aIdx), a[pair.aIdx].Name)
		default:
			compareProjectFields(diff, pair.aIdx, a[pair.aIdx], b[pair.bIdx])
		}
	}
}

func compareProjectFields(diff *Diff, idx int, a, b types.Project) {
	prefix := fmt.Sprintf("projects[%d]", idx)
	if a.Name != b.Name {
		diff.modified("projects", prefix+".name", a.Name, b.Name)
	}
	if a.Description != b.Description {
		diff.modified("projects", prefix+".description", a.Description, b.Description)
	}
	if a.URL != b.URL {
		diff.modified("projects", prefix+".url", a.URL, b.URL)
	}
	compareStringLists(diff, "projects", prefix+".technologies", a.Technologies, b.Technologies)
}

// compareStringLists compares ordered string lists positionally: shared
// positions with differing values are modifications, a longer b yields
// additions, a longer a yields deletions.
func compareStringLists(diff *Diff, section, prefix string, a, b []string) {
	shared := len(a)
	if len(b) < shared {
		shared = len(b)
	}

	for i := 0; i < shared; i++ {
		if a[i] != b[i] {
			diff.modified(section, fmt.Sprintf("%s[%d]", prefix, i), a[i], b[i])
		}
	}
	for i := shared; i < len(b); i++ {
		diff.added(section, fmt.Sprintf("%s[%d]", prefix, i), b[i])
	}
	for i := shared; i < len(a); i++ {
		diff.deleted(section, fmt.Sprintf("%s[%d]", prefix, i), a[i])
	}
}

func describeExperience(exp types.Experience) string {
	return exp.Company + " - " + exp.Title
}

func (d *Diff) added(section, path, value string) {
	d.Changes = append(d.Changes, types.ChangeRecord{
		Section:    section,
		FieldPath:  path,
		NewValue:   value,
		ChangeType: types.ChangeAddition,
	})
}

func (d *Diff) deleted(section, path, value string) {
	d.Changes = append(d.Changes, types.ChangeRecord{
		Section:    section,
		FieldPath:  path,
		OldValue:   value,
		ChangeType: types.ChangeDeletion,
	})
}

func (d *Diff) modified(section, path, oldValue, newValue string) {
	d.Changes = append(d.Changes, types.ChangeRecord{
		Section:    section,
		FieldPath:  path,
		OldValue:   oldValue,
		NewValue:   newValue,
		ChangeType: types.ChangeModification,
	})
}
