// Package types provides type definitions for structured data used throughout the resume-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// PersonalInfo holds the contact header of a resume.
type PersonalInfo struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Summary  string `json:"summary,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Experience represents one employment entry with its achievement lines.
// Achievements preserve insertion order.
type Experience struct {
	Company      string   `json:"company" validate:"required,min=1"`
	Title        string   `json:"title" validate:"required,min=1"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// Education represents one education entry.
type Education struct {
	Institution string `json:"institution" validate:"required,min=1"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
}

// Skill represents a declared skill tagged with a category
// (e.g. "language", "framework", "tool").
type Skill struct {
	Name     string `json:"name" validate:"required,min=1"`
	Category string `json:"category,omitempty"`
}

// Project represents one project entry.
type Project struct {
	Name         string   `json:"name" validate:"required,min=1"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
}

// ResumeSnapshot is an immutable, self-contained record of one resume state.
// All lists preserve insertion order; a snapshot never references another
// snapshot. Score is optional metadata set by callers that have scored the
// snapshot (used by diffing for the informational score delta).
type ResumeSnapshot struct {
	PersonalInfo PersonalInfo `json:"personal_info" validate:"required"`
	Experiences  []Experience `json:"experiences,omitempty" validate:"dive"`
	Education    []Education  `json:"education,omitempty" validate:"dive"`
	Skills       []Skill      `json:"skills,omitempty" validate:"dive"`
	Projects     []Project    `json:"projects,omitempty" validate:"dive"`
	Score        *float64     `json:"score,omitempty"`
}

// Clone returns a deep copy of the snapshot. Mutating the copy never
// affects the original.
func (s *ResumeSnapshot) Clone() *ResumeSnapshot {
	if s == nil {
		return nil
	}

	clone := &ResumeSnapshot{
		PersonalInfo: s.PersonalInfo,
	}

	if s.Score != nil {
		score := *s.Score
		clone.Score = &score
	}

	if s.Experiences != nil {
		clone.Experiences = make([]Experience, len(s.Experiences))
		for i, exp := range s.Experiences {
			copied := exp
			if exp.Achievements != nil {
				copied.Achievements = make([]string, len(exp.Achievements))
				copy(copied.Achievements, exp.Achievements)
			}
			clone.Experiences[i] = copied
		}
	}

	if s.Education != nil {
		clone.Education = make([]Education, len(s.Education))
		copy(clone.Education, s.Education)
	}

	if s.Skills != nil {
		clone.Skills = make([]Skill, len(s.Skills))
		copy(clone.Skills, s.Skills)
	}

	if s.Projects != nil {
		clone.Projects = make([]Project, len(s.Projects))
		for i, proj := range s.Projects {
			copied := proj
			if proj.Technologies != nil {
				copied.Technologies = make([]string, len(proj.Technologies))
				copy(copied.Technologies, proj.Technologies)
			}
			clone.Projects[i] = copied
		}
	}

	return clone
}

// HasSkill reports whether the snapshot declares a skill with the given
// name (case-insensitive exact match).
func (s *ResumeSnapshot) HasSkill(name string) bool {
	for _, skill := range s.Skills {
		if strings.EqualFold(skill.Name, name) {
			return true
		}
	}
	return false
}

// AllAchievements returns every achievement line across all experience
// entries in document order.
func (s *ResumeSnapshot) AllAchievements() []string {
	var lines []string
	for _, exp := range s.Experiences {
		lines = append(lines, exp.Achievements...)
	}
	return lines
}
