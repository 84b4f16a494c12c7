// Package formatting standardizes resume text into ATS-friendly form.
package formatting

import "strings"

// headingSynonyms maps known section-heading variants to canonical section
// names, matched case-insensitively.
var headingSynonyms = map[string]string{
	// experience
	"work experience":          "experience",
	"professional experience":  "experience",
	"employment":               "experience",
	"employment history":       "experience",
	"work history":             "experience",
	"career history":           "experience",
	"professional background":  "experience",
	"relevant experience":      "experience",
	"experience":               "experience",
	// education
	"education":                "education",
	"academic background":      "education",
	"academic history":         "education",
	"educational background":   "education",
	"qualifications":           "education",
	"academics":                "education",
	// skills
	"skills":                   "skills",
	"technical skills":         "skills",
	"core competencies":        "skills",
	"competencies":             "skills",
	"areas of expertise":       "skills",
	"expertise":                "skills",
	"technologies":             "skills",
	"technical proficiencies":  "skills",
	"tech stack":               "skills",
	// projects
	"projects":                 "projects",
	"personal projects":        "projects",
	"side projects":            "projects",
	"selected projects":        "projects",
	"key projects":             "projects",
	"portfolio":                "projects",
	// summary
	"summary":                  "summary",
	"professional summary":     "summary",
	"profile":                  "summary",
	"about me":                 "summary",
	"objective":                "summary",
	"career objective":         "summary",
	"personal statement":       "summary",
	// certifications
	"certifications":           "certifications",
	"certificates":             "certifications",
	"licenses":                 "certifications",
	"licenses and certifications": "certifications",
}

// CanonicalHeading maps a section heading to its canonical name. Unknown
// headings are returned trimmed and lowercased.
func CanonicalHeading(heading string) string {
	normalized := strings.ToLower(strings.TrimSpace(heading))
	normalized = strings.TrimRight(normalized, ":")
	normalized = strings.TrimSpace(normalized)
	if canonical, ok := headingSynonyms[normalized]; ok {
		return canonical
	}
	return normalized
}
