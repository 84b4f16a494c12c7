// Package rewriting provides the rule-driven rewrite strategies applied during optimization.
package rewriting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/keywords"
	"github.com/jonathan/resume-optimizer/internal/scoring"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// KeywordCategory selects the injection template for a keyword.
type KeywordCategory string

// Recognized keyword categories.
const (
	CategorySkill       KeywordCategory = "skill"
	CategoryTechnology  KeywordCategory = "technology"
	CategoryMethodology KeywordCategory = "methodology"
	CategoryTool        KeywordCategory = "tool"
	CategoryGeneral     KeywordCategory = "general"
)

// injectionTemplates are the fixed natural-language templates used when a
// keyword lands in an experience or project section. Skills-section
// injections add a plain skill entry instead.
var injectionTemplates = map[KeywordCategory]string{
	CategoryTechnology:  "Worked extensively with %s in production environments",
	CategoryMethodology: "Applied %s practices across development workflows",
	CategoryTool:        "Utilized %s for day-to-day development and delivery",
	CategorySkill:       "Demonstrated proficiency in %s",
	CategoryGeneral:     "Gained hands-on experience with %s",
}

// methodologyTerms and toolTerms drive keyword categorization. Technology is
// recognized by common stack-name shapes; everything else with a skill-like
// single token is a skill, multi-word phrases fall back to general.
var methodologyTerms = map[string]bool{
	"agile": true, "scrum": true, "kanban": true, "devops": true,
	"tdd": true, "bdd": true, "ci/cd": true, "waterfall": true,
	"lean": true, "xp": true, "pair programming": true, "code review": true,
	"continuous integration": true, "continuous delivery": true,
}

var toolTerms = map[string]bool{
	"git": true, "docker": true, "kubernetes": true, "jenkins": true,
	"jira": true, "terraform": true, "ansible": true, "grafana": true,
	"prometheus": true, "github": true, "gitlab": true, "confluence": true,
	"figma": true, "tableau": true, "splunk": true,
}

var technologyTerms = map[string]bool{
	"python": true, "java": true, "go": true, "golang": true, "rust": true,
	"javascript": true, "typescript": true, "react": true, "angular": true,
	"vue": true, "django": true, "flask": true, "spring": true, "rails": true,
	"node.js": true, "nodejs": true, "postgresql": true, "mysql": true,
	"mongodb": true, "redis": true, "kafka": true, "elasticsearch": true,
	"graphql": true, "aws": true, "azure": true, "gcp": true, "c++": true,
	"c#": true, "sql": true, "html": true, "css": true, "swift": true,
	"kotlin": true, "scala": true, "ruby": true, "php": true,
}

// KeywordInjector inserts missing job-description keywords into the resume
// using fixed templates.
type KeywordInjector struct {
	extractor *keywords.Extractor
}

// NewKeywordInjector creates an injector around the given extractor.
func NewKeywordInjector(extractor *keywords.Extractor) *KeywordInjector {
	return &KeywordInjector{extractor: extractor}
}

// Inject adds up to maxKeywords missing keywords to the snapshot in place,
// ranked by frequency in the job description, and returns one addition
// record per injection. A keyword already present anywhere in the resume
// (case-insensitive) is never injected, and a section that does not exist is
// never created.
func (k *KeywordInjector) Inject(snapshot *types.ResumeSnapshot, missing []string, jobDescription string, maxKeywords int) []types.ChangeRecord {
	changes := []types.ChangeRecord{}
	if len(missing) == 0 || maxKeywords <= 0 {
		return changes
	}

	ranked := k.rankByFrequency(missing, jobDescription)

	injected := 0
	for _, keyword := range ranked {
		if injected >= maxKeywords {
			break
		}
		resumeText := strings.ToLower(scoring.FlattenResumeText(snapshot))
		if strings.Contains(resumeText, strings.ToLower(keyword)) {
			continue
		}

		record, ok := k.injectOne(snapshot, keyword)
		if !ok {
			// No eligible section exists; later keywords cannot do better.
			break
		}
		changes = append(changes, record)
		injected++
	}
	return changes
}

// injectOne places a single keyword, scanning sections in priority order:
// skills, most recent experience, projects.
func (k *KeywordInjector) injectOne(snapshot *types.ResumeSnapshot, keyword string) (types.ChangeRecord, bool) {
	category := CategorizeKeyword(keyword)

	if len(snapshot.Skills) > 0 {
		snapshot.Skills = append(snapshot.Skills, types.Skill{
			Name:     keyword,
			Category: string(category),
		})
		return types.ChangeRecord{
			Section:    "skills",
			FieldPath:  fmt.Sprintf("skills[%d]", len(snapshot.Skills)-1),
			NewValue:   keyword,
			ChangeType: types.ChangeAddition,
			Reason:     fmt.Sprintf("added missing job-description keyword %q", keyword),
		}, true
	}

	if len(snapshot.Experiences) > 0 {
		exp := &snapshot.Experiences[0]
		line := fmt.Sprintf(injectionTemplates[category], keyword)
		exp.Achievements = append(exp.Achievements, line)
		return types.ChangeRecord{
			Section:    "experience",
			FieldPath:  fmt.Sprintf("experiences[0].achievements[%d]", len(exp.Achievements)-1),
			NewValue:   line,
			ChangeType: types.ChangeAddition,
			Reason:     fmt.Sprintf("added missing job-description keyword %q", keyword),
		}, true
	}

	if len(snapshot.Projects) > 0 {
		proj := &snapshot.Projects[0]
		sentence := fmt.Sprintf(injectionTemplates[category], keyword)
		if proj.Description == "" {
			proj.Description = sentence
		} else {
			proj.Description = strings.TrimRight(proj.Description, ". ") + ". " + sentence
		}
		return types.ChangeRecord{
			Section:    "projects",
			FieldPath:  "projects[0].description",
			NewValue:   sentence,
			ChangeType: types.ChangeAddition,
			Reason:     fmt.Sprintf("added missing job-description keyword %q", keyword),
		}, true
	}

	return types.ChangeRecord{}, false
}

// rankByFrequency orders keywords by their frequency in the job description,
// descending, with alphabetical tie-breaking for stable output.
func (k *KeywordInjector) rankByFrequency(missing []string, jobDescription string) []string {
	frequencies := k.extractor.Frequency(jobDescription)
	loweredJD := strings.ToLower(jobDescription)

	ranked := make([]string, len(missing))
	copy(ranked, missing)
	count := func(keyword string) int {
		if c, ok := frequencies[keyword]; ok && !strings.Contains(keyword, " ") {
			return c
		}
		return strings.Count(loweredJD, strings.ToLower(keyword))
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		ci, cj := count(ranked[i]), count(ranked[j])
		if ci != cj {
			return ci > cj
		}
		return ranked[i] < ranked[j]
	})
	return ranked
}

// CategorizeKeyword assigns a keyword to the template category used for its
// injection.
func CategorizeKeyword(keyword string) KeywordCategory {
	lowered := strings.ToLower(keyword)
	switch {
	case technologyTerms[lowered]:
		return CategoryTechnology
	case methodologyTerms[lowered]:
		return CategoryMethodology
	case toolTerms[lowered]:
		return CategoryTool
	case !strings.Contains(lowered, " "):
		return CategorySkill
	default:
		return CategoryGeneral
	}
}
