// Package scoring combines keyword, verb and quantification analysis into a weighted composite ATS score.
package scoring

import (
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-optimizer/internal/keywords"
	"github.com/jonathan/resume-optimizer/internal/nlp"
	"github.com/jonathan/resume-optimizer/internal/quantify"
	"github.com/jonathan/resume-optimizer/internal/types"
	"github.com/jonathan/resume-optimizer/internal/verbs"
)

// StandardSectionCount is the number of sections a complete resume carries:
// personal info, experience, education, skills, projects.
const StandardSectionCount = 5

// Report is the output of one scoring pass: the component breakdown plus the
// deficiency lists rewrite strategies consume. Deficiency lists are always
// recomputed from the snapshot/JD pair, never stored.
type Report struct {
	Breakdown                types.ScoreBreakdown       `json:"breakdown"`
	MatchedKeywords          []string                   `json:"matched_keywords"`
	MissingKeywords          []string                   `json:"missing_keywords"`
	WeakVerbOccurrences      []types.WeakVerbOccurrence `json:"weak_verb_occurrences"`
	UnquantifiedAchievements []types.AchievementRef     `json:"unquantified_achievements"`
}

// Engine scores resume snapshots against job descriptions.
type Engine struct {
	extractor *keywords.Extractor
	analyzer  *verbs.Analyzer
}

// NewEngine creates an Engine around the given extractor and verb analyzer.
func NewEngine(extractor *keywords.Extractor, analyzer *verbs.Analyzer) *Engine {
	return &Engine{extractor: extractor, analyzer: analyzer}
}

// Score computes the composite score and deficiency lists for a snapshot
// against a job description. Sparse inputs (empty JD, zero achievements)
// degrade to zero components; only a structurally invalid snapshot errors.
func (e *Engine) Score(snapshot *types.ResumeSnapshot, jobDescription string) (*Report, error) {
	if snapshot == nil {
		return nil, &InputError{Message: "snapshot is nil"}
	}
	if err := snapshot.Validate(); err != nil {
		return nil, &InputError{Message: "invalid snapshot shape", Cause: err}
	}

	resumeText := FlattenResumeText(snapshot)

	// Resume and JD keyword extraction are independent; run them in parallel.
	var resumeKeywords, jdKeywords []string
	var group errgroup.Group
	group.Go(func() error {
		resumeKeywords = e.extractor.Extract(resumeText, keywords.DefaultMinLength)
		return nil
	})
	group.Go(func() error {
		jdKeywords = e.extractor.Extract(jobDescription, keywords.DefaultMinLength)
		return nil
	})
	_ = group.Wait()

	matched, missing := intersect(resumeKeywords, jdKeywords)

	report := &Report{
		MatchedKeywords:          matched,
		MissingKeywords:          missing,
		WeakVerbOccurrences:      e.weakVerbOccurrences(snapshot),
		UnquantifiedAchievements: UnquantifiedAchievements(snapshot),
	}

	breakdown := types.ScoreBreakdown{
		KeywordMatch:        ratioScore(len(matched), len(jdKeywords)),
		SkillRelevance:      e.skillRelevance(snapshot, jdKeywords),
		SectionCompleteness: SectionCompleteness(snapshot),
		ExperienceImpact:    e.experienceImpact(snapshot),
		Quantification:      averageOverExperiences(snapshot, quantify.Score),
		ActionVerb:          averageOverExperiences(snapshot, e.analyzer.Score),
	}
	breakdown.KeywordMatch = types.Clamp(breakdown.KeywordMatch)
	breakdown.SkillRelevance = types.Clamp(breakdown.SkillRelevance)
	breakdown.SectionCompleteness = types.Clamp(breakdown.SectionCompleteness)
	breakdown.ExperienceImpact = types.Clamp(breakdown.ExperienceImpact)
	breakdown.Quantification = types.Clamp(breakdown.Quantification)
	breakdown.ActionVerb = types.Clamp(breakdown.ActionVerb)
	breakdown.FinalScore = breakdown.ComputeFinal()

	report.Breakdown = breakdown
	return report, nil
}

// skillRelevance scores declared skills against JD keywords.
func (e *Engine) skillRelevance(snapshot *types.ResumeSnapshot, jdKeywords []string) float64 {
	if len(jdKeywords) == 0 {
		return 0
	}

	jdSet := make(map[string]bool, len(jdKeywords))
	for _, keyword := range jdKeywords {
		jdSet[keyword] = true
	}

	matches := 0
	for _, skill := range snapshot.Skills {
		if jdSet[nlp.CleanToken(skill.Name)] {
			matches++
		}
	}
	return ratioScore(matches, len(jdKeywords))
}

// Per-achievement impact heuristic weights.
const (
	impactLengthShare = 40.0
	impactVerbShare   = 30.0
	impactQuantShare  = 30.0
	// adequateAchievementChars is the line length at which the length share
	// is fully awarded.
	adequateAchievementChars = 40
)

// experienceImpact averages a per-achievement heuristic covering line
// length, strong-verb lead and quantification presence.
func (e *Engine) experienceImpact(snapshot *types.ResumeSnapshot) float64 {
	lines := snapshot.AllAchievements()
	if len(lines) == 0 {
		return 0
	}

	total := 0.0
	for _, line := range lines {
		score := 0.0

		length := len(nlp.StripBullet(line))
		if length >= adequateAchievementChars {
			score += impactLengthShare
		} else {
			score += impactLengthShare * float64(length) / float64(adequateAchievementChars)
		}

		if e.analyzer.IsStrong(verbs.LeadingToken(line)) {
			score += impactVerbShare
		}
		if quantify.HasAny(line) {
			score += impactQuantShare
		}

		total += types.Clamp(score)
	}
	return total / float64(len(lines))
}

// weakVerbOccurrences lists every achievement line opening with a weak verb.
func (e *Engine) weakVerbOccurrences(snapshot *types.ResumeSnapshot) []types.WeakVerbOccurrence {
	occurrences := []types.WeakVerbOccurrence{}
	for _, line := range snapshot.AllAchievements() {
		if weak := e.analyzer.WeakLead(line); weak != "" {
			occurrences = append(occurrences, types.WeakVerbOccurrence{
				Line: nlp.StripBullet(line),
				Verb: weak,
			})
		}
	}
	return occurrences
}

// UnquantifiedAchievements locates every achievement line with no detected
// quantification.
func UnquantifiedAchievements(snapshot *types.ResumeSnapshot) []types.AchievementRef {
	refs := []types.AchievementRef{}
	for expIdx, exp := range snapshot.Experiences {
		for achIdx, line := range exp.Achievements {
			if !quantify.HasAny(line) {
				refs = append(refs, types.AchievementRef{
					ExperienceIndex:  expIdx,
					AchievementIndex: achIdx,
					Line:             nlp.StripBullet(line),
				})
			}
		}
	}
	return refs
}

// SectionCompleteness scores the presence of the five standard sections.
func SectionCompleteness(snapshot *types.ResumeSnapshot) float64 {
	present := 0
	if strings.TrimSpace(snapshot.PersonalInfo.Name) != "" {
		present++
	}
	if len(snapshot.Experiences) > 0 {
		present++
	}
	if len(snapshot.Education) > 0 {
		present++
	}
	if len(snapshot.Skills) > 0 {
		present++
	}
	if len(snapshot.Projects) > 0 {
		present++
	}
	return 100.0 * float64(present) / float64(StandardSectionCount)
}

// FlattenResumeText joins the snapshot's free text (summary, achievements,
// skill names, project descriptions) for keyword extraction.
func FlattenResumeText(snapshot *types.ResumeSnapshot) string {
	var sb strings.Builder
	sb.WriteString(snapshot.PersonalInfo.Summary)
	sb.WriteString("\n")
	for _, exp := range snapshot.Experiences {
		sb.WriteString(exp.Title)
		sb.WriteString("\n")
		for _, line := range exp.Achievements {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	for _, skill := range snapshot.Skills {
		sb.WriteString(skill.Name)
		sb.WriteString("\n")
	}
	for _, proj := range snapshot.Projects {
		sb.WriteString(proj.Name)
		sb.WriteString("\n")
		sb.WriteString(proj.Description)
		sb.WriteString("\n")
		sb.WriteString(strings.Join(proj.Technologies, " "))
		sb.WriteString("\n")
	}
	return sb.String()
}

// averageOverExperiences averages a per-experience text score across all
// experience entries. Entries with no achievements score zero.
func averageOverExperiences(snapshot *types.ResumeSnapshot, score func(string) float64) float64 {
	if len(snapshot.Experiences) == 0 {
		return 0
	}

	total := 0.0
	for _, exp := range snapshot.Experiences {
		total += score(strings.Join(exp.Achievements, "\n"))
	}
	return total / float64(len(snapshot.Experiences))
}

// intersect splits jd keywords into matched and missing relative to the
// resume keyword set. Both outputs stay sorted.
func intersect(resumeKeywords, jdKeywords []string) (matched, missing []string) {
	resumeSet := make(map[string]bool, len(resumeKeywords))
	for _, keyword := range resumeKeywords {
		resumeSet[keyword] = true
	}

	matched = []string{}
	missing = []string{}
	for _, keyword := range jdKeywords {
		if resumeSet[keyword] {
			matched = append(matched, keyword)
		} else {
			missing = append(missing, keyword)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)
	return matched, missing
}

// ratioScore returns 100 * count / max(1, total).
func ratioScore(count, total int) float64 {
	if total < 1 {
		total = 1
	}
	return 100.0 * float64(count) / float64(total)
}
