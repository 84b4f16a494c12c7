// Package optimizer orchestrates the rewrite strategies into one optimization pass.
package optimizer

import (
	"github.com/jonathan/resume-optimizer/internal/formatting"
	"github.com/jonathan/resume-optimizer/internal/keywords"
	"github.com/jonathan/resume-optimizer/internal/nlp"
	"github.com/jonathan/resume-optimizer/internal/rewriting"
	"github.com/jonathan/resume-optimizer/internal/scoring"
	"github.com/jonathan/resume-optimizer/internal/types"
	"github.com/jonathan/resume-optimizer/internal/verbs"
)

// MinJobDescriptionLength is the threshold below which keyword-dependent
// stages are skipped; shorter texts extract only noise. The remaining stages
// still run.
const MinJobDescriptionLength = 25

// Optimizer runs the full optimization pipeline over a snapshot.
type Optimizer struct {
	engine       *scoring.Engine
	extractor    *keywords.Extractor
	rewriter     *rewriting.BulletRewriter
	injector     *rewriting.KeywordInjector
	suggester    *rewriting.QuantificationSuggester
	standardizer *formatting.Standardizer
}

// New creates an Optimizer with default tables around the given tokenizer.
func New(tokenizer nlp.Tokenizer) *Optimizer {
	extractor := keywords.NewExtractor(tokenizer)
	analyzer := verbs.NewAnalyzer()
	return &Optimizer{
		engine:       scoring.NewEngine(extractor, analyzer),
		extractor:    extractor,
		rewriter:     rewriting.NewBulletRewriter(analyzer),
		injector:     rewriting.NewKeywordInjector(extractor),
		suggester:    rewriting.NewQuantificationSuggester(),
		standardizer: formatting.NewStandardizer(),
	}
}

// Engine exposes the scoring engine so callers can score without optimizing.
func (o *Optimizer) Engine() *scoring.Engine {
	return o.engine
}

// Optimize scores the snapshot, applies the enabled rewrite strategies in
// fixed order, and returns the assembled result. The input snapshot is never
// mutated; all edits happen on a clone. Sparse inputs (no achievements,
// short job description) degrade to zero opportunities, not errors.
func (o *Optimizer) Optimize(snapshot *types.ResumeSnapshot, jobDescription string, opts *types.OptimizeOptions) (*types.OptimizationResult, error) {
	if opts == nil {
		opts = &types.OptimizeOptions{}
	}

	report, err := o.engine.Score(snapshot, jobDescription)
	if err != nil {
		return nil, err
	}

	optimized := snapshot.Clone()
	changes := []types.ChangeRecord{}
	jdUsable := len(jobDescription) >= MinJobDescriptionLength

	rewriteCount := 0
	if types.Enabled(opts.RewriteBullets) {
		rewritten := o.rewriter.Rewrite(optimized)
		rewriteCount = len(rewritten)
		changes = append(changes, rewritten...)
	}

	injectCount := 0
	if types.Enabled(opts.InjectKeywords) && jdUsable {
		// Recompute missing keywords against the post-rewrite text so
		// injected keywords are truly still missing.
		missing := o.missingKeywords(optimized, jobDescription)
		injected := o.injector.Inject(optimized, missing, jobDescription, opts.EffectiveMaxKeywords())
		injectCount = len(injected)
		changes = append(changes, injected...)
	}

	suggestionCount := 0
	if types.Enabled(opts.SuggestQuantifications) {
		refs := scoring.UnquantifiedAchievements(optimized)
		suggestions := o.suggester.Suggest(refs)
		suggestionCount = len(suggestions)
		changes = append(changes, rewriting.AsChangeRecords(suggestions)...)
	}

	if types.Enabled(opts.StandardizeFormatting) {
		changes = append(changes, o.standardizer.StandardizeAll(optimized)...)
	}

	originalScore := report.Breakdown.FinalScore
	optimizedScore := estimateOptimizedScore(report, optimized, rewriteCount, injectCount, suggestionCount)
	optimized.Score = &optimizedScore

	return &types.OptimizationResult{
		OriginalScore:     originalScore,
		OptimizedSnapshot: optimized,
		OptimizedScore:    optimizedScore,
		ImprovementDelta:  optimizedScore - originalScore,
		Changes:           changes,
		ChangesByType:     countByType(changes),
	}, nil
}

// missingKeywords extracts the job-description keywords absent from the
// (post-rewrite) resume text.
func (o *Optimizer) missingKeywords(snapshot *types.ResumeSnapshot, jobDescription string) []string {
	resumeKeywords := o.extractor.Extract(scoring.FlattenResumeText(snapshot), keywords.DefaultMinLength)
	jdKeywords := o.extractor.Extract(jobDescription, keywords.DefaultMinLength)

	resumeSet := make(map[string]bool, len(resumeKeywords))
	for _, keyword := range resumeKeywords {
		resumeSet[keyword] = true
	}

	missing := []string{}
	for _, keyword := range jdKeywords {
		if !resumeSet[keyword] {
			missing = append(missing, keyword)
		}
	}
	return missing
}

// Half credit for quantification suggestions: placeholders still need the
// user to fill in real numbers.
const suggestionCredit = 0.5

// estimateOptimizedScore re-estimates the composite score from the original
// breakdown plus per-strategy increments. This is a heuristic, not a second
// full scoring pass, to avoid feedback loops between injected text and
// keyword extraction.
//
// Known divergences from a full re-score: keyword injection credits only the
// keyword-match component, while a full pass would also move skill-relevance
// (injected skill entries) and experience-impact (longer lines);
// quantification suggestions are credited at half weight because the
// placeholder metrics are not yet real. Every increment is non-negative, so
// the estimate never drops below the original score, which a full re-score
// would not guarantee.
func estimateOptimizedScore(report *scoring.Report, optimized *types.ResumeSnapshot, rewriteCount, injectCount, suggestionCount int) float64 {
	breakdown := report.Breakdown

	totalLines := len(optimized.AllAchievements())
	if totalLines < 1 {
		totalLines = 1
	}
	jdKeywordCount := len(report.MatchedKeywords) + len(report.MissingKeywords)
	if jdKeywordCount < 1 {
		jdKeywordCount = 1
	}

	estimated := types.ScoreBreakdown{
		KeywordMatch: types.Clamp(breakdown.KeywordMatch +
			100.0*float64(injectCount)/float64(jdKeywordCount)),
		SkillRelevance:      breakdown.SkillRelevance,
		SectionCompleteness: breakdown.SectionCompleteness,
		ExperienceImpact: types.Clamp(breakdown.ExperienceImpact +
			30.0*float64(rewriteCount)/float64(totalLines)),
		Quantification: types.Clamp(breakdown.Quantification +
			suggestionCredit*100.0*float64(suggestionCount)/float64(totalLines)),
		ActionVerb: types.Clamp(breakdown.ActionVerb +
			100.0*float64(rewriteCount)/float64(totalLines)),
	}
	estimate := estimated.ComputeFinal()

	// Increments are non-negative but guard the floor anyway.
	if estimate < breakdown.FinalScore {
		return breakdown.FinalScore
	}
	return estimate
}

func countByType(changes []types.ChangeRecord) map[string]int {
	counts := map[string]int{}
	for _, change := range changes {
		counts[string(change.ChangeType)]++
	}
	return counts
}
