package optimizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/nlp"
	"github.com/jonathan/resume-optimizer/internal/scoring"
	"github.com/jonathan/resume-optimizer/internal/types"
)

func newTestOptimizer() *Optimizer {
	return New(nlp.StubTokenizer{})
}

func fixtureSnapshot() *types.ResumeSnapshot {
	return &types.ResumeSnapshot{
		PersonalInfo: types.PersonalInfo{Name: "Ada Example"},
		Experiences: []types.Experience{{
			Company:   "Acme",
			Title:     "Engineer",
			StartDate: "01/2020",
			Achievements: []string{
				"Responsible for managing a team of 5 engineers",
				"Led the platform migration",
			},
		}},
		Skills: []types.Skill{{Name: "python"}},
	}
}

const fixtureJD = "python and django and kubernetes engineering position"

func TestOptimize_InputNeverMutated(t *testing.T) {
	optimizer := newTestOptimizer()
	snapshot := fixtureSnapshot()
	before := snapshot.Clone()

	_, err := optimizer.Optimize(snapshot, fixtureJD, nil)

	require.NoError(t, err)
	assert.Equal(t, before, snapshot)
}

func TestOptimize_ScoreNeverDecreases(t *testing.T) {
	optimizer := newTestOptimizer()

	result, err := optimizer.Optimize(fixtureSnapshot(), fixtureJD, nil)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.OptimizedScore, result.OriginalScore)
	assert.InDelta(t, result.OptimizedScore-result.OriginalScore, result.ImprovementDelta, 1e-9)
}

func TestOptimize_AllStrategiesProduceChanges(t *testing.T) {
	optimizer := newTestOptimizer()

	result, err := optimizer.Optimize(fixtureSnapshot(), fixtureJD, nil)

	require.NoError(t, err)
	require.NotEmpty(t, result.Changes)

	sections := map[string]bool{}
	reasons := []string{}
	for _, change := range result.Changes {
		sections[change.Section] = true
		reasons = append(reasons, change.Reason)
	}
	joined := strings.Join(reasons, "\n")
	assert.Contains(t, joined, "replaced weak verb")
	assert.Contains(t, joined, "added missing job-description keyword")
	assert.Contains(t, joined, "standardized formatting")
	assert.True(t, sections["experience"])
	assert.True(t, sections["skills"])
}

func TestOptimize_WeakBulletRewrittenInOutput(t *testing.T) {
	optimizer := newTestOptimizer()

	result, err := optimizer.Optimize(fixtureSnapshot(), fixtureJD, nil)

	require.NoError(t, err)
	achievements := result.OptimizedSnapshot.Experiences[0].Achievements
	assert.NotContains(t, achievements[0], "Responsible")
	assert.Equal(t, "Led the platform migration", achievements[1])
}

func TestOptimize_SuggestionsNotApplied(t *testing.T) {
	optimizer := newTestOptimizer()
	snapshot := &types.ResumeSnapshot{
		PersonalInfo: types.PersonalInfo{Name: "Ada"},
		Experiences: []types.Experience{{
			Company:      "Acme",
			Title:        "Engineer",
			Achievements: []string{"Mentored junior engineers"},
		}},
	}

	result, err := optimizer.Optimize(snapshot, "", nil)

	require.NoError(t, err)
	// The suggestion appears as a proposed change but the line is untouched.
	assert.Equal(t, "Mentored junior engineers", result.OptimizedSnapshot.Experiences[0].Achievements[0])

	found := false
	for _, change := range result.Changes {
		if strings.HasPrefix(change.Reason, "suggestion:") {
			found = true
			assert.Equal(t, types.ChangeModification, change.ChangeType)
		}
	}
	assert.True(t, found)
}

func TestOptimize_ShortJobDescriptionSkipsInjectionOnly(t *testing.T) {
	optimizer := newTestOptimizer()
	snapshot := fixtureSnapshot()

	result, err := optimizer.Optimize(snapshot, "go", nil)

	require.NoError(t, err)
	for _, change := range result.Changes {
		assert.NotEqual(t, types.ChangeAddition, change.ChangeType)
	}
	// Rewriting and formatting still ran.
	assert.NotContains(t, result.OptimizedSnapshot.Experiences[0].Achievements[0], "Responsible")
	assert.Equal(t, "January 2020", result.OptimizedSnapshot.Experiences[0].StartDate)
}

func TestOptimize_StrategyFlags(t *testing.T) {
	falseFlag := false

	t.Run("rewrite disabled", func(t *testing.T) {
		optimizer := newTestOptimizer()
		opts := &types.OptimizeOptions{RewriteBullets: &falseFlag}
		result, err := optimizer.Optimize(fixtureSnapshot(), fixtureJD, opts)
		require.NoError(t, err)
		assert.Contains(t, result.OptimizedSnapshot.Experiences[0].Achievements[0], "Responsible")
	})

	t.Run("injection disabled", func(t *testing.T) {
		optimizer := newTestOptimizer()
		opts := &types.OptimizeOptions{InjectKeywords: &falseFlag}
		result, err := optimizer.Optimize(fixtureSnapshot(), fixtureJD, opts)
		require.NoError(t, err)
		assert.Len(t, result.OptimizedSnapshot.Skills, 1)
	})

	t.Run("formatting disabled", func(t *testing.T) {
		optimizer := newTestOptimizer()
		opts := &types.OptimizeOptions{StandardizeFormatting: &falseFlag}
		result, err := optimizer.Optimize(fixtureSnapshot(), fixtureJD, opts)
		require.NoError(t, err)
		assert.Equal(t, "01/2020", result.OptimizedSnapshot.Experiences[0].StartDate)
	})

	t.Run("suggestions disabled", func(t *testing.T) {
		optimizer := newTestOptimizer()
		opts := &types.OptimizeOptions{SuggestQuantifications: &falseFlag}
		result, err := optimizer.Optimize(fixtureSnapshot(), fixtureJD, opts)
		require.NoError(t, err)
		for _, change := range result.Changes {
			assert.False(t, strings.HasPrefix(change.Reason, "suggestion:"))
		}
	})
}

func TestOptimize_MaxKeywordsHonored(t *testing.T) {
	optimizer := newTestOptimizer()
	opts := &types.OptimizeOptions{MaxKeywords: 1}

	result, err := optimizer.Optimize(fixtureSnapshot(), fixtureJD, opts)

	require.NoError(t, err)
	additions := 0
	for _, change := range result.Changes {
		if change.ChangeType == types.ChangeAddition {
			additions++
		}
	}
	assert.LessOrEqual(t, additions, 1)
}

func TestOptimize_ChangesByType(t *testing.T) {
	optimizer := newTestOptimizer()

	result, err := optimizer.Optimize(fixtureSnapshot(), fixtureJD, nil)

	require.NoError(t, err)
	total := 0
	for _, count := range result.ChangesByType {
		total += count
	}
	assert.Equal(t, len(result.Changes), total)
	assert.Positive(t, result.ChangesByType[string(types.ChangeModification)])
	assert.Positive(t, result.ChangesByType[string(types.ChangeAddition)])
}

func TestOptimize_EmptyResumeDegrades(t *testing.T) {
	optimizer := newTestOptimizer()
	snapshot := &types.ResumeSnapshot{PersonalInfo: types.PersonalInfo{Name: "Ada"}}

	result, err := optimizer.Optimize(snapshot, fixtureJD, nil)

	require.NoError(t, err)
	assert.Empty(t, result.Changes)
	assert.GreaterOrEqual(t, result.OptimizedScore, result.OriginalScore)
}

func TestOptimize_InvalidShapeFails(t *testing.T) {
	optimizer := newTestOptimizer()

	_, err := optimizer.Optimize(nil, fixtureJD, nil)

	require.Error(t, err)
	var inputErr *scoring.InputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestOptimize_OptimizedSnapshotCarriesScore(t *testing.T) {
	optimizer := newTestOptimizer()

	result, err := optimizer.Optimize(fixtureSnapshot(), fixtureJD, nil)

	require.NoError(t, err)
	require.NotNil(t, result.OptimizedSnapshot.Score)
	assert.InDelta(t, result.OptimizedScore, *result.OptimizedSnapshot.Score, 1e-9)
}
