package quantify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typesOf(matches []Match) []MatchType {
	found := make([]MatchType, 0, len(matches))
	for _, m := range matches {
		found = append(found, m.Type)
	}
	return found
}

func TestDetect_Percentage(t *testing.T) {
	matches := Detect("Improved throughput by 45%")

	require.Len(t, matches, 1)
	assert.Equal(t, TypePercentage, matches[0].Type)
	assert.Equal(t, "45%", matches[0].Value)
	assert.Equal(t, 23, matches[0].Position)
}

func TestDetect_CurrencyWithSuffixAndGrouping(t *testing.T) {
	matches := Detect("Saved $1.2M and cut $45,000 of annual spend")

	assert.Contains(t, typesOf(matches), TypeCurrency)
	values := []string{matches[0].Value, matches[1].Value}
	assert.Contains(t, values, "$1.2M")
	assert.Contains(t, values, "$45,000")
}

func TestDetect_Range(t *testing.T) {
	matches := Detect("Handled 10-20 releases per quarter")

	assert.Equal(t, TypeRange, matches[0].Type)
	assert.Equal(t, "10-20", matches[0].Value)
}

func TestDetect_Multiplier(t *testing.T) {
	matches := Detect("Achieved 3x faster builds")

	require.NotEmpty(t, matches)
	assert.Equal(t, TypeMultiplier, matches[0].Type)
	assert.Equal(t, "3x", matches[0].Value)
}

func TestDetect_TimeSpan(t *testing.T) {
	matches := Detect("Delivered the migration in 6 months")

	require.NotEmpty(t, matches)
	assert.Equal(t, TypeTimeSpan, matches[0].Type)
	assert.Equal(t, "6 months", matches[0].Value)
}

func TestDetect_BareNumberWithSuffix(t *testing.T) {
	matches := Detect("Processed 30K events")

	require.NotEmpty(t, matches)
	assert.Equal(t, TypeNumber, matches[0].Type)
	assert.Equal(t, "30K", matches[0].Value)
}

func TestDetect_NoDoubleCounting(t *testing.T) {
	// "45%" must be claimed by percentage only, not also as a bare number.
	matches := Detect("Improved by 45%")

	require.Len(t, matches, 1)
	assert.Equal(t, TypePercentage, matches[0].Type)
}

func TestDetect_Empty(t *testing.T) {
	assert.Empty(t, Detect(""))
	assert.Empty(t, Detect("No metrics here"))
}

func TestHasAny(t *testing.T) {
	assert.True(t, HasAny("Responsible for managing a team of 5 engineers"))
	assert.False(t, HasAny("Responsible for managing a team"))
	assert.False(t, HasAny(""))
}

func TestScore_PerLineRatio(t *testing.T) {
	text := "Cut costs by 20%\nManaged the roadmap\nServed 1M users\nWrote documentation"
	// 2 of 4 lines quantified
	assert.InDelta(t, 50.0, Score(text), 0.01)
}

func TestScore_EmptyText(t *testing.T) {
	assert.Equal(t, 0.0, Score(""))
}

func TestSummarize(t *testing.T) {
	summary := Summarize("Cut costs by 20% over 2 years, saving $500K")

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.ByType[TypePercentage])
	assert.Equal(t, 1, summary.ByType[TypeTimeSpan])
	assert.Equal(t, 1, summary.ByType[TypeCurrency])
	assert.Len(t, summary.Items, 3)
}
