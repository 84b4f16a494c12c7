package rewriting

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/keywords"
	"github.com/jonathan/resume-optimizer/internal/nlp"
	"github.com/jonathan/resume-optimizer/internal/types"
)

func newTestInjector() *KeywordInjector {
	return NewKeywordInjector(keywords.NewExtractor(nlp.StubTokenizer{}))
}

func TestInject_AddsToSkillsFirst(t *testing.T) {
	injector := newTestInjector()
	snapshot := &types.ResumeSnapshot{
		PersonalInfo: types.PersonalInfo{Name: "Ada"},
		Skills:       []types.Skill{{Name: "python"}},
		Experiences:  []types.Experience{{Company: "Acme", Title: "Engineer"}},
	}

	changes := injector.Inject(snapshot, []string{"kubernetes"}, "kubernetes", 10)

	require.Len(t, changes, 1)
	assert.Equal(t, "skills", changes[0].Section)
	assert.Equal(t, "skills[1]", changes[0].FieldPath)
	assert.Equal(t, types.ChangeAddition, changes[0].ChangeType)
	assert.Equal(t, "kubernetes", changes[0].NewValue)

	require.Len(t, snapshot.Skills, 2)
	assert.Equal(t, "kubernetes", snapshot.Skills[1].Name)
	assert.Equal(t, string(CategoryTool), snapshot.Skills[1].Category)
	// Experiences remain untouched when skills absorbed the keyword.
	assert.Empty(t, snapshot.Experiences[0].Achievements)
}

func TestInject_FallsBackToExperience(t *testing.T) {
	injector := newTestInjector()
	snapshot := &types.ResumeSnapshot{
		PersonalInfo: types.PersonalInfo{Name: "Ada"},
		Experiences:  []types.Experience{{Company: "Acme", Title: "Engineer"}},
	}

	changes := injector.Inject(snapshot, []string{"python"}, "python", 10)

	require.Len(t, changes, 1)
	assert.Equal(t, "experience", changes[0].Section)
	assert.Equal(t, "experiences[0].achievements[0]", changes[0].FieldPath)

	require.Len(t, snapshot.Experiences[0].Achievements, 1)
	assert.Equal(t, "Worked extensively with python in production environments",
		snapshot.Experiences[0].Achievements[0])
}

func TestInject_FallsBackToProjects(t *testing.T) {
	injector := newTestInjector()
	snapshot := &types.ResumeSnapshot{
		PersonalInfo: types.PersonalInfo{Name: "Ada"},
		Projects:     []types.Project{{Name: "side project", Description: "A CLI tool."}},
	}

	changes := injector.Inject(snapshot, []string{"agile"}, "agile", 10)

	require.Len(t, changes, 1)
	assert.Equal(t, "projects", changes[0].Section)
	assert.Equal(t, "projects[0].description", changes[0].FieldPath)
	assert.Equal(t, "A CLI tool. Applied agile practices across development workflows",
		snapshot.Projects[0].Description)
}

func TestInject_NeverCreatesSection(t *testing.T) {
	injector := newTestInjector()
	snapshot := &types.ResumeSnapshot{PersonalInfo: types.PersonalInfo{Name: "Ada"}}

	changes := injector.Inject(snapshot, []string{"python", "docker"}, "python docker", 10)

	assert.Empty(t, changes)
	assert.Nil(t, snapshot.Skills)
	assert.Nil(t, snapshot.Experiences)
	assert.Nil(t, snapshot.Projects)
}

func TestInject_SkipsKeywordsAlreadyPresent(t *testing.T) {
	injector := newTestInjector()
	snapshot := &types.ResumeSnapshot{
		PersonalInfo: types.PersonalInfo{Name: "Ada", Summary: "Shipped Docker workflows"},
		Skills:       []types.Skill{{Name: "python"}},
	}

	changes := injector.Inject(snapshot, []string{"docker"}, "docker", 10)

	assert.Empty(t, changes)
	assert.Len(t, snapshot.Skills, 1)
}

func TestInject_RespectsMaxKeywords(t *testing.T) {
	injector := newTestInjector()
	snapshot := &types.ResumeSnapshot{
		PersonalInfo: types.PersonalInfo{Name: "Ada"},
		Skills:       []types.Skill{{Name: "sql"}},
	}

	missing := []string{"docker", "kubernetes", "terraform", "jenkins"}
	changes := injector.Inject(snapshot, missing, "docker kubernetes terraform jenkins", 2)

	assert.Len(t, changes, 2)
	assert.Len(t, snapshot.Skills, 3)
}

func TestInject_RanksByJobDescriptionFrequency(t *testing.T) {
	injector := newTestInjector()
	snapshot := &types.ResumeSnapshot{
		PersonalInfo: types.PersonalInfo{Name: "Ada"},
		Skills:       []types.Skill{{Name: "sql"}},
	}

	jd := "kubernetes. kubernetes. kubernetes. docker. docker. terraform."
	changes := injector.Inject(snapshot, []string{"terraform", "docker", "kubernetes"}, jd, 3)

	require.Len(t, changes, 3)
	assert.Equal(t, "kubernetes", changes[0].NewValue)
	assert.Equal(t, "docker", changes[1].NewValue)
	assert.Equal(t, "terraform", changes[2].NewValue)
}

func TestInject_AlphabeticalTieBreak(t *testing.T) {
	injector := newTestInjector()
	snapshot := &types.ResumeSnapshot{
		PersonalInfo: types.PersonalInfo{Name: "Ada"},
		Skills:       []types.Skill{{Name: "sql"}},
	}

	changes := injector.Inject(snapshot, []string{"jenkins", "docker"}, "docker. jenkins.", 2)

	require.Len(t, changes, 2)
	assert.Equal(t, "docker", changes[0].NewValue)
	assert.Equal(t, "jenkins", changes[1].NewValue)
}

func TestInject_NoMissingKeywords(t *testing.T) {
	injector := newTestInjector()
	snapshot := &types.ResumeSnapshot{
		PersonalInfo: types.PersonalInfo{Name: "Ada"},
		Skills:       []types.Skill{{Name: "python"}},
	}

	changes := injector.Inject(snapshot, nil, "python", 10)

	assert.NotNil(t, changes)
	assert.Empty(t, changes)
}

func TestCategorizeKeyword(t *testing.T) {
	cases := []struct {
		keyword string
		want    KeywordCategory
	}{
		{"python", CategoryTechnology},
		{"PostgreSQL", CategoryTechnology},
		{"Agile", CategoryMethodology},
		{"docker", CategoryTool},
		{"communication", CategorySkill},
		{"distributed systems", CategoryGeneral},
	}
	for _, tc := range cases {
		t.Run(tc.keyword, func(t *testing.T) {
			assert.Equal(t, tc.want, CategorizeKeyword(tc.keyword))
		})
	}
}

func TestInjectionTemplates_CoverEveryCategory(t *testing.T) {
	for _, category := range []KeywordCategory{
		CategorySkill, CategoryTechnology, CategoryMethodology, CategoryTool, CategoryGeneral,
	} {
		template, ok := injectionTemplates[category]
		require.True(t, ok, "missing template for %s", category)
		assert.Contains(t, fmt.Sprintf(template, "x"), "x")
	}
}
