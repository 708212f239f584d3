package injection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/keywords"
	"github.com/jonathan/resume-optimizer/internal/types"
)

func TestCalculateKeywordPriority(t *testing.T) {
	jd := keywords.Extract("python python python django django react")
	ranked := CalculateKeywordPriority([]string{"react", "django", "python"}, jd)

	assert.Equal(t, []string{"python", "django", "react"}, ranked)
}

func TestCalculateKeywordPriorityTieBreak(t *testing.T) {
	jd := keywords.Extract("terraform ansible")
	ranked := CalculateKeywordPriority([]string{"terraform", "ansible"}, jd)

	// Equal weights break ties by keyword string order
	assert.Equal(t, []string{"ansible", "terraform"}, ranked)
}

func TestClassifyKeyword(t *testing.T) {
	tests := []struct {
		keyword  string
		expected InjectionType
	}{
		{"python", TypeTechnology},
		{"scrum", TypeMethodology},
		{"automation", TypeMethodology},
		{"vue.js", TypeTechnology},
		{"leadership", TypeSkill},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyKeyword(tt.keyword))
		})
	}
}

func TestFindBestInjectionPointPrecedence(t *testing.T) {
	full := &types.ResumeSnapshot{
		Skills:      []types.Skill{{Name: "Go"}},
		Experiences: []types.Experience{{Title: "Engineer"}},
		Projects:    []types.Project{{Name: "Tracker"}},
	}

	point, ok := FindBestInjectionPoint(full, "python")
	require.True(t, ok)
	assert.Equal(t, SectionSkills, point.Section)

	noSkills := &types.ResumeSnapshot{
		Experiences: []types.Experience{{Title: "Engineer"}},
		Projects:    []types.Project{{Name: "Tracker"}},
	}
	point, ok = FindBestInjectionPoint(noSkills, "python")
	require.True(t, ok)
	assert.Equal(t, SectionExperience, point.Section)
	assert.Equal(t, 0, point.Entry, "most recent experience entry")

	projectsOnly := &types.ResumeSnapshot{
		Projects: []types.Project{{Name: "Tracker"}},
	}
	point, ok = FindBestInjectionPoint(projectsOnly, "python")
	require.True(t, ok)
	assert.Equal(t, SectionProjects, point.Section)

	_, ok = FindBestInjectionPoint(&types.ResumeSnapshot{}, "python")
	assert.False(t, ok)
}

func TestInjectKeywordNaturally(t *testing.T) {
	assert.Equal(t, "Utilized python in development work", InjectKeywordNaturally("python", TypeTechnology))
	assert.Equal(t, "Applied scrum practices to day-to-day delivery", InjectKeywordNaturally("scrum", TypeMethodology))
	assert.Equal(t, "python", InjectKeywordNaturally("python", TypeSkill))
}

func TestInjectKeywords(t *testing.T) {
	snapshot := &types.ResumeSnapshot{
		Skills:      []types.Skill{{Name: "Go"}},
		Experiences: []types.Experience{{Title: "Engineer", Bullets: []string{"Built services"}}},
	}
	jd := keywords.Extract("python python kubernetes leadership")

	updated, changes := InjectKeywords(snapshot, []string{"python", "kubernetes", "leadership"}, jd, 2)

	require.Len(t, changes, 2)
	assert.Equal(t, "python", changes[0].Updated)
	assert.Equal(t, types.ChangeKeywordInjection, changes[0].Kind)
	assert.True(t, changes[0].Applied)

	// Input snapshot untouched
	assert.Len(t, snapshot.Skills, 1)
	assert.Len(t, updated.Skills, 3)
	assert.True(t, updated.HasSkill("python"))
}

func TestInjectKeywordsRespectsCap(t *testing.T) {
	snapshot := &types.ResumeSnapshot{Skills: []types.Skill{}}
	jd := keywords.Extract("python django react kafka")

	_, changes := InjectKeywords(snapshot, []string{"python", "django", "react", "kafka"}, jd, 3)
	assert.Len(t, changes, 3)
}

func TestInjectKeywordsNoTargets(t *testing.T) {
	updated, changes := InjectKeywords(&types.ResumeSnapshot{}, []string{"python"}, keywords.Extract("python"), 5)

	assert.Empty(t, changes)
	assert.NotNil(t, updated)
}
