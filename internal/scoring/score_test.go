package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/types"
)

func fullSnapshot() *types.ResumeSnapshot {
	return &types.ResumeSnapshot{
		PersonalInfo: types.PersonalInfo{Name: "Ada Lovelace", Email: "ada@example.com"},
		Experiences: []types.Experience{
			{
				Title:   "Backend Engineer",
				Company: "Acme",
				Bullets: []string{
					"Led a team of 5 engineers to improve throughput by 30%",
					"Worked on internal tooling",
				},
			},
		},
		Education: []types.Education{{Degree: "BS", Institution: "MIT"}},
		Skills:    []types.Skill{{Name: "Python"}, {Name: "Go"}},
	}
}

func TestCalculateATSScoreBounds(t *testing.T) {
	breakdown := CalculateATSScore(fullSnapshot(), "Python engineer building scalable throughput systems")

	subscores := []float64{
		breakdown.KeywordMatch, breakdown.SkillRelevance, breakdown.SectionCompleteness,
		breakdown.ExperienceImpact, breakdown.Quantification, breakdown.ActionVerb,
	}
	for _, score := range subscores {
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
	assert.GreaterOrEqual(t, breakdown.Overall, 0.0)
	assert.LessOrEqual(t, breakdown.Overall, 100.0)
}

func TestOverallIsWeightedSum(t *testing.T) {
	breakdown := CalculateATSScore(fullSnapshot(), "Python engineer building scalable systems")

	expected := breakdown.KeywordMatch*0.30 +
		breakdown.SkillRelevance*0.20 +
		breakdown.SectionCompleteness*0.15 +
		breakdown.ExperienceImpact*0.15 +
		breakdown.Quantification*0.10 +
		breakdown.ActionVerb*0.10

	assert.InDelta(t, expected, breakdown.Overall, 0.05, "overall must equal the weighted sum within rounding tolerance")
}

func TestKeywordMatchSubscore(t *testing.T) {
	snapshot := &types.ResumeSnapshot{
		Skills: []types.Skill{{Name: "Python"}},
	}

	breakdown := CalculateATSScore(snapshot, "python django react")

	// One of three JD keywords matched
	assert.InDelta(t, 33.3, breakdown.KeywordMatch, 0.1)
}

func TestKeywordMatchEmptyJD(t *testing.T) {
	breakdown := CalculateATSScore(fullSnapshot(), "")
	assert.Equal(t, 100.0, breakdown.KeywordMatch)
}

func TestEmptyResumeScoresZero(t *testing.T) {
	breakdown := CalculateATSScore(&types.ResumeSnapshot{}, "python django")

	assert.Equal(t, 0.0, breakdown.Overall)
	assert.Equal(t, 0.0, breakdown.KeywordMatch)
	assert.Equal(t, 0.0, breakdown.SectionCompleteness)
}

func TestSectionCompleteness(t *testing.T) {
	half := &types.ResumeSnapshot{
		PersonalInfo: types.PersonalInfo{Name: "Ada"},
		Skills:       []types.Skill{{Name: "Go"}},
	}

	breakdown := CalculateATSScore(half, "go")
	assert.Equal(t, 50.0, breakdown.SectionCompleteness)
}

func TestExperienceImpactAndActionVerb(t *testing.T) {
	snapshot := &types.ResumeSnapshot{
		Experiences: []types.Experience{
			{Bullets: []string{
				"Led the migration effort",
				"Worked on misc tasks",
			}},
		},
	}

	breakdown := CalculateATSScore(snapshot, "migration")

	assert.Equal(t, 50.0, breakdown.ExperienceImpact)
	assert.Equal(t, 50.0, breakdown.ActionVerb)
}

func TestQuantificationSubscore(t *testing.T) {
	snapshot := &types.ResumeSnapshot{
		Experiences: []types.Experience{
			{Bullets: []string{
				"Improved throughput by 30%",
				"Maintained internal tooling",
			}},
		},
	}

	breakdown := CalculateATSScore(snapshot, "")
	assert.Equal(t, 50.0, breakdown.Quantification)
}

func TestSkillRelevance(t *testing.T) {
	snapshot := &types.ResumeSnapshot{
		Skills: []types.Skill{{Name: "Python"}, {Name: "Crochet"}},
	}

	breakdown := CalculateATSScore(snapshot, "python developer wanted")
	assert.Equal(t, 50.0, breakdown.SkillRelevance)
}

func TestComputeKeywordGapPartition(t *testing.T) {
	snapshot := &types.ResumeSnapshot{Skills: []types.Skill{{Name: "Python"}}}

	gap := ComputeKeywordGap(snapshot, "python django react")

	require.Equal(t, []string{"python"}, gap.Matched)
	require.Equal(t, []string{"django", "react"}, gap.Missing)
	assert.Len(t, gap.Matched, 3-len(gap.Missing))
}
