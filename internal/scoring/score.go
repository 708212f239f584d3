// Package scoring combines keyword match, skill relevance, section
// completeness, experience impact, quantification coverage and verb strength
// into a single 0-100 ATS compatibility score.
package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/keywords"
	"github.com/jonathan/resume-optimizer/internal/quantify"
	"github.com/jonathan/resume-optimizer/internal/types"
	"github.com/jonathan/resume-optimizer/internal/verbs"
)

// Fixed weights for the score components; they sum to 1.0.
const (
	keywordMatchWeight        = 0.30
	skillRelevanceWeight      = 0.20
	sectionCompletenessWeight = 0.15
	experienceImpactWeight    = 0.15
	quantificationWeight      = 0.10
	actionVerbWeight          = 0.10
)

// trackedSections is the number of sections counted for completeness:
// personal_info, experience, education, skills.
const trackedSections = 4.0

// CalculateATSScore scores a resume snapshot against job-description text.
// A snapshot with no populated sections yields an all-zero breakdown rather
// than an error; an empty job-description keyword set is treated as a perfect
// keyword match.
func CalculateATSScore(snapshot *types.ResumeSnapshot, jobDescription string) types.ScoreBreakdown {
	resumeText := keywords.AggregateResumeText(snapshot)
	if strings.TrimSpace(resumeText) == "" {
		return types.ScoreBreakdown{}
	}

	resumeKeywords := keywords.Extract(resumeText)
	jdKeywords := keywords.Extract(jobDescription)

	breakdown := types.ScoreBreakdown{
		KeywordMatch:        computeKeywordMatchScore(resumeKeywords, jdKeywords),
		SkillRelevance:      computeSkillRelevanceScore(snapshot, jdKeywords),
		SectionCompleteness: computeSectionCompletenessScore(snapshot),
		ExperienceImpact:    computeExperienceImpactScore(snapshot),
		Quantification:      computeQuantificationScore(snapshot),
		ActionVerb:          computeActionVerbScore(snapshot),
	}

	overall := breakdown.KeywordMatch*keywordMatchWeight +
		breakdown.SkillRelevance*skillRelevanceWeight +
		breakdown.SectionCompleteness*sectionCompletenessWeight +
		breakdown.ExperienceImpact*experienceImpactWeight +
		breakdown.Quantification*quantificationWeight +
		breakdown.ActionVerb*actionVerbWeight

	breakdown.Overall = clamp(round1(overall))
	return breakdown
}

// ComputeKeywordGap returns the matched and missing JD keywords for a
// snapshot. Matched and missing partition the JD keyword set exactly.
func ComputeKeywordGap(snapshot *types.ResumeSnapshot, jobDescription string) types.KeywordGap {
	resumeKeywords := keywords.ExtractFromSnapshot(snapshot)
	jdKeywords := keywords.Extract(jobDescription)

	return types.KeywordGap{
		Matched: jdKeywords.Intersect(resumeKeywords),
		Missing: jdKeywords.Subtract(resumeKeywords),
	}
}

// computeKeywordMatchScore is |resume ∩ jd| / |jd| scaled to 100. An empty
// JD keyword set is defined as a perfect match, not a division failure.
func computeKeywordMatchScore(resumeKeywords, jdKeywords types.KeywordSet) float64 {
	if jdKeywords.Len() == 0 {
		return 100.0
	}
	matched := jdKeywords.Intersect(resumeKeywords)
	return float64(len(matched)) / float64(jdKeywords.Len()) * 100.0
}

// computeSkillRelevanceScore is the fraction of declared skills whose name
// tokens appear in the JD keyword set, scaled to 100.
func computeSkillRelevanceScore(snapshot *types.ResumeSnapshot, jdKeywords types.KeywordSet) float64 {
	if len(snapshot.Skills) == 0 {
		return 0.0
	}

	relevant := 0
	for _, skill := range snapshot.Skills {
		for _, token := range keywords.Tokenize(skill.Name) {
			if jdKeywords.Contains(token) {
				relevant++
				break
			}
		}
	}

	return float64(relevant) / float64(len(snapshot.Skills)) * 100.0
}

// computeSectionCompletenessScore is the fraction of the four tracked
// sections that are non-empty, scaled to 100.
func computeSectionCompletenessScore(snapshot *types.ResumeSnapshot) float64 {
	populated := 0.0
	if !snapshot.PersonalInfo.IsEmpty() {
		populated++
	}
	if len(snapshot.Experiences) > 0 {
		populated++
	}
	if len(snapshot.Education) > 0 {
		populated++
	}
	if len(snapshot.Skills) > 0 {
		populated++
	}
	return populated / trackedSections * 100.0
}

// computeExperienceImpactScore averages a 0/1 strong-verb-lead indicator
// across all experience bullets, scaled to 100.
func computeExperienceImpactScore(snapshot *types.ResumeSnapshot) float64 {
	return strongLeadFraction(snapshot) * 100.0
}

// computeQuantificationScore is the fraction of experience bullets carrying
// detected quantification evidence, scaled to 100.
func computeQuantificationScore(snapshot *types.ResumeSnapshot) float64 {
	total := 0
	quantified := 0
	for _, exp := range snapshot.Experiences {
		for _, bullet := range exp.Bullets {
			total++
			if quantify.Has(bullet) {
				quantified++
			}
		}
	}
	if total == 0 {
		return 0.0
	}
	return float64(quantified) / float64(total) * 100.0
}

// computeActionVerbScore is the fraction of bullets whose leading verb is in
// the strong-verb list, scaled to 100.
func computeActionVerbScore(snapshot *types.ResumeSnapshot) float64 {
	return strongLeadFraction(snapshot) * 100.0
}

// strongLeadFraction returns the fraction of experience bullets starting
// with a strong action verb.
func strongLeadFraction(snapshot *types.ResumeSnapshot) float64 {
	total := 0
	strong := 0
	for _, exp := range snapshot.Experiences {
		for _, bullet := range exp.Bullets {
			total++
			fields := strings.Fields(bullet)
			if len(fields) > 0 && verbs.IsStrongActionVerb(fields[0]) {
				strong++
			}
		}
	}
	if total == 0 {
		return 0.0
	}
	return float64(strong) / float64(total)
}

// round1 rounds to one decimal place
func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

// clamp bounds a score to [0, 100]
func clamp(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}
