package types

// ScoreBreakdown holds the six ATS subscores (each 0-100) plus the weighted
// overall score. Overall is the weighted sum of the subscores using the fixed
// weights in internal/scoring, rounded to one decimal place.
type ScoreBreakdown struct {
	KeywordMatch        float64 `json:"keyword_match"`
	SkillRelevance      float64 `json:"skill_relevance"`
	SectionCompleteness float64 `json:"section_completeness"`
	ExperienceImpact    float64 `json:"experience_impact"`
	Quantification      float64 `json:"quantification"`
	ActionVerb          float64 `json:"action_verb"`
	Overall             float64 `json:"overall"`
}

// KeywordGap describes how the resume keyword set covers the job-description
// keyword set. Matched and Missing partition the JD set exactly.
type KeywordGap struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}
