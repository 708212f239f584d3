package keywords

import (
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// AggregateResumeText concatenates all free-text content of a snapshot into
// one string with single-space joins: personal-info fields, experience titles
// and bullets, education fields, skill names, and project
// descriptions/technologies. This aggregate is the only resume text the
// scoring engine ever sees.
func AggregateResumeText(snapshot *types.ResumeSnapshot) string {
	if snapshot == nil {
		return ""
	}

	var parts []string
	appendNonEmpty := func(values ...string) {
		for _, v := range values {
			if strings.TrimSpace(v) != "" {
				parts = append(parts, v)
			}
		}
	}

	info := snapshot.PersonalInfo
	appendNonEmpty(info.Name, info.Email, info.Phone, info.Location, info.LinkedIn, info.Summary)

	for _, exp := range snapshot.Experiences {
		appendNonEmpty(exp.Title, exp.Company, exp.Location)
		appendNonEmpty(exp.Bullets...)
	}

	for _, edu := range snapshot.Education {
		appendNonEmpty(edu.Degree, edu.Field, edu.Institution)
	}

	for _, skill := range snapshot.Skills {
		appendNonEmpty(skill.Name)
	}

	for _, proj := range snapshot.Projects {
		appendNonEmpty(proj.Name, proj.Description)
		appendNonEmpty(proj.Technologies...)
	}

	return strings.Join(parts, " ")
}

// ExtractFromSnapshot extracts the weighted keyword set for the aggregated
// resume text of a snapshot.
func ExtractFromSnapshot(snapshot *types.ResumeSnapshot) types.KeywordSet {
	return Extract(AggregateResumeText(snapshot))
}
