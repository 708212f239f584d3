package quantify

import "strings"

// Suggestion proposes metric templates for a bullet lacking quantification.
// Templates use X as a placeholder for the human-supplied value; Example
// shows the original bullet with the first template inserted at the end of
// the sentence, before trailing punctuation.
type Suggestion struct {
	AchievementType AchievementType `json:"achievement_type"`
	Templates       []string        `json:"templates"`
	Example         string          `json:"example"`
}

// metricTemplates holds 3-5 fixed metric phrase templates per achievement
// type. The first template of each list is the one used in examples.
var metricTemplates = map[AchievementType][]string{
	AchievementPerformance: {"improving performance by X%", "reducing latency by X ms", "achieving X% faster processing", "cutting response time by X%"},
	AchievementScale:       {"serving X users", "handling X requests per second", "scaling to X concurrent sessions", "processing X records daily"},
	AchievementTeam:        {"leading a team of X engineers", "mentoring X developers", "coordinating across X teams"},
	AchievementFinancial:   {"generating $X in revenue", "saving $X annually", "reducing costs by X%", "managing a $X budget"},
	AchievementTime:        {"saving X hours per week", "cutting delivery time by X%", "shipping X weeks ahead of schedule"},
	AchievementQuality:     {"reducing defects by X%", "raising test coverage to X%", "achieving X% uptime", "cutting incidents by X%"},
	AchievementCustomer:    {"improving satisfaction by X points", "supporting X customers", "increasing retention by X%", "reducing churn by X%"},
	AchievementProject:     {"delivering X releases", "completing X% under budget", "launching to X markets"},
	AchievementAutomation:  {"automating X manual steps", "saving X hours of manual work monthly", "increasing deployment frequency by X%"},
	AchievementCode:        {"shipping X features", "refactoring X modules", "reducing code duplication by X%", "serving X API consumers"},
}

// Suggest proposes metric templates for an unquantified bullet. Callers
// should only invoke it when Has reports false for the bullet; the returned
// templates are advisory and require a human-supplied value for X.
func Suggest(bullet string) Suggestion {
	achievementType := ClassifyAchievement(bullet)
	templates := metricTemplates[achievementType]

	return Suggestion{
		AchievementType: achievementType,
		Templates:       templates,
		Example:         insertTemplate(bullet, templates[0]),
	}
}

// insertTemplate appends the template clause at the end of the sentence,
// before any trailing punctuation.
func insertTemplate(bullet, template string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(bullet), " ")
	if trimmed == "" {
		return template
	}

	trailing := ""
	for len(trimmed) > 0 {
		last := trimmed[len(trimmed)-1]
		if last == '.' || last == '!' || last == '?' {
			trailing = string(last) + trailing
			trimmed = trimmed[:len(trimmed)-1]
			continue
		}
		break
	}

	return trimmed + ", " + template + trailing
}
