package quantify

import "strings"

// AchievementType is the fixed taxonomy of achievement bullet categories
type AchievementType string

const (
	// AchievementPerformance covers speed, latency and efficiency work
	AchievementPerformance AchievementType = "performance"
	// AchievementScale covers user, traffic and data volume work
	AchievementScale AchievementType = "scale"
	// AchievementTeam covers leadership, mentoring and collaboration
	AchievementTeam AchievementType = "team"
	// AchievementFinancial covers revenue, cost and budget impact
	AchievementFinancial AchievementType = "financial"
	// AchievementTime covers schedule and turnaround improvements
	AchievementTime AchievementType = "time"
	// AchievementQuality covers defect, reliability and test coverage work
	AchievementQuality AchievementType = "quality"
	// AchievementCustomer covers customer and client outcomes
	AchievementCustomer AchievementType = "customer"
	// AchievementProject covers deliveries, launches and migrations; also the
	// default when no cue matches, as the most generic applicable type
	AchievementProject AchievementType = "project"
	// AchievementAutomation covers automation and tooling work
	AchievementAutomation AchievementType = "automation"
	// AchievementCode covers codebase, API and feature work
	AchievementCode AchievementType = "code"
)

// achievementCue pairs a taxonomy type with its trigger substrings
type achievementCue struct {
	achievementType AchievementType
	cues            []string
}

// achievementCues is the fixed ordered cue list. Classification is
// first-match-wins in this declaration order; no single priority order is
// canonical upstream, so this order is the documented tie-break.
var achievementCues = []achievementCue{
	{AchievementPerformance, []string{"performance", "faster", "latency", "speed", "throughput", "optimiz", "efficien"}},
	{AchievementScale, []string{"users", "requests", "traffic", "scale", "scaling", "concurrent", "records", "volume"}},
	{AchievementTeam, []string{"team", "mentor", "engineers", "developers", "stakeholder", "cross-functional", "hired", "onboard"}},
	{AchievementFinancial, []string{"revenue", "cost", "budget", "sales", "profit", "savings", "pricing"}},
	{AchievementTime, []string{"deadline", "schedule", "turnaround", "time-to", "hours", "weeks", "delivery time"}},
	{AchievementQuality, []string{"quality", "bugs", "defects", "reliability", "uptime", "test coverage", "incidents"}},
	{AchievementCustomer, []string{"customer", "client", "satisfaction", "retention", "support", "churn"}},
	{AchievementProject, []string{"project", "launch", "migration", "initiative", "rollout", "delivered"}},
	{AchievementAutomation, []string{"automat", "pipeline", "ci/cd", "deploy", "script", "tooling"}},
	{AchievementCode, []string{"code", "refactor", "api", "library", "feature", "module", "service"}},
}

// ClassifyAchievement assigns an achievement type to a bullet by keyword
// cues, first-match-wins over the fixed ordered cue list. Bullets with no
// matching cue default to the project type.
func ClassifyAchievement(bullet string) AchievementType {
	lower := strings.ToLower(bullet)
	for _, entry := range achievementCues {
		for _, cue := range entry.cues {
			if strings.Contains(lower, cue) {
				return entry.achievementType
			}
		}
	}
	return AchievementProject
}
