package injection

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// InjectionType selects the natural-language template used for a placement
type InjectionType string

const (
	// TypeSkill adds the keyword as a declared skill
	TypeSkill InjectionType = "skill"
	// TypeTechnology mentions the keyword as a technology used
	TypeTechnology InjectionType = "technology"
	// TypeMethodology mentions the keyword as a practiced methodology
	TypeMethodology InjectionType = "methodology"
	// TypeTool mentions the keyword as a tool applied
	TypeTool InjectionType = "tool"
)

// Section names used in injection points and change records
const (
	SectionSkills     = "skills"
	SectionExperience = "experiences"
	SectionProjects   = "projects"
)

// Point identifies where a keyword will be placed
type Point struct {
	Section string
	Entry   int
	Type    InjectionType
}

// knownTechnologies lists terms treated as skills/technologies for the skills
// section. Lookup is on the normalized (lowercase) keyword.
var knownTechnologies = map[string]bool{
	"python": true, "java": true, "javascript": true, "typescript": true,
	"golang": true, "rust": true, "ruby": true, "php": true, "swift": true,
	"kotlin": true, "scala": true, "sql": true, "nosql": true, "postgresql": true,
	"mysql": true, "mongodb": true, "redis": true, "elasticsearch": true,
	"kafka": true, "rabbitmq": true, "docker": true, "kubernetes": true,
	"terraform": true, "ansible": true, "aws": true, "azure": true, "gcp": true,
	"react": true, "angular": true, "vue": true, "django": true, "flask": true,
	"spring": true, "rails": true, "node": true, "nodejs": true, "graphql": true,
	"grpc": true, "rest": true, "linux": true, "git": true, "jenkins": true,
	"grafana": true, "prometheus": true, "spark": true, "hadoop": true,
	"tensorflow": true, "pytorch": true, "pandas": true, "numpy": true,
}

// methodologies lists process/methodology terms
var methodologies = map[string]bool{
	"agile": true, "scrum": true, "kanban": true, "devops": true,
	"tdd": true, "bdd": true, "microservices": true, "observability": true,
	"automation": true, "testing": true,
}

// templates are the fixed natural-language insertion templates per type.
// They only append or augment, never replace existing content.
var templates = map[InjectionType]string{
	TypeTechnology:  "Utilized %s in development work",
	TypeMethodology: "Applied %s practices to day-to-day delivery",
	TypeTool:        "Leveraged %s to support project delivery",
}

// ClassifyKeyword determines the injection type for a keyword
func ClassifyKeyword(keyword string) InjectionType {
	normalized := strings.ToLower(strings.TrimSpace(keyword))
	switch {
	case methodologies[normalized]:
		return TypeMethodology
	case knownTechnologies[normalized]:
		return TypeTechnology
	case strings.HasSuffix(normalized, ".js") || strings.HasSuffix(normalized, "db"):
		return TypeTechnology
	default:
		return TypeSkill
	}
}

// looksLikeSkill reports whether the keyword plausibly names a skill or
// technology that belongs in the skills section.
func looksLikeSkill(keyword string) bool {
	return ClassifyKeyword(keyword) != TypeSkill || len(strings.Fields(keyword)) == 1
}

// FindBestInjectionPoint chooses where a keyword should be placed by fixed
// precedence: the skills section when the keyword plausibly names a
// skill/technology, then the most recent experience entry, then the first
// project. The second return value is false when the snapshot offers no
// natural insertion point.
func FindBestInjectionPoint(snapshot *types.ResumeSnapshot, keyword string) (Point, bool) {
	if looksLikeSkill(keyword) && snapshot.Skills != nil {
		return Point{Section: SectionSkills, Entry: len(snapshot.Skills), Type: TypeSkill}, true
	}
	if len(snapshot.Experiences) > 0 {
		return Point{Section: SectionExperience, Entry: 0, Type: ClassifyKeyword(keyword)}, true
	}
	if len(snapshot.Projects) > 0 {
		return Point{Section: SectionProjects, Entry: 0, Type: ClassifyKeyword(keyword)}, true
	}
	if snapshot.Skills != nil {
		return Point{Section: SectionSkills, Entry: len(snapshot.Skills), Type: TypeSkill}, true
	}
	return Point{}, false
}

// InjectKeywordNaturally renders the insertion text for a keyword. For
// non-skill placements the result is a new sentence built from the fixed
// template for the injection type; the existing text is never replaced.
func InjectKeywordNaturally(keyword string, injectionType InjectionType) string {
	template, ok := templates[injectionType]
	if !ok {
		return keyword
	}
	return fmt.Sprintf(template, keyword)
}

// InjectKeywords places up to maxKeywords missing keywords into the snapshot,
// highest JD-frequency first. The input snapshot is never mutated; the
// returned snapshot is a fresh copy carrying the placements, and each
// successful placement yields one keyword_injection change record.
func InjectKeywords(snapshot *types.ResumeSnapshot, missing []string, jdKeywords types.KeywordSet, maxKeywords int) (*types.ResumeSnapshot, []types.Change) {
	updated := snapshot.Clone()
	var changes []types.Change

	ranked := CalculateKeywordPriority(missing, jdKeywords)
	placed := 0
	for _, keyword := range ranked {
		if placed >= maxKeywords {
			break
		}

		point, ok := FindBestInjectionPoint(updated, keyword)
		if !ok {
			continue
		}

		var original, result string
		switch point.Section {
		case SectionSkills:
			updated.Skills = append(updated.Skills, types.Skill{Name: keyword})
			result = keyword
		case SectionExperience:
			bullet := InjectKeywordNaturally(keyword, point.Type)
			exp := &updated.Experiences[point.Entry]
			exp.Bullets = append(exp.Bullets, bullet)
			result = bullet
		case SectionProjects:
			sentence := InjectKeywordNaturally(keyword, point.Type)
			proj := &updated.Projects[point.Entry]
			original = proj.Description
			if proj.Description == "" {
				proj.Description = sentence
			} else {
				proj.Description = strings.TrimRight(proj.Description, " ") + " " + sentence + "."
			}
			result = proj.Description
		}

		changes = append(changes, types.NewChange(
			types.ChangeKeywordInjection,
			point.Section,
			point.Entry,
			original,
			result,
			fmt.Sprintf("added missing job-description keyword %q as %s", keyword, point.Type),
			true,
		))
		placed++
	}

	return updated, changes
}
