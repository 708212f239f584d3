// Package types provides type definitions for structured data used throughout the resume-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// PersonalInfo holds the contact and summary fields of a resume
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

// IsEmpty reports whether no personal-info field is populated
func (p PersonalInfo) IsEmpty() bool {
	return p.Name == "" && p.Email == "" && p.Phone == "" &&
		p.Location == "" && p.LinkedIn == "" && p.Summary == ""
}

// Experience represents one employment entry. Entries are ordered
// most-recent-first, matching how the surrounding application renders them.
type Experience struct {
	Title     string   `json:"title"`
	Company   string   `json:"company"`
	Location  string   `json:"location,omitempty"`
	StartDate string   `json:"start_date,omitempty"`
	EndDate   string   `json:"end_date,omitempty"`
	Bullets   []string `json:"bullets"`
}

// Education represents one education entry
type Education struct {
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
}

// Skill represents one declared skill
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// Project represents one project entry
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// ResumeSnapshot is a complete point-in-time representation of a resume's
// structured content. Pipeline stages treat snapshots as immutable: each
// transformation works on a Clone and returns the copy, never the input.
type ResumeSnapshot struct {
	PersonalInfo PersonalInfo `json:"personal_info"`
	Experiences  []Experience `json:"experiences"`
	Education    []Education  `json:"education"`
	Skills       []Skill      `json:"skills"`
	Projects     []Project    `json:"projects"`
}

// Clone returns a deep copy of the snapshot
func (s *ResumeSnapshot) Clone() *ResumeSnapshot {
	if s == nil {
		return nil
	}

	// Nil slices stay nil so a cloned snapshot reports the same sections as
	// present or absent as its source.
	clone := &ResumeSnapshot{PersonalInfo: s.PersonalInfo}

	if s.Experiences != nil {
		clone.Experiences = make([]Experience, len(s.Experiences))
		for i, exp := range s.Experiences {
			clone.Experiences[i] = exp
			clone.Experiences[i].Bullets = append([]string(nil), exp.Bullets...)
		}
	}
	if s.Education != nil {
		clone.Education = make([]Education, len(s.Education))
		copy(clone.Education, s.Education)
	}
	if s.Skills != nil {
		clone.Skills = make([]Skill, len(s.Skills))
		copy(clone.Skills, s.Skills)
	}
	if s.Projects != nil {
		clone.Projects = make([]Project, len(s.Projects))
		for i, proj := range s.Projects {
			clone.Projects[i] = proj
			clone.Projects[i].Technologies = append([]string(nil), proj.Technologies...)
		}
	}

	return clone
}

// BulletCount returns the total number of experience bullets in the snapshot
func (s *ResumeSnapshot) BulletCount() int {
	count := 0
	for _, exp := range s.Experiences {
		count += len(exp.Bullets)
	}
	return count
}

// HasSkill reports whether the snapshot already declares the given skill
// name (case-insensitive exact match is handled by the caller via
// normalized names; this checks verbatim names).
func (s *ResumeSnapshot) HasSkill(name string) bool {
	for _, skill := range s.Skills {
		if skill.Name == name {
			return true
		}
	}
	return false
}
