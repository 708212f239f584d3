// Package diffing computes structural diffs between two resume snapshots for
// version-history comparison.
package diffing

import (
	"fmt"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// Compare walks each structurally corresponding field between two snapshots
// and classifies it as added, removed, modified or unchanged. Repeatable
// sections are aligned by list position. Swapping the arguments inverts the
// added/removed labels and leaves modified/unchanged entries identical.
func Compare(a, b *types.ResumeSnapshot) *types.VersionDiff {
	if a == nil {
		a = &types.ResumeSnapshot{}
	}
	if b == nil {
		b = &types.ResumeSnapshot{}
	}

	diff := &types.VersionDiff{}

	comparePersonalInfo(diff, a.PersonalInfo, b.PersonalInfo)
	compareExperiences(diff, a.Experiences, b.Experiences)
	compareEducation(diff, a.Education, b.Education)
	compareSkills(diff, a.Skills, b.Skills)
	compareProjects(diff, a.Projects, b.Projects)

	return diff
}

// classify appends one field entry unless the field is absent on both sides
func classify(diff *types.VersionDiff, path, before, after string) {
	var status types.DiffStatus
	switch {
	case before == "" && after == "":
		return
	case before == "":
		status = types.DiffAdded
	case after == "":
		status = types.DiffRemoved
	case before != after:
		status = types.DiffModified
	default:
		status = types.DiffUnchanged
	}

	diff.Entries = append(diff.Entries, types.FieldDiff{
		Path:   path,
		Status: status,
		Before: before,
		After:  after,
	})
}

func comparePersonalInfo(diff *types.VersionDiff, a, b types.PersonalInfo) {
	classify(diff, "personal_info.name", a.Name, b.Name)
	classify(diff, "personal_info.email", a.Email, b.Email)
	classify(diff, "personal_info.phone", a.Phone, b.Phone)
	classify(diff, "personal_info.location", a.Location, b.Location)
	classify(diff, "personal_info.linkedin", a.LinkedIn, b.LinkedIn)
	classify(diff, "personal_info.summary", a.Summary, b.Summary)
}

func compareExperiences(diff *types.VersionDiff, a, b []types.Experience) {
	for i := 0; i < max(len(a), len(b)); i++ {
		var left, right types.Experience
		if i < len(a) {
			left = a[i]
		}
		if i < len(b) {
			right = b[i]
		}

		prefix := fmt.Sprintf("experiences[%d]", i)
		classify(diff, prefix+".title", left.Title, right.Title)
		classify(diff, prefix+".company", left.Company, right.Company)
		classify(diff, prefix+".location", left.Location, right.Location)
		classify(diff, prefix+".start_date", left.StartDate, right.StartDate)
		classify(diff, prefix+".end_date", left.EndDate, right.EndDate)

		for j := 0; j < max(len(left.Bullets), len(right.Bullets)); j++ {
			var before, after string
			if j < len(left.Bullets) {
				before = left.Bullets[j]
			}
			if j < len(right.Bullets) {
				after = right.Bullets[j]
			}
			classify(diff, fmt.Sprintf("%s.bullets[%d]", prefix, j), before, after)
		}
	}
}

func compareEducation(diff *types.VersionDiff, a, b []types.Education) {
	for i := 0; i < max(len(a), len(b)); i++ {
		var left, right types.Education
		if i < len(a) {
			left = a[i]
		}
		if i < len(b) {
			right = b[i]
		}

		prefix := fmt.Sprintf("education[%d]", i)
		classify(diff, prefix+".degree", left.Degree, right.Degree)
		classify(diff, prefix+".field", left.Field, right.Field)
		classify(diff, prefix+".institution", left.Institution, right.Institution)
		classify(diff, prefix+".start_date", left.StartDate, right.StartDate)
		classify(diff, prefix+".end_date", left.EndDate, right.EndDate)
	}
}

func compareSkills(diff *types.VersionDiff, a, b []types.Skill) {
	for i := 0; i < max(len(a), len(b)); i++ {
		var left, right types.Skill
		if i < len(a) {
			left = a[i]
		}
		if i < len(b) {
			right = b[i]
		}
		classify(diff, fmt.Sprintf("skills[%d].name", i), left.Name, right.Name)
	}
}

func compareProjects(diff *types.VersionDiff, a, b []types.Project) {
	for i := 0; i < max(len(a), len(b)); i++ {
		var left, right types.Project
		if i < len(a) {
			left = a[i]
		}
		if i < len(b) {
			right = b[i]
		}

		prefix := fmt.Sprintf("projects[%d]", i)
		classify(diff, prefix+".name", left.Name, right.Name)
		classify(diff, prefix+".description", left.Description, right.Description)

		for j := 0; j < max(len(left.Technologies), len(right.Technologies)); j++ {
			var before, after string
			if j < len(left.Technologies) {
				before = left.Technologies[j]
			}
			if j < len(right.Technologies) {
				after = right.Technologies[j]
			}
			classify(diff, fmt.Sprintf("%s.technologies[%d]", prefix, j), before, after)
		}
	}
}
