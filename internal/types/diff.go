package types

// DiffStatus classifies one field when comparing two resume snapshots
type DiffStatus string

const (
	// DiffAdded marks a field present only in the newer snapshot
	DiffAdded DiffStatus = "added"
	// DiffRemoved marks a field present only in the older snapshot
	DiffRemoved DiffStatus = "removed"
	// DiffModified marks a field present in both snapshots with differing text
	DiffModified DiffStatus = "modified"
	// DiffUnchanged marks a field with identical text in both snapshots
	DiffUnchanged DiffStatus = "unchanged"
)

// FieldDiff is one per-field entry of a version comparison. Path identifies
// the field structurally, e.g. "experiences[0].bullets[2]". Repeatable
// sections are aligned by list position since entries carry no external id.
type FieldDiff struct {
	Path   string     `json:"path"`
	Status DiffStatus `json:"status"`
	Before string     `json:"before,omitempty"`
	After  string     `json:"after,omitempty"`
}

// VersionDiff is the result of comparing two resume snapshots. It is computed
// fresh on each comparison request and never stored by the core.
type VersionDiff struct {
	Entries []FieldDiff `json:"entries"`
}

// CountByStatus returns how many entries carry the given status
func (d *VersionDiff) CountByStatus(status DiffStatus) int {
	count := 0
	for _, entry := range d.Entries {
		if entry.Status == status {
			count++
		}
	}
	return count
}
