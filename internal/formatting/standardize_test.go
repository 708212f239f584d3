package formatting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardizeSectionHeadings(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"Work history", "Work History", "Work Experience"},
		{"With colon", "Employment History:", "Work Experience"},
		{"Technical skills", "Technical Skills", "Skills"},
		{"Objective", "Objective", "Summary"},
		{"Already canonical", "Work Experience", "Work Experience"},
		{"Unknown heading", "Hobbies", "Hobbies"},
		{"Non-heading line", "My work history was varied and long", "My work history was varied and long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StandardizeSectionHeadings(tt.text))
		})
	}
}

func TestStandardizeDateFormats(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"Slash date", "01/2020 - 03/2022", "January 2020 - March 2022"},
		{"Hyphen date", "7-2019", "July 2019"},
		{"No leading zero", "3/2021", "March 2021"},
		{"Already textual", "January 2020", "January 2020"},
		{"Year range untouched", "2019-2021", "2019-2021"},
		{"Invalid month untouched", "13/2020", "13/2020"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StandardizeDateFormats(tt.text))
		})
	}
}

func TestRemoveProblematicFormatting(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"Bullet glyph", "• Led the team", "- Led the team"},
		{"Em dash", "Results — improved", "Results - improved"},
		{"Smart quotes", "Built “fast” systems", `Built "fast" systems`},
		{"Repeated spaces", "Led   the  team", "Led the team"},
		{"Plain text untouched", "- Led the team", "- Led the team"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RemoveProblematicFormatting(tt.text))
		})
	}
}

func TestStandardizeAll(t *testing.T) {
	text := "Work History\n• Joined 01/2020 — led   migrations"

	result := StandardizeAll(text)

	assert.Equal(t, "Work Experience\n- Joined January 2020 - led migrations", result.Standardized)
	require.Len(t, result.Changes, 3)
	assert.Equal(t, "section_headings", result.Changes[0].Rule)
	assert.Equal(t, "date_formats", result.Changes[1].Rule)
	assert.Equal(t, "problematic_formatting", result.Changes[2].Rule)
}

func TestStandardizeAllIdempotent(t *testing.T) {
	first := StandardizeAll("Employment History\n• Shipped 02/2021 “on time”")
	second := StandardizeAll(first.Standardized)

	assert.Equal(t, first.Standardized, second.Standardized)
	assert.Empty(t, second.Changes)
}

func TestStandardizeAllNoChanges(t *testing.T) {
	result := StandardizeAll("Work Experience\n- Led the team")

	assert.Empty(t, result.Changes)
	assert.Equal(t, "Work Experience\n- Led the team", result.Standardized)
}
