package verbs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsStrongActionVerb(t *testing.T) {
	tests := []struct {
		name     string
		word     string
		expected bool
	}{
		{"Strong - led", "led", true},
		{"Strong - engineered", "engineered", true},
		{"Strong - mixed case", "Launched", true},
		{"Strong - trailing punctuation", "built,", true},
		{"Weak - worked", "worked", false},
		{"Weak - helped", "helped", false},
		{"Not a verb", "the", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsStrongActionVerb(tt.word))
		})
	}
}

func TestMatchLeadingWeakPhrase(t *testing.T) {
	tests := []struct {
		name     string
		bullet   string
		expected string
		found    bool
	}{
		{"Multi-word phrase", "Worked on improving systems", "worked on", true},
		{"Responsible for", "Responsible for deployments", "responsible for", true},
		{"Was responsible for", "Was responsible for releases", "was responsible for", true},
		{"Single word", "Helped the support team", "helped", true},
		{"Longest match wins", "Helped with migrations", "helped with", true},
		{"No word boundary", "Usedcar sales dashboard", "", false},
		{"Strong lead", "Engineered a data pipeline", "", false},
		{"Empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phrase, found := MatchLeadingWeakPhrase(tt.bullet)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, phrase)
		})
	}
}

func TestClassifyContext(t *testing.T) {
	tests := []struct {
		name     string
		bullet   string
		expected ContextTag
	}{
		{"Team cue", "Worked with a team of 5 engineers", ContextTeam},
		{"System cue", "Worked on the billing system", ContextSystem},
		{"Developed counts as system", "Developed new features", ContextSystem},
		{"Process cue", "Improved the release process", ContextProcess},
		{"Team beats system", "Led the team building the platform", ContextTeam},
		{"No cue", "Did various tasks", ContextGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyContext(tt.bullet))
		})
	}
}

func TestSelectReplacement(t *testing.T) {
	tests := []struct {
		name     string
		weak     string
		context  ContextTag
		expected string
	}{
		{"Team context", "worked on", ContextTeam, "led"},
		{"System context", "worked on", ContextSystem, "engineered"},
		{"Process context", "responsible for", ContextProcess, "streamlined"},
		{"Generic context", "did", ContextGeneric, "delivered"},
		{"Unknown context falls back to generic", "did", ContextTag("other"), "delivered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectReplacement(tt.weak, tt.context)
			assert.Equal(t, tt.expected, got)
			assert.True(t, IsStrongActionVerb(got), "replacement %q must be a strong verb", got)
		})
	}
}
