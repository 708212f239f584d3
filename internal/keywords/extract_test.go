package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-optimizer/internal/types"
)

func TestExtract(t *testing.T) {
	set := Extract("Led a team of 5 engineers to improve throughput")

	for _, expected := range []string{"led", "team", "engineers", "improve", "throughput"} {
		assert.True(t, set.Contains(expected), "expected keyword %q", expected)
	}
	for _, excluded := range []string{"a", "of", "to", "5"} {
		assert.False(t, set.Contains(excluded), "unexpected keyword %q", excluded)
	}
}

func TestExtractWeights(t *testing.T) {
	set := Extract("Python developer. Python and Django experience required; Django preferred.")

	assert.Equal(t, 2, set.Weight("python"))
	assert.Equal(t, 2, set.Weight("django"))
	assert.Equal(t, 1, set.Weight("developer"))
}

func TestExtractEmptyInput(t *testing.T) {
	assert.Equal(t, 0, Extract("").Len())
	assert.Equal(t, 0, Extract("   \n\t ").Len())
}

func TestExtractNoShortTokensOrStopwords(t *testing.T) {
	set := Extract("We are the ones who can do it all, via an API for the web")

	for _, token := range set.Tokens() {
		assert.GreaterOrEqual(t, len(token), 3, "token %q shorter than 3 chars", token)
		assert.False(t, IsStopword(token), "token %q is a stopword", token)
	}
}

func TestExtractStripsPunctuation(t *testing.T) {
	set := Extract("C++, React.js (frontend) — micro-services!")

	assert.True(t, set.Contains("react"))
	assert.True(t, set.Contains("frontend"))
	assert.True(t, set.Contains("micro"))
	assert.True(t, set.Contains("services"))
}

func TestAggregateResumeText(t *testing.T) {
	snapshot := &types.ResumeSnapshot{
		PersonalInfo: types.PersonalInfo{Name: "Ada Lovelace", Summary: "Backend engineer"},
		Experiences: []types.Experience{
			{Title: "Engineer", Company: "Acme", Bullets: []string{"Built APIs in Go"}},
		},
		Education: []types.Education{{Degree: "BS", Field: "Computer Science", Institution: "MIT"}},
		Skills:    []types.Skill{{Name: "Kubernetes"}},
		Projects:  []types.Project{{Name: "Tracker", Description: "Job tracker", Technologies: []string{"PostgreSQL"}}},
	}

	text := AggregateResumeText(snapshot)

	assert.Contains(t, text, "Ada Lovelace")
	assert.Contains(t, text, "Built APIs in Go")
	assert.Contains(t, text, "Computer Science")
	assert.Contains(t, text, "Kubernetes")
	assert.Contains(t, text, "PostgreSQL")
}

func TestAggregateResumeTextEmpty(t *testing.T) {
	assert.Equal(t, "", AggregateResumeText(nil))
	assert.Equal(t, "", AggregateResumeText(&types.ResumeSnapshot{}))
}
