package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-optimizer/internal/schemas"
	"github.com/jonathan/resume-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schemaFiles = []string{
	"resume_snapshot.schema.json",
	"optimization_options.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_DeclareDraft(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj))

			assert.Contains(t, schemaObj, "$schema")
			assert.Contains(t, schemaObj, "properties")
		})
	}
}

func TestResumeSnapshotSchema_AcceptsMarshaledSnapshot(t *testing.T) {
	snapshot := &types.ResumeSnapshot{
		PersonalInfo: types.PersonalInfo{
			Name:    "Ada Lovelace",
			Email:   "ada@example.com",
			Summary: "Engineer focused on analytical systems",
		},
		Experiences: []types.Experience{
			{
				Title:   "Software Engineer",
				Company: "Analytical Engines Ltd",
				Bullets: []string{"Built computation pipelines in Go"},
			},
		},
		Skills: []types.Skill{{Name: "Go", Category: "Languages"}},
	}

	schemaData, err := os.ReadFile("resume_snapshot.schema.json")
	require.NoError(t, err)

	doc, err := json.Marshal(snapshot)
	require.NoError(t, err)

	assert.NoError(t, schemas.ValidateString(string(schemaData), string(doc)))
}

func TestResumeSnapshotSchema_RejectsMissingName(t *testing.T) {
	schemaData, err := os.ReadFile("resume_snapshot.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateString(string(schemaData), `{"personal_info": {"email": "ada@example.com"}}`)

	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestOptimizationOptionsSchema_RejectsOutOfRangeCap(t *testing.T) {
	schemaData, err := os.ReadFile("optimization_options.schema.json")
	require.NoError(t, err)

	assert.NoError(t, schemas.ValidateString(string(schemaData), `{"max_keywords": 10}`))

	err = schemas.ValidateString(string(schemaData), `{"max_keywords": 51}`)
	var validationErr *schemas.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
