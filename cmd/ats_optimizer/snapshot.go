package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-optimizer/internal/schemas"
	"github.com/jonathan/resume-optimizer/internal/types"
)

const snapshotSchemaFile = "schemas/resume_snapshot.schema.json"

// loadSnapshot reads a resume snapshot JSON file, validating it against the
// snapshot schema first when the schema file can be located. Schema load
// problems degrade to a warning; actual validation failures are fatal.
func loadSnapshot(path string) (*types.ResumeSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}

	if schemaPath := schemas.ResolvePath(snapshotSchemaFile); schemaPath != "" {
		if err := schemas.ValidateFile(schemaPath, path); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return nil, fmt.Errorf("resume file does not validate against schema: %w", err)
			}
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate resume against schema: %v\n", err)
		}
	}

	var snapshot types.ResumeSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}

	return &snapshot, nil
}

// loadJobDescription reads job description text from a file
func loadJobDescription(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job description file: %w", err)
	}
	return string(data), nil
}
