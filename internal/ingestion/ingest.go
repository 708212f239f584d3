// Package ingestion turns raw job postings from files or URLs into cleaned
// text suitable for keyword extraction.
package ingestion

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/fetch"
)

var (
	repeatedBlankLines = regexp.MustCompile(`\n\n\n+`)
	innerSpaces        = regexp.MustCompile(`\s+`)
)

// CleanText normalizes raw posting text: CRLF to LF, trimmed lines with
// inner whitespace collapsed, markdown headings and bullets preserved, and at
// most two consecutive blank lines.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = repeatedBlankLines.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine normalizes one line, keeping heading and bullet markers intact
func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		return trimmed
	}
	return innerSpaces.ReplaceAllString(trimmed, " ")
}

// IngestFromFile reads and cleans a job posting from a text file
func IngestFromFile(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read job posting file: %w", err)
	}

	cleaned := CleanText(string(content))
	return cleaned, NewMetadata(cleaned, ""), nil
}

// IngestFromURL fetches a job posting page, strips its HTML and cleans the
// remaining text.
func IngestFromURL(ctx context.Context, urlStr string) (string, *Metadata, error) {
	text, err := fetch.JobPosting(ctx, urlStr)
	if err != nil {
		return "", nil, fmt.Errorf("failed to fetch job posting: %w", err)
	}

	cleaned := CleanText(text)
	return cleaned, NewMetadata(cleaned, urlStr), nil
}

// WriteOutput writes the cleaned text and metadata artifacts into outDir
func WriteOutput(outDir string, cleanedText string, metadata *Metadata) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	cleanedPath := filepath.Join(outDir, "job_posting.cleaned.txt")
	if err := os.WriteFile(cleanedPath, []byte(cleanedText), 0644); err != nil {
		return fmt.Errorf("failed to write cleaned text file: %w", err)
	}

	metaJSON, err := metadata.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	metaPath := filepath.Join(outDir, "job_posting.meta.json")
	if err := os.WriteFile(metaPath, metaJSON, 0644); err != nil {
		return fmt.Errorf("failed to write metadata file: %w", err)
	}

	return nil
}
