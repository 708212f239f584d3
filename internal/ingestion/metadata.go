package ingestion

import (
	"encoding/json"
	"strings"
	"time"
)

// Metadata describes one ingested job posting
type Metadata struct {
	SourceURL  string    `json:"source_url,omitempty"`
	CharCount  int       `json:"char_count"`
	WordCount  int       `json:"word_count"`
	LineCount  int       `json:"line_count"`
	IngestedAt time.Time `json:"ingested_at"`
}

// NewMetadata computes metadata for cleaned posting text
func NewMetadata(cleanedText, sourceURL string) *Metadata {
	lineCount := 0
	if cleanedText != "" {
		lineCount = len(strings.Split(cleanedText, "\n"))
	}

	return &Metadata{
		SourceURL:  sourceURL,
		CharCount:  len(cleanedText),
		WordCount:  len(strings.Fields(cleanedText)),
		LineCount:  lineCount,
		IngestedAt: time.Now().UTC(),
	}
}

// ToJSON marshals the metadata with indentation for file output
func (m *Metadata) ToJSON() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}
