package types

import "github.com/google/uuid"

// ChangeKind discriminates the closed set of change record variants. UI
// layers switch exhaustively on this value to render each kind.
type ChangeKind string

const (
	// ChangeBulletRewrite replaces a leading weak verb phrase with a strong verb
	ChangeBulletRewrite ChangeKind = "bullet_rewrite"
	// ChangeKeywordInjection places a missing job-description keyword into a section
	ChangeKeywordInjection ChangeKind = "keyword_injection"
	// ChangeQuantificationSuggestion proposes a metric template for an unquantified bullet.
	// Suggestions are advisory: they are never applied to the optimized snapshot.
	ChangeQuantificationSuggestion ChangeKind = "quantification_suggestion"
	// ChangeFormattingStandardization normalizes headings, dates, glyphs or whitespace
	ChangeFormattingStandardization ChangeKind = "formatting_standardization"
)

// Change is a single proposed, typed modification produced by one
// optimization step. Changes are created during a single optimization run and
// consumed by the caller to accept or reject; the core never persists them.
type Change struct {
	ID       uuid.UUID  `json:"id"`
	Kind     ChangeKind `json:"kind"`
	Section  string     `json:"section"`
	Entry    int        `json:"entry"`
	Original string     `json:"original"`
	Updated  string     `json:"updated"`
	Reason   string     `json:"reason"`
	// Applied is false for advisory changes (quantification suggestions)
	// that require a human-supplied metric value before they can be used.
	Applied bool `json:"applied"`
}

// NewChange builds a change record with a fresh ID
func NewChange(kind ChangeKind, section string, entry int, original, updated, reason string, applied bool) Change {
	return Change{
		ID:       uuid.New(),
		Kind:     kind,
		Section:  section,
		Entry:    entry,
		Original: original,
		Updated:  updated,
		Reason:   reason,
		Applied:  applied,
	}
}
