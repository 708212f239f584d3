// Package verbs classifies leading bullet-point verbs by impact and chooses
// strong replacements for weak verb phrases.
package verbs

import "strings"

// ContextTag describes the dominant subject of a bullet, used to pick a
// replacement verb that fits the sentence.
type ContextTag string

const (
	// ContextTeam covers people-focused bullets (leading, mentoring, coordinating)
	ContextTeam ContextTag = "team"
	// ContextSystem covers bullets about building or operating software systems
	ContextSystem ContextTag = "system"
	// ContextProcess covers workflow and process improvement bullets
	ContextProcess ContextTag = "process"
	// ContextGeneric is the fallback when no context cue matches
	ContextGeneric ContextTag = "generic"
)

// strongVerbs are action verbs considered high impact when leading a bullet
var strongVerbs = map[string]bool{
	"accelerated": true, "achieved": true, "architected": true, "automated": true,
	"built": true, "championed": true, "coordinated": true, "created": true,
	"delivered": true, "designed": true, "developed": true, "directed": true,
	"drove": true, "engineered": true, "established": true, "executed": true,
	"implemented": true, "improved": true, "increased": true, "launched": true,
	"led": true, "mentored": true, "modernized": true, "optimized": true,
	"orchestrated": true, "pioneered": true, "reduced": true, "refactored": true,
	"scaled": true, "shipped": true, "spearheaded": true, "streamlined": true,
	"transformed": true,
}

// weakPhrases are low-impact leading phrases, ordered longest-first so that
// multi-word phrases match before their single-word prefixes.
var weakPhrases = []string{
	"was responsible for",
	"responsible for",
	"participated in",
	"was involved in",
	"was tasked with",
	"contributed to",
	"assisted with",
	"involved in",
	"tasked with",
	"worked with",
	"helped with",
	"worked on",
	"dealt with",
	"assisted",
	"handled",
	"helped",
	"used",
	"made",
	"did",
}

// contextCues maps context tags to the cue words that select them. Checked in
// the fixed order of contextOrder; first tag with a matching cue wins.
var contextCues = map[ContextTag][]string{
	ContextTeam:    {"team", "teams", "mentor", "engineers", "developers", "stakeholders", "cross-functional", "hired", "onboarded"},
	ContextSystem:  {"system", "systems", "service", "services", "api", "apis", "infrastructure", "platform", "architecture", "developed", "database"},
	ContextProcess: {"process", "processes", "workflow", "pipeline", "deployment", "automation", "testing", "release", "procedure"},
}

// contextOrder fixes the precedence of context classification
var contextOrder = []ContextTag{ContextTeam, ContextSystem, ContextProcess}

// replacements holds the curated strong-verb candidates per context. The
// first candidate in list order is the deterministic choice for that context.
var replacements = map[ContextTag][]string{
	ContextTeam:    {"led", "coordinated", "directed", "mentored"},
	ContextSystem:  {"engineered", "architected", "built", "designed"},
	ContextProcess: {"streamlined", "implemented", "optimized", "automated"},
	ContextGeneric: {"delivered", "executed", "drove", "spearheaded"},
}

// IsStrongActionVerb reports whether the word is in the fixed strong-verb list
func IsStrongActionVerb(word string) bool {
	word = strings.ToLower(strings.TrimRight(strings.TrimSpace(word), ".,!?;:"))
	return strongVerbs[word]
}

// MatchLeadingWeakPhrase returns the weak phrase the bullet starts with, if
// any. Matching is case-insensitive and requires a word boundary after the
// phrase so "usedcar" does not match "used".
func MatchLeadingWeakPhrase(bullet string) (string, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(bullet))
	for _, phrase := range weakPhrases {
		if trimmed == phrase {
			return phrase, true
		}
		if strings.HasPrefix(trimmed, phrase+" ") {
			return phrase, true
		}
	}
	return "", false
}

// ClassifyContext determines the context tag for a bullet by presence of cue
// words, checked team -> system -> process; generic when no cue matches.
func ClassifyContext(bullet string) ContextTag {
	lower := strings.ToLower(bullet)
	for _, tag := range contextOrder {
		for _, cue := range contextCues[tag] {
			if containsWord(lower, cue) {
				return tag
			}
		}
	}
	return ContextGeneric
}

// SelectReplacement picks the strong verb that substitutes a weak phrase for
// the given context. The choice is deterministic: the first candidate of the
// fixed list for that context, skipping a candidate identical to the weak
// phrase itself.
func SelectReplacement(weakPhrase string, context ContextTag) string {
	candidates, ok := replacements[context]
	if !ok {
		candidates = replacements[ContextGeneric]
	}
	weak := strings.ToLower(strings.TrimSpace(weakPhrase))
	for _, candidate := range candidates {
		if candidate != weak {
			return candidate
		}
	}
	return candidates[0]
}

// containsWord reports whether text contains cue delimited by non-letter
// boundaries. Hyphenated cues are matched as substrings.
func containsWord(text, cue string) bool {
	if strings.Contains(cue, "-") {
		return strings.Contains(text, cue)
	}
	idx := 0
	for {
		pos := strings.Index(text[idx:], cue)
		if pos < 0 {
			return false
		}
		start := idx + pos
		end := start + len(cue)
		beforeOK := start == 0 || !isWordChar(text[start-1])
		afterOK := end == len(text) || !isWordChar(text[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9'
}
