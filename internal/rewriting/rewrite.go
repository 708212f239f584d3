// Package rewriting rewrites individual achievement bullets by replacing weak
// leading verb phrases with strong action verbs.
package rewriting

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jonathan/resume-optimizer/internal/verbs"
)

// Result holds the outcome of rewriting one bullet point
type Result struct {
	Rewritten string `json:"rewritten"`
	Changed   bool   `json:"changed"`
	Reason    string `json:"reason,omitempty"`
}

// RewriteBulletPoint rewrites a bullet that starts with a weak verb phrase,
// replacing only the leading phrase with a strong verb chosen for the given
// context; the remainder of the sentence is preserved verbatim. Bullets that
// already start with a strong verb, or where no known weak phrase leads,
// come back unchanged. Pass an empty context to classify it from the bullet.
func RewriteBulletPoint(bullet string, context verbs.ContextTag) Result {
	trimmed := strings.TrimSpace(bullet)
	if trimmed == "" {
		return Result{Rewritten: bullet}
	}

	firstWord := strings.Fields(trimmed)[0]
	if verbs.IsStrongActionVerb(firstWord) {
		return Result{Rewritten: bullet}
	}

	weakPhrase, found := verbs.MatchLeadingWeakPhrase(trimmed)
	if !found {
		return Result{Rewritten: bullet}
	}

	if context == "" {
		context = verbs.ClassifyContext(trimmed)
	}
	replacement := verbs.SelectReplacement(weakPhrase, context)

	remainder := strings.TrimSpace(trimmed[len(weakPhrase):])
	rewritten := capitalize(replacement)
	if remainder != "" {
		rewritten += " " + remainder
	}

	return Result{
		Rewritten: rewritten,
		Changed:   true,
		Reason:    fmt.Sprintf("replaced weak phrase %q with strong verb %q", weakPhrase, replacement),
	}
}

// capitalize upper-cases the first rune of a word
func capitalize(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(word)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
