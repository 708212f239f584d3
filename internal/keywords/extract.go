// Package keywords provides tokenization and weighted keyword extraction from
// free text, plus aggregation of a resume snapshot into scoreable text.
package keywords

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// minTokenLength is the minimum length for a token to count as a keyword
const minTokenLength = 3

// stopwords are common English words excluded from keyword sets
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "had": true,
	"her": true, "was": true, "one": true, "our": true, "out": true,
	"has": true, "have": true, "this": true, "that": true, "with": true,
	"from": true, "they": true, "will": true, "would": true, "there": true,
	"their": true, "what": true, "about": true, "which": true, "when": true,
	"your": true, "said": true, "each": true, "she": true, "how": true,
	"them": true, "then": true, "than": true, "were": true, "been": true,
	"who": true, "more": true, "other": true, "into": true, "its": true,
	"also": true, "may": true, "must": true, "should": true, "such": true,
	"these": true, "those": true, "some": true, "any": true, "able": true,
	"both": true, "per": true, "etc": true, "via": true, "within": true,
	"across": true, "using": true, "used": true, "while": true, "where": true,
}

// Extract tokenizes text into a weighted keyword set. Text is lowercased,
// stripped of punctuation and split on whitespace; tokens shorter than three
// characters and stopwords are dropped. Weight is the occurrence count in the
// cleaned token stream before deduplication. Empty input yields an empty set.
func Extract(text string) types.KeywordSet {
	set := types.NewKeywordSet()
	for _, token := range Tokenize(text) {
		set.Add(token)
	}
	return set
}

// Tokenize returns the cleaned token stream for text, in document order and
// with duplicates retained. Tokens are lowercase, punctuation-free, at least
// minTokenLength characters and not stopwords.
func Tokenize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)

	var tokens []string
	for _, token := range strings.Fields(cleaned) {
		if len(token) < minTokenLength {
			continue
		}
		if stopwords[token] {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// IsStopword reports whether the lowercase word is in the fixed stopword list
func IsStopword(word string) bool {
	return stopwords[word]
}
