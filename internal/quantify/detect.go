// Package quantify detects numeric evidence in achievement bullets, assigns
// achievement types, and proposes metric templates for unquantified bullets.
package quantify

import "regexp"

// MatchKind identifies the flavor of quantification found in text
type MatchKind string

const (
	// KindPercentage is a percentage figure, e.g. "35%"
	KindPercentage MatchKind = "percentage"
	// KindCurrency is a monetary amount, e.g. "$1.2M"
	KindCurrency MatchKind = "currency"
	// KindMultiplier is a multiplicative phrase, e.g. "2x" or "3-fold"
	KindMultiplier MatchKind = "multiplier"
	// KindNumber is any other numeric figure
	KindNumber MatchKind = "number"
)

// Match is one piece of quantification evidence found in text
type Match struct {
	Text string    `json:"text"`
	Kind MatchKind `json:"kind"`
}

// Detection patterns, checked in order so the more specific kinds claim their
// text before the generic number pattern.
var (
	percentagePattern = regexp.MustCompile(`\d+(?:[.,]\d+)?\s?%`)
	currencyPattern   = regexp.MustCompile(`[$€£]\s?\d+(?:[.,]\d+)*\s?[kKmMbB]?(?:illion)?`)
	multiplierPattern = regexp.MustCompile(`\b\d+(?:\.\d+)?x\b|\b\d+-fold\b`)
	numberPattern     = regexp.MustCompile(`\d+(?:[.,]\d+)?(?:\s?[kKmMbB]\b|\+)?`)
)

// Detect returns all quantification matches in the text: percentages,
// currency amounts, multiplicative phrases, and plain numbers. More specific
// kinds are reported first and their spans are not re-reported as numbers.
func Detect(text string) []Match {
	if text == "" {
		return nil
	}

	var matches []Match
	claimed := make([][]int, 0)

	collect := func(pattern *regexp.Regexp, kind MatchKind) {
		for _, span := range pattern.FindAllStringIndex(text, -1) {
			if overlapsAny(span, claimed) {
				continue
			}
			claimed = append(claimed, span)
			matches = append(matches, Match{Text: text[span[0]:span[1]], Kind: kind})
		}
	}

	collect(percentagePattern, KindPercentage)
	collect(currencyPattern, KindCurrency)
	collect(multiplierPattern, KindMultiplier)
	collect(numberPattern, KindNumber)

	return matches
}

// Has reports whether the text contains any quantification evidence
func Has(text string) bool {
	return len(Detect(text)) > 0
}

// overlapsAny reports whether span intersects any of the claimed spans
func overlapsAny(span []int, claimed [][]int) bool {
	for _, other := range claimed {
		if span[0] < other[1] && other[0] < span[1] {
			return true
		}
	}
	return false
}
