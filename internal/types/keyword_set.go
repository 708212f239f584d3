package types

import "sort"

// KeywordSet is a deduplicated collection of normalized tokens, each carrying
// a frequency weight computed from occurrence count in the source text.
type KeywordSet struct {
	Weights map[string]int `json:"weights"`
}

// NewKeywordSet returns an empty keyword set
func NewKeywordSet() KeywordSet {
	return KeywordSet{Weights: make(map[string]int)}
}

// Add records one occurrence of the given token
func (k KeywordSet) Add(token string) {
	k.Weights[token]++
}

// Contains reports whether the token is in the set
func (k KeywordSet) Contains(token string) bool {
	_, ok := k.Weights[token]
	return ok
}

// Weight returns the frequency weight for the token, or 0 if absent
func (k KeywordSet) Weight(token string) int {
	return k.Weights[token]
}

// Len returns the number of distinct tokens in the set
func (k KeywordSet) Len() int {
	return len(k.Weights)
}

// Tokens returns all tokens in deterministic (sorted) order
func (k KeywordSet) Tokens() []string {
	tokens := make([]string, 0, len(k.Weights))
	for token := range k.Weights {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

// Intersect returns the tokens present in both sets, in sorted order
func (k KeywordSet) Intersect(other KeywordSet) []string {
	var matched []string
	for token := range k.Weights {
		if other.Contains(token) {
			matched = append(matched, token)
		}
	}
	sort.Strings(matched)
	return matched
}

// Subtract returns the tokens present in k but not in other, in sorted order.
// Together with Intersect this partitions k exactly: for sets R and J,
// J.Intersect(R) and J.Subtract(R) are disjoint and their union is J.
func (k KeywordSet) Subtract(other KeywordSet) []string {
	var missing []string
	for token := range k.Weights {
		if !other.Contains(token) {
			missing = append(missing, token)
		}
	}
	sort.Strings(missing)
	return missing
}
