// Package injection places missing job-description keywords into resume
// sections using fixed natural-language templates.
package injection

import (
	"sort"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// CalculateKeywordPriority ranks missing keywords by descending frequency
// weight in the job-description keyword set; ties break by keyword string
// order so the ranking is deterministic and stable.
func CalculateKeywordPriority(missing []string, jdKeywords types.KeywordSet) []string {
	ranked := append([]string(nil), missing...)
	sort.SliceStable(ranked, func(i, j int) bool {
		wi, wj := jdKeywords.Weight(ranked[i]), jdKeywords.Weight(ranked[j])
		if wi != wj {
			return wi > wj
		}
		return ranked[i] < ranked[j]
	})
	return ranked
}
