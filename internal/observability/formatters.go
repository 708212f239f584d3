// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreBreakdown outputs the weighted ATS subscores and the overall score.
func (p *Printer) PrintScoreBreakdown(breakdown *types.ScoreBreakdown) {
	if breakdown == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Keyword match:         %5.1f\n", breakdown.KeywordMatch))
	sb.WriteString(fmt.Sprintf("Skill relevance:       %5.1f\n", breakdown.SkillRelevance))
	sb.WriteString(fmt.Sprintf("Section completeness:  %5.1f\n", breakdown.SectionCompleteness))
	sb.WriteString(fmt.Sprintf("Experience impact:     %5.1f\n", breakdown.ExperienceImpact))
	sb.WriteString(fmt.Sprintf("Quantification:        %5.1f\n", breakdown.Quantification))
	sb.WriteString(fmt.Sprintf("Action verbs:          %5.1f\n", breakdown.ActionVerb))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Overall:               %5.1f / 100", breakdown.Overall))

	p.printBox("ATS SCORE BREAKDOWN", sb.String())
}

// PrintKeywordGap outputs matched and missing job description keywords.
func (p *Printer) PrintKeywordGap(gap *types.KeywordGap) {
	if gap == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Matched: %d   Missing: %d\n", len(gap.Matched), len(gap.Missing)))

	if len(gap.Missing) > 0 {
		sb.WriteString("\nTop missing keywords:\n")
		count := min(len(gap.Missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", gap.Missing[i]))
		}
		if len(gap.Missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(gap.Missing)-maxItemsToShow))
		}
	}

	p.printBox("KEYWORD GAP", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintOptimizationResult outputs the before/after scores and applied changes.
func (p *Printer) PrintOptimizationResult(result *types.OptimizationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:         %s\n", result.RunID))
	sb.WriteString(fmt.Sprintf("Score:       %.1f -> %.1f (%+.1f)\n",
		result.OriginalScore.Overall, result.OptimizedScore.Overall, result.Improvement))

	applied := 0
	advisory := 0
	for _, change := range result.Changes {
		if change.Applied {
			applied++
		} else {
			advisory++
		}
	}
	sb.WriteString(fmt.Sprintf("Changes:     %d applied, %d advisory\n", applied, advisory))

	if len(result.Changes) > 0 {
		sb.WriteString("\n")
		count := min(len(result.Changes), maxItemsToShow)
		for i := 0; i < count; i++ {
			change := result.Changes[i]
			marker := "•"
			if !change.Applied {
				marker = "?"
			}
			sb.WriteString(fmt.Sprintf("%s [%s] %s\n", marker, change.Kind, change.Reason))
		}
		if len(result.Changes) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more changes\n", len(result.Changes)-maxItemsToShow))
		}
	}

	p.printBox("OPTIMIZATION RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintVersionDiff outputs the field-level differences between two snapshots.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintVersionDiff(diff *types.VersionDiff) {
	if diff == nil {
		return
	}

	changed := diff.CountByStatus(types.DiffAdded) +
		diff.CountByStatus(types.DiffRemoved) +
		diff.CountByStatus(types.DiffModified)
	if changed == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO DIFFERENCES FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Added: %d   Removed: %d   Modified: %d\n\n",
		diff.CountByStatus(types.DiffAdded),
		diff.CountByStatus(types.DiffRemoved),
		diff.CountByStatus(types.DiffModified)))

	shown := 0
	for _, field := range diff.Entries {
		if field.Status == types.DiffUnchanged {
			continue
		}
		if shown == maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more fields\n", changed-shown))
			break
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", statusMarker(field.Status), field.Path))
		shown++
	}

	p.printBox("VERSION DIFF", strings.TrimSuffix(sb.String(), "\n"))
}

func statusMarker(status types.DiffStatus) string {
	switch status {
	case types.DiffAdded:
		return "+"
	case types.DiffRemoved:
		return "-"
	case types.DiffModified:
		return "~"
	default:
		return " "
	}
}
