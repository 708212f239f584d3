// Package formatting normalizes resume text for ATS parsing: heading
// synonyms, date formats, bullet glyphs and whitespace.
package formatting

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// RuleChange records one applied standardization rule with before/after
// snippets of the affected text.
type RuleChange struct {
	Rule   string `json:"rule"`
	Before string `json:"before"`
	After  string `json:"after"`
}

// Result holds the standardized text and the per-rule change entries
type Result struct {
	Standardized string       `json:"standardized"`
	Changes      []RuleChange `json:"changes"`
}

// headingSynonyms maps known heading variants to their canonical form.
// Lookup is on the lowercase trimmed heading line.
var headingSynonyms = map[string]string{
	"work history":            "Work Experience",
	"employment history":      "Work Experience",
	"employment":              "Work Experience",
	"professional experience": "Work Experience",
	"career history":          "Work Experience",
	"educational background":  "Education",
	"academic background":     "Education",
	"academics":               "Education",
	"technical skills":        "Skills",
	"core competencies":       "Skills",
	"areas of expertise":      "Skills",
	"professional summary":    "Summary",
	"career summary":          "Summary",
	"career objective":        "Summary",
	"objective":               "Summary",
}

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// numericDatePattern matches slash or hyphen numeric dates like "01/2020"
var numericDatePattern = regexp.MustCompile(`\b(0?[1-9]|1[0-2])[/-](\d{4})\b`)

// Problematic glyph replacements applied by RemoveProblematicFormatting
var (
	bulletGlyphs    = []string{"•", "●", "▪", "◦", "‣", "·", "*"}
	dashGlyphs      = []string{"–", "—"}
	smartQuotes     = map[string]string{"“": `"`, "”": `"`, "‘": "'", "’": "'"}
	repeatedSpaces  = regexp.MustCompile(`[ \t]{2,}`)
	repeatedNewline = regexp.MustCompile(`\n{3,}`)
)

// StandardizeSectionHeadings maps known heading synonyms to canonical
// headings via fixed dictionary lookup, line by line.
func StandardizeSectionHeadings(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		key := strings.ToLower(strings.TrimSpace(strings.TrimRight(line, ":")))
		if canonical, ok := headingSynonyms[key]; ok {
			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			lines[i] = indent + canonical
		}
	}
	return strings.Join(lines, "\n")
}

// StandardizeDateFormats converts numeric "MM/YYYY" or "MM-YYYY" dates to the
// textual "Month YYYY" form. Already-standard or unrecognized formats are
// left untouched.
func StandardizeDateFormats(text string) string {
	return numericDatePattern.ReplaceAllStringFunc(text, func(match string) string {
		parts := numericDatePattern.FindStringSubmatch(match)
		month, err := strconv.Atoi(parts[1])
		if err != nil || month < 1 || month > 12 {
			return match
		}
		return fmt.Sprintf("%s %s", monthNames[month-1], parts[2])
	})
}

// RemoveProblematicFormatting replaces bullet glyphs and en/em dashes with a
// plain hyphen, normalizes smart quotes to straight quotes, and collapses
// repeated whitespace.
func RemoveProblematicFormatting(text string) string {
	for _, glyph := range bulletGlyphs {
		text = strings.ReplaceAll(text, glyph, "-")
	}
	for _, glyph := range dashGlyphs {
		text = strings.ReplaceAll(text, glyph, "-")
	}
	for smart, straight := range smartQuotes {
		text = strings.ReplaceAll(text, smart, straight)
	}
	text = repeatedSpaces.ReplaceAllString(text, " ")
	text = repeatedNewline.ReplaceAllString(text, "\n\n")
	return text
}

// StandardizeAll runs every standardization rule in fixed order and records
// one change entry per rule that altered the text. The function is
// idempotent: re-running on already-standardized text yields no changes.
func StandardizeAll(text string) Result {
	result := Result{Standardized: text}

	rules := []struct {
		name  string
		apply func(string) string
	}{
		{"section_headings", StandardizeSectionHeadings},
		{"date_formats", StandardizeDateFormats},
		{"problematic_formatting", RemoveProblematicFormatting},
	}

	for _, rule := range rules {
		before := result.Standardized
		after := rule.apply(before)
		if after != before {
			result.Changes = append(result.Changes, RuleChange{
				Rule:   rule.name,
				Before: snippet(before),
				After:  snippet(after),
			})
			result.Standardized = after
		}
	}

	return result
}

// snippetLength caps before/after excerpts in change entries
const snippetLength = 80

// snippet truncates text for change reporting
func snippet(text string) string {
	text = strings.TrimSpace(text)
	if len(text) <= snippetLength {
		return text
	}
	return text[:snippetLength-3] + "..."
}
