package pipeline

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/resume-optimizer/internal/formatting"
	"github.com/jonathan/resume-optimizer/internal/injection"
	"github.com/jonathan/resume-optimizer/internal/keywords"
	"github.com/jonathan/resume-optimizer/internal/quantify"
	"github.com/jonathan/resume-optimizer/internal/rewriting"
	"github.com/jonathan/resume-optimizer/internal/scoring"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// DefaultMaxKeywords caps keyword injections per run unless configured
const DefaultMaxKeywords = 10

// Options selects which optimization steps run and caps keyword injection.
// The zero value disables everything; use DefaultOptions for the standard
// all-enabled run.
type Options struct {
	Formatting              bool `json:"formatting" yaml:"formatting"`
	BulletRewrite           bool `json:"bullet_rewrite" yaml:"bullet_rewrite"`
	KeywordInjection        bool `json:"keyword_injection" yaml:"keyword_injection"`
	QuantificationSuggested bool `json:"quantification_suggestions" yaml:"quantification_suggestions"`
	MaxKeywords             int  `json:"max_keywords" yaml:"max_keywords" validate:"gte=0,lte=50"`
}

// DefaultOptions enables every step with the default injection cap
func DefaultOptions() Options {
	return Options{
		Formatting:              true,
		BulletRewrite:           true,
		KeywordInjection:        true,
		QuantificationSuggested: true,
		MaxKeywords:             DefaultMaxKeywords,
	}
}

var validate = validator.New()

// Optimize runs the optimization pipeline against a snapshot: formatting
// standardization, bullet rewriting, keyword injection, then advisory
// quantification suggestions, in that fixed order. The input snapshot is
// never mutated; the result carries a fresh optimized snapshot, before/after
// scores and the ordered change records. A resume with no experience bullets
// and no skills still returns a result with zero changes rather than an
// error.
func Optimize(snapshot *types.ResumeSnapshot, jobDescription string, opts Options) (*types.OptimizationResult, error) {
	if snapshot == nil {
		return nil, &InvalidInputError{Message: "resume snapshot is required"}
	}
	if err := validate.Struct(opts); err != nil {
		return nil, &InvalidInputError{Message: "bad pipeline options", Cause: err}
	}

	originalScore := scoring.CalculateATSScore(snapshot, jobDescription)

	optimized := snapshot.Clone()
	var changes []types.Change

	if opts.Formatting {
		optimized, changes = applyFormatting(optimized, changes)
	}
	if opts.BulletRewrite {
		optimized, changes = applyBulletRewrites(optimized, changes)
	}
	if opts.KeywordInjection {
		optimized, changes = applyKeywordInjection(optimized, changes, jobDescription, opts.MaxKeywords)
	}
	if opts.QuantificationSuggested {
		changes = collectQuantificationSuggestions(optimized, changes)
	}

	optimizedScore := scoring.CalculateATSScore(optimized, jobDescription)

	return &types.OptimizationResult{
		RunID:          uuid.New(),
		OriginalScore:  originalScore,
		OptimizedScore: optimizedScore,
		Improvement:    optimizedScore.Overall - originalScore.Overall,
		Changes:        changes,
		Optimized:      optimized,
	}, nil
}

// applyFormatting standardizes every experience bullet and the summary,
// recording one change per rule application.
func applyFormatting(snapshot *types.ResumeSnapshot, changes []types.Change) (*types.ResumeSnapshot, []types.Change) {
	updated := snapshot.Clone()

	if summary := updated.PersonalInfo.Summary; summary != "" {
		result := formatting.StandardizeAll(summary)
		if result.Standardized != summary {
			updated.PersonalInfo.Summary = result.Standardized
			changes = appendFormattingChanges(changes, "personal_info", 0, result)
		}
	}

	for i := range updated.Experiences {
		for j, bullet := range updated.Experiences[i].Bullets {
			result := formatting.StandardizeAll(bullet)
			if result.Standardized != bullet {
				updated.Experiences[i].Bullets[j] = result.Standardized
				changes = appendFormattingChanges(changes, injection.SectionExperience, i, result)
			}
		}
	}

	return updated, changes
}

// appendFormattingChanges converts formatting rule changes into change records
func appendFormattingChanges(changes []types.Change, section string, entry int, result formatting.Result) []types.Change {
	for _, rule := range result.Changes {
		changes = append(changes, types.NewChange(
			types.ChangeFormattingStandardization,
			section,
			entry,
			rule.Before,
			rule.After,
			fmt.Sprintf("standardized formatting: %s", rule.Rule),
			true,
		))
	}
	return changes
}

// applyBulletRewrites rewrites weak-led experience bullets in place
func applyBulletRewrites(snapshot *types.ResumeSnapshot, changes []types.Change) (*types.ResumeSnapshot, []types.Change) {
	updated := snapshot.Clone()

	for i := range updated.Experiences {
		for j, bullet := range updated.Experiences[i].Bullets {
			result := rewriting.RewriteBulletPoint(bullet, "")
			if !result.Changed {
				continue
			}
			updated.Experiences[i].Bullets[j] = result.Rewritten
			changes = append(changes, types.NewChange(
				types.ChangeBulletRewrite,
				injection.SectionExperience,
				i,
				bullet,
				result.Rewritten,
				result.Reason,
				true,
			))
		}
	}

	return updated, changes
}

// applyKeywordInjection places top-priority missing JD keywords
func applyKeywordInjection(snapshot *types.ResumeSnapshot, changes []types.Change, jobDescription string, maxKeywords int) (*types.ResumeSnapshot, []types.Change) {
	if maxKeywords == 0 {
		maxKeywords = DefaultMaxKeywords
	}

	jdKeywords := keywords.Extract(jobDescription)
	resumeKeywords := keywords.ExtractFromSnapshot(snapshot)
	missing := jdKeywords.Subtract(resumeKeywords)

	updated, injectionChanges := injection.InjectKeywords(snapshot, missing, jdKeywords, maxKeywords)
	return updated, append(changes, injectionChanges...)
}

// collectQuantificationSuggestions adds advisory change records for bullets
// lacking quantification. Suggestions carry a placeholder metric value, so
// they are never applied to the optimized snapshot.
func collectQuantificationSuggestions(snapshot *types.ResumeSnapshot, changes []types.Change) []types.Change {
	for i := range snapshot.Experiences {
		for _, bullet := range snapshot.Experiences[i].Bullets {
			if quantify.Has(bullet) {
				continue
			}
			suggestion := quantify.Suggest(bullet)
			changes = append(changes, types.NewChange(
				types.ChangeQuantificationSuggestion,
				injection.SectionExperience,
				i,
				bullet,
				suggestion.Example,
				fmt.Sprintf("add a %s metric, e.g. %q", suggestion.AchievementType, suggestion.Templates[0]),
				false,
			))
		}
	}
	return changes
}
