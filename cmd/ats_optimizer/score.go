package main

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-optimizer/internal/injection"
	"github.com/jonathan/resume-optimizer/internal/keywords"
	"github.com/jonathan/resume-optimizer/internal/observability"
	"github.com/jonathan/resume-optimizer/internal/scoring"
	"github.com/jonathan/resume-optimizer/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score <resume.json> [resume.json...]",
	Short: "Score one or more resumes against a job description",
	Long:  "Score resume snapshot JSON files against a job description, printing the weighted ATS breakdown and the keyword gap for each. Multiple resumes are scored concurrently.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScore,
}

var (
	scoreJobFile string
	scoreVerbose bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreJobFile, "job", "j", "", "Path to job description text file (required)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print the full breakdown and keyword gap")

	_ = scoreCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(scoreCmd)
}

type scoreOutcome struct {
	path      string
	breakdown types.ScoreBreakdown
	gap       types.KeywordGap
}

func runScore(cmd *cobra.Command, args []string) error {
	jobDescription, err := loadJobDescription(scoreJobFile)
	if err != nil {
		return err
	}

	outcomes := make([]scoreOutcome, len(args))
	var mu sync.Mutex

	g, _ := errgroup.WithContext(cmd.Context())
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			snapshot, err := loadSnapshot(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			outcome := scoreOutcome{
				path:      path,
				breakdown: scoring.CalculateATSScore(snapshot, jobDescription),
				gap:       scoring.ComputeKeywordGap(snapshot, jobDescription),
			}

			mu.Lock()
			outcomes[i] = outcome
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Highest scoring resume first
	sort.SliceStable(outcomes, func(i, j int) bool {
		return outcomes[i].breakdown.Overall > outcomes[j].breakdown.Overall
	})

	printer := observability.NewPrinter(os.Stdout)
	jdKeywords := keywords.Extract(jobDescription)
	for _, outcome := range outcomes {
		fmt.Fprintf(os.Stdout, "%s: %.1f / 100\n", outcome.path, outcome.breakdown.Overall)
		if scoreVerbose {
			// Show the most frequent missing keywords first
			outcome.gap.Missing = injection.CalculateKeywordPriority(outcome.gap.Missing, jdKeywords)
			printer.PrintScoreBreakdown(&outcome.breakdown)
			printer.PrintKeywordGap(&outcome.gap)
		}
	}

	return nil
}
