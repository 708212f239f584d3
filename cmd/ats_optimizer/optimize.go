package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/config"
	"github.com/jonathan/resume-optimizer/internal/observability"
	"github.com/jonathan/resume-optimizer/internal/pipeline"
	"github.com/jonathan/resume-optimizer/internal/schemas"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize <resume.json>",
	Short: "Optimize a resume for a job description",
	Long:  "Run the full optimization pipeline against a resume snapshot: formatting standardization, bullet rewriting, keyword injection and advisory quantification suggestions. Writes the result JSON with before/after scores and change records.",
	Args:  cobra.ExactArgs(1),
	RunE:  runOptimize,
}

var (
	optimizeJobFile     string
	optimizeOutputFile  string
	optimizeConfigFile  string
	optimizeMaxKeywords int
	optimizeVerbose     bool
)

func init() {
	optimizeCmd.Flags().StringVarP(&optimizeJobFile, "job", "j", "", "Path to job description text file (required)")
	optimizeCmd.Flags().StringVarP(&optimizeOutputFile, "out", "o", "", "Path to output result JSON file (default: stdout)")
	optimizeCmd.Flags().StringVarP(&optimizeConfigFile, "config", "c", "", "Path to YAML config with pipeline options")
	optimizeCmd.Flags().IntVar(&optimizeMaxKeywords, "max-keywords", 0, "Cap on injected keywords (0 uses the default)")
	optimizeCmd.Flags().BoolVarP(&optimizeVerbose, "verbose", "v", false, "Print detailed stage output")

	_ = optimizeCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, args []string) error {
	snapshot, err := loadSnapshot(args[0])
	if err != nil {
		return err
	}

	jobDescription, err := loadJobDescription(optimizeJobFile)
	if err != nil {
		return err
	}

	opts := pipeline.DefaultOptions()
	verbose := optimizeVerbose
	if optimizeConfigFile != "" {
		cfg, err := config.Load(optimizeConfigFile)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		opts = cfg.PipelineOptions()
		verbose = verbose || cfg.Verbose
	}
	if cmd.Flags().Changed("max-keywords") {
		opts.MaxKeywords = optimizeMaxKeywords
	}

	result, err := pipeline.Optimize(snapshot, jobDescription, opts)
	if err != nil {
		var inputErr *pipeline.InvalidInputError
		if errors.As(err, &inputErr) {
			return fmt.Errorf("invalid input: %w", err)
		}
		return fmt.Errorf("optimization failed: %w", err)
	}

	if verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintScoreBreakdown(&result.OriginalScore)
		printer.PrintOptimizationResult(result)
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result JSON: %w", err)
	}

	if optimizeOutputFile == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	if err := os.WriteFile(optimizeOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	// Sanity-check the optimized snapshot against the input schema
	if schemaPath := schemas.ResolvePath(snapshotSchemaFile); schemaPath != "" && result.Optimized != nil {
		optimizedJSON, err := json.Marshal(result.Optimized)
		if err == nil {
			schemaData, readErr := os.ReadFile(schemaPath)
			if readErr == nil {
				if err := schemas.ValidateString(string(schemaData), string(optimizedJSON)); err != nil {
					_, _ = fmt.Fprintf(os.Stderr, "Warning: optimized snapshot does not validate against schema: %v\n", err)
				}
			}
		}
	}

	fmt.Fprintf(os.Stdout, "Successfully optimized resume (%+.1f points, %d changes)\n", result.Improvement, len(result.Changes))
	fmt.Fprintf(os.Stdout, "Output: %s\n", optimizeOutputFile)

	return nil
}
