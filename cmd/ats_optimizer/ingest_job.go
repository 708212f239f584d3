package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/ingestion"
)

var ingestJobCmd = &cobra.Command{
	Use:   "ingest-job",
	Short: "Ingest a job posting from a text file or URL",
	Long:  "Ingest a job posting from either a text file or URL, clean the content, and output cleaned text with metadata.",
	RunE:  runIngestJob,
}

var (
	ingestTextFile string
	ingestURL      string
	ingestOutDir   string
)

func init() {
	ingestJobCmd.Flags().StringVarP(&ingestTextFile, "text-file", "t", "", "Path to text file containing job posting")
	ingestJobCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "URL to fetch job posting from")
	ingestJobCmd.Flags().StringVarP(&ingestOutDir, "out", "o", "", "Output directory (required)")

	_ = ingestJobCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(ingestJobCmd)
}

func runIngestJob(cmd *cobra.Command, _ []string) error {
	if ingestTextFile == "" && ingestURL == "" {
		return fmt.Errorf("either --text-file or --url must be provided")
	}
	if ingestTextFile != "" && ingestURL != "" {
		return fmt.Errorf("--text-file and --url are mutually exclusive; provide only one")
	}

	var cleanedText string
	var metadata *ingestion.Metadata
	var err error

	if ingestTextFile != "" {
		cleanedText, metadata, err = ingestion.IngestFromFile(ingestTextFile)
		if err != nil {
			return fmt.Errorf("failed to ingest from file: %w", err)
		}
	} else {
		cleanedText, metadata, err = ingestion.IngestFromURL(cmd.Context(), ingestURL)
		if err != nil {
			return fmt.Errorf("failed to ingest from URL: %w", err)
		}
	}

	if err := ingestion.WriteOutput(ingestOutDir, cleanedText, metadata); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Successfully ingested job posting\n")
	fmt.Fprintf(os.Stdout, "Cleaned text: %s/job_posting.cleaned.txt\n", ingestOutDir)
	fmt.Fprintf(os.Stdout, "Metadata: %s/job_posting.meta.json\n", ingestOutDir)

	return nil
}
