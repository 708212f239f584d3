package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/diffing"
	"github.com/jonathan/resume-optimizer/internal/observability"
)

var diffCmd = &cobra.Command{
	Use:   "diff <before.json> <after.json>",
	Short: "Compare two resume snapshot versions",
	Long:  "Compare two resume snapshot JSON files field by field and report added, removed and modified fields.",
	Args:  cobra.ExactArgs(2),
	RunE:  runDiff,
}

var diffOutputFile string

func init() {
	diffCmd.Flags().StringVarP(&diffOutputFile, "out", "o", "", "Path to output diff JSON file (default: stdout summary only)")

	rootCmd.AddCommand(diffCmd)
}

func runDiff(_ *cobra.Command, args []string) error {
	before, err := loadSnapshot(args[0])
	if err != nil {
		return err
	}
	after, err := loadSnapshot(args[1])
	if err != nil {
		return err
	}

	diff := diffing.Compare(before, after)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintVersionDiff(diff)

	if diffOutputFile == "" {
		return nil
	}

	jsonBytes, err := json.MarshalIndent(diff, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal diff JSON: %w", err)
	}
	if err := os.WriteFile(diffOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Output: %s\n", diffOutputFile)
	return nil
}
