// Package main provides the entry point for the ATS resume optimizer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_optimizer",
	Short: "Resume analysis and optimization engine",
	Long:  "ats_optimizer scores resumes against job descriptions, applies deterministic optimizations (formatting, bullet rewrites, keyword injection, metric suggestions) and diffs resume versions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
