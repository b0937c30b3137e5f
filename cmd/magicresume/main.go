// Package main provides the magicresume CLI: resume tailoring against a job
// description, job posting ingestion, resume-to-Markdown conversion, and an
// HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "magicresume",
	Short: "AI resume tailoring",
	Long:  "magicresume ranks your experience points against a target job description and drafts three tone-styled resume variants, plus a skills analysis of the posting.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
