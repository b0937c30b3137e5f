package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/0xsashank/magicresume/internal/ingestion"
)

var ingestJobCmd = &cobra.Command{
	Use:   "ingest-job",
	Short: "Fetch a job posting URL as clean text",
	Long:  "Fetches a job posting page, strips navigation and script noise, and writes the readable text for use with the tailor command.",
	RunE:  runIngestJob,
}

var (
	ingestJobURL    string
	ingestJobOutput string
)

func init() {
	ingestJobCmd.Flags().StringVarP(&ingestJobURL, "url", "u", "", "Job posting URL (required)")
	ingestJobCmd.Flags().StringVarP(&ingestJobOutput, "out", "o", "", "Path to output text file (default: print to stdout)")

	if err := ingestJobCmd.MarkFlagRequired("url"); err != nil {
		panic(fmt.Sprintf("failed to mark url flag as required: %v", err))
	}

	rootCmd.AddCommand(ingestJobCmd)
}

func runIngestJob(cmd *cobra.Command, _ []string) error {
	text, err := ingestion.FetchJobDescription(cmd.Context(), ingestJobURL, nil)
	if err != nil {
		return err
	}

	if ingestJobOutput == "" {
		fmt.Println(text)
		return nil
	}
	if err := os.WriteFile(ingestJobOutput, []byte(text+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ingestJobOutput, err)
	}
	fmt.Printf("Wrote %s\n", ingestJobOutput)
	return nil
}
