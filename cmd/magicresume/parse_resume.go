package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/0xsashank/magicresume/internal/parsing"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Convert a resume document to Markdown",
	Long:  "One-shot converter: extracts text from a resume PDF or plain-text file and renders it as Markdown, detecting all-uppercase lines as section headers and Title Case lines as subsections.",
	RunE:  runParseResume,
}

var (
	parseResumeInput  string
	parseResumeOutput string
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseResumeInput, "in", "i", "", "Path to source resume document (required)")
	parseResumeCmd.Flags().StringVarP(&parseResumeOutput, "out", "o", "", "Path to output Markdown file (required)")

	if err := parseResumeCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := parseResumeCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(_ *cobra.Command, _ []string) error {
	if err := parsing.ConvertFile(parseResumeInput, parseResumeOutput); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", parseResumeOutput)
	return nil
}
