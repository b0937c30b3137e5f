package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/0xsashank/magicresume/internal/config"
	"github.com/0xsashank/magicresume/internal/ingestion"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Generate three tone-styled resume drafts for a job description",
	Long:  "Ranks the supplied experience points against a job description, extracts the skills the posting emphasizes, and drafts professional, achievement-oriented, and creative resume variants.",
	RunE:  runTailor,
}

var (
	tailorPointsPath string
	tailorJobPath    string
	tailorJobURL     string
	tailorOutDir     string
	tailorConfigPath string
	tailorVerbose    bool
)

func init() {
	tailorCmd.Flags().StringVarP(&tailorPointsPath, "points", "p", "", "Path to resume points text file, one point per line (required)")
	tailorCmd.Flags().StringVarP(&tailorJobPath, "job", "j", "", "Path to job description text file")
	tailorCmd.Flags().StringVarP(&tailorJobURL, "job-url", "u", "", "URL to fetch the job posting from")
	tailorCmd.Flags().StringVarP(&tailorOutDir, "out", "o", "", "Directory to write outputs to (default: print to stdout)")
	tailorCmd.Flags().StringVarP(&tailorConfigPath, "config", "c", "", "Path to JSON config file")
	tailorCmd.Flags().BoolVarP(&tailorVerbose, "verbose", "v", false, "Print detailed progress information")

	if err := tailorCmd.MarkFlagRequired("points"); err != nil {
		panic(fmt.Sprintf("failed to mark points flag as required: %v", err))
	}

	rootCmd.AddCommand(tailorCmd)
}

func runTailor(cmd *cobra.Command, _ []string) error {
	if (tailorJobPath == "") == (tailorJobURL == "") {
		return fmt.Errorf("exactly one of --job or --job-url is required")
	}

	cfg, err := config.Load(tailorConfigPath)
	if err != nil {
		return err
	}
	if tailorVerbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()

	pointsData, err := os.ReadFile(tailorPointsPath)
	if err != nil {
		return fmt.Errorf("failed to read points file %s: %w", tailorPointsPath, err)
	}

	var jobDescription string
	if tailorJobPath != "" {
		jobData, err := os.ReadFile(tailorJobPath)
		if err != nil {
			return fmt.Errorf("failed to read job description file %s: %w", tailorJobPath, err)
		}
		jobDescription = string(jobData)
	} else {
		jobDescription, err = ingestion.FetchJobDescription(ctx, tailorJobURL, nil)
		if err != nil {
			return err
		}
	}

	orchestrator, closer, err := buildOrchestrator(ctx, cfg)
	if err != nil {
		return err
	}
	defer closer()

	skills, professional, achievement, creative := orchestrator.GenerateResumes(ctx, string(pointsData), jobDescription)

	outputs := []struct {
		name    string
		heading string
		text    string
	}{
		{"skills_summary.md", "Relevant Skills", skills},
		{"professional.md", "Professional Resume", professional},
		{"achievement_oriented.md", "Achievement-Oriented Resume", achievement},
		{"creative.md", "Creative Resume", creative},
	}

	if tailorOutDir == "" {
		for _, output := range outputs {
			fmt.Printf("== %s ==\n%s\n\n", output.heading, output.text)
		}
		return nil
	}

	if err := os.MkdirAll(tailorOutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", tailorOutDir, err)
	}
	for _, output := range outputs {
		path := filepath.Join(tailorOutDir, output.name)
		content := fmt.Sprintf("# %s\n\n%s\n", output.heading, strings.TrimSpace(output.text))
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	fmt.Printf("Wrote %d files to %s\n", len(outputs), tailorOutDir)
	return nil
}
