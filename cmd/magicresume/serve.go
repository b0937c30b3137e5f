package main

import (
	"github.com/spf13/cobra"

	"github.com/0xsashank/magicresume/internal/config"
	"github.com/0xsashank/magicresume/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long:  "Serves the tailoring entry point as a JSON API: POST /v1/tailor with resume points and a job description returns the skills summary and three tone-styled drafts.",
	RunE:  runServe,
}

var (
	serveAddr       string
	serveConfigPath string
)

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", ":8080", "Listen address")
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to JSON config file")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Addr != "" && !cmd.Flags().Changed("addr") {
		serveAddr = cfg.Addr
	}

	orchestrator, closer, err := buildOrchestrator(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closer()

	return server.New(serveAddr, orchestrator).Start()
}
