package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/paperlayout/internal/config"
	"github.com/tsawler/paperlayout/internal/version"
)

var (
	cfgFile      string
	outputFormat string
	logLevel     string
)

// Set by the root command before any subcommand runs.
var (
	cfgMgr   *config.Manager
	logger   = slog.Default()
	levelVar = new(slog.LevelVar)
)

var rootCmd = &cobra.Command{
	Use:   "paperlayout",
	Short: "Reformat Word documents into a two-column academic paper layout",
	Long: `paperlayout reformats a .docx document into a two-column academic
paper layout.

Every paragraph is classified by its text:
  - the first all-caps line becomes the centered title
  - keyword, numbered and all-caps headings switch to two columns
  - reference lists become numbered items
  - images are resized and centered with italic captions

Each section gets a footer with a live page number and optional text.`,
	Version:           version.GitRelease,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.paperlayout/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "", "log level: debug, info, warn or error (default from config)",
	)

	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration and installs the logger.
func setup(cmd *cobra.Command, args []string) error {
	if outputFormat != string(outputYAML) && outputFormat != string(outputJSON) {
		return fmt.Errorf("unknown output format %q", outputFormat)
	}

	mgr, err := config.NewManager(cfgFile)
	if err != nil {
		return err
	}
	cfgMgr = mgr

	level := mgr.Get().LogLevel
	if logLevel != "" {
		level = logLevel
	}
	lvl, err := config.ParseLevel(level)
	if err != nil {
		return err
	}
	levelVar.Set(lvl)

	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: levelVar}))
	slog.SetDefault(logger)

	mgr.OnChange(func(c *config.Config) {
		if logLevel != "" {
			return
		}
		if lvl, err := config.ParseLevel(c.LogLevel); err == nil {
			levelVar.Set(lvl)
		}
	})
	return nil
}
