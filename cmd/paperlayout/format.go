package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/paperlayout"
	"github.com/tsawler/paperlayout/internal/config"
	"github.com/tsawler/paperlayout/ocr"
)

var formatFooter string

var formatCmd = &cobra.Command{
	Use:   "format INPUT [OUTPUT]",
	Short: "Reformat a .docx document",
	Long: `Reformat a .docx document into the two-column paper layout.

OUTPUT defaults to INPUT with "_processed" added before the extension.
The footer text defaults to footer_text from the config file.

Examples:
  paperlayout format paper.docx
  paperlayout format paper.docx out.docx --footer "Journal of Examples, Vol. 3"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := cfgMgr.Get()
		input := args[0]
		output := processedPath(input)
		if len(args) == 2 {
			output = args[1]
		}
		footer := cfg.FooterText
		if cmd.Flags().Changed("footer") {
			footer = formatFooter
		}

		f, cleanup := newFormatter(input, cfg)
		defer cleanup()

		warnings, err := f.Footer(footer).SaveAs(output)
		if err != nil {
			return err
		}

		report := formatReport{Input: input, Output: output, Warnings: make([]string, 0, len(warnings))}
		for _, w := range warnings {
			report.Warnings = append(report.Warnings, w.String())
		}
		return writeOutput(cmd.OutOrStdout(), outputKind(outputFormat), report)
	},
}

func init() {
	formatCmd.Flags().StringVar(&formatFooter, "footer", "", "footer text shown after the page number")

	rootCmd.AddCommand(formatCmd)
}

type formatReport struct {
	Input    string   `json:"input" yaml:"input"`
	Output   string   `json:"output" yaml:"output"`
	Warnings []string `json:"warnings" yaml:"warnings"`
}

// processedPath returns <dir>/<name>_processed<ext> for input.
func processedPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_processed" + ext
}

// newFormatter applies config settings to a Formatter for input. The
// returned cleanup releases the OCR engine, if one was started.
func newFormatter(input string, cfg *config.Config) (*paperlayout.Formatter, func()) {
	f := paperlayout.Open(input).
		Logger(logger).
		MaxImagePixels(cfg.Images.MaxPixels).
		Extensions(cfg.Images.Extensions...)

	client := newOCR(cfg)
	if client == nil {
		return f, func() {}
	}
	return f.AltText(client), func() { client.Close() }
}

// newOCR starts an OCR engine when enabled in config. It returns nil when
// OCR is disabled or unavailable in this build.
func newOCR(cfg *config.Config) *ocr.Client {
	if !cfg.OCR.Enabled {
		return nil
	}
	client, err := ocr.NewWithLanguage(cfg.OCR.Language)
	if err != nil {
		logger.Warn("OCR unavailable, using file names as picture descriptions", "error", err)
		return nil
	}
	return client
}
