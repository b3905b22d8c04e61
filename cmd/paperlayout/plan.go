package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tsawler/paperlayout"
	"github.com/tsawler/paperlayout/layout"
	"github.com/tsawler/paperlayout/preview"
)

// planTextLimit caps the text shown per step.
const planTextLimit = 60

var planHTML string

var planCmd = &cobra.Command{
	Use:   "plan INPUT",
	Short: "Show how a document would be laid out",
	Long: `Classify every block of a .docx document without writing one.

The report lists each block with its category, the rule that matched and
the column count it is emitted in. --html also writes a browser preview.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]
		plan, err := paperlayout.Open(input).Logger(logger).Plan()
		if err != nil {
			return err
		}

		if planHTML != "" {
			if err := writePreview(planHTML, plan, filepath.Base(input), cfgMgr.Get().FooterText); err != nil {
				return err
			}
			logger.Info("wrote preview", "path", planHTML)
		}

		return writeOutput(cmd.OutOrStdout(), outputKind(outputFormat), newPlanReport(input, plan))
	},
}

func init() {
	planCmd.Flags().StringVar(&planHTML, "html", "", "write an HTML preview to this file")

	rootCmd.AddCommand(planCmd)
}

type planReport struct {
	Input    string    `json:"input" yaml:"input"`
	Sections int       `json:"sections" yaml:"sections"`
	Images   int       `json:"images" yaml:"images"`
	Skipped  int       `json:"skipped" yaml:"skipped"`
	Steps    []planRow `json:"steps" yaml:"steps"`
}

type planRow struct {
	Block      int    `json:"block" yaml:"block"`
	Kind       string `json:"kind" yaml:"kind"`
	Category   string `json:"category,omitempty" yaml:"category,omitempty"`
	Rule       string `json:"rule,omitempty" yaml:"rule,omitempty"`
	Columns    int    `json:"columns" yaml:"columns"`
	NewSection bool   `json:"new_section,omitempty" yaml:"new_section,omitempty"`
	Text       string `json:"text,omitempty" yaml:"text,omitempty"`
}

func newPlanReport(input string, plan layout.Plan) planReport {
	report := planReport{
		Input:    input,
		Sections: plan.Sections,
		Images:   plan.Images,
		Skipped:  plan.Skipped,
		Steps:    make([]planRow, 0, len(plan.Steps)),
	}
	for _, s := range plan.Steps {
		row := planRow{
			Block:      s.Index,
			Kind:       s.Kind.String(),
			Columns:    s.Columns,
			NewSection: s.NewSection,
			Text:       truncate(s.Text, planTextLimit),
		}
		if s.Kind == layout.StepParagraph {
			row.Category = s.Classification.Category.String()
			row.Rule = s.Classification.Rule
		}
		if s.Kind == layout.StepTable {
			row.Text = fmt.Sprintf("%dx%d table", s.Table.RowCount(), s.Table.ColCount())
		}
		report.Steps = append(report.Steps, row)
	}
	return report
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

func writePreview(path string, plan layout.Plan, title, footer string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating preview: %w", err)
	}
	if err := preview.Render(f, plan, preview.Options{Title: title, Footer: footer}); err != nil {
		f.Close()
		return fmt.Errorf("rendering preview: %w", err)
	}
	return f.Close()
}
