package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pubforge/cli/internal/check"
	"github.com/pubforge/cli/internal/output"
)

var (
	validateStrict bool
	validateFix    bool
)

// NewValidateCmd creates the validate command.
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate a project against the pub-readiness rules",
		Long: `Validate a project tree and print findings and a score.

The exit code is always 0: findings are report data, not command
failures. Gate CI on the printed score instead.

Examples:
  # Validate the current directory
  pubforge validate

  # Validate with the recommended-field checks enabled
  pubforge validate ./geo_sensor --strict

  # Repair everything fixable, then re-report
  pubforge validate --fix`,
		Args: cobra.MaximumNArgs(1),
		RunE: runValidate,
	}

	cmd.Flags().BoolVar(&validateStrict, "strict", false,
		"Enable recommended-field and documentation checks")
	cmd.Flags().BoolVar(&validateFix, "fix", false,
		"Synthesize every fixable missing artifact")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	report, err := check.Run(root, check.Options{
		Strict: validateStrict,
		Fix:    validateFix,
	})
	if err != nil {
		// A failed fix does not fail validation; the partial report
		// still prints below.
		output.Error("fix failed", "error", err)
	}

	if len(report.Findings) > 0 {
		rows := make([]output.FindingRow, 0, len(report.Findings))
		for _, f := range report.Findings {
			rows = append(rows, output.FindingRow{
				Severity: string(f.Severity),
				Path:     f.Path,
				Message:  f.Message,
				Fixed:    f.Fixed,
			})
		}
		output.Print(output.RenderFindingsTable(rows))
		output.Println("")
	}

	if report.FixesApplied > 0 {
		output.Println(output.FormatCheckmark(
			fmt.Sprintf("Applied %d fixes", report.FixesApplied)))
	}

	output.Println(fmt.Sprintf("%s  (%d errors, %d warnings)",
		output.FormatScore(report.Score, check.Ceiling),
		report.Errors(), report.Warnings()))

	return nil
}
