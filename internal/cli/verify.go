package cli

import (
	"encoding/json"
	"fmt"

	"github.com/plugforge/plugforge/internal/audit"
	"github.com/plugforge/plugforge/internal/config"
	"github.com/spf13/cobra"
)

var verifyJSON bool

func init() {
	verifyCmd.Flags().BoolVar(&verifyJSON, "json", false, "Output the report in JSON format")
	rootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify [dir]",
	Short: "Verify a project tree against its audit manifest",
	Long: `Load audit-index.json from the project root and recompute the digest of
every file it records. A recorded file that no longer exists is reported as
missing; one whose digest differs is reported as a mismatch, with expected
and actual values. Files on disk that the manifest does not record are
ignored.

The exit status is non-zero when the manifest is absent or unreadable, or
when the report contains any finding.

Examples:
  plugforge verify
  plugforge verify ./my-plugin --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		algo, err := audit.ParseAlgorithm(config.Get(config.KeyHashAlgorithm))
		if err != nil {
			return err
		}

		report, err := audit.Verify(root, algo)
		if err != nil {
			return err
		}

		if verifyJSON {
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling report: %w", err)
			}
			fmt.Println(string(data))
		} else {
			printReport(report)
		}

		if !report.Ok() {
			return fmt.Errorf("verification failed: %d finding(s) in %s", len(report.Findings), root)
		}
		return nil
	},
}

func printReport(report *audit.Report) {
	fmt.Printf("Verifying %s (manifest generated %s)\n", report.Root, report.Generated)
	for _, f := range report.Findings {
		switch f.Kind {
		case audit.FindingMissing:
			fmt.Printf("  %s %s: recorded file is missing\n", failureStyle.Render("[MISS]"), f.Path)
		case audit.FindingMismatch:
			fmt.Printf("  %s %s: digest mismatch\n", failureStyle.Render("[DIFF]"), f.Path)
			fmt.Printf("         expected %s\n", mutedStyle.Render(f.Expected))
			fmt.Printf("         actual   %s\n", mutedStyle.Render(f.Actual))
		}
	}
	if report.Ok() {
		fmt.Println(successStyle.Render(fmt.Sprintf("OK: %d file(s) verified, no findings", report.Checked)))
	} else {
		fmt.Println(failureStyle.Render(fmt.Sprintf("FAILED: %d finding(s) across %d file(s)", len(report.Findings), report.Checked)))
	}
}
