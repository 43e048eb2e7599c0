package cli

import (
	"github.com/plugforge/plugforge/internal/branding"
	"github.com/plugforge/plugforge/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds host-app plugin projects from built-in and
user-defined templates, substituting project variables into every file, and
writes a content-integrity manifest (audit-index.json) at the project root.
"plugforge verify" re-checks a tree against its manifest and reports drift.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Resolve configuration once at startup; commands read values from
		// here on and never consult files or the environment ad hoc.
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
