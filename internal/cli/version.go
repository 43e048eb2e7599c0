package cli

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/plugforge/plugforge/internal/branding"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print the version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

// buildInfo is what "version --json" emits.
type buildInfo struct {
	Version  string `json:"version"`
	Commit   string `json:"commit"`
	Date     string `json:"date"`
	Platform string `json:"platform"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := buildInfo{
			Version:  buildVersion,
			Commit:   buildCommit,
			Date:     buildDate,
			Platform: runtime.GOOS + "/" + runtime.GOARCH,
		}

		switch {
		case versionShort:
			fmt.Println(info.Version)
		case versionJSON:
			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Println(string(out))
		default:
			fmt.Printf("%s version %s (commit: %s, built: %s, %s)\n",
				branding.CLIName(), info.Version, info.Commit, info.Date, info.Platform)
		}
		return nil
	},
}
