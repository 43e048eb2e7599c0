package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/plugforge/plugforge/internal/audit"
	"github.com/plugforge/plugforge/internal/config"
	"github.com/plugforge/plugforge/internal/home"
	"github.com/plugforge/plugforge/internal/template"
	"github.com/spf13/cobra"
)

var (
	checkHome      bool
	checkGit       bool
	checkTemplates bool
	checkManifest  string
	doctorFix      bool
)

func init() {
	doctorCmd.Flags().BoolVar(&checkHome, "check-home", false, "Verify the ~/.plugforge directory layout")
	doctorCmd.Flags().BoolVar(&checkGit, "check-git", false, "Verify the configured git binary is available")
	doctorCmd.Flags().BoolVar(&checkTemplates, "check-templates", false, "Validate built-in and user templates")
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate an audit manifest at the given path")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Create missing home directories and files")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the PlugForge environment",
	Long:  `Run diagnostic checks on the PlugForge home directory, configuration, git binary, and templates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		anyFlag := checkHome || checkGit || checkTemplates || checkManifest != ""

		// If no specific flag, run all checks.
		if !anyFlag {
			runAllChecks(doctorFix)
			return nil
		}

		if checkHome {
			if err := home.Check(os.Stdout, doctorFix); err != nil {
				return err
			}
		}
		if checkGit {
			runGitCheck()
		}
		if checkTemplates {
			runTemplatesCheck()
		}
		if checkManifest != "" {
			if err := runManifestCheck(checkManifest); err != nil {
				return err
			}
		}

		return nil
	},
}

func runAllChecks(fix bool) {
	if err := home.Check(os.Stdout, fix); err != nil {
		fmt.Printf("[WARN] Home check failed: %v\n", err)
	}
	runGitCheck()
	runTemplatesCheck()
}

func runGitCheck() {
	fmt.Println("Git check:")
	gitPath := config.Get(config.KeyGitPath)
	if gitPath == "" {
		gitPath = "git"
	}
	path, err := exec.LookPath(gitPath)
	if err != nil {
		fmt.Printf("  [MISS] %s not found in PATH (git init will be skipped with a warning)\n", gitPath)
		return
	}
	fmt.Printf("  [ OK ] %s found at %s\n", gitPath, path)
}

func runTemplatesCheck() {
	fmt.Println("Templates check:")

	userDir, err := home.UserTemplatesDir()
	if err != nil {
		fmt.Printf("  [FAIL] Cannot resolve user templates dir: %v\n", err)
		return
	}
	store, err := template.LoadWithUserDir(userDir)
	if err != nil {
		fmt.Printf("  [FAIL] %v\n", err)
		return
	}

	for _, tpl := range store.List() {
		fmt.Printf("  [ OK ] %s v%s (%s, %d files)\n", tpl.Name, tpl.Version, tpl.Source, len(tpl.Files))
	}
	for _, warning := range store.Warnings() {
		fmt.Printf("  [WARN] %s\n", warning)
	}
}

func runManifestCheck(path string) error {
	fmt.Printf("Manifest validation: %s\n", path)

	// Validate against JSON Schema.
	result, err := audit.ValidateFile(path)
	if err != nil {
		fmt.Printf("  [FAIL] %v\n", err)
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	if result.Valid {
		// Parse to get file count and timestamp for the success message.
		m, err := audit.ParseFile(path)
		if err != nil {
			fmt.Printf("  [ OK ] Valid audit index\n")
			return nil
		}
		fmt.Printf("  [ OK ] Valid audit index: %d file(s), generated %s\n", len(m.Files), m.Generated)
		return nil
	}

	// Report validation issues.
	fmt.Printf("  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Printf("    - %s\n", issue)
	}
	return fmt.Errorf("manifest %s has %d validation issue(s)", path, len(result.Issues))
}
