package cli

import (
	"fmt"
	"os"

	"github.com/plugforge/plugforge/internal/home"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the PlugForge home directory",
	Long: `Create the PlugForge home directory layout.

This creates ~/.plugforge/ (or $PLUGFORGE_HOME if set) with a templates/
directory for user templates and a commented config.yaml. Existing files
are left untouched, so running init again is always safe.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := home.Root()
		if err != nil {
			return err
		}
		fmt.Printf("Initializing PlugForge home at %s\n", root)

		if err := home.EnsureLayout(os.Stdout); err != nil {
			return fmt.Errorf("initializing home directory: %w", err)
		}

		fmt.Println("\nHome directory initialized.")
		fmt.Println("Drop template YAML files into templates/ to make them available to 'plugforge new'.")
		return nil
	},
}
