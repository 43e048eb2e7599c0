package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/plugforge/plugforge/internal/home"
	"github.com/plugforge/plugforge/internal/template"
	"github.com/spf13/cobra"
)

var templatesJSON bool

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available templates",
	Long:  `List the built-in templates plus any user templates found under ~/.plugforge/templates/.`,
	RunE:  runTemplates,
}

func init() {
	templatesCmd.Flags().BoolVar(&templatesJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(templatesCmd)
}

// templateEntry represents an available template for display.
type templateEntry struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Source      string `json:"source"`
	Files       int    `json:"files"`
	Description string `json:"description,omitempty"`
}

func runTemplates(cmd *cobra.Command, args []string) error {
	userDir, err := home.UserTemplatesDir()
	if err != nil {
		return fmt.Errorf("resolving user templates dir: %w", err)
	}
	store, err := template.LoadWithUserDir(userDir)
	if err != nil {
		return err
	}

	var entries []templateEntry
	for _, tpl := range store.List() {
		entries = append(entries, templateEntry{
			Name:        tpl.Name,
			Version:     tpl.Version,
			Source:      tpl.Source,
			Files:       len(tpl.Files),
			Description: tpl.Description,
		})
	}

	if templatesJSON {
		if err := printTemplatesJSON(cmd, entries); err != nil {
			return err
		}
	} else {
		if err := printTemplatesTable(cmd, entries); err != nil {
			return err
		}
	}

	for _, warning := range store.Warnings() {
		fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render("Warning: "+warning))
	}
	return nil
}

func printTemplatesTable(cmd *cobra.Command, entries []templateEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tVERSION\tSOURCE\tFILES\tDESCRIPTION")
	for _, e := range entries {
		desc := e.Description
		if desc == "" {
			desc = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", e.Name, e.Version, e.Source, e.Files, desc)
	}
	return w.Flush()
}

func printTemplatesJSON(cmd *cobra.Command, entries []templateEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
