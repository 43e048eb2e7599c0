package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/plugforge/plugforge/internal/audit"
	"github.com/plugforge/plugforge/internal/config"
	"github.com/plugforge/plugforge/internal/gitinit"
	"github.com/plugforge/plugforge/internal/home"
	"github.com/plugforge/plugforge/internal/scaffold"
	"github.com/plugforge/plugforge/internal/template"
	"github.com/spf13/cobra"
)

var (
	newTemplate    string
	newAuthor      string
	newOutputDir   string
	newGitInit     bool
	newInteractive bool
)

func init() {
	newCmd.Flags().StringVarP(&newTemplate, "template", "t", "", "Template to materialize (default: config default_template)")
	newCmd.Flags().StringVarP(&newAuthor, "author", "a", "", "Author name substituted into the project (default: config default_author)")
	newCmd.Flags().StringVarP(&newOutputDir, "output", "o", ".", "Parent directory for the new project")
	newCmd.Flags().BoolVarP(&newGitInit, "git-init", "g", true, "Initialize a git repository in the new project")
	newCmd.Flags().BoolVarP(&newInteractive, "interactive", "i", false, "Prompt for template and author when not given as flags")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Scaffold a new plugin project from a template",
	Long: `Materialize a template into a new project directory.

The project name, author, and template version are substituted into every
file, the tree is written under <output>/<name>, and an audit-index.json
manifest recording the digest of each written file is placed at the project
root. A git repository is initialized afterwards unless disabled.

Examples:
  plugforge new my-plugin
  plugforge new my-plugin --template student --author "Ada Lovelace"
  plugforge new my-plugin -t full -o ~/plugins --git-init=false`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		userDir, err := home.UserTemplatesDir()
		if err != nil {
			return err
		}
		store, err := template.LoadWithUserDir(userDir)
		if err != nil {
			return err
		}

		templateName := newTemplate
		if templateName == "" {
			templateName = config.Get(config.KeyDefaultTemplate)
		}
		author := newAuthor
		if author == "" {
			author = config.Get(config.KeyDefaultAuthor)
		}

		if newInteractive {
			reader := bufio.NewReader(os.Stdin)
			if newTemplate == "" {
				templateName, err = selectTemplate(reader, os.Stdout, store)
				if err != nil {
					return err
				}
			}
			if author == "" {
				author, err = promptLine(reader, os.Stdout, "Author name: ")
				if err != nil {
					return err
				}
			}
		}

		algo, err := audit.ParseAlgorithm(config.Get(config.KeyHashAlgorithm))
		if err != nil {
			return err
		}

		result, err := scaffold.Generate(store, scaffold.Params{
			Name:         name,
			Author:       author,
			TemplateName: templateName,
			ParentDir:    newOutputDir,
			Algorithm:    algo,
		})
		if err != nil {
			return err
		}

		printScaffoldResult(result)

		gitOn := newGitInit
		if !cmd.Flags().Changed("git-init") {
			gitOn = config.GetBool(config.KeyGitInit)
		}
		if gitOn {
			if err := gitinit.Init(result.OutputDir, config.Get(config.KeyGitPath)); err != nil {
				// The project and its manifest are already on disk, so a git
				// failure downgrades to a warning and the exit status stays zero.
				fmt.Println(warnStyle.Render(fmt.Sprintf("Warning: git init failed: %v", err)))
			} else {
				fmt.Println("Initialized empty git repository.")
			}
		}

		fmt.Println("\nNext steps:")
		fmt.Printf("  1. cd %s\n", result.OutputDir)
		fmt.Println("  2. Edit the generated files to add your plugin logic")
		fmt.Printf("  3. Run '%s verify' to confirm the tree matches its manifest\n", rootCmd.Use)
		return nil
	},
}

func printScaffoldResult(result *scaffold.Result) {
	fmt.Println(successStyle.Render(fmt.Sprintf("Created project at %s/", result.OutputDir)))
	for _, f := range result.Files {
		fmt.Printf("  %s\n", f)
	}
	if len(result.Warnings) > 0 {
		fmt.Println()
		fmt.Println(warnStyle.Render("Warnings:"))
		for _, w := range result.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
}
