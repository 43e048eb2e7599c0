package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/plugforge/plugforge/internal/audit"
	"github.com/plugforge/plugforge/internal/substitute"
	"github.com/plugforge/plugforge/internal/template"
)

// ErrDirectoryExists is returned when the target project directory already
// exists. The check runs once, before anything is written.
var ErrDirectoryExists = errors.New("target directory already exists")

// Params holds the inputs for one scaffold run.
type Params struct {
	Name         string          // project name; becomes the directory name and {{PROJECT_NAME}}
	Author       string          // becomes {{AUTHOR_NAME}}
	TemplateName string          // selects the template from the store
	ParentDir    string          // directory the project directory is created in
	Algorithm    audit.Algorithm // digest algorithm for the audit manifest
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// Generate materializes a project from the named template and writes the
// audit manifest over the result.
//
// Everything that can fail without touching the filesystem fails first:
// input validation, template lookup, and the existence check on the target
// directory. After writing begins there is no rollback; a failure partway
// through leaves the partial tree in place, and recovery is deleting the
// directory and re-running.
func Generate(store *template.Store, p Params) (*Result, error) {
	if err := validateParams(p); err != nil {
		return nil, err
	}

	tpl, err := store.Get(p.TemplateName)
	if err != nil {
		return nil, err
	}

	outputDir := filepath.Join(p.ParentDir, p.Name)
	if _, err := os.Lstat(outputDir); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryExists, outputDir)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("checking %s: %w", outputDir, err)
	}

	vars := substitute.Vars{
		ProjectName:     p.Name,
		AuthorName:      p.Author,
		TemplateVersion: tpl.Version,
	}

	// Render everything up front; substitution cannot fail, so from here
	// on only the writes can.
	paths := make([]string, 0, len(tpl.Files))
	for path := range tpl.Files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	result := &Result{OutputDir: outputDir}

	for _, rel := range paths {
		content := substitute.Apply(tpl.Files[rel], vars)
		outPath := filepath.Join(outputDir, filepath.FromSlash(rel))

		if dir := filepath.Dir(outPath); dir != outputDir {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("creating directory %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}
		result.Files = append(result.Files, rel)
	}

	manifest, err := audit.Build(outputDir, p.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("building audit manifest: %w", err)
	}
	manifestPath, err := manifest.WriteFile(outputDir)
	if err != nil {
		return nil, err
	}
	result.Files = append(result.Files, audit.FileName())

	// Validate the written manifest against the JSON schema. Problems here
	// are warnings: the tree itself is complete.
	valResult, valErr := audit.ValidateFile(manifestPath)
	if valErr != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not validate manifest: %v", valErr))
	} else if !valResult.Valid {
		result.Warnings = append(result.Warnings, valResult.Issues...)
	}

	return result, nil
}

func validateParams(p Params) error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if strings.ContainsAny(p.Name, `/\`) || p.Name == "." || p.Name == ".." {
		return fmt.Errorf("invalid project name %q: must not contain path separators", p.Name)
	}
	if p.Author == "" {
		return fmt.Errorf("author name is required")
	}
	return nil
}
