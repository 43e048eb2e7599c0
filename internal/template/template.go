package template

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/plugforge/plugforge/internal/branding"
)

// Template source labels.
const (
	SourceBuiltin = "builtin"
	SourceUser    = "user"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Template is a named, read-only mapping from relative file paths to content
// patterns. Templates are loaded once per run and never mutated.
type Template struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Version     string            `yaml:"version"`
	Files       map[string]string `yaml:"files"`

	// Source records where the definition came from: builtin or user.
	Source string `yaml:"-"`
}

// validate checks the definition invariants: a well-formed name, a parseable
// semver version, and at least one file with a legal relative path.
func (t *Template) validate() error {
	if !namePattern.MatchString(t.Name) {
		return fmt.Errorf("invalid template name %q: must match %s", t.Name, namePattern.String())
	}
	if _, err := parseVersion(t.Version); err != nil {
		return fmt.Errorf("invalid version %q for template %q: %w", t.Version, t.Name, err)
	}
	if len(t.Files) == 0 {
		return fmt.Errorf("template %q has no files", t.Name)
	}
	for path := range t.Files {
		if err := ValidatePath(path); err != nil {
			return fmt.Errorf("template %q: %w", t.Name, err)
		}
	}
	return nil
}

// ValidatePath checks that a template file path is relative, forward-slash
// separated, free of "." and ".." segments, and does not collide with the
// reserved audit manifest filename.
func ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty file path")
	}
	if strings.Contains(path, `\`) {
		return fmt.Errorf("file path %q must use forward slashes", path)
	}
	if strings.HasPrefix(path, "/") {
		return fmt.Errorf("file path %q must be relative", path)
	}
	for _, seg := range strings.Split(path, "/") {
		switch seg {
		case "":
			return fmt.Errorf("file path %q has an empty segment", path)
		case ".", "..":
			return fmt.Errorf("file path %q must not contain %q segments", path, seg)
		}
	}
	if path == branding.ManifestFile() {
		return fmt.Errorf("file path %q is reserved for the audit manifest", path)
	}
	return nil
}
