package home

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Default content for config.yaml.
const defaultConfigContent = `# PlugForge settings. Every key can also be set with
# "plugforge config set <key> <value>" or a PLUGFORGE_* environment variable.

# default_template: basic
# default_author: Jane Doe
# git_init: true
# git_path: git
# hash_algorithm: sha256
`

// EnsureLayout creates the home directory structure: the root, the user
// templates directory, and a commented default config.yaml. It prints
// progress messages to w. Existing items are skipped with a message.
func EnsureLayout(w io.Writer) error {
	root, err := Root()
	if err != nil {
		return err
	}

	if err := ensureDir(w, root); err != nil {
		return err
	}

	templatesDir := filepath.Join(root, TemplatesDir)
	if err := ensureDir(w, templatesDir); err != nil {
		return err
	}

	configPath := filepath.Join(root, ConfigFile)
	if err := ensureFile(w, configPath, defaultConfigContent); err != nil {
		return err
	}

	return nil
}

// ensureDir creates a directory if it doesn't exist.
func ensureDir(w io.Writer, path string) error {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
			return nil
		}
		return fmt.Errorf("%s exists but is not a directory", path)
	}

	if err := os.MkdirAll(path, DirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}

// ensureFile creates a file with content if it doesn't exist.
func ensureFile(w io.Writer, path, content string) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
		return nil
	}

	if err := os.WriteFile(path, []byte(content), FilePerm); err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}
