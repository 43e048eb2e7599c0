package home

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Check validates the home directory structure.
// When fix is true, it attempts to repair issues.
func Check(w io.Writer, fix bool) error {
	root, err := Root()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Home check:")

	// Check root exists.
	if _, statErr := os.Stat(root); os.IsNotExist(statErr) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", root)
		if fix {
			fmt.Fprintln(w, "  [FIX ] Creating home layout...")
			if initErr := EnsureLayout(w); initErr != nil {
				return fmt.Errorf("auto-fix layout: %w", initErr)
			}
		} else {
			fmt.Fprintln(w, "         Run 'plugforge doctor --fix' to create")
		}
		return nil
	}
	fmt.Fprintf(w, "  [ OK ] %s exists\n", root)

	// Check templates/ directory.
	checkDirExists(w, filepath.Join(root, TemplatesDir), fix)

	// Check config.yaml.
	checkFileExists(w, filepath.Join(root, ConfigFile))

	return nil
}

func checkDirExists(w io.Writer, path string, fix bool) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", path)
		if fix {
			if mkErr := os.MkdirAll(path, DirPerm); mkErr != nil {
				fmt.Fprintf(w, "  [FAIL] Could not create %s: %v\n", path, mkErr)
				return
			}
			fmt.Fprintf(w, "  [FIX ] Created %s\n", path)
		}
		return
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return
	}
	if !info.IsDir() {
		fmt.Fprintf(w, "  [WARN] %s exists but is not a directory\n", path)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s exists\n", path)
}

func checkFileExists(w io.Writer, path string) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", path)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s exists\n", path)
}
