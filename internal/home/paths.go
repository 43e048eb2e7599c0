package home

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/plugforge/plugforge/internal/branding"
)

// Directory and file name constants for the home layout.
const (
	TemplatesDir = "templates"
	ConfigFile   = "config.yaml"
)

// Permission constants.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// Root returns the path to the home directory.
// It checks the PLUGFORGE_HOME environment variable first,
// then falls back to ~/.plugforge.
func Root() (string, error) {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir()), nil
}

// ConfigPath returns the path to config.yaml within the home directory.
func ConfigPath() (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, ConfigFile), nil
}

// UserTemplatesDir returns the path to the templates/ directory within the
// home directory, where user-defined template files live.
func UserTemplatesDir() (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, TemplatesDir), nil
}
