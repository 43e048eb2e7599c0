package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/plugforge/plugforge/internal/branding"
	"github.com/plugforge/plugforge/internal/home"
	"github.com/spf13/viper"
)

const fileType = "yaml"

// Known configuration keys.
const (
	KeyDefaultTemplate = "default_template"
	KeyDefaultAuthor   = "default_author"
	KeyGitInit         = "git_init"
	KeyGitPath         = "git_path"
	KeyHashAlgorithm   = "hash_algorithm"
)

// Keys returns the known configuration keys in display order.
func Keys() []string {
	return []string{
		KeyDefaultTemplate,
		KeyDefaultAuthor,
		KeyGitInit,
		KeyGitPath,
		KeyHashAlgorithm,
	}
}

// FilePath returns the full path to the config file (~/.plugforge/config.yaml).
func FilePath() string {
	path, err := home.ConfigPath()
	if err != nil {
		return filepath.Join(".", branding.HomeDir(), home.ConfigFile)
	}
	return path
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyDefaultTemplate, "basic")
	viper.SetDefault(KeyDefaultAuthor, "")
	viper.SetDefault(KeyGitInit, true)
	viper.SetDefault(KeyGitPath, "git")
	viper.SetDefault(KeyHashAlgorithm, "sha256")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetBool returns a boolean config value by key.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	root, err := home.Root()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(root, home.DirPerm); err != nil {
		return fmt.Errorf("creating config directory %s: %w", root, err)
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
