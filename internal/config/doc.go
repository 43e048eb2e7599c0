// Package config manages user-level settings stored at ~/.plugforge/config.yaml.
// It provides functions to load, read, and write configuration keys such as the
// default template and author used by "plugforge new" and the hash algorithm
// used by the audit subsystem. Every key can be overridden with a PLUGFORGE_*
// environment variable.
package config
