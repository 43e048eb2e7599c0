package audit

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/plugforge/plugforge/internal/branding"
)

// ErrManifestMissing is returned by Load when no manifest exists at the
// expected location.
var ErrManifestMissing = errors.New("audit manifest missing")

// Entry records one file's relative path and content digest.
type Entry struct {
	Path string `json:"path"`
	Hash string `json:"hash"`
}

// Manifest is the persisted audit index: a generation timestamp plus one
// entry per regular file under the project root, sorted by path. It never
// contains an entry for itself, and a re-run overwrites it wholesale.
type Manifest struct {
	Generated string  `json:"generated"`
	Files     []Entry `json:"files"`
}

// FileName returns the reserved manifest filename (audit-index.json).
func FileName() string {
	return branding.ManifestFile()
}

// Path returns the manifest location for a project root.
func Path(root string) string {
	return filepath.Join(root, FileName())
}

// Build walks root recursively, digests every regular file except the
// manifest itself, and returns a manifest with entries sorted by their
// forward-slash relative paths. Two builds over identical trees differ
// only in the Generated timestamp.
func Build(root string, algo Algorithm) (*Manifest, error) {
	m := &Manifest{
		Generated: time.Now().UTC().Format(time.RFC3339),
		Files:     []Entry{},
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("relativizing %s: %w", path, err)
		}
		rel = filepath.ToSlash(rel)
		if rel == FileName() {
			return nil
		}

		hash, err := DigestFile(algo, path)
		if err != nil {
			return err
		}
		m.Files = append(m.Files, Entry{Path: rel, Hash: hash})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	sort.Slice(m.Files, func(i, j int) bool { return m.Files[i].Path < m.Files[j].Path })
	return m, nil
}

// WriteFile persists the manifest as an indented JSON document at
// root/audit-index.json, replacing any previous manifest.
func (m *Manifest) WriteFile(root string) (string, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding manifest: %w", err)
	}
	data = append(data, '\n')

	path := Path(root)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return path, nil
}

// Load reads the manifest at root/audit-index.json, validates it against
// the embedded schema, and parses it. A missing file yields
// ErrManifestMissing; malformed or schema-invalid content is an error, so
// a verification run fails before any comparison happens.
func Load(root string) (*Manifest, error) {
	path := Path(root)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s", ErrManifestMissing, path)
		}
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating manifest %s: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("manifest %s failed schema validation: %s", path, result.Issues[0])
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}

// ParseFile decodes a manifest file without schema validation. Callers
// that need validated content should use Load instead.
func ParseFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}
