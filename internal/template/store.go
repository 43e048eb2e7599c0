package template

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"
)

//go:embed templates/*.yaml
var builtinFS embed.FS

// ErrUnknownTemplate is returned by Get when the requested name is not in
// the available set.
var ErrUnknownTemplate = errors.New("unknown template")

// Store holds the set of templates available for materialization. It is
// populated once and read-only afterwards.
type Store struct {
	templates map[string]*Template
	warnings  []string
}

// Load returns a store containing only the embedded builtin templates.
// A builtin that fails validation is a packaging defect and an error.
func Load() (*Store, error) {
	s := &Store{templates: make(map[string]*Template)}
	if err := s.loadBuiltins(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadWithUserDir returns a store with the builtins plus any user-defined
// templates under userDir. A missing directory is not an error; user
// definitions that fail validation are skipped and recorded as warnings.
func LoadWithUserDir(userDir string) (*Store, error) {
	s, err := Load()
	if err != nil {
		return nil, err
	}
	s.loadUserDir(userDir)
	return s, nil
}

func (s *Store) loadBuiltins() error {
	entries, err := fs.ReadDir(builtinFS, "templates")
	if err != nil {
		return fmt.Errorf("reading builtin templates: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		data, err := fs.ReadFile(builtinFS, "templates/"+entry.Name())
		if err != nil {
			return fmt.Errorf("reading builtin template %s: %w", entry.Name(), err)
		}
		t, err := parse(data)
		if err != nil {
			return fmt.Errorf("builtin template %s: %w", entry.Name(), err)
		}
		t.Source = SourceBuiltin
		s.templates[t.Name] = t
	}

	if len(s.templates) == 0 {
		return fmt.Errorf("no builtin templates embedded")
	}
	return nil
}

func (s *Store) loadUserDir(dir string) {
	if dir == "" {
		return
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			s.warnings = append(s.warnings, fmt.Sprintf("reading user templates in %s: %v", dir, err))
		}
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			s.warnings = append(s.warnings, fmt.Sprintf("reading %s: %v", path, err))
			continue
		}

		// User definitions are untrusted input: schema-validate before parsing.
		result, err := Validate(data)
		if err != nil {
			s.warnings = append(s.warnings, fmt.Sprintf("%s: %v", entry.Name(), err))
			continue
		}
		if !result.Valid {
			for _, issue := range result.Issues {
				msg := issue.Message
				if issue.Path != "" {
					msg = issue.Path + ": " + msg
				}
				s.warnings = append(s.warnings, fmt.Sprintf("%s: %s", entry.Name(), msg))
			}
			continue
		}

		t, err := parse(data)
		if err != nil {
			s.warnings = append(s.warnings, fmt.Sprintf("%s: %v", entry.Name(), err))
			continue
		}

		if existing, ok := s.templates[t.Name]; ok && existing.Source == SourceBuiltin {
			s.warnings = append(s.warnings, fmt.Sprintf("%s: name %q shadows a builtin template; ignored", entry.Name(), t.Name))
			continue
		}

		t.Source = SourceUser
		s.templates[t.Name] = t
	}
}

// parse unmarshals a template definition and checks its invariants.
func parse(data []byte) (*Template, error) {
	var t Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing template definition: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns all templates sorted by name.
func (s *Store) List() []*Template {
	out := make([]*Template, 0, len(s.templates))
	for _, name := range s.Names() {
		out = append(out, s.templates[name])
	}
	return out
}

// Names returns all template names, sorted.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.templates))
	for name := range s.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the named template, or ErrUnknownTemplate if the name is not
// in the available set.
func (s *Store) Get(name string) (*Template, error) {
	t, ok := s.templates[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownTemplate, name, strings.Join(s.Names(), ", "))
	}
	return t, nil
}

// Warnings returns non-fatal problems encountered while loading user
// definitions.
func (s *Store) Warnings() []string {
	return s.warnings
}
