package audit

import (
	"fmt"
	"os"
	"path/filepath"
)

// Finding kinds.
const (
	FindingMissing  = "missing"
	FindingMismatch = "mismatch"
)

// Finding is a single verification discrepancy for one manifest entry.
type Finding struct {
	Path     string `json:"path"`
	Kind     string `json:"kind"`
	Expected string `json:"expected,omitempty"`
	Actual   string `json:"actual,omitempty"`
}

// Report aggregates every finding from one verification pass. Zero
// findings is success; any finding is overall failure.
type Report struct {
	Root      string    `json:"root"`
	Generated string    `json:"generated"`
	Checked   int       `json:"checked"`
	Findings  []Finding `json:"findings"`
}

// Ok reports whether verification passed with zero findings.
func (r *Report) Ok() bool {
	return len(r.Findings) == 0
}

// Verify loads the manifest at root and compares every recorded entry
// against the tree's current state. A file that is absent (or no longer a
// regular file) yields a Missing finding; a digest difference yields a
// Mismatch finding with expected and actual values. Files on disk that the
// manifest does not mention are not flagged: the manifest is a floor, not
// an exhaustive inventory. All entries are checked so one report lists
// every problem.
func Verify(root string, algo Algorithm) (*Report, error) {
	m, err := Load(root)
	if err != nil {
		return nil, err
	}

	// A digest width other than the configured algorithm's means the
	// manifest was generated with a different algorithm. Comparing across
	// algorithms would report every file as drifted, so fail hard instead.
	for _, entry := range m.Files {
		if len(entry.Hash) != algo.HexLen() {
			return nil, fmt.Errorf(
				"manifest digest for %q is %d hex characters but %s digests are %d: manifest was generated with a different algorithm",
				entry.Path, len(entry.Hash), algo, algo.HexLen())
		}
	}

	report := &Report{
		Root:      root,
		Generated: m.Generated,
		Checked:   len(m.Files),
		Findings:  []Finding{},
	}

	for _, entry := range m.Files {
		full := filepath.Join(root, filepath.FromSlash(entry.Path))

		info, err := os.Stat(full)
		if os.IsNotExist(err) {
			report.Findings = append(report.Findings, Finding{
				Path:     entry.Path,
				Kind:     FindingMissing,
				Expected: entry.Hash,
			})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("checking %s: %w", full, err)
		}
		if !info.Mode().IsRegular() {
			report.Findings = append(report.Findings, Finding{
				Path:     entry.Path,
				Kind:     FindingMissing,
				Expected: entry.Hash,
			})
			continue
		}

		actual, err := DigestFile(algo, full)
		if err != nil {
			return nil, err
		}
		if actual != entry.Hash {
			report.Findings = append(report.Findings, Finding{
				Path:     entry.Path,
				Kind:     FindingMismatch,
				Expected: entry.Hash,
				Actual:   actual,
			})
		}
	}

	return report, nil
}
