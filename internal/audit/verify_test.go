package audit

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// buildAndWrite generates and persists a manifest for root.
func buildAndWrite(t *testing.T, root string, algo Algorithm) *Manifest {
	t.Helper()
	m, err := Build(root, algo)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if _, err := m.WriteFile(root); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	return m
}

func TestVerify_CleanTree(t *testing.T) {
	root := writeTree(t, map[string]string{
		"README.md":   "# demo",
		"src/main.js": "export function activate() {}",
	})
	buildAndWrite(t, root, SHA256)

	report, err := Verify(root, SHA256)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if !report.Ok() {
		t.Errorf("expected clean report, got findings: %+v", report.Findings)
	}
	if report.Checked != 2 {
		t.Errorf("Checked = %d, want 2", report.Checked)
	}
	if report.Findings == nil {
		t.Error("Findings should be an empty slice, not nil")
	}
}

func TestVerify_Mismatch(t *testing.T) {
	root := writeTree(t, map[string]string{
		"README.md": "# before",
		"other.txt": "unchanged",
	})
	buildAndWrite(t, root, SHA256)

	if err := os.WriteFile(filepath.Join(root, "README.md"), []byte("# after"), 0644); err != nil {
		t.Fatalf("modifying file: %v", err)
	}

	report, err := Verify(root, SHA256)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if report.Ok() {
		t.Fatal("expected a finding for the modified file")
	}
	if len(report.Findings) != 1 {
		t.Fatalf("got %d findings, want 1: %+v", len(report.Findings), report.Findings)
	}

	f := report.Findings[0]
	if f.Path != "README.md" {
		t.Errorf("finding path = %q, want README.md", f.Path)
	}
	if f.Kind != FindingMismatch {
		t.Errorf("finding kind = %q, want %q", f.Kind, FindingMismatch)
	}
	if f.Expected == "" || f.Actual == "" {
		t.Errorf("mismatch finding should carry both digests: %+v", f)
	}
	if f.Expected == f.Actual {
		t.Error("expected and actual digests should differ")
	}
	if f.Actual != DigestBytes(SHA256, []byte("# after")) {
		t.Errorf("actual digest does not match current content: %q", f.Actual)
	}
}

func TestVerify_Missing(t *testing.T) {
	root := writeTree(t, map[string]string{
		"README.md": "# demo",
		"gone.txt":  "will be deleted",
	})
	buildAndWrite(t, root, SHA256)

	if err := os.Remove(filepath.Join(root, "gone.txt")); err != nil {
		t.Fatalf("removing file: %v", err)
	}

	report, err := Verify(root, SHA256)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if len(report.Findings) != 1 {
		t.Fatalf("got %d findings, want 1: %+v", len(report.Findings), report.Findings)
	}
	f := report.Findings[0]
	if f.Kind != FindingMissing || f.Path != "gone.txt" {
		t.Errorf("finding = %+v, want missing gone.txt", f)
	}
	if f.Actual != "" {
		t.Errorf("missing finding should have no actual digest, got %q", f.Actual)
	}
}

func TestVerify_AggregatesAllFindings(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.txt": "a",
		"b.txt": "b",
		"c.txt": "c",
	})
	buildAndWrite(t, root, SHA256)

	if err := os.Remove(filepath.Join(root, "a.txt")); err != nil {
		t.Fatalf("removing a.txt: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "b.txt"), []byte("changed"), 0644); err != nil {
		t.Fatalf("modifying b.txt: %v", err)
	}

	report, err := Verify(root, SHA256)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}

	// One pass reports every problem, not just the first.
	if len(report.Findings) != 2 {
		t.Fatalf("got %d findings, want 2: %+v", len(report.Findings), report.Findings)
	}
	kinds := map[string]string{}
	for _, f := range report.Findings {
		kinds[f.Path] = f.Kind
	}
	if kinds["a.txt"] != FindingMissing {
		t.Errorf("a.txt kind = %q, want %q", kinds["a.txt"], FindingMissing)
	}
	if kinds["b.txt"] != FindingMismatch {
		t.Errorf("b.txt kind = %q, want %q", kinds["b.txt"], FindingMismatch)
	}
	if report.Checked != 3 {
		t.Errorf("Checked = %d, want 3", report.Checked)
	}
}

func TestVerify_ExtraFilesIgnored(t *testing.T) {
	root := writeTree(t, map[string]string{"a.txt": "a"})
	buildAndWrite(t, root, SHA256)

	// Files the manifest does not record are not findings.
	if err := os.WriteFile(filepath.Join(root, "extra.txt"), []byte("new"), 0644); err != nil {
		t.Fatalf("writing extra file: %v", err)
	}

	report, err := Verify(root, SHA256)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if !report.Ok() {
		t.Errorf("extra file should not be flagged: %+v", report.Findings)
	}
}

func TestVerify_NoManifest(t *testing.T) {
	_, err := Verify(t.TempDir(), SHA256)
	if err == nil {
		t.Fatal("expected error when manifest is absent")
	}
	if !errors.Is(err, ErrManifestMissing) {
		t.Errorf("error is not ErrManifestMissing: %v", err)
	}
}

func TestVerify_AlgorithmMismatch(t *testing.T) {
	root := writeTree(t, map[string]string{"a.txt": "a"})
	buildAndWrite(t, root, SHA256)

	// A sha256 manifest verified under sha512 is a hard error, not a pile
	// of per-file mismatch findings.
	_, err := Verify(root, SHA512)
	if err == nil {
		t.Fatal("expected error for digest width mismatch")
	}
	if !strings.Contains(err.Error(), "different algorithm") {
		t.Errorf("error %q should mention the algorithm mismatch", err)
	}
}

func TestVerify_SHA512RoundTrip(t *testing.T) {
	root := writeTree(t, map[string]string{
		"README.md": "# sha512 tree",
	})
	m := buildAndWrite(t, root, SHA512)

	if len(m.Files[0].Hash) != SHA512.HexLen() {
		t.Fatalf("hash length %d, want %d", len(m.Files[0].Hash), SHA512.HexLen())
	}

	report, err := Verify(root, SHA512)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if !report.Ok() {
		t.Errorf("expected clean report, got %+v", report.Findings)
	}
}

func TestVerify_ReportCarriesManifestTimestamp(t *testing.T) {
	root := writeTree(t, map[string]string{"a.txt": "a"})
	m := buildAndWrite(t, root, SHA256)

	report, err := Verify(root, SHA256)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if report.Generated != m.Generated {
		t.Errorf("report Generated = %q, want %q", report.Generated, m.Generated)
	}
	if report.Root != root {
		t.Errorf("report Root = %q, want %q", report.Root, root)
	}
}
