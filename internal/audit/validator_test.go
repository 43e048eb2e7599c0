package audit

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate_ValidIndex(t *testing.T) {
	data := []byte(`{
  "generated": "2026-08-25T10:00:00Z",
  "files": [
    {"path": "README.md", "hash": "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"}
  ]
}`)
	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got issues: %v", result.Issues)
	}
}

func TestValidate_EmptyFilesArray(t *testing.T) {
	data := []byte(`{"generated": "2026-08-25T10:00:00Z", "files": []}`)
	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("an empty files array is legal, got issues: %v", result.Issues)
	}
}

func TestValidate_InvalidIndexes(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "missing generated",
			data: `{"files": []}`,
		},
		{
			name: "missing files",
			data: `{"generated": "2026-08-25T10:00:00Z"}`,
		},
		{
			name: "entry missing hash",
			data: `{"generated": "x", "files": [{"path": "a.txt"}]}`,
		},
		{
			name: "hash not hex",
			data: `{"generated": "x", "files": [{"path": "a.txt", "hash": "ZZZZ"}]}`,
		},
		{
			name: "unknown top-level key",
			data: `{"generated": "x", "files": [], "signature": "abc"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.data))
			if err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
			if result.Valid {
				t.Error("expected invalid, got valid")
			}
			if len(result.Issues) == 0 {
				t.Error("expected at least one issue")
			}
		})
	}
}

func TestValidate_NotJSON(t *testing.T) {
	_, err := Validate([]byte("not json"))
	if err == nil {
		t.Fatal("expected error for unparseable JSON")
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "audit-index.json")
	content := `{"generated": "2026-08-25T10:00:00Z", "files": []}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing index: %v", err)
	}

	result, err := ValidateFile(path)
	if err != nil {
		t.Fatalf("ValidateFile() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got issues: %v", result.Issues)
	}
}

func TestValidateFile_NotFound(t *testing.T) {
	_, err := ValidateFile(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for nonexistent file")
	}
}

func TestValidate_SchemaCompiles(t *testing.T) {
	schema, err := getSchema()
	if err != nil {
		t.Fatalf("getSchema() error: %v", err)
	}
	if schema == nil {
		t.Fatal("getSchema() returned nil schema")
	}
}
