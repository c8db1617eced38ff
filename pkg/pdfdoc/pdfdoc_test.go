package pdfdoc

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadInfoMissingFile(t *testing.T) {
	if _, err := ReadInfo(filepath.Join(t.TempDir(), "missing.pdf")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

func TestReadInfoNotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if _, err := ReadInfo(path); err == nil {
		t.Error("Expected error for non-PDF content, got nil")
	}
}
