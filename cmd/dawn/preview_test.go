package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func TestRunPreviewRendersFileContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	if err := os.WriteFile(path, []byte("# Title\n\nsome body text\n"), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	old := previewWidth
	previewWidth = 80
	defer func() { previewWidth = old }()

	if err := runPreview(&cobra.Command{}, []string{path}); err != nil {
		t.Fatalf("runPreview returned error: %v", err)
	}
}

func TestRunPreviewMissingFileReturnsWrappedError(t *testing.T) {
	err := runPreview(&cobra.Command{}, []string{filepath.Join(t.TempDir(), "missing.md")})
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
