package readmegen

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "README.md")
	if err := os.WriteFile(path, []byte("stale README with more bytes than the new one"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if err := WriteFile(path, "# vpc\n"); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "# vpc\n" {
		t.Errorf("content = %q, want %q", got, "# vpc\n")
	}
}

func TestWriteFile_Error(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "README.md")
	err := WriteFile(path, "x")

	if !errors.Is(err, ErrWriteOutput) {
		t.Errorf("error = %v, want ErrWriteOutput", err)
	}
}
