package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// TestMatches - Base-name pattern matching
// ---------------------------------------------------------------------------

func TestMatches(t *testing.T) {
	t.Parallel()

	patterns := []string{"README.yaml", "*.tf"}

	tests := []struct {
		name     string
		path     string
		patterns []string
		want     bool
	}{
		{"descriptor", "/mod/README.yaml", patterns, true},
		{"terraform file", "/mod/main.tf", patterns, true},
		{"generated readme", "/mod/README.md", patterns, false},
		{"atomic write temp file", "/mod/.README.md.123.tmp", patterns, false},
		{"tfvars", "/mod/prod.tfvars", patterns, false},
		{"no patterns match all", "/mod/anything", nil, true},
		{"malformed pattern", "/mod/main.tf", []string{"[", "*.go"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Matches(tt.path, tt.patterns); got != tt.want {
				t.Errorf("Matches(%q, %v) = %v, want %v", tt.path, tt.patterns, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRun_Validation - Bad configs fail before watching
// ---------------------------------------------------------------------------

func TestRun_Validation(t *testing.T) {
	t.Parallel()

	t.Run("no dirs", func(t *testing.T) {
		t.Parallel()
		if err := Run(context.Background(), Config{}); !errors.Is(err, ErrNoDirs) {
			t.Errorf("error = %v, want ErrNoDirs", err)
		}
	})

	t.Run("malformed pattern", func(t *testing.T) {
		t.Parallel()
		err := Run(context.Background(), Config{Dirs: []string{t.TempDir()}, Patterns: []string{"["}})
		if !errors.Is(err, filepath.ErrBadPattern) {
			t.Errorf("error = %v, want filepath.ErrBadPattern", err)
		}
	})

	t.Run("missing dir", func(t *testing.T) {
		t.Parallel()
		err := Run(context.Background(), Config{Dirs: []string{filepath.Join(t.TempDir(), "gone")}})
		if err == nil {
			t.Error("expected error for missing directory")
		}
	})
}

// ---------------------------------------------------------------------------
// TestRun_Callback - Matching changes fire once, others are ignored
// ---------------------------------------------------------------------------

func TestRun_Callback(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan []string, 4)
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, Config{
			Dirs:     []string{dir, dir},
			Patterns: []string{"*.tf"},
			Debounce: 50 * time.Millisecond,
			OnChange: func(_ context.Context, changed []string) error {
				calls <- changed
				return nil
			},
		})
	}()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	for _, name := range []string{"main.tf", "variables.tf", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case changed := <-calls:
		if slices.Contains(changed, "notes.txt") {
			t.Errorf("changed = %v, should not include notes.txt", changed)
		}
		if !slices.Contains(changed, "main.tf") {
			t.Errorf("changed = %v, should include main.tf", changed)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("OnChange was not called")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() = %v, want nil after cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
