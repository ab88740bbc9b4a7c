// Package watch reruns a callback when matching files in a set of
// directories change.
//
// Directories are watched non-recursively. Events are matched on the file's
// base name against filepath.Match patterns and coalesced over a debounce
// window, so an editor's write-then-rename produces one callback.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period used when Config.Debounce is not positive.
const DefaultDebounce = 300 * time.Millisecond

// ErrNoDirs indicates a Config without directories to watch.
var ErrNoDirs = errors.New("watch: no directories")

// Config holds the parameters for Run.
type Config struct {
	// Dirs are watched non-recursively. Duplicates are ignored.
	Dirs []string

	// Patterns are matched against the base name of changed files,
	// e.g. "*.tf". An empty slice matches every file.
	Patterns []string

	// Debounce is the quiet period after the last event before OnChange fires.
	Debounce time.Duration

	// OnChange receives the sorted base names of the files that changed.
	// Its error is reported on Stderr and watching continues.
	OnChange func(ctx context.Context, changed []string) error

	// Stderr receives watcher errors. nil means os.Stderr.
	Stderr io.Writer
}

// Matches reports whether the base name of path matches any pattern.
// Malformed patterns never match.
func Matches(path string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	base := filepath.Base(path)
	for _, p := range patterns {
		if ok, err := filepath.Match(p, base); err == nil && ok {
			return true
		}
	}
	return false
}

// Run blocks until ctx is canceled, invoking OnChange after matching
// changes settle. It returns nil on cancellation. Callbacks never overlap.
func Run(ctx context.Context, cfg Config) error {
	if len(cfg.Dirs) == 0 {
		return ErrNoDirs
	}
	for _, p := range cfg.Patterns {
		if _, err := filepath.Match(p, ""); err != nil {
			return fmt.Errorf("watch: pattern %q: %w", p, err)
		}
	}

	stderr := cfg.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: create watcher: %w", err)
	}
	defer func() { _ = fsw.Close() }()

	seen := make(map[string]bool)
	for _, dir := range cfg.Dirs {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("watch: resolve %s: %w", dir, err)
		}
		if seen[abs] {
			continue
		}
		seen[abs] = true
		if err := fsw.Add(abs); err != nil {
			return fmt.Errorf("watch: add %s: %w", abs, err)
		}
	}

	var (
		mu      sync.Mutex
		pending = make(map[string]struct{})
		timer   *time.Timer
		fireMu  sync.Mutex // serializes callbacks
	)

	fire := func() {
		fireMu.Lock()
		defer fireMu.Unlock()
		if ctx.Err() != nil {
			return
		}

		mu.Lock()
		changed := slices.Sorted(maps.Keys(pending))
		clear(pending)
		mu.Unlock()

		if len(changed) == 0 || cfg.OnChange == nil {
			return
		}
		if err := cfg.OnChange(ctx, changed); err != nil {
			fmt.Fprintf(stderr, "watch: %v\n", err)
		}
	}

	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fsw.Events:
			if !ok {
				return errors.New("watch: event channel closed")
			}
			if ev.Op == fsnotify.Chmod || !Matches(ev.Name, cfg.Patterns) {
				continue
			}

			mu.Lock()
			pending[filepath.Base(ev.Name)] = struct{}{}
			if timer == nil {
				timer = time.AfterFunc(debounce, fire)
			} else {
				timer.Reset(debounce)
			}
			mu.Unlock()

		case err, ok := <-fsw.Errors:
			if !ok {
				return errors.New("watch: error channel closed")
			}
			fmt.Fprintf(stderr, "watch: %v\n", err)
		}
	}
}
