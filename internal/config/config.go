// Package config holds the generator's run settings: where the module
// descriptor and README live, and how the documentation-table tool is invoked.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"
)

// Sentinel errors for settings validation.
var (
	ErrEmptyPath       = errors.New("path cannot be empty")
	ErrSamePath        = errors.New("input and output must differ")
	ErrInvalidTimeout  = errors.New("timeout must not be negative")
	ErrEmptyDocsCmd    = errors.New("docs command cannot be empty")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidDocsArgs = errors.New("docs arguments cannot be empty")
)

// Defaults reproduce the generator's fixed layout: README.yaml in, README.md
// out, terraform-docs run in the project root.
const (
	DefaultInput       = "README.yaml"
	DefaultOutput      = "README.md"
	DefaultDir         = "."
	DefaultDocsCommand = "terraform-docs"

	MaxPathLength = 4096
)

// DefaultDocsArgs requests Markdown table output for the current directory.
var DefaultDocsArgs = []string{"markdown", "table", "."}

// Config holds all settings for one generator run.
type Config struct {
	Dir     string     // Project root; relative Input/Output resolve against it
	Input   string     // Module descriptor
	Output  string     // Generated Markdown
	Docs    DocsConfig // Documentation-table tool
	Preview bool       // Also write an HTML preview next to Output
}

// DocsConfig defines how the documentation-table tool runs.
type DocsConfig struct {
	Command  string
	Args     []string
	Timeout  time.Duration // 0 = wait indefinitely
	Disabled bool          // Skip the tool and use the placeholder
	Warn     bool          // Report tool failures on stderr
}

// DefaultConfig returns settings matching the generator's fixed behavior.
func DefaultConfig() *Config {
	return &Config{
		Dir:    DefaultDir,
		Input:  DefaultInput,
		Output: DefaultOutput,
		Docs: DocsConfig{
			Command: DefaultDocsCommand,
			Args:    append([]string(nil), DefaultDocsArgs...),
		},
	}
}

// Validate checks settings before any file is touched.
func (c *Config) Validate() error {
	for _, f := range []struct{ name, value string }{
		{"dir", c.Dir},
		{"input", c.Input},
		{"output", c.Output},
	} {
		if f.value == "" {
			return fmt.Errorf("%w: %s", ErrEmptyPath, f.name)
		}
		if err := validateFieldLength(f.name, f.value, MaxPathLength); err != nil {
			return err
		}
	}

	if filepath.Clean(c.InputPath()) == filepath.Clean(c.OutputPath()) {
		return fmt.Errorf("%w: %s", ErrSamePath, c.InputPath())
	}

	if !c.Docs.Disabled {
		if c.Docs.Command == "" {
			return ErrEmptyDocsCmd
		}
		if len(c.Docs.Args) == 0 {
			return ErrInvalidDocsArgs
		}
	}

	if c.Docs.Timeout < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, c.Docs.Timeout)
	}

	return nil
}

// InputPath returns Input resolved against Dir.
func (c *Config) InputPath() string {
	return c.resolve(c.Input)
}

// OutputPath returns Output resolved against Dir.
func (c *Config) OutputPath() string {
	return c.resolve(c.Output)
}

// PreviewPath returns the HTML preview path: Output with its extension replaced by .html.
func (c *Config) PreviewPath() string {
	out := c.OutputPath()
	return out[:len(out)-len(filepath.Ext(out))] + ".html"
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir, p)
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}
