package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-readmegen/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without extra flags.
type envConfig struct {
	Dir      string        // READMEGEN_DIR: project root
	Input    string        // READMEGEN_INPUT: module descriptor
	Output   string        // READMEGEN_OUTPUT: generated README
	DocsCmd  string        // READMEGEN_DOCS_CMD: documentation tool
	Timeout  time.Duration // READMEGEN_TIMEOUT: docs tool timeout
	WarnDocs bool          // READMEGEN_WARN_DOCS: warn on docs tool failure
}

// knownEnvVars lists valid READMEGEN_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"READMEGEN_DIR":       true,
	"READMEGEN_INPUT":     true,
	"READMEGEN_OUTPUT":    true,
	"READMEGEN_DOCS_CMD":  true,
	"READMEGEN_TIMEOUT":   true,
	"READMEGEN_WARN_DOCS": true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparseable timeout or boolean values are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		Dir:     os.Getenv("READMEGEN_DIR"),
		Input:   os.Getenv("READMEGEN_INPUT"),
		Output:  os.Getenv("READMEGEN_OUTPUT"),
		DocsCmd: os.Getenv("READMEGEN_DOCS_CMD"),
	}

	if timeout := os.Getenv("READMEGEN_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if warn := os.Getenv("READMEGEN_WARN_DOCS"); warn != "" {
		if b, err := strconv.ParseBool(warn); err == nil {
			cfg.WarnDocs = b
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized READMEGEN_* variables.
// Helps catch typos like READMEGEN_OUPUT.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "READMEGEN_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values over the defaults.
// Precedence: CLI flags > env vars > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Dir != "" {
		cfg.Dir = env.Dir
	}
	if env.Input != "" {
		cfg.Input = env.Input
	}
	if env.Output != "" {
		cfg.Output = env.Output
	}
	if env.DocsCmd != "" {
		cfg.Docs.Command = env.DocsCmd
	}
	if env.Timeout > 0 {
		cfg.Docs.Timeout = env.Timeout
	}
	if env.WarnDocs {
		cfg.Docs.Warn = true
	}
}

// mergeFlags merges CLI flags into config. CLI values override env and defaults.
func mergeFlags(flags *cliFlags, cfg *config.Config) error {
	if flags.paths.dir != "" {
		cfg.Dir = flags.paths.dir
	}
	if flags.paths.input != "" {
		cfg.Input = flags.paths.input
	}
	if flags.paths.output != "" {
		cfg.Output = flags.paths.output
	}
	if flags.docs.command != "" {
		cfg.Docs.Command = flags.docs.command
	}
	if flags.docs.timeout != "" {
		d, err := time.ParseDuration(flags.docs.timeout)
		if err != nil {
			return fmt.Errorf("%w: --timeout: %v", ErrInvalidArgs, err)
		}
		cfg.Docs.Timeout = d
	}
	if flags.docs.disabled {
		cfg.Docs.Disabled = true
	}
	if flags.docs.warn {
		cfg.Docs.Warn = true
	}
	if flags.html {
		cfg.Preview = true
	}
	return nil
}
