package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-readmegen"
	"github.com/alnah/go-readmegen/internal/config"
	"github.com/alnah/go-readmegen/internal/hints"
)

// runMain parses arguments, resolves settings and runs the generator or
// doctor. It returns the process exit code.
func runMain(args []string, env *Environment) int {
	flags, positional, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(env.Stdout)
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "Error: %v\n  hint: run 'readmegen --help'\n", err)
		return ExitUsage
	}
	if len(positional) > 0 {
		fmt.Fprintf(env.Stderr, "Error: unexpected argument %q\n  hint: run 'readmegen --help'\n", positional[0])
		return ExitUsage
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "readmegen %s\n", Version)
		return ExitSuccess
	}

	warnUnknownEnvVars(env.Stderr)

	cfg := config.DefaultConfig()
	applyEnvConfig(loadEnvConfig(), cfg)
	if err := mergeFlags(flags, cfg); err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		return exitCodeFor(err)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(env.Stderr, "Error: invalid settings: %v\n", err)
		return exitCodeFor(err)
	}

	if flags.doctor {
		return runDoctorCmd(cfg, flags.json, env)
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	opts := generateOptions{commonFlags: flags.common, lint: flags.lint}

	if flags.watch {
		return runWatch(ctx, cfg, opts, env)
	}

	if err := runGenerate(ctx, cfg, opts, env); err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v%s\n", err, hintFor(err, cfg))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// generateOptions are the per-run switches that don't belong in config.Config.
type generateOptions struct {
	commonFlags
	lint bool
}

// runGenerate is the pipeline: load, fetch docs and render, write.
// Nothing is written unless every earlier stage succeeded.
func runGenerate(ctx context.Context, cfg *config.Config, flags generateOptions, env *Environment) error {
	start := env.Now()
	progress := func(format string, args ...any) {
		if !flags.quiet {
			fmt.Fprintf(env.Stdout, format+"\n", args...)
		}
	}

	inputPath := cfg.InputPath()
	outputPath := cfg.OutputPath()
	outputName := filepath.Base(outputPath)

	progress("Loading configuration from %s", inputPath)
	desc, err := readmegen.LoadDescriptor(inputPath)
	if err != nil {
		return err
	}

	if flags.lint {
		for _, issue := range readmegen.LintUsage(desc.Usage) {
			fmt.Fprintf(env.Stderr, "warning: %s\n", issue)
		}
	}

	progress("Generating %s content...", outputName)
	gen := readmegen.NewGenerator(readmegen.WithDocsProvider(buildDocsProvider(cfg, flags.verbose, env)))
	content, err := gen.Generate(ctx, desc)
	if err != nil {
		return err
	}

	// An interrupt during the docs tool yields the placeholder; don't publish it.
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("interrupted before writing %s: %w", outputPath, err)
	}

	progress("Writing %s to %s", outputName, outputPath)
	if err := readmegen.WriteFile(outputPath, content); err != nil {
		return err
	}

	if cfg.Preview {
		if err := writePreview(ctx, cfg.PreviewPath(), content, desc, progress); err != nil {
			return err
		}
	}

	if flags.verbose {
		fmt.Fprintln(env.Stderr, "Sections:")
		for _, h := range readmegen.Outline(content) {
			if h.Level <= 2 {
				fmt.Fprintf(env.Stderr, "  %s\n", h)
			}
		}
		fmt.Fprintf(env.Stderr, "Done in %s\n", env.Now().Sub(start).Round(time.Millisecond))
	}

	progress("✓ %s generated successfully!", outputName)
	return nil
}

// buildDocsProvider wires the docs tool behind the placeholder fallback.
// Failures are silent unless warnings or verbose output were requested.
func buildDocsProvider(cfg *config.Config, verbose bool, env *Environment) readmegen.DocsProvider {
	if cfg.Docs.Disabled {
		if verbose {
			fmt.Fprintln(env.Stderr, "Docs: placeholder (--no-docs)")
		}
		return readmegen.PlaceholderDocs
	}

	tf := &readmegen.TerraformDocs{
		Runner:  env.Runner,
		Dir:     cfg.Dir,
		Command: cfg.Docs.Command,
		Args:    cfg.Docs.Args,
		Timeout: cfg.Docs.Timeout,
	}
	if verbose {
		fmt.Fprintf(env.Stderr, "Docs: %s %s (in %s)\n", tf.Command, strings.Join(tf.Args, " "), tf.Dir)
	}

	var onError func(error)
	if cfg.Docs.Warn || verbose {
		onError = func(err error) {
			fmt.Fprintf(env.Stderr, "warning: %v; using placeholder table%s\n", err, docsHint(err, cfg.Docs.Command))
		}
	}

	return readmegen.WithPlaceholder(tf, onError)
}

// writePreview renders content to HTML and writes it next to the README.
func writePreview(ctx context.Context, path, content string, desc *readmegen.Descriptor, progress func(string, ...any)) error {
	title := "README"
	if desc.Name != nil && *desc.Name != "" {
		title = *desc.Name
	}

	html, err := readmegen.RenderHTML(ctx, content, title)
	if err != nil {
		return fmt.Errorf("rendering preview: %w", err)
	}

	progress("Writing preview to %s", path)
	return readmegen.WriteFile(path, html)
}

// hintFor returns an actionable hint for a generation error, or "".
func hintFor(err error, cfg *config.Config) string {
	switch {
	case errors.Is(err, readmegen.ErrConfigNotFound):
		return hints.ForConfigNotFound(cfg.InputPath())
	case errors.Is(err, readmegen.ErrConfigParse):
		return hints.ForConfigParse()
	case errors.Is(err, readmegen.ErrMissingField):
		return hints.ForMissingField()
	case errors.Is(err, readmegen.ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}

// docsHint returns a hint for a recovered docs tool failure, or "".
func docsHint(err error, command string) string {
	switch {
	case readmegen.IsNotInstalled(err):
		return hints.ForDocsTool(command)
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	}
	return ""
}
