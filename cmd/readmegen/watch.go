package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alnah/go-readmegen/internal/config"
	"github.com/alnah/go-readmegen/internal/watch"
)

// watchTargets returns the directories and base-name patterns that trigger
// regeneration: the descriptor itself and the module's Terraform files.
func watchTargets(cfg *config.Config) (dirs, patterns []string) {
	input := cfg.InputPath()
	dirs = []string{cfg.Dir}
	if d := filepath.Dir(input); filepath.Clean(d) != filepath.Clean(cfg.Dir) {
		dirs = append(dirs, d)
	}
	return dirs, []string{filepath.Base(input), "*.tf"}
}

// runWatch generates once, then again after every relevant change until
// ctx is canceled. Generation errors are reported and watching continues.
func runWatch(ctx context.Context, cfg *config.Config, opts generateOptions, env *Environment) int {
	generate := func(ctx context.Context) {
		if err := runGenerate(ctx, cfg, opts, env); err != nil && ctx.Err() == nil {
			fmt.Fprintf(env.Stderr, "Error: %v%s\n", err, hintFor(err, cfg))
		}
	}

	generate(ctx)

	dirs, patterns := watchTargets(cfg)
	if !opts.quiet {
		fmt.Fprintf(env.Stdout, "Watching %s for changes to %s (Ctrl+C to stop)\n",
			strings.Join(dirs, ", "), strings.Join(patterns, ", "))
	}

	err := watch.Run(ctx, watch.Config{
		Dirs:     dirs,
		Patterns: patterns,
		Stderr:   env.Stderr,
		OnChange: func(ctx context.Context, changed []string) error {
			if !opts.quiet {
				fmt.Fprintf(env.Stdout, "Changed: %s\n", strings.Join(changed, ", "))
			}
			generate(ctx)
			return nil
		},
	})
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		return ExitGeneral
	}
	return ExitSuccess
}
