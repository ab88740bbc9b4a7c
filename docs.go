package readmegen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/alnah/go-readmegen/internal/process"
)

// Placeholder stands in for the terraform-docs table when the tool cannot
// run. It uses the same BEGIN/END markers as the real output so later
// terraform-docs injections still find the block.
const Placeholder = `<!-- BEGIN_TF_DOCS -->
## Requirements

No requirements.

## Providers

No providers.

## Modules

No modules.

## Resources

No resources.

## Inputs

No inputs.

## Outputs

No outputs.
<!-- END_TF_DOCS -->`

// DocsProvider produces the machine-generated documentation table.
type DocsProvider interface {
	FetchDocs(ctx context.Context) (string, error)
}

// Compile-time interface implementation checks.
var (
	_ DocsProvider  = (*TerraformDocs)(nil)
	_ DocsProvider  = StaticDocs("")
	_ DocsProvider  = (*FallbackDocs)(nil)
	_ CommandRunner = (*ExecRunner)(nil)
)

// CommandRunner abstracts command execution to enable testing without real subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) (stdout, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
// The child runs in its own process group; cancelling ctx kills the group.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- docs command is user-configured
	cmd.Dir = dir
	process.SetProcessGroup(cmd)
	cmd.Cancel = func() error {
		process.KillProcessGroup(cmd.Process.Pid)
		return nil
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil && err != nil {
		err = ctxErr
	}
	return stdout.String(), stderr.String(), err
}

// TerraformDocs runs terraform-docs (or a compatible tool) and returns its
// trimmed standard output.
type TerraformDocs struct {
	Runner  CommandRunner
	Dir     string   // Working directory; "" = current directory
	Command string   // Default "terraform-docs"
	Args    []string // Default markdown table .
	Timeout time.Duration
}

// NewTerraformDocs creates a TerraformDocs provider with a real command runner
// and the default "terraform-docs markdown table ." invocation.
func NewTerraformDocs(dir string) *TerraformDocs {
	return &TerraformDocs{
		Runner:  &ExecRunner{},
		Dir:     dir,
		Command: "terraform-docs",
		Args:    []string{"markdown", "table", "."},
	}
}

// FetchDocs runs the tool. Any failure (not installed, non-zero exit,
// timeout, cancellation) is reported as ErrDocsTool. A zero Timeout waits
// for the tool indefinitely.
func (t *TerraformDocs) FetchDocs(ctx context.Context) (string, error) {
	if t.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}

	stdout, stderr, err := t.Runner.Run(ctx, t.Dir, t.Command, t.Args...)
	if err != nil {
		detail := strings.TrimSpace(stderr)
		if detail == "" {
			return "", fmt.Errorf("%w: %s: %w", ErrDocsTool, t.Command, err)
		}
		return "", fmt.Errorf("%w: %s: %s: %w", ErrDocsTool, t.Command, detail, err)
	}
	return strings.TrimSpace(stdout), nil
}

// StaticDocs is a provider returning fixed text.
type StaticDocs string

// PlaceholderDocs always yields Placeholder.
const PlaceholderDocs = StaticDocs(Placeholder)

func (s StaticDocs) FetchDocs(context.Context) (string, error) {
	return string(s), nil
}

// FallbackDocs tries Primary and substitutes Fallback when it fails.
// OnError, if set, observes the recovered error; the failure is otherwise silent.
type FallbackDocs struct {
	Primary  DocsProvider
	Fallback DocsProvider
	OnError  func(error)
}

// WithPlaceholder wraps primary so its failures yield Placeholder.
func WithPlaceholder(primary DocsProvider, onError func(error)) *FallbackDocs {
	return &FallbackDocs{Primary: primary, Fallback: PlaceholderDocs, OnError: onError}
}

func (f *FallbackDocs) FetchDocs(ctx context.Context) (string, error) {
	docs, err := f.Primary.FetchDocs(ctx)
	if err == nil {
		return docs, nil
	}
	if f.OnError != nil {
		f.OnError(err)
	}
	return f.Fallback.FetchDocs(ctx)
}

// IsNotInstalled reports whether err came from a docs command that was not found.
func IsNotInstalled(err error) bool {
	return errors.Is(err, exec.ErrNotFound)
}
