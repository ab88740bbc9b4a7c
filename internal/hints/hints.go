// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultDocsCommand is the documentation-table tool suggested in install hints.
const DefaultDocsCommand = "terraform-docs"

// InCI reports whether a CI system is detected from its environment variables.
func InCI() bool {
	for _, v := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"} {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// ForConfigNotFound returns hints for a missing module descriptor.
// Suggests --input when the default name was used, and notes a .yml sibling.
func ForConfigNotFound(path string) string {
	var hints []string

	ext := filepath.Ext(path)
	if ext == ".yaml" {
		alt := strings.TrimSuffix(path, ext) + ".yml"
		if _, err := os.Stat(alt); err == nil {
			hints = append(hints, "found "+filepath.Base(alt)+", pass --input "+alt)
		}
	}

	if len(hints) == 0 {
		hints = append(hints, "create "+filepath.Base(path)+" or use --input /path/to/file.yaml")
	}

	return formatHints(hints)
}

// ForConfigParse returns a hint for descriptor syntax errors.
func ForConfigParse() string {
	return format("check indentation; list entries start with \"- \"")
}

// ForMissingField returns a hint for list entries lacking a required key.
func ForMissingField() string {
	return format("examples need name and description; related projects need name, url and description")
}

// ForDocsTool returns hints for a docs tool that could not be run.
// Suggests installation when the default tool is missing, and --no-docs in CI.
func ForDocsTool(command string) string {
	var hints []string

	if command == DefaultDocsCommand {
		hints = append(hints, "install terraform-docs: https://terraform-docs.io/user-guide/installation/")
	} else {
		hints = append(hints, "check --docs-cmd "+command+" is on PATH")
	}

	if InCI() {
		hints = append(hints, "use --no-docs to skip the tool in CI")
	}

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing timeout for slow docs tools.
func ForTimeout() string {
	return format("for large modules, raise --timeout")
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
