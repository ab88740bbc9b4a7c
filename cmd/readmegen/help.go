package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: readmegen [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate README.md from README.yaml, embedding the terraform-docs table.")
	fmt.Fprintln(w, "With no flags, reads ./README.yaml, runs 'terraform-docs markdown table .'")
	fmt.Fprintln(w, "and overwrites ./README.md.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Paths:")
	fmt.Fprintln(w, "  -C, --dir <path>          Project root (default \".\")")
	fmt.Fprintln(w, "  -i, --input <path>        Module descriptor (default README.yaml)")
	fmt.Fprintln(w, "  -o, --output <path>       Generated README (default README.md)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Documentation table:")
	fmt.Fprintln(w, "      --docs-cmd <cmd>      Tool to run (default terraform-docs)")
	fmt.Fprintln(w, "  -t, --timeout <dur>       Give up on the tool after dur, e.g. 30s (default none)")
	fmt.Fprintln(w, "      --no-docs             Skip the tool, use the placeholder table")
	fmt.Fprintln(w, "      --warn-docs           Warn on stderr when the tool fails")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --html                Also write an HTML preview (README.html)")
	fmt.Fprintln(w, "      --lint                Warn about usage code that is not valid HCL")
	fmt.Fprintln(w, "  -w, --watch               Regenerate when the descriptor or *.tf files change")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show docs source, outline and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "      --doctor              Check the environment and exit")
	fmt.Fprintln(w, "      --json                With --doctor, print JSON")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  READMEGEN_DIR, READMEGEN_INPUT, READMEGEN_OUTPUT, READMEGEN_DOCS_CMD,")
	fmt.Fprintln(w, "  READMEGEN_TIMEOUT, READMEGEN_WARN_DOCS (flags take precedence)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit status: 0 success, 1 generation failed, 2 invalid flags or settings.")
}
