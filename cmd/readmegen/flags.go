package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds output verbosity flags.
type commonFlags struct {
	quiet   bool
	verbose bool
}

// pathFlags holds descriptor and README locations.
type pathFlags struct {
	dir    string
	input  string
	output string
}

// docsFlags holds documentation-table tool flags.
type docsFlags struct {
	command  string
	timeout  string
	disabled bool
	warn     bool
}

// cliFlags holds all flags of the readmegen command.
type cliFlags struct {
	common  commonFlags
	paths   pathFlags
	docs    docsFlags
	html    bool
	lint    bool
	watch   bool
	doctor  bool
	json    bool
	version bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show docs source, outline and timing")
}

// addPathFlags adds path flags to a FlagSet.
func addPathFlags(fs *flag.FlagSet, f *pathFlags) {
	fs.StringVarP(&f.dir, "dir", "C", "", "project root (default \".\")")
	fs.StringVarP(&f.input, "input", "i", "", "module descriptor (default README.yaml)")
	fs.StringVarP(&f.output, "output", "o", "", "generated README (default README.md)")
}

// addDocsFlags adds documentation-table tool flags to a FlagSet.
func addDocsFlags(fs *flag.FlagSet, f *docsFlags) {
	fs.StringVar(&f.command, "docs-cmd", "", "documentation tool (default terraform-docs)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "docs tool timeout, e.g. 30s (default none)")
	fs.BoolVar(&f.disabled, "no-docs", false, "skip the docs tool and use the placeholder")
	fs.BoolVar(&f.warn, "warn-docs", false, "warn when the docs tool fails")
}

// parseFlags parses readmegen flags and returns positional args.
// -h/--help yields flag.ErrHelp.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("readmegen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &cliFlags{}

	addCommonFlags(fs, &f.common)
	addPathFlags(fs, &f.paths)
	addDocsFlags(fs, &f.docs)

	fs.BoolVar(&f.html, "html", false, "also write an HTML preview")
	fs.BoolVar(&f.lint, "lint", false, "warn about usage code that is not valid HCL")
	fs.BoolVarP(&f.watch, "watch", "w", false, "regenerate when README.yaml or *.tf files change")
	fs.BoolVar(&f.doctor, "doctor", false, "check the environment and exit")
	fs.BoolVar(&f.json, "json", false, "doctor output as JSON")
	fs.BoolVar(&f.version, "version", false, "show version information")

	// Help is printed by the caller, which knows where it should go.
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
