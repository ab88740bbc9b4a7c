package readmegen

import (
	"context"
	"strings"
)

// Render assembles the README from desc and an already-fetched docs table.
// Section order is fixed regardless of the descriptor's key order:
// title/description, badges, usage, documentation table, examples, related
// projects, contributors, license, footer. A nil desc renders the
// documentation table and footer only.
func Render(desc *Descriptor, docsTable string) (string, error) {
	if desc == nil {
		desc = &Descriptor{}
	}

	examples, err := FormatExamples(desc.Examples)
	if err != nil {
		return "", err
	}

	related, err := FormatRelated(desc.Related)
	if err != nil {
		return "", err
	}

	sections := []string{
		FormatHeader(desc.Name, desc.Description),
		FormatBadges(desc.Badges),
		FormatUsage(desc.Usage),
		FormatDocs(docsTable),
		examples,
		related,
		FormatContributors(desc.Contributors),
		FormatLicense(desc.License),
		Footer,
	}

	var b strings.Builder
	for _, s := range sections {
		b.WriteString(s)
	}
	return b.String(), nil
}

// Generator fetches the documentation table and renders descriptors.
// Create with NewGenerator; the zero value is not usable.
type Generator struct {
	docs DocsProvider
}

// Option configures a Generator.
type Option func(*Generator)

// WithDocsProvider sets the documentation-table source.
func WithDocsProvider(p DocsProvider) Option {
	return func(g *Generator) {
		g.docs = p
	}
}

// NewGenerator creates a Generator. By default the table comes from
// terraform-docs in the current directory, falling back silently to
// Placeholder when the tool cannot run.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		docs: WithPlaceholder(NewTerraformDocs(""), nil),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate fetches the documentation table, then renders desc.
// Errors from the provider are returned as-is; wrap it with FallbackDocs to
// recover from them.
func (g *Generator) Generate(ctx context.Context, desc *Descriptor) (string, error) {
	table, err := g.docs.FetchDocs(ctx)
	if err != nil {
		return "", err
	}
	return Render(desc, table)
}
