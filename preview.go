package readmegen

import (
	"context"

	"github.com/alnah/go-readmegen/internal/pipeline"
)

// Heading is one heading of a rendered README.
type Heading = pipeline.Heading

// Compile-time interface implementation check.
var _ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)

// RenderHTML converts a generated README to a standalone HTML page for
// previewing tables, badges and highlighted usage blocks in a browser.
func RenderHTML(ctx context.Context, markdown, title string) (string, error) {
	return pipeline.NewGoldmarkConverter().ToHTML(ctx, markdown, title)
}

// Outline lists the headings of a generated README in document order.
// Lines inside fenced code blocks are never reported as headings.
func Outline(markdown string) []Heading {
	return pipeline.Outline([]byte(markdown))
}
