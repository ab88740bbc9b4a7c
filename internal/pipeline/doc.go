// Package pipeline renders generated README Markdown for inspection.
//
// Two read-only views are provided over a finished document:
//   - HTML preview via Goldmark (GFM tables, highlighted HCL usage blocks)
//   - Heading outline, used to report and check section order
//
// Neither view feeds back into the Markdown written to disk.
package pipeline
