// Package readmegen renders a Terraform module's README.md from README.yaml.
//
// # Quick Start
//
// Load the descriptor, generate the document, and write it:
//
//	desc, err := readmegen.LoadDescriptor("README.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	gen := readmegen.NewGenerator()
//	out, err := gen.Generate(ctx, desc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := readmegen.WriteFile("README.md", out); err != nil {
//	    log.Fatal(err)
//	}
//
// # Descriptor
//
// README.yaml recognizes these top-level keys, all optional:
//
//	name: vpc-module
//	description: Creates a VPC.
//	badges:
//	  - {name: CI, image: https://img.shields.io/..., url: https://...}
//	usage:
//	  - name: Basic
//	    description: Minimal configuration.
//	    code: |
//	      module "vpc" {}
//	examples:
//	  - {name: complete, description: All options, url: ./examples/complete}
//	related:
//	  - {name: subnets, url: https://..., description: Subnet module}
//	contributors:
//	  - {name: Jane, github: jane, email: jane@example.com, avatar: https://...}
//	license: Apache 2.0
//
// A missing key omits its section. Inside list entries, badges and
// contributors default missing fields to "", while examples require name and
// description and related projects require name, url and description;
// a missing required key fails with ErrMissingField.
//
// # Output Layout
//
// Sections always appear in this order, whatever the key order in YAML:
//
//  1. Title and description
//  2. Badges
//  3. Usage (hcl code blocks)
//  4. Terraform Documentation (terraform-docs table or Placeholder)
//  5. Examples
//  6. Related Projects
//  7. Contributors
//  8. License
//  9. Footer
//
// # Documentation Table
//
// The table comes from a DocsProvider. NewGenerator runs
// "terraform-docs markdown table ." and, if the tool is missing or exits
// non-zero, silently substitutes Placeholder. Supply another provider with
// WithDocsProvider, e.g. PlaceholderDocs for hermetic builds:
//
//	gen := readmegen.NewGenerator(readmegen.WithDocsProvider(readmegen.PlaceholderDocs))
//
// To observe failures instead of hiding them, wrap a TerraformDocs with an
// OnError hook:
//
//	tf := readmegen.NewTerraformDocs("modules/vpc")
//	tf.Timeout = time.Minute
//	gen := readmegen.NewGenerator(readmegen.WithDocsProvider(
//	    readmegen.WithPlaceholder(tf, func(err error) { log.Print(err) }),
//	))
//
// # Preview
//
// RenderHTML converts the result to a standalone HTML page (GFM tables,
// highlighted HCL), and Outline lists its headings. LintUsage reports usage
// code blocks that do not parse as HCL; it never changes the output.
package readmegen
