package readmegen_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnah/go-readmegen"
)

// Example renders a descriptor with the placeholder documentation table,
// as happens when terraform-docs is not installed.
func Example() {
	desc, err := readmegen.ParseDescriptor([]byte(`
name: vpc-module
description: Creates a VPC.
usage:
  - name: Basic
    code: 'module "vpc" {}'
`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	gen := readmegen.NewGenerator(readmegen.WithDocsProvider(readmegen.PlaceholderDocs))
	out, err := gen.Generate(context.Background(), desc)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, h := range readmegen.Outline(out)[:4] {
		fmt.Println(h)
	}
	// Output:
	// # vpc-module
	// ## Usage
	// ### Basic
	// ## Terraform Documentation
}

// Example_missingField shows that examples entries require a description.
func Example_missingField() {
	desc, _ := readmegen.ParseDescriptor([]byte("examples:\n  - name: simple\n"))

	_, err := readmegen.Render(desc, readmegen.Placeholder)
	fmt.Println(errors.Is(err, readmegen.ErrMissingField))
	fmt.Println(err)
	// Output:
	// true
	// missing required field: examples[0].description
}

// ExampleFormatContributors renders the contributors table.
func ExampleFormatContributors() {
	fmt.Print(readmegen.FormatContributors([]readmegen.Contributor{
		{Name: "Jane", GitHub: "jane", Email: "jane@example.com"},
	}))
	// Output:
	// ## Contributors
	//
	// | Avatar | Name | Email |
	// |--------|------|-------|
	// |  | [Jane](https://github.com/jane) | jane@example.com |
}
