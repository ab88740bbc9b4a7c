package readmegen

import (
	"context"
	"strings"
	"testing"
)

func TestRenderHTML(t *testing.T) {
	t.Parallel()

	md, err := Render(fullDescriptor(), Placeholder)
	if err != nil {
		t.Fatal(err)
	}

	got, err := RenderHTML(context.Background(), md, "vpc")
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}

	for _, want := range []string{
		"<title>vpc</title>",
		"<h2 id=\"usage\">Usage</h2>",
		"<table>",
		"href=\"https://github.com/jane\"",
		"<img src=\"https://img/ci.svg\" alt=\"CI\"",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("HTML missing %q", want)
		}
	}
}

func TestOutline_GeneratedDocument(t *testing.T) {
	t.Parallel()

	md, err := Render(&Descriptor{
		Name:  String("vpc"),
		Usage: []UsageExample{{Name: String("Basic"), Code: String("# comment, not a heading")}},
	}, Placeholder)
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	for _, h := range Outline(md) {
		got = append(got, h.String())
	}

	want := "# vpc|## Usage|### Basic|## Terraform Documentation|## Requirements|## Providers|## Modules|## Resources|## Inputs|## Outputs"
	if strings.Join(got, "|") != want {
		t.Errorf("Outline() = %v\nwant %s", got, want)
	}
}
