package readmegen

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestLoadDescriptor - File loading
// ---------------------------------------------------------------------------

func TestLoadDescriptor(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "README.yaml")
	content := `name: vpc-module
description: Creates a VPC.
usage:
  - name: Basic
    code: 'module "vpc" {}'
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	desc, err := LoadDescriptor(path)
	if err != nil {
		t.Fatalf("LoadDescriptor() error = %v", err)
	}
	if desc.Name == nil || *desc.Name != "vpc-module" {
		t.Errorf("Name = %v, want vpc-module", desc.Name)
	}
	if len(desc.Usage) != 1 || desc.Usage[0].Code == nil || *desc.Usage[0].Code != `module "vpc" {}` {
		t.Errorf("Usage = %+v, want one entry with code", desc.Usage)
	}
	if desc.Usage[0].Description != nil {
		t.Error("absent usage description should be nil")
	}
}

func TestLoadDescriptor_NotFound(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "README.yaml")
	_, err := LoadDescriptor(path)

	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("error = %v, want ErrConfigNotFound", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q should include the path", err.Error())
	}
}

func TestLoadDescriptor_Directory(t *testing.T) {
	t.Parallel()

	_, err := LoadDescriptor(t.TempDir())
	if err == nil {
		t.Fatal("expected error when path is a directory")
	}
	if errors.Is(err, ErrConfigNotFound) {
		t.Error("a directory is not a missing file")
	}
}

// ---------------------------------------------------------------------------
// TestParseDescriptor - Permissive schema
// ---------------------------------------------------------------------------

func TestParseDescriptor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr error
		check   func(t *testing.T, d *Descriptor)
	}{
		{
			name: "unknown keys are accepted",
			yaml: "name: vpc\nmaintainers: [ops]\nterraform: {version: 1.6}\n",
			check: func(t *testing.T, d *Descriptor) {
				if d.Name == nil || *d.Name != "vpc" {
					t.Errorf("Name = %v, want vpc", d.Name)
				}
			},
		},
		{
			name: "null fields are absent",
			yaml: "name: vpc\nlicense: null\nusage: ~\n",
			check: func(t *testing.T, d *Descriptor) {
				if d.License != nil {
					t.Errorf("License = %q, want nil", *d.License)
				}
				if d.Usage != nil {
					t.Errorf("Usage = %v, want nil", d.Usage)
				}
			},
		},
		{
			name: "empty string is present",
			yaml: "license: \"\"\n",
			check: func(t *testing.T, d *Descriptor) {
				if d.License == nil || *d.License != "" {
					t.Errorf("License = %v, want pointer to empty string", d.License)
				}
			},
		},
		{
			name: "block scalar keeps trailing newline",
			yaml: "usage:\n  - code: |\n      module \"vpc\" {\n        cidr = \"10.0.0.0/16\"\n      }\n",
			check: func(t *testing.T, d *Descriptor) {
				want := "module \"vpc\" {\n  cidr = \"10.0.0.0/16\"\n}\n"
				if got := *d.Usage[0].Code; got != want {
					t.Errorf("Code = %q, want %q", got, want)
				}
			},
		},
		{
			name: "partial contributor",
			yaml: "contributors:\n  - name: Jane\n  - email: sam@example.com\n",
			check: func(t *testing.T, d *Descriptor) {
				if len(d.Contributors) != 2 {
					t.Fatalf("len(Contributors) = %d, want 2", len(d.Contributors))
				}
				if d.Contributors[0].Email != "" || d.Contributors[1].Name != "" {
					t.Errorf("missing contributor fields should be empty: %+v", d.Contributors)
				}
			},
		},
		{
			name: "example without description still parses",
			yaml: "examples:\n  - name: simple\n",
			check: func(t *testing.T, d *Descriptor) {
				if d.Examples[0].Description != nil {
					t.Error("Description should be nil")
				}
			},
		},
		{
			name:    "malformed YAML",
			yaml:    "name: vpc\nusage: [unclosed\n",
			wantErr: ErrConfigParse,
		},
		{
			name:    "empty document",
			yaml:    "",
			wantErr: ErrConfigParse,
		},
		{
			name:    "top-level sequence",
			yaml:    "- name: vpc\n",
			wantErr: ErrConfigParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d, err := ParseDescriptor([]byte(tt.yaml))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, d)
		})
	}
}

func TestParseDescriptor_DiagnosticIncluded(t *testing.T) {
	t.Parallel()

	_, err := ParseDescriptor([]byte("name: vpc\nusage: [unclosed\n"))
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, ErrConfigParse.Error()+": ") {
		t.Errorf("message %q should start with %q", msg, ErrConfigParse.Error())
	}
	if len(msg) <= len(ErrConfigParse.Error())+2 {
		t.Errorf("message %q should carry a parser diagnostic", msg)
	}
}
