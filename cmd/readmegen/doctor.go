package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/alnah/go-readmegen/internal/config"
	"github.com/alnah/go-readmegen/internal/fileutil"
	"github.com/alnah/go-readmegen/internal/hints"
)

// doctorVersionTimeout bounds the "--version" probe of the docs tool.
const doctorVersionTimeout = 5 * time.Second

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string      `json:"status"` // "ready", "warnings", "errors"
	Docs     docsInfo    `json:"docs_tool"`
	Project  projectInfo `json:"project"`
	Env      envInfo     `json:"environment"`
	Warnings []string    `json:"warnings,omitempty"`
	Errors   []string    `json:"errors,omitempty"`
}

// docsInfo holds documentation tool detection results.
type docsInfo struct {
	Command  string `json:"command"`
	Disabled bool   `json:"disabled"`
	Found    bool   `json:"found"`
	Path     string `json:"path,omitempty"`
	Version  string `json:"version,omitempty"`
}

// projectInfo holds descriptor and output checks.
type projectInfo struct {
	Dir            string `json:"dir"`
	Input          string `json:"input"`
	InputFound     bool   `json:"input_found"`
	Output         string `json:"output"`
	OutputWritable bool   `json:"output_writable"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS   string `json:"os"`
	Arch string `json:"arch"`
	CI   bool   `json:"ci"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(cfg *config.Config, jsonOutput bool, env *Environment) int {
	result := runDoctor(cfg, env)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(cfg *config.Config, env *Environment) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
			CI:   hints.InCI(),
		},
	}

	checkDocsTool(result, cfg, env)
	checkProject(result, cfg)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkDocsTool locates the docs tool and asks for its version.
// A missing tool is a warning: generation still succeeds with the placeholder.
func checkDocsTool(result *doctorResult, cfg *config.Config, env *Environment) {
	result.Docs.Command = cfg.Docs.Command
	result.Docs.Disabled = cfg.Docs.Disabled
	if cfg.Docs.Disabled {
		return
	}

	path, err := exec.LookPath(cfg.Docs.Command)
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%s not found; the placeholder table will be used", cfg.Docs.Command))
		return
	}
	result.Docs.Found = true
	result.Docs.Path = path

	ctx, cancel := context.WithTimeout(context.Background(), doctorVersionTimeout)
	defer cancel()

	stdout, _, err := env.Runner.Run(ctx, cfg.Dir, path, "--version")
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not get %s version: %v", cfg.Docs.Command, err))
		return
	}
	result.Docs.Version = strings.TrimSpace(stdout)
}

// checkProject verifies the descriptor exists and the output directory is writable.
func checkProject(result *doctorResult, cfg *config.Config) {
	result.Project.Dir = cfg.Dir
	result.Project.Input = cfg.InputPath()
	result.Project.Output = cfg.OutputPath()

	if fileutil.FileExists(result.Project.Input) {
		result.Project.InputFound = true
	} else {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Module descriptor not found: %s", result.Project.Input))
	}

	outDir := filepath.Dir(result.Project.Output)
	if fileutil.DirWritable(outDir) {
		result.Project.OutputWritable = true
	} else {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Output directory not writable: %s", outDir))
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "readmegen doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Documentation tool")
	switch {
	case r.Docs.Disabled:
		fmt.Fprintln(w, "  [OK] Disabled (--no-docs)")
	case r.Docs.Found:
		fmt.Fprintf(w, "  [OK] Found at %s\n", r.Docs.Path)
		if r.Docs.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", r.Docs.Version)
		}
	default:
		fmt.Fprintf(w, "  [WARN] %s not found\n", r.Docs.Command)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Project")
	if r.Project.InputFound {
		fmt.Fprintf(w, "  [OK] Descriptor: %s\n", r.Project.Input)
	} else {
		fmt.Fprintf(w, "  [ERROR] Descriptor: %s missing\n", r.Project.Input)
	}
	if r.Project.OutputWritable {
		fmt.Fprintf(w, "  [OK] Output: %s\n", r.Project.Output)
	} else {
		fmt.Fprintf(w, "  [ERROR] Output: %s not writable\n", r.Project.Output)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to generate")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
