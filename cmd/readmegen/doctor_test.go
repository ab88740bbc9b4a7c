package main

// Notes:
// - Tests use black-box approach: testing through runDoctorCmd() observable outputs
// - The docs command is a name that cannot be on PATH, so tool detection is
//   deterministic. Version probing needs a real tool and is not tested here.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"encoding/json"
	"runtime"
	"strings"
	"testing"
)

const missingTool = "readmegen-test-no-such-tool"

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_JSONOutput - Verifies JSON output format and structure
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_JSONOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeDescriptor(t, dir, "name: demo\n")
	cfg := testConfig(dir)
	cfg.Docs.Command = missingTool
	env, stdout, _ := testEnv(&fakeRunner{})

	exitCode := runDoctorCmd(cfg, true, env)

	var result doctorResult
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("Invalid JSON output: %v\nOutput was: %s", err, stdout.String())
	}

	if result.Status != "warnings" {
		t.Errorf("status = %q, want warnings", result.Status)
	}
	if exitCode != ExitSuccess {
		t.Errorf("exit code = %d, want %d", exitCode, ExitSuccess)
	}
	if result.Docs.Found {
		t.Error("docs tool should not be found")
	}
	if !result.Project.InputFound {
		t.Error("descriptor should be found")
	}
	if !result.Project.OutputWritable {
		t.Error("output directory should be writable")
	}
	if result.Env.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", result.Env.OS, runtime.GOOS)
	}
	if result.Env.Arch != runtime.GOARCH {
		t.Errorf("Arch = %q, want %q", result.Env.Arch, runtime.GOARCH)
	}
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_MissingDescriptor - Errors yield exit 1
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_MissingDescriptor(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t.TempDir())
	cfg.Docs.Disabled = true
	env, stdout, _ := testEnv(&fakeRunner{})

	exitCode := runDoctorCmd(cfg, false, env)

	if exitCode != ExitGeneral {
		t.Errorf("exit code = %d, want %d", exitCode, ExitGeneral)
	}
	output := stdout.String()
	for _, want := range []string{
		"readmegen doctor",
		"Documentation tool",
		"Disabled (--no-docs)",
		"Project",
		"Module descriptor not found",
		"Status: Not ready",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Output should contain %q, got:\n%s", want, output)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_Ready - All checks pass
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_Ready(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeDescriptor(t, dir, "name: demo\n")
	cfg := testConfig(dir)
	cfg.Docs.Disabled = true
	env, stdout, _ := testEnv(&fakeRunner{})

	if exitCode := runDoctorCmd(cfg, false, env); exitCode != ExitSuccess {
		t.Errorf("exit code = %d, want %d", exitCode, ExitSuccess)
	}

	output := stdout.String()
	if !strings.Contains(output, "Status: Ready to generate") {
		t.Errorf("Output should report ready, got:\n%s", output)
	}
	platformStr := runtime.GOOS + "/" + runtime.GOARCH
	if !strings.Contains(output, platformStr) {
		t.Errorf("Output should contain platform %q", platformStr)
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_Doctor - Doctor is reachable from the command line
// ---------------------------------------------------------------------------

func TestRunMain_Doctor(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeDescriptor(t, dir, "name: demo\n")
	env, stdout, _ := testEnv(&fakeRunner{})

	code := runMain([]string{"--doctor", "--json", "-C", dir, "--docs-cmd", missingTool}, env)

	if code != ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, ExitSuccess)
	}
	var result doctorResult
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("Invalid JSON output: %v", err)
	}
	if result.Docs.Command != missingTool {
		t.Errorf("docs command = %q, want %q", result.Docs.Command, missingTool)
	}
}
