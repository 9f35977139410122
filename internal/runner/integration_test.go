package runner_test

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// testContext mirrors testing.T.Context (Go 1.24+) for older toolchains.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}

// binaryPath builds the javafmt binary and returns its path.
func binaryPath(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	bin := filepath.Join(dir, "javafmt")
	if runtime.GOOS == "windows" {
		bin += ".exe"
	}

	cmd := exec.CommandContext(testContext(t), "go", "build", "-o", bin, "../../cmd/javafmt")
	cmd.Dir = filepath.Join(projectRoot(t), "internal", "runner")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to build binary: %v\n%s", err, out)
	}
	return bin
}

func projectRoot(t *testing.T) string {
	t.Helper()
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "..", "..")
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("unexpected error type: %v", err)
	}
	return exitErr.ExitCode()
}

func TestIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the binary")
	}
	bin := binaryPath(t)

	t.Run("aosp flag", func(t *testing.T) {
		cmd := exec.CommandContext(testContext(t), bin, "-aosp")
		cmd.Dir = t.TempDir()
		out, err := cmd.Output()
		if code := exitCode(t, err); code != 0 {
			t.Fatalf("exit code: got %d, want 0", code)
		}
		if !strings.Contains(string(out), "style: aosp") {
			t.Errorf("output missing aosp style:\n%s", out)
		}
	})

	t.Run("discovered toml config", func(t *testing.T) {
		dir := t.TempDir()
		data := []byte("[formatter]\nsingle_line_javadoc_style = \"multi_line\"\n")
		if err := os.WriteFile(filepath.Join(dir, "javafmt.toml"), data, 0o644); err != nil {
			t.Fatal(err)
		}

		cmd := exec.CommandContext(testContext(t), bin)
		cmd.Dir = dir
		out, err := cmd.Output()
		if code := exitCode(t, err); code != 0 {
			t.Fatalf("exit code: got %d, want 0", code)
		}
		if !strings.Contains(string(out), "single_line_javadoc_style: multi_line") {
			t.Errorf("output missing multi_line:\n%s", out)
		}
	})

	t.Run("unexpected argument", func(t *testing.T) {
		cmd := exec.CommandContext(testContext(t), bin, "Foo.java")
		err := cmd.Run()
		if code := exitCode(t, err); code != 2 {
			t.Errorf("exit code: got %d, want 2", code)
		}
	})

	t.Run("version", func(t *testing.T) {
		out, err := exec.CommandContext(testContext(t), bin, "-version").Output()
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(string(out), "javafmt dev") {
			t.Errorf("version output: got %q", out)
		}
	})
}
