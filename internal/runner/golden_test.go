package runner_test

import (
	"bytes"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/donaldgifford/javafmt/internal/runner"
	"github.com/donaldgifford/javafmt/internal/testutil"
)

func TestGoldenFiles(t *testing.T) {
	renderFn := func(t *testing.T, inputPath string) string {
		t.Helper()
		var stdout, stderr bytes.Buffer
		code := runner.Run(&runner.Options{
			ConfigPath: inputPath,
			Stdout:     &stdout,
			Stderr:     &stderr,
		})
		if code != runner.ExitOK {
			t.Fatalf("exit code %d: %s", code, stderr.String())
		}
		return stdout.String()
	}

	_, filename, _, _ := runtime.Caller(0)
	testdataDir := filepath.Join(filepath.Dir(filename), "testdata")

	testutil.RunGoldenDir(t, testdataDir, renderFn)
}
