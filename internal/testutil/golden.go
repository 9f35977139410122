// Package testutil provides shared test helpers for golden file testing.
package testutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

// Update is a flag that, when set, regenerates golden files from current output.
// Usage: go test ./... -update
var Update = flag.Bool("update", false, "update golden files")

// Golden file names inside each case directory.
const (
	InputFile    = "input.yml"
	ExpectedFile = "expected.yml"
)

// RenderFunc produces the output under test from a case's input file path.
type RenderFunc func(t *testing.T, inputPath string) string

// RunGolden runs a single golden file test in the given directory.
// It passes input.yml to renderFn and compares the result against
// expected.yml.
func RunGolden(t *testing.T, dir string, renderFn RenderFunc) {
	t.Helper()

	inputPath := filepath.Join(dir, InputFile)
	expectedPath := filepath.Join(dir, ExpectedFile)

	if _, err := os.Stat(inputPath); err != nil {
		t.Fatalf("failed to stat %s: %v", inputPath, err)
	}

	actual := renderFn(t, inputPath)

	if *Update {
		if err := os.WriteFile(expectedPath, []byte(actual), 0o644); err != nil {
			t.Fatalf("failed to update golden file %s: %v", expectedPath, err)
		}
		t.Logf("updated golden file: %s", expectedPath)
		return
	}

	expectedBytes, err := os.ReadFile(expectedPath)
	if err != nil {
		t.Fatalf("failed to read %s: %v", expectedPath, err)
	}

	expected := string(expectedBytes)
	if actual != expected {
		t.Errorf("output mismatch for %s:\n--- expected\n%s\n--- actual\n%s", dir, expected, actual)
	}
}

// RunGoldenDir walks all subdirectories under testdataDir and runs
// RunGolden for each as a subtest.
func RunGoldenDir(t *testing.T, testdataDir string, renderFn RenderFunc) {
	t.Helper()

	entries, err := os.ReadDir(testdataDir)
	if err != nil {
		t.Fatalf("failed to read testdata dir %s: %v", testdataDir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		t.Run(entry.Name(), func(t *testing.T) {
			dir := filepath.Join(testdataDir, entry.Name())
			RunGolden(t, dir, renderFn)
		})
	}
}
