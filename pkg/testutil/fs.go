package testutil

import (
	"testing"

	"github.com/spf13/afero"
)

// ReadMemFile reads a file from an afero filesystem, failing the test if it is missing
func ReadMemFile(t testing.TB, fs afero.Fs, path string) string {
	t.Helper()

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

// AssertNoFile fails the test if path exists on fs
func AssertNoFile(t testing.TB, fs afero.Fs, path string) {
	t.Helper()

	exists, err := afero.Exists(fs, path)
	if err != nil {
		t.Fatalf("Failed to stat %s: %v", path, err)
	}
	if exists {
		t.Errorf("Expected %s not to exist", path)
	}
}
