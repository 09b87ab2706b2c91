// Package testsupport holds shared fixture and golden-file helpers used by
// package tests across the module.
package testsupport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-displaykit/pkg/content"
	"github.com/goliatone/go-displaykit/pkg/definitions"
)

// LoadDefinitions reads a YAML manifest fixture into type definitions.
// Helpers fail the test on error to keep contract tests concise.
func LoadDefinitions(t *testing.T, path string) []*content.TypeDefinition {
	t.Helper()

	defs, err := LoadDefinitionsFromPath(path)
	if err != nil {
		t.Fatalf("load definitions: %v", err)
	}
	return defs
}

// LoadDefinitionsFromPath returns definitions without requiring testing.T,
// allowing callers to wire fixtures in setup functions.
func LoadDefinitionsFromPath(path string) ([]*content.TypeDefinition, error) {
	if path == "" {
		return nil, errors.New("testsupport: manifest path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read manifest: %w", err)
	}
	defs, err := definitions.FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("testsupport: parse manifest: %w", err)
	}
	return defs, nil
}

// LoadStore builds a populated definition store from a YAML manifest fixture.
func LoadStore(t *testing.T, path string) *definitions.Store {
	t.Helper()
	return definitions.NewStore(LoadDefinitions(t, path)...)
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents. Tests can assert
// the renderer returns and writes the same payload without duplicating buffer
// setup.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
