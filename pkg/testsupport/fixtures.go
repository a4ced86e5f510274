package testsupport

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formext/pkg/schema"
)

// LoadSchema reads a JSON or YAML schema fixture. Failures abort the test.
func LoadSchema(t *testing.T, path string) []schema.Element {
	t.Helper()

	elements, err := LoadSchemaFromPath(path)
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}
	return elements
}

// LoadSchemaFromPath decodes a schema fixture without requiring testing.T.
func LoadSchemaFromPath(path string) ([]schema.Element, error) {
	if path == "" {
		return nil, errors.New("testsupport: schema path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read schema: %w", err)
	}
	elements, err := schema.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("testsupport: decode schema: %w", err)
	}
	return elements, nil
}

// MustReadFile returns the raw bytes of a fixture.
func MustReadFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return data
}

// WriteGolden writes elements to a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, elements []schema.Element) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := schema.Encode(elements)
	if err != nil {
		t.Fatalf("encode golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden diffs got against the golden schema at path, returning an
// empty string when they match. Elements are compared in their node form so
// host-defined variants diff the same way as the built-in ones.
func CompareGolden(t *testing.T, path string, got []schema.Element) string {
	t.Helper()

	WriteGolden(t, path, got)
	want := LoadSchema(t, path)
	return cmp.Diff(schema.ToNodes(want), schema.ToNodes(got))
}
