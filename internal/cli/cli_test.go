package cli

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formext/internal/prompt"
	"github.com/goliatone/go-formext/pkg/extension"
	"github.com/goliatone/go-formext/pkg/schema"
)

type fakeSelector struct {
	choice string
	seen   prompt.SelectConfig
}

func (f *fakeSelector) Select(_ context.Context, cfg prompt.SelectConfig) (string, error) {
	f.seen = cfg
	return f.choice, nil
}

func manifests() fs.FS {
	return os.DirFS(filepath.Join("testdata", "manifests"))
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		raw  string
		want extension.Kind
		err  bool
	}{
		{raw: "", want: extension.KindFields},
		{raw: "fields", want: extension.KindFields},
		{raw: "Form", want: extension.KindFields},
		{raw: "columns", want: extension.KindColumns},
		{raw: "table", want: extension.KindColumns},
		{raw: "pages", err: true},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.raw)
		if tt.err {
			if err == nil {
				t.Fatalf("ParseKind(%q): expected error", tt.raw)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("ParseKind(%q) = %q, %v", tt.raw, got, err)
		}
	}
}

func TestMerge(t *testing.T) {
	ctx := context.Background()
	p, err := BuildPanel(ctx, manifests(), nil)
	if err != nil {
		t.Fatalf("build panel: %v", err)
	}
	base, err := LoadBase(ctx, BaseSource{SchemaPath: filepath.Join("testdata", "schemas", "products.json")}, extension.KindFields)
	if err != nil {
		t.Fatalf("load base: %v", err)
	}

	merged, err := Merge(p, base, "products", extension.KindFields)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if diff := cmp.Diff([]string{"name", "rating", "price"}, schema.Names(merged)); diff != "" {
		t.Fatalf("merged names mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"customers", "products"}, Targets(p, extension.KindColumns)); diff != "" {
		t.Fatalf("column targets mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveTarget(t *testing.T) {
	ctx := context.Background()

	got, err := ResolveTarget(ctx, " orders ", nil, nil)
	if err != nil || got != "orders" {
		t.Fatalf("explicit target = %q, %v", got, err)
	}

	selector := &fakeSelector{choice: "products"}
	got, err = ResolveTarget(ctx, "", []string{"orders", "products"}, selector)
	if err != nil || got != "products" {
		t.Fatalf("selected target = %q, %v", got, err)
	}
	if diff := cmp.Diff([]string{"orders", "products"}, selector.seen.Options); diff != "" {
		t.Fatalf("prompt options mismatch (-want +got):\n%s", diff)
	}

	if _, err := ResolveTarget(ctx, "", []string{"orders"}, nil); !errors.Is(err, extension.ErrTargetRequired) {
		t.Fatalf("expected ErrTargetRequired, got %v", err)
	}
	if _, err := ResolveTarget(ctx, "", nil, selector); err == nil {
		t.Fatalf("expected error without targets")
	}
}

func TestLoadBase_Sources(t *testing.T) {
	ctx := context.Background()

	empty, err := LoadBase(ctx, BaseSource{}, extension.KindFields)
	if err != nil || len(empty) != 0 {
		t.Fatalf("empty base = %v, %v", empty, err)
	}

	if _, err := LoadBase(ctx, BaseSource{OpenAPIPath: "spec.yaml"}, extension.KindFields); err == nil {
		t.Fatalf("expected error without operation")
	}

	doc := filepath.Join(t.TempDir(), "openapi.json")
	payload := `{"openapi":"3.0.3","info":{"title":"t","version":"1"},"paths":{"/x":{"post":{"operationId":"createX",
"requestBody":{"content":{"application/json":{"schema":{"type":"object","properties":{"b":{"type":"string"},"a":{"type":"string"}}}}}},
"responses":{"200":{"description":"ok"}}}}}}`
	if err := os.WriteFile(doc, []byte(payload), 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}
	base, err := LoadBase(ctx, BaseSource{OpenAPIPath: doc, Operation: "createX"}, extension.KindFields)
	if err != nil {
		t.Fatalf("load openapi base: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, schema.Names(base)); diff != "" {
		t.Fatalf("openapi base mismatch (-want +got):\n%s", diff)
	}
}

func TestLint(t *testing.T) {
	ctx := context.Background()
	bases, err := LoadBases(os.DirFS(filepath.Join("testdata", "schemas")))
	if err != nil {
		t.Fatalf("load bases: %v", err)
	}
	if _, ok := bases["orders"]; !ok {
		t.Fatalf("expected orders base from yaml file, got %v", bases)
	}

	violations, err := Lint(ctx, manifests(), bases, nil)
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if len(violations) != 1 {
		t.Fatalf("expected one violation, got %+v", violations)
	}
	got := violations[0]
	if got.Target != "orders" || got.Kind != extension.KindFields {
		t.Fatalf("unexpected violation %+v", got)
	}
}
