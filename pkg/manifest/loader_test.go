package manifest_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formext/pkg/discovery"
	"github.com/goliatone/go-formext/pkg/extension"
	"github.com/goliatone/go-formext/pkg/manifest"
	"github.com/goliatone/go-formext/pkg/schema"
)

func TestLoadFS_AllFormats(t *testing.T) {
	manifests := loadManifests(t, "basic")

	var names []string
	for _, m := range manifests {
		names = append(names, m.Name())
	}
	if diff := cmp.Diff([]string{"inventory", "shipping", "tax"}, names); diff != "" {
		t.Fatalf("module order mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFS_YAML(t *testing.T) {
	tax := findManifest(t, loadManifests(t, "basic"), "tax")

	if tax.Vendor != "acme" || tax.Root() != "/srv/modules/tax" {
		t.Fatalf("identity mismatch: %+v", tax)
	}
	if got := len(tax.Fields); got != 2 {
		t.Fatalf("expected 2 field insertions, got %d", got)
	}

	first := tax.Fields[0]
	if first.Target != "catalog.products" || first.After != "price" {
		t.Fatalf("unexpected insertion: %+v", first)
	}
	field, ok := first.Element.(schema.Field)
	if !ok {
		t.Fatalf("expected schema.Field, got %T", first.Element)
	}
	if field.Label != "Tax class" {
		t.Fatalf("label not sanitised: %q", field.Label)
	}

	section, ok := tax.Fields[1].Element.(schema.Section)
	if !ok {
		t.Fatalf("expected schema.Section, got %T", tax.Fields[1].Element)
	}
	if diff := cmp.Diff([]string{"tax_exempt", "tax_note"}, schema.Names(section.Children())); diff != "" {
		t.Fatalf("section children mismatch (-want +got):\n%s", diff)
	}
	if note := section.Schema[1].(schema.Field); strings.Contains(note.Placeholder, "<") {
		t.Fatalf("placeholder not sanitised: %q", note.Placeholder)
	}

	if _, ok := tax.Columns[0].Element.(schema.Column); !ok {
		t.Fatalf("expected column element, got %T", tax.Columns[0].Element)
	}
	want := []extension.NavigationItem{{Page: "tax", Label: "Tax", Icon: "receipt"}}
	if diff := cmp.Diff(want, tax.Navigation[0].Items); diff != "" {
		t.Fatalf("navigation mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFS_JSONDiscovery(t *testing.T) {
	inventory := findManifest(t, loadManifests(t, "basic"), "inventory")

	want := discovery.Paths{
		discovery.CategoryPages:   {{Root: filepath.Join("/srv/modules/inventory", "src/Admin/Pages"), Namespace: "acme/inventory/admin/pages"}},
		discovery.CategoryWidgets: {{Root: "/opt/shared/widgets", Namespace: "acme/shared/widgets"}},
	}
	if diff := cmp.Diff(want, inventory.DiscoveryPaths()); diff != "" {
		t.Fatalf("discovery mismatch (-want +got):\n%s", diff)
	}
	if !inventory.Fields[1].Append {
		t.Fatalf("expected append insertion")
	}
}

func TestLoadFS_HCL(t *testing.T) {
	shipping := findManifest(t, loadManifests(t, "basic"), "shipping")

	section, ok := shipping.Fields[0].Element.(schema.Section)
	if !ok {
		t.Fatalf("expected section, got %T", shipping.Fields[0].Element)
	}
	if section.Title != "Shipping" || shipping.Fields[0].After != "tax_details" {
		t.Fatalf("unexpected section insertion: %+v", shipping.Fields[0])
	}
	if diff := cmp.Diff([]string{"weight", "dimensions"}, schema.Names(section.Schema)); diff != "" {
		t.Fatalf("children mismatch (-want +got):\n%s", diff)
	}

	column, ok := shipping.Columns[0].Element.(schema.Column)
	if !ok || !column.Searchable {
		t.Fatalf("unexpected column: %#v", shipping.Columns[0].Element)
	}
	if got := shipping.Pages[0].Page; got.Key != "shipping" || got.Component != "shipping.rates" {
		t.Fatalf("unexpected page: %+v", got)
	}
	resources := shipping.DiscoveryPaths()[discovery.CategoryResources]
	if len(resources) != 1 || resources[0].Namespace != "acme/shipping/resources" {
		t.Fatalf("unexpected discovery: %+v", resources)
	}
}

func TestManifest_DefaultDiscoveryLayout(t *testing.T) {
	tax := findManifest(t, loadManifests(t, "basic"), "tax")
	paths := tax.DiscoveryPaths()
	if got := paths[discovery.CategoryWidgets][0].Namespace; got != "acme/tax/admin/widgets" {
		t.Fatalf("unexpected default namespace %q", got)
	}
}

func TestManifest_RegisterExtensions(t *testing.T) {
	inventory := findManifest(t, loadManifests(t, "basic"), "inventory")

	set := extension.NewSet()
	if err := inventory.RegisterExtensions(set); err != nil {
		t.Fatalf("register: %v", err)
	}
	if diff := cmp.Diff([]string{"catalog.products", "sales.orders"}, set.Fields.Targets()); diff != "" {
		t.Fatalf("targets mismatch (-want +got):\n%s", diff)
	}

	got, err := set.ApplyForm([]schema.Element{schema.Field{Name: "price"}, schema.Field{Name: "tax_class"}}, "catalog.products")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if diff := cmp.Diff([]string{"price", "stock", "tax_class"}, schema.Names(got)); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	orders, err := set.ApplyForm([]schema.Element{schema.Section{Name: "main"}}, "sales.orders")
	if err != nil {
		t.Fatalf("apply orders: %v", err)
	}
	if diff := cmp.Diff([]string{"main", "warehouse"}, schema.Names(orders)); diff != "" {
		t.Fatalf("bare append should stay at root (-want +got):\n%s", diff)
	}
}

func TestLoadFS_Errors(t *testing.T) {
	cases := map[string]string{
		"invalid_duplicate": "duplicate module",
		"invalid_anchor":    "sets both after",
		"invalid_hcl":       "decode",
	}
	for dir, fragment := range cases {
		dir, fragment := dir, fragment
		t.Run(dir, func(t *testing.T) {
			_, err := manifest.LoadFS(subDirFS(t, dir))
			if err == nil || !strings.Contains(err.Error(), fragment) {
				t.Fatalf("expected error containing %q, got %v", fragment, err)
			}
		})
	}
}

func TestParse_RequiresModule(t *testing.T) {
	if _, err := manifest.Parse([]byte("fields: []"), "anon.yaml"); err == nil {
		t.Fatalf("expected missing module error")
	}
	if _, err := manifest.Parse([]byte("   "), "empty.yaml"); err == nil {
		t.Fatalf("expected empty file error")
	}
}

func TestParse_HCLFunctions(t *testing.T) {
	src := []byte(`
module = "media"

column "catalog.products" {
  append = true
  name   = lower("THUMBNAIL")
  label  = upper("img")
}

discovery "widgets" {
  root      = "/srv/media/widgets"
  namespace = join("/", [default_vendor, "media", "widgets"])
}
`)
	m, err := manifest.Parse(src, "media.hcl")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	column, ok := m.Columns[0].Element.(schema.Column)
	if !ok || column.Name != "thumbnail" || column.Label != "IMG" {
		t.Fatalf("unexpected column: %#v", m.Columns[0].Element)
	}
	if !m.Columns[0].Append {
		t.Fatalf("expected append insertion")
	}
	widgets := m.DiscoveryPaths()[discovery.CategoryWidgets]
	if len(widgets) != 1 || widgets[0].Namespace != "modules/media/widgets" {
		t.Fatalf("unexpected discovery: %+v", widgets)
	}
}

func TestParse_SanitisedTextStaysPlain(t *testing.T) {
	src := []byte(`
module: duties
fields:
  - target: catalog.products
    element:
      name: duty_class
      label: "Tax & Duties"
      description: "Customer's <b>rate</b>"
      placeholder: "<script>alert(1)</script>e.g. 5 < 10"
navigation:
  - target: catalog.products
    items:
      - page: duties
        label: "Fees & \"Levies\""
`)
	m, err := manifest.Parse(src, "duties.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	field := m.Fields[0].Element.(schema.Field)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "label", got: field.Label, want: "Tax & Duties"},
		{name: "description", got: field.Description, want: "Customer's rate"},
		{name: "placeholder", got: field.Placeholder, want: "e.g. 5 < 10"},
		{name: "navigation label", got: m.Navigation[0].Items[0].Label, want: `Fees & "Levies"`},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Fatalf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestLoadFS_Nil(t *testing.T) {
	manifests, err := manifest.LoadFS(nil)
	if err != nil || len(manifests) != 0 {
		t.Fatalf("expected empty result, got %v, %v", manifests, err)
	}
}

func loadManifests(t *testing.T, dir string) []manifest.Manifest {
	t.Helper()
	manifests, err := manifest.LoadFS(subDirFS(t, dir))
	if err != nil {
		t.Fatalf("load manifests: %v", err)
	}
	return manifests
}

func findManifest(t *testing.T, manifests []manifest.Manifest, name string) manifest.Manifest {
	t.Helper()
	for _, m := range manifests {
		if m.Name() == name {
			return m
		}
	}
	t.Fatalf("manifest %q not found", name)
	return manifest.Manifest{}
}

func subDirFS(t *testing.T, dir string) fs.FS {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("resolve caller")
	}
	return os.DirFS(filepath.Join(filepath.Dir(file), "testdata", dir))
}
