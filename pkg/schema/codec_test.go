package schema_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formext/pkg/schema"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{
			name:    "json list",
			payload: `[{"name":"title"},{"kind":"section","name":"pricing","children":[{"name":"price","type":"number"}]}]`,
		},
		{
			name:    "json document",
			payload: `{"schema":[{"name":"title"},{"name":"pricing","children":[{"name":"price","type":"number"}]}]}`,
		},
		{
			name: "yaml list",
			payload: `
- name: title
- kind: section
  name: pricing
  children:
    - name: price
      type: number
`,
		},
		{
			name: "yaml document",
			payload: `
schema:
  - name: title
  - name: pricing
    children:
      - name: price
        type: number
`,
		},
	}

	want := []schema.Element{
		schema.Field{Name: "title"},
		schema.Section{
			Name:   "pricing",
			Schema: []schema.Element{schema.Field{Name: "price", Type: schema.FieldTypeNumber}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := schema.Decode([]byte(tt.payload))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("decoded schema mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	if _, err := schema.Decode([]byte("   ")); err == nil {
		t.Fatalf("expected error for empty document")
	}
	for _, payload := range []string{`{"fields":[{"name":"a"}]}`, "fields:\n  - name: a\n"} {
		_, err := schema.Decode([]byte(payload))
		if err == nil || !strings.Contains(err.Error(), `no "schema" list`) {
			t.Fatalf("expected missing schema key error for %q, got %v", payload, err)
		}
	}
	_, err := schema.Decode([]byte(`[{"kind":"widget","name":"x"}]`))
	if err == nil || !strings.Contains(err.Error(), "unknown node kind") {
		t.Fatalf("expected unknown kind error, got %v", err)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	original := []schema.Element{
		schema.Column{Name: "name", Label: "Name", Sortable: true},
		schema.Section{Name: "meta", Title: "Meta", Schema: []schema.Element{
			schema.Field{Name: "slug", Required: true, Metadata: map[string]string{"help": "url"}},
		}},
	}

	payload, err := schema.Encode(original)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := schema.Decode(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(original, decoded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncode_Empty(t *testing.T) {
	payload, err := schema.Encode(nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(payload) != "[]" {
		t.Fatalf("expected empty list, got %s", payload)
	}
}
