package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formext/pkg/schema"
)

// ErrOperationNotFound is returned when no operation carries the requested id.
var ErrOperationNotFound = errors.New("openapi: operation not found")

var preferredMediaTypes = []string{
	"application/json",
	"application/x-www-form-urlencoded",
	"multipart/form-data",
}

// Document is a loaded OpenAPI document indexed by operation id.
type Document struct {
	spec       *openapi3.T
	operations map[string]*openapi3.Operation
}

// Load parses raw JSON or YAML into a Document. Operations without an
// operationId are indexed as "<method>:<path>".
func Load(ctx context.Context, raw []byte, opts ...Option) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	cfg := newOptions(opts)

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if cfg.validate {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi: validate: %w", err)
		}
	}

	doc := &Document{spec: spec, operations: make(map[string]*openapi3.Operation)}
	if spec.Paths == nil {
		return doc, nil
	}
	for path, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for method, operation := range item.Operations() {
			id := operation.OperationID
			if id == "" {
				id = strings.ToLower(method) + ":" + path
			}
			doc.operations[id] = operation
		}
	}
	return doc, nil
}

// Operations returns the indexed operation ids sorted by name.
func (d *Document) Operations() []string {
	ids := make([]string, 0, len(d.operations))
	for id := range d.operations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Title returns info.title, or an empty string.
func (d *Document) Title() string {
	if d.spec == nil || d.spec.Info == nil {
		return ""
	}
	return d.spec.Info.Title
}

// FormSchema converts the operation's request body into form elements.
// Properties are emitted sorted by name and nested objects become sections.
// An operation without a request body yields an empty schema.
func (d *Document) FormSchema(operationID string) ([]schema.Element, error) {
	operation, err := d.lookup(operationID)
	if err != nil {
		return nil, err
	}
	body := operation.RequestBody
	if body == nil || body.Value == nil {
		return []schema.Element{}, nil
	}
	ref := pickMedia(body.Value.Content)
	if ref == nil || ref.Value == nil {
		return []schema.Element{}, nil
	}
	return fieldsOf(ref.Value, map[*openapi3.Schema]bool{}), nil
}

// TableSchema converts the 200 response of the operation into columns. An
// array response uses its item schema; nested objects are skipped since
// tables are flat.
func (d *Document) TableSchema(operationID string) ([]schema.Element, error) {
	operation, err := d.lookup(operationID)
	if err != nil {
		return nil, err
	}
	if operation.Responses == nil {
		return []schema.Element{}, nil
	}
	response := operation.Responses.Value("200")
	if response == nil || response.Value == nil {
		return []schema.Element{}, nil
	}
	ref := pickMedia(response.Value.Content)
	if ref == nil || ref.Value == nil {
		return []schema.Element{}, nil
	}
	item := ref.Value
	if item.Type.Is(openapi3.TypeArray) && item.Items != nil && item.Items.Value != nil {
		item = item.Items.Value
	}
	return columnsOf(item), nil
}

func (d *Document) lookup(operationID string) (*openapi3.Operation, error) {
	operation, ok := d.operations[operationID]
	if !ok || operation == nil {
		return nil, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}
	return operation, nil
}

// BaseSchema loads raw and returns the form schema of operationID.
func BaseSchema(ctx context.Context, raw []byte, operationID string, opts ...Option) ([]schema.Element, error) {
	doc, err := Load(ctx, raw, opts...)
	if err != nil {
		return nil, err
	}
	return doc.FormSchema(operationID)
}

func pickMedia(content openapi3.Content) *openapi3.SchemaRef {
	if len(content) == 0 {
		return nil
	}
	for _, mediaType := range preferredMediaTypes {
		if mt, ok := content[mediaType]; ok && mt != nil {
			return mt.Schema
		}
	}
	keys := make([]string, 0, len(content))
	for key := range content {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	if mt := content[keys[0]]; mt != nil {
		return mt.Schema
	}
	return nil
}

func sortedProperties(src *openapi3.Schema) []string {
	names := make([]string, 0, len(src.Properties))
	for name := range src.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func fieldsOf(src *openapi3.Schema, visiting map[*openapi3.Schema]bool) []schema.Element {
	if visiting[src] {
		return []schema.Element{}
	}
	visiting[src] = true
	defer delete(visiting, src)

	required := make(map[string]bool, len(src.Required))
	for _, name := range src.Required {
		required[name] = true
	}

	elements := make([]schema.Element, 0, len(src.Properties))
	for _, name := range sortedProperties(src) {
		ref := src.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		prop := ref.Value
		if isObject(prop) {
			elements = append(elements, schema.Section{
				Name:        name,
				Title:       prop.Title,
				Description: prop.Description,
				Schema:      fieldsOf(prop, visiting),
			})
			continue
		}
		elements = append(elements, schema.Field{
			Name:        name,
			Type:        fieldType(prop.Type),
			Format:      prop.Format,
			Required:    required[name],
			Label:       prop.Title,
			Description: prop.Description,
			Metadata:    enumMetadata(prop.Enum),
		})
	}
	return elements
}

func isObject(s *openapi3.Schema) bool {
	if len(s.Properties) == 0 {
		return false
	}
	return s.Type == nil || s.Type.Is(openapi3.TypeObject)
}

func columnsOf(src *openapi3.Schema) []schema.Element {
	elements := make([]schema.Element, 0, len(src.Properties))
	for _, name := range sortedProperties(src) {
		ref := src.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		prop := ref.Value
		if prop.Type.Is(openapi3.TypeObject) || prop.Type.Is(openapi3.TypeArray) {
			continue
		}
		elements = append(elements, schema.Column{
			Name:       name,
			Label:      prop.Title,
			Sortable:   true,
			Searchable: prop.Type.Is(openapi3.TypeString),
		})
	}
	return elements
}

func fieldType(types *openapi3.Types) schema.FieldType {
	if types == nil {
		return schema.FieldTypeString
	}
	for _, value := range types.Slice() {
		switch value {
		case openapi3.TypeInteger:
			return schema.FieldTypeInteger
		case openapi3.TypeNumber:
			return schema.FieldTypeNumber
		case openapi3.TypeBoolean:
			return schema.FieldTypeBoolean
		case openapi3.TypeArray:
			return schema.FieldTypeArray
		case openapi3.TypeObject:
			return schema.FieldTypeObject
		case openapi3.TypeString:
			return schema.FieldTypeString
		}
	}
	return schema.FieldTypeString
}

func enumMetadata(values []any) map[string]string {
	if len(values) == 0 {
		return nil
	}
	parts := make([]string, 0, len(values))
	for _, value := range values {
		parts = append(parts, fmt.Sprint(value))
	}
	return map[string]string{"enum": strings.Join(parts, ",")}
}
