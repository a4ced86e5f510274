package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Node kinds used by the document codec.
const (
	KindField   = "field"
	KindColumn  = "column"
	KindSection = "section"
)

// Node is the serialisable envelope for an Element. Kind selects the variant;
// Children is only meaningful for sections.
type Node struct {
	Kind        string            `json:"kind" yaml:"kind"`
	Name        string            `json:"name,omitempty" yaml:"name,omitempty"`
	Type        FieldType         `json:"type,omitempty" yaml:"type,omitempty"`
	Format      string            `json:"format,omitempty" yaml:"format,omitempty"`
	Required    bool              `json:"required,omitempty" yaml:"required,omitempty"`
	Label       string            `json:"label,omitempty" yaml:"label,omitempty"`
	Title       string            `json:"title,omitempty" yaml:"title,omitempty"`
	Placeholder string            `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Sortable    bool              `json:"sortable,omitempty" yaml:"sortable,omitempty"`
	Searchable  bool              `json:"searchable,omitempty" yaml:"searchable,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Children    []Node            `json:"children,omitempty" yaml:"children,omitempty"`
}

// Element converts the node into its Element variant. An empty kind is read
// as a field, or as a section when children are present.
func (n Node) Element() (Element, error) {
	kind := strings.ToLower(strings.TrimSpace(n.Kind))
	if kind == "" {
		kind = KindField
		if len(n.Children) > 0 {
			kind = KindSection
		}
	}

	switch kind {
	case KindField:
		return Field{
			Name:        n.Name,
			Type:        n.Type,
			Format:      n.Format,
			Required:    n.Required,
			Label:       n.Label,
			Placeholder: n.Placeholder,
			Description: n.Description,
			Metadata:    cloneStringMap(n.Metadata),
		}, nil
	case KindColumn:
		return Column{
			Name:       n.Name,
			Label:      n.Label,
			Sortable:   n.Sortable,
			Searchable: n.Searchable,
			Metadata:   cloneStringMap(n.Metadata),
		}, nil
	case KindSection:
		children, err := FromNodes(n.Children)
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", n.Name, err)
		}
		return Section{
			Name:        n.Name,
			Title:       n.Title,
			Description: n.Description,
			Metadata:    cloneStringMap(n.Metadata),
			Schema:      children,
		}, nil
	default:
		return nil, fmt.Errorf("schema: unknown node kind %q", n.Kind)
	}
}

// FromNodes converts a node list into elements.
func FromNodes(nodes []Node) ([]Element, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	out := make([]Element, 0, len(nodes))
	for idx, node := range nodes {
		element, err := node.Element()
		if err != nil {
			return nil, fmt.Errorf("schema: node %d: %w", idx, err)
		}
		out = append(out, element)
	}
	return out, nil
}

// ToNode converts an element into its serialisable form. Host-defined
// elements are encoded by name only, keeping their children when they are
// containers.
func ToNode(element Element) Node {
	switch typed := element.(type) {
	case Field:
		return Node{
			Kind:        KindField,
			Name:        typed.Name,
			Type:        typed.Type,
			Format:      typed.Format,
			Required:    typed.Required,
			Label:       typed.Label,
			Placeholder: typed.Placeholder,
			Description: typed.Description,
			Metadata:    cloneStringMap(typed.Metadata),
		}
	case Column:
		return Node{
			Kind:       KindColumn,
			Name:       typed.Name,
			Label:      typed.Label,
			Sortable:   typed.Sortable,
			Searchable: typed.Searchable,
			Metadata:   cloneStringMap(typed.Metadata),
		}
	case Section:
		return Node{
			Kind:        KindSection,
			Name:        typed.Name,
			Title:       typed.Title,
			Description: typed.Description,
			Metadata:    cloneStringMap(typed.Metadata),
			Children:    ToNodes(typed.Schema),
		}
	}

	node := Node{Kind: KindField, Name: NameOf(element)}
	if container, ok := AsContainer(element); ok {
		node.Kind = KindSection
		node.Children = ToNodes(container.Children())
	}
	return node
}

// ToNodes converts elements into nodes.
func ToNodes(elements []Element) []Node {
	if len(elements) == 0 {
		return nil
	}
	out := make([]Node, len(elements))
	for idx, element := range elements {
		out[idx] = ToNode(element)
	}
	return out
}

type document struct {
	Schema *[]Node `json:"schema" yaml:"schema"`
}

func (d document) nodes() ([]Element, error) {
	if d.Schema == nil {
		return nil, fmt.Errorf("schema: document has no \"schema\" list")
	}
	return FromNodes(*d.Schema)
}

// Decode parses a JSON or YAML schema document. The payload is either a bare
// list of nodes or an object with a "schema" list; an object without that key
// is rejected.
func Decode(data []byte) ([]Element, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("schema: document is empty")
	}

	var nodes []Node
	if err := json.Unmarshal(data, &nodes); err == nil {
		return FromNodes(nodes)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc.nodes()
	}
	if err := yaml.Unmarshal(data, &nodes); err == nil {
		return FromNodes(nodes)
	}
	doc = document{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schema: parse document: invalid JSON or YAML: %w", err)
	}
	return doc.nodes()
}

// Encode serialises elements as an indented JSON list of nodes.
func Encode(elements []Element) ([]byte, error) {
	nodes := ToNodes(elements)
	if nodes == nil {
		nodes = []Node{}
	}
	payload, err := json.MarshalIndent(nodes, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("schema: encode: %w", err)
	}
	return payload, nil
}
