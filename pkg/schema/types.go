package schema

// FieldType is the simplified enum for form-friendly field kinds.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeInteger FieldType = "integer"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeArray   FieldType = "array"
	FieldTypeObject  FieldType = "object"
)

// Field models an individual form input. Struct fields are annotated so
// schemas can be serialised directly.
type Field struct {
	Name        string            `json:"name" yaml:"name"`
	Type        FieldType         `json:"type,omitempty" yaml:"type,omitempty"`
	Format      string            `json:"format,omitempty" yaml:"format,omitempty"`
	Required    bool              `json:"required,omitempty" yaml:"required,omitempty"`
	Label       string            `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder string            `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// ElementName implements Element.
func (f Field) ElementName() string { return f.Name }

// CloneElement implements Cloner.
func (f Field) CloneElement() Element {
	f.Metadata = cloneStringMap(f.Metadata)
	return f
}

// Column models a table column.
type Column struct {
	Name       string            `json:"name" yaml:"name"`
	Label      string            `json:"label,omitempty" yaml:"label,omitempty"`
	Sortable   bool              `json:"sortable,omitempty" yaml:"sortable,omitempty"`
	Searchable bool              `json:"searchable,omitempty" yaml:"searchable,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// ElementName implements Element.
func (c Column) ElementName() string { return c.Name }

// CloneElement implements Cloner.
func (c Column) CloneElement() Element {
	c.Metadata = cloneStringMap(c.Metadata)
	return c
}

// Section groups related elements into a card/fieldset. It is the built-in
// Container variant.
type Section struct {
	Name        string            `json:"name,omitempty" yaml:"name,omitempty"`
	Title       string            `json:"title,omitempty" yaml:"title,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Schema      []Element         `json:"-" yaml:"-"`
}

// ElementName implements Element.
func (s Section) ElementName() string { return s.Name }

// Children implements Container. The returned slice must not be modified.
func (s Section) Children() []Element { return s.Schema }

// WithChildren implements Container, returning a copy of the section that
// holds children.
func (s Section) WithChildren(children []Element) Container {
	s.Schema = children
	return s
}

// CloneElement implements Cloner. Children are copied by Clone.
func (s Section) CloneElement() Element {
	s.Metadata = cloneStringMap(s.Metadata)
	return s
}

func cloneStringMap(src map[string]string) map[string]string {
	if src == nil {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

var (
	_ Element   = Field{}
	_ Element   = Column{}
	_ Container = Section{}
)
