package manifest

import (
	"github.com/goliatone/go-formext/pkg/discovery"
	"github.com/goliatone/go-formext/pkg/extension"
	"github.com/goliatone/go-formext/pkg/schema"
)

// Manifest is the normalised content of a module manifest file.
type Manifest struct {
	Module     string
	Vendor     string
	RootPath   string
	Source     string
	Fields     []Insertion
	Columns    []Insertion
	Pages      []PageEntry
	Navigation []NavigationEntry
	Discovery  discovery.Paths
}

// Insertion adds one element to a target schema.
type Insertion struct {
	Target  string
	After   string
	Before  string
	Append  bool
	Element schema.Element
}

// PageEntry adds a record page to a target resource.
type PageEntry struct {
	Target string
	Page   extension.Page
}

// NavigationEntry lists the sub-navigation items a module adds to a target.
type NavigationEntry struct {
	Target string
	Items  []extension.NavigationItem
}

// file mirrors the JSON/YAML layout.
type file struct {
	Module     string                      `json:"module" yaml:"module"`
	Vendor     string                      `json:"vendor" yaml:"vendor"`
	Root       string                      `json:"root" yaml:"root"`
	Fields     []insertionFile             `json:"fields" yaml:"fields"`
	Columns    []insertionFile             `json:"columns" yaml:"columns"`
	Pages      []pageFile                  `json:"pages" yaml:"pages"`
	Navigation []navigationFile            `json:"navigation" yaml:"navigation"`
	Discovery  map[string][]discovery.Path `json:"discovery" yaml:"discovery"`
}

type insertionFile struct {
	Target  string      `json:"target" yaml:"target"`
	After   string      `json:"after,omitempty" yaml:"after,omitempty"`
	Before  string      `json:"before,omitempty" yaml:"before,omitempty"`
	Append  bool        `json:"append,omitempty" yaml:"append,omitempty"`
	Element schema.Node `json:"element" yaml:"element"`
}

type pageFile struct {
	Target    string `json:"target" yaml:"target"`
	Key       string `json:"key,omitempty" yaml:"key,omitempty"`
	Route     string `json:"route" yaml:"route"`
	Component string `json:"component,omitempty" yaml:"component,omitempty"`
}

type navigationFile struct {
	Target string                     `json:"target" yaml:"target"`
	Items  []extension.NavigationItem `json:"items" yaml:"items"`
}
