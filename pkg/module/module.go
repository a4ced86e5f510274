// Package module defines the contract feature modules implement to plug into
// an admin panel: a name and root directory, optional extension registration,
// and discovery paths derived from a conventional directory layout.
package module

import (
	"path/filepath"
	"strings"

	"github.com/goliatone/go-formext/pkg/discovery"
	"github.com/goliatone/go-formext/pkg/extension"
)

// DefaultVendor prefixes discovery namespaces when Base.Vendor is empty.
const DefaultVendor = "modules"

// Module identifies a feature module.
type Module interface {
	Name() string
	Root() string
}

// Extender is implemented by modules that register schema extensions. It is
// called once during the registration phase.
type Extender interface {
	RegisterExtensions(set *extension.Set) error
}

// Base implements Module and discovery.Provider using the conventional
// layout: components live under <root>/src/Admin/<Category> and are scanned
// under the namespace <vendor>/<name>/admin/<category>.
type Base struct {
	ModuleName string
	Vendor     string
	RootPath   string
}

// Name implements Module.
func (b Base) Name() string { return b.ModuleName }

// Root implements Module.
func (b Base) Root() string { return b.RootPath }

// DiscoveryPaths implements discovery.Provider.
func (b Base) DiscoveryPaths() discovery.Paths {
	vendor := strings.TrimSpace(b.Vendor)
	if vendor == "" {
		vendor = DefaultVendor
	}
	name := strings.ToLower(strings.TrimSpace(b.ModuleName))

	paths := make(discovery.Paths, len(discovery.Categories()))
	for _, category := range discovery.Categories() {
		dir := titleCase(string(category))
		paths[category] = []discovery.Path{{
			Root:      filepath.Join(b.RootPath, "src", "Admin", dir),
			Namespace: strings.Join([]string{vendor, name, "admin", string(category)}, "/"),
		}}
	}
	return paths
}

// Func is a Module assembled from a registration callback, handy for small
// modules and tests.
type Func struct {
	Base
	Register func(set *extension.Set) error
}

// New returns a Func module rooted at root.
func New(name, root string, register func(set *extension.Set) error) Func {
	return Func{
		Base:     Base{ModuleName: name, RootPath: root},
		Register: register,
	}
}

// RegisterExtensions implements Extender.
func (f Func) RegisterExtensions(set *extension.Set) error {
	if f.Register == nil {
		return nil
	}
	return f.Register(set)
}

func titleCase(value string) string {
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}

var (
	_ Module             = Base{}
	_ discovery.Provider = Base{}
	_ Extender           = Func{}
)
