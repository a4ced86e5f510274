// Package discovery aggregates the filesystem roots each module wants the
// host application to scan for schema-bearing components. Every module
// declares a list of (root, namespace) pairs per category; the aggregator
// concatenates them across modules without deduplication and hands the
// result to the host's scanner, one call per entry.
package discovery

import (
	"fmt"
	"reflect"
	"sort"
)

// Category groups discovery paths by the kind of component they contain.
type Category string

const (
	CategoryResources Category = "resources"
	CategoryPages     Category = "pages"
	CategoryClusters  Category = "clusters"
	CategoryWidgets   Category = "widgets"
)

// Categories lists the built-in categories in the order Register visits them.
func Categories() []Category {
	return []Category{CategoryResources, CategoryPages, CategoryClusters, CategoryWidgets}
}

// Path identifies a directory tree and the namespace it is scanned under.
type Path struct {
	Root      string `json:"root" yaml:"root"`
	Namespace string `json:"namespace" yaml:"namespace"`
}

// Paths maps categories to their discovery paths.
type Paths map[Category][]Path

// Provider is implemented by modules that contribute discovery paths.
type Provider interface {
	DiscoveryPaths() Paths
}

// ProviderFunc adapts a function into a Provider.
type ProviderFunc func() Paths

// DiscoveryPaths calls the underlying function.
func (fn ProviderFunc) DiscoveryPaths() Paths {
	return fn()
}

// Scanner is the host collaborator that registers components found under a
// discovery path.
type Scanner interface {
	Discover(category Category, path Path) error
}

// ScannerFunc adapts a function into a Scanner.
type ScannerFunc func(category Category, path Path) error

// Discover calls the underlying function.
func (fn ScannerFunc) Discover(category Category, path Path) error {
	return fn(category, path)
}

// Aggregate merges the paths of every module that implements Provider, in
// module order. Modules that do not implement Provider are skipped. The
// built-in categories are always present in the result, possibly empty.
func Aggregate(modules ...any) Paths {
	result := make(Paths, len(Categories()))
	for _, category := range Categories() {
		result[category] = []Path{}
	}

	for _, module := range modules {
		provider, ok := module.(Provider)
		if !ok || isNilProvider(provider) {
			continue
		}
		for category, entries := range provider.DiscoveryPaths() {
			if len(entries) == 0 {
				if _, exists := result[category]; !exists {
					result[category] = []Path{}
				}
				continue
			}
			result[category] = append(result[category], entries...)
		}
	}
	return result
}

// isNilProvider catches nil pointers stored in a non-nil interface.
func isNilProvider(provider Provider) bool {
	if provider == nil {
		return true
	}
	rv := reflect.ValueOf(provider)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// Ordered returns the categories of paths with the built-in ones first, in
// canonical order, followed by any other category sorted by name.
func (p Paths) Ordered() []Category {
	out := make([]Category, 0, len(p))
	known := make(map[Category]struct{}, len(Categories()))
	for _, category := range Categories() {
		known[category] = struct{}{}
		if _, ok := p[category]; ok {
			out = append(out, category)
		}
	}
	extra := make([]Category, 0)
	for category := range p {
		if _, ok := known[category]; !ok {
			extra = append(extra, category)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}

// Len returns the total number of paths across categories.
func (p Paths) Len() int {
	total := 0
	for _, entries := range p {
		total += len(entries)
	}
	return total
}

// Register hands every path to scanner, category by category in Ordered
// order and entries in aggregation order. The first scanner error stops the
// walk.
func Register(scanner Scanner, paths Paths) error {
	if scanner == nil {
		return fmt.Errorf("discovery: scanner is required")
	}
	for _, category := range paths.Ordered() {
		for _, path := range paths[category] {
			if err := scanner.Discover(category, path); err != nil {
				return fmt.Errorf("discovery: %s %s (%s): %w", category, path.Root, path.Namespace, err)
			}
		}
	}
	return nil
}
