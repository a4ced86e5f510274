// Package formext extends form and table schemas of an admin panel with
// elements contributed by independent modules. Modules register providers
// per target during a registration phase; at render time the merge engine
// applies them in registration order, placing each element before or after a
// named anchor and falling back to an append when the anchor is missing.
//
// The root package re-exports the common entry points. The building blocks
// live under pkg/.
package formext

import (
	"context"

	"github.com/goliatone/go-formext/pkg/extension"
	"github.com/goliatone/go-formext/pkg/module"
	"github.com/goliatone/go-formext/pkg/panel"
	"github.com/goliatone/go-formext/pkg/schema"
)

// Element aliases schema.Element.
type Element = schema.Element

// Result aliases extension.Result.
type Result = extension.Result

// Provider aliases extension.Provider.
type Provider = extension.Provider

// Set aliases extension.Set.
type Set = extension.Set

// Panel aliases panel.Panel.
type Panel = panel.Panel

// NewSet returns an empty extension set ready for registration.
func NewSet() *Set {
	return extension.NewSet()
}

// NewPanel builds a frozen panel from the supplied options.
func NewPanel(ctx context.Context, options ...panel.Option) (*Panel, error) {
	return panel.New(options...).Build(ctx)
}

// NewModule wraps a registration callback as a module rooted at root.
func NewModule(name, root string, register func(*Set) error) module.Module {
	return module.New(name, root, register)
}

// After places element immediately after the sibling named anchor.
func After(anchor string, element Element) Result {
	return extension.After(anchor, element)
}

// Before places element immediately before the sibling named anchor.
func Before(anchor string, element Element) Result {
	return extension.Before(anchor, element)
}

// Append appends element to the end of the root sequence.
func Append(element Element) Result {
	return extension.Bare(element)
}
