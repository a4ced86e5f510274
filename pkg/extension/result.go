package extension

import "github.com/goliatone/go-formext/pkg/schema"

// Provider yields the elements a module contributes to a target. It is called
// once per Apply and must not touch the registry.
type Provider func() ([]Result, error)

// Result is one element produced by a Provider. Bare results are appended to
// the root sequence; positioned results go through anchor placement.
type Result struct {
	Element schema.Element
	After   string
	Before  string

	positioned bool
}

// Positioned reports whether the result carries placement metadata.
func (r Result) Positioned() bool {
	return r.positioned
}

// Bare wraps an element that is appended to the end of the schema.
func Bare(element schema.Element) Result {
	return Result{Element: element}
}

// At wraps an element placed after or before a named anchor. With both
// anchors empty the element is appended to the end of the searched scope,
// which for form engines is the first container when one exists.
func At(element schema.Element, after, before string) Result {
	return Result{Element: element, After: after, Before: before, positioned: true}
}

// After places element immediately after the element named anchor.
func After(anchor string, element schema.Element) Result {
	return At(element, anchor, "")
}

// Before places element immediately before the element named anchor.
func Before(anchor string, element schema.Element) Result {
	return At(element, "", anchor)
}

// Static returns a provider that always yields results.
func Static(results ...Result) Provider {
	frozen := append([]Result(nil), results...)
	return func() ([]Result, error) {
		return append([]Result(nil), frozen...), nil
	}
}
