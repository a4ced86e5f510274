package extension

import "github.com/goliatone/go-formext/pkg/schema"

// Set bundles one registry per extension kind. Modules receive a *Set during
// the registration phase; the application freezes it before building
// schemas.
type Set struct {
	Fields     *Registry[Provider]
	Columns    *Registry[Provider]
	Pages      *Registry[PageProvider]
	Navigation *Registry[NavigationProvider]
}

// NewSet creates a set with empty registries.
func NewSet() *Set {
	return &Set{
		Fields:     NewRegistry[Provider](KindFields),
		Columns:    NewRegistry[Provider](KindColumns),
		Pages:      NewRegistry[PageProvider](KindPages),
		Navigation: NewRegistry[NavigationProvider](KindNavigation),
	}
}

// ExtendForm registers a form field provider for target.
func (s *Set) ExtendForm(target string, provider Provider) error {
	return s.Fields.Register(target, provider)
}

// ExtendTable registers a table column provider for target.
func (s *Set) ExtendTable(target string, provider Provider) error {
	return s.Columns.Register(target, provider)
}

// ExtendPages registers a record page provider for target.
func (s *Set) ExtendPages(target string, provider PageProvider) error {
	return s.Pages.Register(target, provider)
}

// ExtendNavigation sets the navigation provider for target, replacing any
// provider registered earlier.
func (s *Set) ExtendNavigation(target string, provider NavigationProvider) error {
	return s.Navigation.Replace(target, provider)
}

// Freeze ends the registration phase on every registry.
func (s *Set) Freeze() {
	s.Fields.Freeze()
	s.Columns.Freeze()
	s.Pages.Freeze()
	s.Navigation.Freeze()
}

// Frozen reports whether the set was frozen.
func (s *Set) Frozen() bool {
	return s.Fields.Frozen()
}

// Forms returns the form engine for the set.
func (s *Set) Forms(options ...Option) *Engine {
	return NewFormEngine(s.Fields, options...)
}

// Tables returns the table engine for the set.
func (s *Set) Tables(options ...Option) *Engine {
	return NewTableEngine(s.Columns, options...)
}

// RecordPages returns the page engine for the set.
func (s *Set) RecordPages(options ...Option) *PageEngine {
	return NewPageEngine(s.Pages, options...)
}

// SubNavigation returns the navigation engine for the set.
func (s *Set) SubNavigation(options ...Option) *NavigationEngine {
	return NewNavigationEngine(s.Navigation, options...)
}

// ApplyForm is a shortcut for s.Forms().Apply.
func (s *Set) ApplyForm(base []schema.Element, target string) ([]schema.Element, error) {
	return s.Forms().Apply(base, target)
}

// ApplyTable is a shortcut for s.Tables().Apply.
func (s *Set) ApplyTable(base []schema.Element, target string) ([]schema.Element, error) {
	return s.Tables().Apply(base, target)
}
