package manifest

import (
	"fmt"

	"github.com/goliatone/go-formext/pkg/discovery"
	"github.com/goliatone/go-formext/pkg/extension"
	"github.com/goliatone/go-formext/pkg/module"
	"github.com/goliatone/go-formext/pkg/schema"
)

var (
	_ module.Module      = Manifest{}
	_ module.Extender    = Manifest{}
	_ discovery.Provider = Manifest{}
)

// Name implements module.Module.
func (m Manifest) Name() string { return m.Module }

// Root implements module.Module.
func (m Manifest) Root() string { return m.RootPath }

// DiscoveryPaths implements discovery.Provider. Declared paths win; without
// them a manifest with a root falls back to the conventional layout of
// module.Base.
func (m Manifest) DiscoveryPaths() discovery.Paths {
	if len(m.Discovery) > 0 {
		out := make(discovery.Paths, len(m.Discovery))
		for category, entries := range m.Discovery {
			out[category] = append([]discovery.Path(nil), entries...)
		}
		return out
	}
	if m.RootPath == "" {
		return nil
	}
	return module.Base{ModuleName: m.Module, Vendor: m.Vendor, RootPath: m.RootPath}.DiscoveryPaths()
}

// RegisterExtensions implements module.Extender. Each target receives one
// provider per kind holding the manifest's declarations in file order.
func (m Manifest) RegisterExtensions(set *extension.Set) error {
	if set == nil {
		return fmt.Errorf("manifest: module %q: extension set is required", m.Module)
	}

	for _, group := range groupInsertions(m.Fields) {
		if err := set.ExtendForm(group.target, insertionProvider(group.entries)); err != nil {
			return fmt.Errorf("manifest: module %q fields: %w", m.Module, err)
		}
	}
	for _, group := range groupInsertions(m.Columns) {
		if err := set.ExtendTable(group.target, insertionProvider(group.entries)); err != nil {
			return fmt.Errorf("manifest: module %q columns: %w", m.Module, err)
		}
	}
	for _, group := range groupPages(m.Pages) {
		pages := group.pages
		provider := func() ([]extension.Page, error) {
			return append([]extension.Page(nil), pages...), nil
		}
		if err := set.ExtendPages(group.target, provider); err != nil {
			return fmt.Errorf("manifest: module %q pages: %w", m.Module, err)
		}
	}
	for _, entry := range m.Navigation {
		items := append([]extension.NavigationItem(nil), entry.Items...)
		provider := func() ([]extension.NavigationItem, error) {
			return append([]extension.NavigationItem(nil), items...), nil
		}
		if err := set.ExtendNavigation(entry.Target, provider); err != nil {
			return fmt.Errorf("manifest: module %q navigation: %w", m.Module, err)
		}
	}
	return nil
}

type insertionGroup struct {
	target  string
	entries []Insertion
}

func groupInsertions(insertions []Insertion) []insertionGroup {
	var groups []insertionGroup
	index := make(map[string]int)
	for _, insertion := range insertions {
		pos, ok := index[insertion.Target]
		if !ok {
			pos = len(groups)
			index[insertion.Target] = pos
			groups = append(groups, insertionGroup{target: insertion.Target})
		}
		groups[pos].entries = append(groups[pos].entries, insertion)
	}
	return groups
}

type pageGroup struct {
	target string
	pages  []extension.Page
}

func groupPages(entries []PageEntry) []pageGroup {
	var groups []pageGroup
	index := make(map[string]int)
	for _, entry := range entries {
		pos, ok := index[entry.Target]
		if !ok {
			pos = len(groups)
			index[entry.Target] = pos
			groups = append(groups, pageGroup{target: entry.Target})
		}
		groups[pos].pages = append(groups[pos].pages, entry.Page)
	}
	return groups
}

func insertionProvider(entries []Insertion) extension.Provider {
	return func() ([]extension.Result, error) {
		results := make([]extension.Result, 0, len(entries))
		for _, entry := range entries {
			element := schema.Clone([]schema.Element{entry.Element})[0]
			if entry.Append {
				results = append(results, extension.Bare(element))
				continue
			}
			results = append(results, extension.At(element, entry.After, entry.Before))
		}
		return results, nil
	}
}
