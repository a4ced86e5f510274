package extension_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formext/pkg/extension"
)

func pages(items ...extension.Page) extension.PageProvider {
	return func() ([]extension.Page, error) {
		return items, nil
	}
}

func TestPageEngine_KeyedMerge(t *testing.T) {
	set := extension.NewSet()
	set.Pages.MustRegister("products", pages(
		extension.Page{Key: "inventory", Route: "/{record}/inventory", Component: "inventory.manage"},
		extension.Page{Key: "edit", Route: "/{record}/edit", Component: "catalog.edit-product"},
	))
	set.Pages.MustRegister("products", pages(
		extension.Page{Route: "/{record}/audit"},
	))

	base := []extension.Page{
		{Key: "index", Route: "/", Component: "products.list"},
		{Key: "edit", Route: "/{record}/edit", Component: "products.edit"},
	}
	got, err := set.RecordPages().Apply(base, "products")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	want := []extension.Page{
		{Key: "index", Route: "/", Component: "products.list"},
		{Key: "edit", Route: "/{record}/edit", Component: "catalog.edit-product"},
		{Key: "inventory", Route: "/{record}/inventory", Component: "inventory.manage"},
		{Route: "/{record}/audit"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("pages mismatch (-want +got):\n%s", diff)
	}
	if base[1].Component != "products.edit" {
		t.Fatalf("base mutated: %+v", base[1])
	}
}

func TestPageEngine_ProviderError(t *testing.T) {
	boom := errors.New("boom")
	set := extension.NewSet()
	set.Pages.MustRegister("products", func() ([]extension.Page, error) { return nil, boom })

	got, err := set.RecordPages().Apply(nil, "products")
	if got != nil || !errors.Is(err, boom) {
		t.Fatalf("expected aborted merge, got %v, %v", got, err)
	}
}

func TestNavigationEngine_SingleProviderPerTarget(t *testing.T) {
	set := extension.NewSet()
	first := func() ([]extension.NavigationItem, error) {
		return []extension.NavigationItem{{Page: "first"}}, nil
	}
	second := func() ([]extension.NavigationItem, error) {
		return []extension.NavigationItem{{Page: "stock", Label: "Stock"}, {Page: "prices"}}, nil
	}
	if err := set.ExtendNavigation("products", first); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := set.ExtendNavigation("products", second); err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := set.SubNavigation().Apply([]extension.NavigationItem{{Page: "view"}, {Page: "edit"}}, "products")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	want := []extension.NavigationItem{{Page: "view"}, {Page: "edit"}, {Page: "stock", Label: "Stock"}, {Page: "prices"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("navigation mismatch (-want +got):\n%s", diff)
	}
}

func TestNavigationEngine_RequiresTarget(t *testing.T) {
	for _, target := range []string{"", "   ", "\t"} {
		_, err := extension.NewSet().SubNavigation().Apply(nil, target)
		if !errors.Is(err, extension.ErrTargetRequired) {
			t.Fatalf("target %q: expected ErrTargetRequired, got %v", target, err)
		}
	}
}

func TestSet_FreezeAllRegistries(t *testing.T) {
	set := extension.NewSet()
	set.Freeze()
	if !set.Frozen() {
		t.Fatalf("expected frozen set")
	}
	if err := set.ExtendForm("t", extension.Static()); !errors.Is(err, extension.ErrFrozen) {
		t.Fatalf("fields: expected ErrFrozen, got %v", err)
	}
	if err := set.ExtendTable("t", extension.Static()); !errors.Is(err, extension.ErrFrozen) {
		t.Fatalf("columns: expected ErrFrozen, got %v", err)
	}
	if err := set.ExtendPages("t", pages()); !errors.Is(err, extension.ErrFrozen) {
		t.Fatalf("pages: expected ErrFrozen, got %v", err)
	}
	nav := func() ([]extension.NavigationItem, error) { return nil, nil }
	if err := set.ExtendNavigation("t", nav); !errors.Is(err, extension.ErrFrozen) {
		t.Fatalf("navigation: expected ErrFrozen, got %v", err)
	}
}
