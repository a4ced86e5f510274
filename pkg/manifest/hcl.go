package manifest

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/goliatone/go-formext/pkg/discovery"
	"github.com/goliatone/go-formext/pkg/extension"
	"github.com/goliatone/go-formext/pkg/module"
	"github.com/goliatone/go-formext/pkg/schema"
)

// hclFile mirrors the HCL layout:
//
//	module = "tax"
//	root   = "/srv/modules/tax"
//
//	field "products" {
//	  after = "price"
//	  name  = "tax_class"
//	  label = "Tax class"
//	}
//
//	field "products" {
//	  kind  = "section"
//	  name  = "tax"
//	  title = "Tax"
//	  child {
//	    name = "tax_exempt"
//	    type = "boolean"
//	  }
//	}
type hclFile struct {
	Module     string          `hcl:"module"`
	Vendor     string          `hcl:"vendor,optional"`
	Root       string          `hcl:"root,optional"`
	Fields     []hclInsertion  `hcl:"field,block"`
	Columns    []hclInsertion  `hcl:"column,block"`
	Pages      []hclPage       `hcl:"page,block"`
	Navigation []hclNavigation `hcl:"navigation,block"`
	Discovery  []hclDiscovery  `hcl:"discovery,block"`
}

type hclInsertion struct {
	Target      string            `hcl:"target,label"`
	After       string            `hcl:"after,optional"`
	Before      string            `hcl:"before,optional"`
	Append      bool              `hcl:"append,optional"`
	Kind        string            `hcl:"kind,optional"`
	Name        string            `hcl:"name"`
	Type        string            `hcl:"type,optional"`
	Format      string            `hcl:"format,optional"`
	Required    bool              `hcl:"required,optional"`
	Label       string            `hcl:"label,optional"`
	Title       string            `hcl:"title,optional"`
	Placeholder string            `hcl:"placeholder,optional"`
	Description string            `hcl:"description,optional"`
	Sortable    bool              `hcl:"sortable,optional"`
	Searchable  bool              `hcl:"searchable,optional"`
	Metadata    map[string]string `hcl:"metadata,optional"`
	Children    []hclChild        `hcl:"child,block"`
}

type hclChild struct {
	Kind        string            `hcl:"kind,optional"`
	Name        string            `hcl:"name"`
	Type        string            `hcl:"type,optional"`
	Format      string            `hcl:"format,optional"`
	Required    bool              `hcl:"required,optional"`
	Label       string            `hcl:"label,optional"`
	Placeholder string            `hcl:"placeholder,optional"`
	Description string            `hcl:"description,optional"`
	Metadata    map[string]string `hcl:"metadata,optional"`
}

type hclPage struct {
	Target    string `hcl:"target,label"`
	Key       string `hcl:"key,optional"`
	Route     string `hcl:"route"`
	Component string `hcl:"component,optional"`
}

type hclNavigation struct {
	Target string    `hcl:"target,label"`
	Items  []hclItem `hcl:"item,block"`
}

type hclItem struct {
	Page  string `hcl:"page"`
	Label string `hcl:"label,optional"`
	Icon  string `hcl:"icon,optional"`
}

type hclDiscovery struct {
	Category  string `hcl:"category,label"`
	Root      string `hcl:"root"`
	Namespace string `hcl:"namespace,optional"`
}

// evalContext exposes a few string helpers and the default vendor to HCL
// manifests so namespaces can be composed:
//
//	namespace = join("/", [default_vendor, lower("Shipping"), "resources"])
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default_vendor": cty.StringVal(module.DefaultVendor),
		},
		Functions: map[string]function.Function{
			"lower":  stdlib.LowerFunc,
			"upper":  stdlib.UpperFunc,
			"format": stdlib.FormatFunc,
			"join":   stdlib.JoinFunc,
		},
	}
}

func parseHCL(data []byte, source string) (file, error) {
	parser := hclparse.NewParser()
	parsed, diags := parser.ParseHCL(data, source)
	if diags.HasErrors() {
		return file{}, fmt.Errorf("manifest: parse %s: %w", source, diags)
	}

	var decoded hclFile
	if diags := gohcl.DecodeBody(parsed.Body, evalContext(), &decoded); diags.HasErrors() {
		return file{}, fmt.Errorf("manifest: decode %s: %w", source, diags)
	}

	out := file{
		Module: decoded.Module,
		Vendor: decoded.Vendor,
		Root:   decoded.Root,
	}
	out.Fields = convertHCLInsertions(decoded.Fields)
	out.Columns = convertHCLInsertions(decoded.Columns)

	for _, page := range decoded.Pages {
		out.Pages = append(out.Pages, pageFile{
			Target:    page.Target,
			Key:       page.Key,
			Route:     page.Route,
			Component: page.Component,
		})
	}

	for _, nav := range decoded.Navigation {
		entry := navigationFile{Target: nav.Target}
		for _, item := range nav.Items {
			entry.Items = append(entry.Items, extension.NavigationItem{Page: item.Page, Label: item.Label, Icon: item.Icon})
		}
		out.Navigation = append(out.Navigation, entry)
	}

	if len(decoded.Discovery) > 0 {
		out.Discovery = make(map[string][]discovery.Path, len(decoded.Discovery))
		for _, entry := range decoded.Discovery {
			out.Discovery[entry.Category] = append(out.Discovery[entry.Category], discovery.Path{
				Root:      entry.Root,
				Namespace: entry.Namespace,
			})
		}
	}

	return out, nil
}

func convertHCLInsertions(entries []hclInsertion) []insertionFile {
	if len(entries) == 0 {
		return nil
	}
	out := make([]insertionFile, 0, len(entries))
	for _, entry := range entries {
		node := schema.Node{
			Kind:        entry.Kind,
			Name:        entry.Name,
			Type:        schema.FieldType(entry.Type),
			Format:      entry.Format,
			Required:    entry.Required,
			Label:       entry.Label,
			Title:       entry.Title,
			Placeholder: entry.Placeholder,
			Description: entry.Description,
			Sortable:    entry.Sortable,
			Searchable:  entry.Searchable,
			Metadata:    entry.Metadata,
		}
		for _, child := range entry.Children {
			node.Children = append(node.Children, schema.Node{
				Kind:        child.Kind,
				Name:        child.Name,
				Type:        schema.FieldType(child.Type),
				Format:      child.Format,
				Required:    child.Required,
				Label:       child.Label,
				Placeholder: child.Placeholder,
				Description: child.Description,
				Metadata:    child.Metadata,
			})
		}
		out = append(out, insertionFile{
			Target:  entry.Target,
			After:   entry.After,
			Before:  entry.Before,
			Append:  entry.Append,
			Element: node,
		})
	}
	return out
}
