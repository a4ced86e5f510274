// Package cli holds the logic shared by the formext commands so it can be
// exercised without a terminal.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/goliatone/go-formext/internal/prompt"
	"github.com/goliatone/go-formext/pkg/extension"
	"github.com/goliatone/go-formext/pkg/openapi"
	"github.com/goliatone/go-formext/pkg/panel"
	"github.com/goliatone/go-formext/pkg/schema"
)

// ParseKind maps the -kind flag onto a schema extension kind.
func ParseKind(raw string) (extension.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(extension.KindFields), "form":
		return extension.KindFields, nil
	case string(extension.KindColumns), "table":
		return extension.KindColumns, nil
	default:
		return "", fmt.Errorf("cli: unsupported kind %q (want fields or columns)", raw)
	}
}

// BuildPanel loads every manifest under manifests into a frozen panel.
func BuildPanel(ctx context.Context, manifests fs.FS, logger *slog.Logger, options ...extension.Option) (*panel.Panel, error) {
	if manifests == nil {
		return nil, errors.New("cli: manifest directory is required")
	}
	opts := []panel.Option{panel.WithManifestFS(manifests), panel.WithEngineOptions(options...)}
	if logger != nil {
		opts = append(opts, panel.WithLogger(logger))
	}
	return panel.New(opts...).Build(ctx)
}

// Targets lists, sorted, the targets that have providers of kind.
func Targets(p *panel.Panel, kind extension.Kind) []string {
	var targets []string
	switch kind {
	case extension.KindColumns:
		targets = p.Extensions.Columns.Targets()
	default:
		targets = p.Extensions.Fields.Targets()
	}
	sort.Strings(targets)
	return targets
}

// ResolveTarget returns target when set and otherwise asks selector to pick
// one of targets.
func ResolveTarget(ctx context.Context, target string, targets []string, selector prompt.Selector) (string, error) {
	if target = strings.TrimSpace(target); target != "" {
		return target, nil
	}
	if selector == nil {
		return "", extension.ErrTargetRequired
	}
	if len(targets) == 0 {
		return "", errors.New("cli: no extension targets registered")
	}
	return selector.Select(ctx, prompt.SelectConfig{
		Message:  "Target to merge:",
		Options:  targets,
		Help:     "Targets come from the loaded module manifests.",
		PageSize: 12,
	})
}

// Merge applies the extensions of kind registered for target to base.
func Merge(p *panel.Panel, base []schema.Element, target string, kind extension.Kind) ([]schema.Element, error) {
	switch kind {
	case extension.KindFields:
		return p.Form(base, target)
	case extension.KindColumns:
		return p.Table(base, target)
	default:
		return nil, fmt.Errorf("cli: unsupported kind %q", kind)
	}
}

// BaseSource describes where the base schema comes from. SchemaPath wins over
// the OpenAPI document; with neither the base is empty.
type BaseSource struct {
	SchemaPath  string
	OpenAPIPath string
	Operation   string
}

// LoadBase reads the base schema for kind.
func LoadBase(ctx context.Context, src BaseSource, kind extension.Kind) ([]schema.Element, error) {
	switch {
	case src.SchemaPath != "":
		data, err := os.ReadFile(src.SchemaPath)
		if err != nil {
			return nil, fmt.Errorf("cli: read schema: %w", err)
		}
		return schema.Decode(data)
	case src.OpenAPIPath != "":
		if src.Operation == "" {
			return nil, errors.New("cli: -operation is required with -openapi")
		}
		raw, err := os.ReadFile(src.OpenAPIPath)
		if err != nil {
			return nil, fmt.Errorf("cli: read openapi document: %w", err)
		}
		doc, err := openapi.Load(ctx, raw)
		if err != nil {
			return nil, err
		}
		if kind == extension.KindColumns {
			return doc.TableSchema(src.Operation)
		}
		return doc.FormSchema(src.Operation)
	default:
		return []schema.Element{}, nil
	}
}

// LoadBases reads every schema document at the top of fsys, keyed by file
// name without extension. "product.json" holds the base for target "product".
func LoadBases(fsys fs.FS) (map[string][]schema.Element, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("cli: read schemas: %w", err)
	}
	bases := make(map[string][]schema.Element)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(path.Ext(name))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("cli: read schema %s: %w", name, err)
		}
		elements, err := schema.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("cli: %s: %w", name, err)
		}
		bases[strings.TrimSuffix(name, path.Ext(name))] = elements
	}
	return bases, nil
}
