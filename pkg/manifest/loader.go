package manifest

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formext/pkg/discovery"
	"github.com/goliatone/go-formext/pkg/extension"
	"github.com/goliatone/go-formext/pkg/schema"
)

// LoadFS walks fsys and parses every JSON, YAML and HCL manifest. Manifests
// are returned sorted by file path. When fsys is nil the result is empty.
func LoadFS(fsys fs.FS) ([]Manifest, error) {
	if fsys == nil {
		return nil, nil
	}

	var manifests []Manifest
	seen := make(map[string]string)

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isManifestFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("manifest: read %s: %w", path, err)
		}

		m, err := Parse(data, path)
		if err != nil {
			return err
		}
		if previous, exists := seen[m.Module]; exists {
			return fmt.Errorf("manifest: duplicate module %q (files %s and %s)", m.Module, previous, path)
		}
		seen[m.Module] = path
		manifests = append(manifests, m)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(manifests, func(i, j int) bool {
		return manifests[i].Source < manifests[j].Source
	})
	return manifests, nil
}

// Parse decodes a single manifest. The format is picked from the source
// extension: ".hcl" is read as HCL, anything else as JSON and then YAML.
func Parse(data []byte, source string) (Manifest, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Manifest{}, fmt.Errorf("manifest: file %s is empty", source)
	}

	var raw file
	if strings.EqualFold(filepath.Ext(source), ".hcl") {
		decoded, err := parseHCL(data, source)
		if err != nil {
			return Manifest{}, err
		}
		raw = decoded
	} else if err := json.Unmarshal(data, &raw); err != nil {
		raw = file{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Manifest{}, fmt.Errorf("manifest: parse %s: invalid JSON or YAML: %w", source, err)
		}
	}

	return normalise(raw, source)
}

func normalise(raw file, source string) (Manifest, error) {
	m := Manifest{
		Module:   strings.TrimSpace(raw.Module),
		Vendor:   strings.TrimSpace(raw.Vendor),
		RootPath: strings.TrimSpace(raw.Root),
		Source:   source,
	}
	if m.Module == "" {
		return Manifest{}, fmt.Errorf("manifest: file %s does not name a module", source)
	}

	fields, err := normaliseInsertions(raw.Fields, schema.KindField, "fields", m)
	if err != nil {
		return Manifest{}, err
	}
	m.Fields = fields

	columns, err := normaliseInsertions(raw.Columns, schema.KindColumn, "columns", m)
	if err != nil {
		return Manifest{}, err
	}
	m.Columns = columns

	for idx, entry := range raw.Pages {
		target := strings.TrimSpace(entry.Target)
		if target == "" {
			return Manifest{}, fmt.Errorf("manifest: module %q (file %s) pages[%d] has no target", m.Module, source, idx)
		}
		route := strings.TrimSpace(entry.Route)
		if route == "" {
			return Manifest{}, fmt.Errorf("manifest: module %q (file %s) pages[%d] has no route", m.Module, source, idx)
		}
		m.Pages = append(m.Pages, PageEntry{
			Target: target,
			Page: extension.Page{
				Key:       strings.TrimSpace(entry.Key),
				Route:     route,
				Component: strings.TrimSpace(entry.Component),
			},
		})
	}

	for idx, entry := range raw.Navigation {
		target := strings.TrimSpace(entry.Target)
		if target == "" {
			return Manifest{}, fmt.Errorf("manifest: module %q (file %s) navigation[%d] has no target", m.Module, source, idx)
		}
		items := make([]extension.NavigationItem, 0, len(entry.Items))
		for itemIdx, item := range entry.Items {
			page := strings.TrimSpace(item.Page)
			if page == "" {
				return Manifest{}, fmt.Errorf("manifest: module %q (file %s) navigation[%d].items[%d] has no page", m.Module, source, idx, itemIdx)
			}
			items = append(items, extension.NavigationItem{
				Page:  page,
				Label: sanitizeText(item.Label),
				Icon:  strings.TrimSpace(item.Icon),
			})
		}
		m.Navigation = append(m.Navigation, NavigationEntry{Target: target, Items: items})
	}

	if len(raw.Discovery) > 0 {
		m.Discovery = make(discovery.Paths, len(raw.Discovery))
		for category, entries := range raw.Discovery {
			key := discovery.Category(strings.ToLower(strings.TrimSpace(category)))
			if key == "" {
				return Manifest{}, fmt.Errorf("manifest: module %q (file %s) declares an empty discovery category", m.Module, source)
			}
			for idx, entry := range entries {
				if strings.TrimSpace(entry.Root) == "" {
					return Manifest{}, fmt.Errorf("manifest: module %q (file %s) discovery %s[%d] has no root", m.Module, source, key, idx)
				}
				m.Discovery[key] = append(m.Discovery[key], discovery.Path{
					Root:      resolveRoot(m.RootPath, strings.TrimSpace(entry.Root)),
					Namespace: strings.TrimSpace(entry.Namespace),
				})
			}
		}
	}

	return m, nil
}

func normaliseInsertions(entries []insertionFile, defaultKind, section string, m Manifest) ([]Insertion, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	out := make([]Insertion, 0, len(entries))
	for idx, entry := range entries {
		target := strings.TrimSpace(entry.Target)
		if target == "" {
			return nil, fmt.Errorf("manifest: module %q (file %s) %s[%d] has no target", m.Module, m.Source, section, idx)
		}
		after := strings.TrimSpace(entry.After)
		before := strings.TrimSpace(entry.Before)
		if after != "" && before != "" {
			return nil, fmt.Errorf("manifest: module %q (file %s) %s[%d] sets both after %q and before %q", m.Module, m.Source, section, idx, after, before)
		}
		if entry.Append && (after != "" || before != "") {
			return nil, fmt.Errorf("manifest: module %q (file %s) %s[%d] combines append with an anchor", m.Module, m.Source, section, idx)
		}

		node := sanitizeNode(entry.Element)
		if strings.TrimSpace(node.Kind) == "" && len(node.Children) == 0 {
			node.Kind = defaultKind
		}
		if strings.TrimSpace(node.Name) == "" {
			return nil, fmt.Errorf("manifest: module %q (file %s) %s[%d] element has no name", m.Module, m.Source, section, idx)
		}
		element, err := node.Element()
		if err != nil {
			return nil, fmt.Errorf("manifest: module %q (file %s) %s[%d]: %w", m.Module, m.Source, section, idx, err)
		}

		out = append(out, Insertion{
			Target:  target,
			After:   after,
			Before:  before,
			Append:  entry.Append,
			Element: element,
		})
	}
	return out, nil
}

func resolveRoot(moduleRoot, root string) string {
	if moduleRoot == "" || filepath.IsAbs(root) {
		return filepath.Clean(root)
	}
	return filepath.Join(moduleRoot, root)
}

func isManifestFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml", ".hcl":
		return true
	default:
		return false
	}
}
