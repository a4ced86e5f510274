// Package manifest loads declarative module manifests. A manifest lets a
// module contribute form fields, table columns, record pages, sub-navigation
// items and discovery paths without writing Go code. Files are read from an
// fs.FS and may be JSON, YAML or HCL; every loaded Manifest satisfies
// module.Module, module.Extender and discovery.Provider so it can be handed to
// a panel builder alongside compiled modules.
//
// Labels, titles, descriptions and placeholders come from third-party modules
// and are stripped of markup while loading.
package manifest
