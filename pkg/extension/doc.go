// Package extension records schema extensions contributed by independent
// modules and merges them into a base schema at build time.
//
// A Registry maps a target identifier (usually the resource that owns the
// schema) to an ordered list of providers. Providers are deferred: they run
// only when an engine applies them, in registration order, each one seeing
// the schema as already modified by the providers before it. Registries have
// a two-phase lifecycle. Modules register during application wiring, then
// Freeze ends the registration phase and the registry becomes a read-only
// structure that is safe to share between concurrent schema builds.
//
// Engine merges form fields (with descent into Section-like containers) and
// table columns (flat). PageEngine merges keyed record pages and
// NavigationEngine appends record sub-navigation items. Set bundles one
// registry per extension kind so modules receive a single handle.
package extension
