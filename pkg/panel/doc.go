// Package panel wires feature modules into an admin panel. The Builder runs
// the registration phase (every module registers its extensions, in order),
// freezes the extension registries, and aggregates discovery paths. The
// resulting Panel is read-only and can serve concurrent schema builds.
package panel
