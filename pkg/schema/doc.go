// Package schema defines the declarative schema nodes that extensions are
// merged into. An Element is opaque to the extension engine apart from its
// name, which makes it usable as a placement anchor, and, for containers, the
// ability to read its children and produce a copy holding a different child
// sequence. Field, Column and Section are the built-in variants; hosts may
// supply their own types as long as they satisfy Element or Container.
package schema
