package extension

import (
	"github.com/goliatone/go-formext/internal/placement"
	"github.com/goliatone/go-formext/pkg/schema"
)

// Engine merges registered providers into element schemas.
type Engine struct {
	config
	kind     Kind
	registry *Registry[Provider]
}

// NewFormEngine returns an engine for form fields. Placements descend one
// level into containers and unanchored placements land at the end of the
// first container.
func NewFormEngine(registry *Registry[Provider], options ...Option) *Engine {
	defaults := []Option{WithNesting(true), WithFirstContainerFallback(true)}
	return newEngine(KindFields, registry, append(defaults, options...)...)
}

// NewTableEngine returns an engine for table columns. Placement only looks at
// the root sequence.
func NewTableEngine(registry *Registry[Provider], options ...Option) *Engine {
	return newEngine(KindColumns, registry, options...)
}

func newEngine(kind Kind, registry *Registry[Provider], options ...Option) *Engine {
	if registry == nil {
		registry = NewRegistry[Provider](kind)
	}
	return &Engine{
		config:   newConfig(options...),
		kind:     kind,
		registry: registry,
	}
}

// Kind returns the extension point merged by the engine.
func (e *Engine) Kind() Kind {
	return e.kind
}

// Registry exposes the registry backing the engine.
func (e *Engine) Registry() *Registry[Provider] {
	return e.registry
}

// Apply merges every provider registered for target into base and returns the
// merged schema. base is never modified; the result shares no container with
// it. A target without providers yields a copy of base. The first provider
// error aborts the merge and is returned as a *ProviderError.
func (e *Engine) Apply(base []schema.Element, target string) ([]schema.Element, error) {
	merged := schema.Clone(base)

	for idx, provider := range e.registry.ProvidersFor(target) {
		results, err := provider()
		if err != nil {
			e.logger.Error("extension provider failed",
				"kind", e.kind, "target", target, "provider", idx, "error", err)
			return nil, &ProviderError{Kind: e.kind, Target: target, Index: idx, Err: err}
		}

		for _, result := range results {
			if result.Element == nil {
				e.logger.Debug("extension result without element skipped",
					"kind", e.kind, "target", target, "provider", idx)
				continue
			}
			result.Element = schema.Clone([]schema.Element{result.Element})[0]
			if !result.Positioned() {
				merged = append(merged, result.Element)
				continue
			}

			var outcome placement.Outcome
			merged, outcome = e.place(merged, result)
			if outcome != placement.OutcomeFallback {
				continue
			}
			if e.strict {
				anchorErr := &AnchorError{
					Kind:    e.kind,
					Target:  target,
					Index:   idx,
					Element: schema.NameOf(result.Element),
					After:   result.After,
					Before:  result.Before,
				}
				e.logger.Error("extension anchor not found", "kind", e.kind, "target", target,
					"provider", idx, "element", anchorErr.Element, "after", result.After, "before", result.Before)
				return nil, anchorErr
			}
			e.logger.Debug("extension anchor not found, appended",
				"kind", e.kind, "target", target, "provider", idx,
				"element", schema.NameOf(result.Element), "after", result.After, "before", result.Before)
		}
	}

	return merged, nil
}

func (e *Engine) place(current []schema.Element, result Result) ([]schema.Element, placement.Outcome) {
	anchor := placement.Anchor{After: result.After, Before: result.Before}
	if e.nested {
		return placement.InsertNested(current, result.Element, anchor, e.placement)
	}
	return placement.Insert(current, result.Element, anchor)
}
