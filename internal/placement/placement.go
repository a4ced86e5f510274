// Package placement implements positional insertion of schema elements
// relative to named sibling anchors.
//
// Matching is first-match-wins: siblings are scanned in document order and the
// first sibling whose name equals Before (element emitted ahead of it) or
// After (element emitted right behind it) receives the insertion. Scanning
// stops inserting after that, so an element is never placed twice even when
// both anchors match different siblings. When the nested variant is used,
// every container's children are scanned (one level deep, containers in
// document order) before the root sequence itself.
package placement

import "github.com/goliatone/go-formext/pkg/schema"

// Anchor names the sibling an element should be placed next to. When both
// fields are empty the element is appended.
type Anchor struct {
	After  string
	Before string
}

// IsZero reports whether neither anchor is set.
func (a Anchor) IsZero() bool {
	return a.After == "" && a.Before == ""
}

// Outcome describes how an insertion was resolved.
type Outcome int

const (
	// OutcomeAnchored means an anchor matched and the element was placed
	// relative to it.
	OutcomeAnchored Outcome = iota
	// OutcomeAppended means no anchor was requested and the element was
	// appended to the end of a scope.
	OutcomeAppended
	// OutcomeFallback means an anchor was requested but never matched, so the
	// element was appended to the root sequence.
	OutcomeFallback
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAnchored:
		return "anchored"
	case OutcomeAppended:
		return "appended"
	case OutcomeFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Options tunes the nested insertion.
type Options struct {
	// FirstContainerFallback appends unanchored elements to the end of the
	// first container's children instead of the root sequence. It has no
	// effect when the root holds no container.
	FirstContainerFallback bool
}

// Insert places element within a single flat scope. The input slice is never
// modified.
func Insert(siblings []schema.Element, element schema.Element, anchor Anchor) ([]schema.Element, Outcome) {
	if out, ok := insertScope(siblings, element, anchor); ok {
		return out, OutcomeAnchored
	}
	return appendCopy(siblings, element), unmatched(anchor)
}

// InsertNested places element searching each container's children (one level
// of descent) before the root sequence. Every container in the result is a
// new value built through WithChildren; the input slice and its containers
// are never modified.
func InsertNested(siblings []schema.Element, element schema.Element, anchor Anchor, opts Options) ([]schema.Element, Outcome) {
	out := make([]schema.Element, 0, len(siblings)+1)
	inserted := false
	firstContainer := -1

	for _, sibling := range siblings {
		container, ok := schema.AsContainer(sibling)
		if !ok {
			out = append(out, sibling)
			continue
		}
		if firstContainer < 0 {
			firstContainer = len(out)
		}

		children := container.Children()
		if !inserted && !anchor.IsZero() {
			if updated, hit := insertScope(children, element, anchor); hit {
				inserted = true
				out = append(out, container.WithChildren(updated))
				continue
			}
		}
		out = append(out, container.WithChildren(copyElements(children)))
	}

	if inserted {
		return out, OutcomeAnchored
	}

	if anchor.IsZero() && opts.FirstContainerFallback && firstContainer >= 0 {
		container, _ := schema.AsContainer(out[firstContainer])
		out[firstContainer] = container.WithChildren(appendCopy(container.Children(), element))
		return out, OutcomeAppended
	}

	if updated, hit := insertScope(out, element, anchor); hit {
		return updated, OutcomeAnchored
	}
	return append(out, element), unmatched(anchor)
}

// insertScope scans siblings once and reports whether an anchor matched. An
// unanchored request never matches.
func insertScope(siblings []schema.Element, element schema.Element, anchor Anchor) ([]schema.Element, bool) {
	if anchor.IsZero() {
		return nil, false
	}

	out := make([]schema.Element, 0, len(siblings)+1)
	inserted := false
	for _, sibling := range siblings {
		name := schema.NameOf(sibling)
		if !inserted && name != "" && anchor.Before != "" && name == anchor.Before {
			out = append(out, element, sibling)
			inserted = true
			continue
		}
		out = append(out, sibling)
		if !inserted && name != "" && anchor.After != "" && name == anchor.After {
			out = append(out, element)
			inserted = true
		}
	}
	if !inserted {
		return nil, false
	}
	return out, true
}

func unmatched(anchor Anchor) Outcome {
	if anchor.IsZero() {
		return OutcomeAppended
	}
	return OutcomeFallback
}

func appendCopy(siblings []schema.Element, element schema.Element) []schema.Element {
	out := make([]schema.Element, 0, len(siblings)+1)
	out = append(out, siblings...)
	return append(out, element)
}

func copyElements(elements []schema.Element) []schema.Element {
	if elements == nil {
		return nil
	}
	return append([]schema.Element(nil), elements...)
}
