package extension

import (
	"errors"
	"fmt"
)

var (
	// ErrFrozen is returned when registering after the registry was frozen.
	ErrFrozen = errors.New("extension: registry is frozen")
	// ErrTargetRequired is returned when a target identifier is empty.
	ErrTargetRequired = errors.New("extension: target is required")
	// ErrNilProvider is returned when registering a nil provider.
	ErrNilProvider = errors.New("extension: provider is required")
	// ErrAnchorNotFound is reported by engines running with strict anchors
	// when a placement names an anchor that does not exist.
	ErrAnchorNotFound = errors.New("extension: anchor not found")
)

// ProviderError reports a provider failure. The merge that triggered it is
// aborted and no partial schema is returned.
type ProviderError struct {
	Kind   Kind
	Target string
	Index  int
	Err    error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("extension: %s provider %d for target %q: %v", e.Kind, e.Index, e.Target, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// AnchorError describes a placement whose anchor matched no element.
type AnchorError struct {
	Kind    Kind
	Target  string
	Index   int
	Element string
	After   string
	Before  string
}

func (e *AnchorError) Error() string {
	anchor := "after " + fmt.Sprintf("%q", e.After)
	if e.After == "" {
		anchor = "before " + fmt.Sprintf("%q", e.Before)
	}
	return fmt.Sprintf("extension: %s provider %d for target %q places %q %s: %v",
		e.Kind, e.Index, e.Target, e.Element, anchor, ErrAnchorNotFound)
}

func (e *AnchorError) Unwrap() error {
	return ErrAnchorNotFound
}
